package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreatePostRequest represents the request to write a post on a board
type CreatePostRequest struct {
	Title      string  `json:"title" binding:"required,max=255"`
	Content    string  `json:"content" binding:"max=10000"`
	AuthorName string  `json:"authorName" binding:"required,max=100"`
	ImageURL   *string `json:"imageUrl" binding:"omitempty,url"`
}

// UpdatePostRequest represents the request to edit a post
type UpdatePostRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=255"`
	Content  *string `json:"content" binding:"omitempty,max=10000"`
	ImageURL *string `json:"imageUrl" binding:"omitempty,url"`
}

// PostResponse represents a post. 익명 게시판에서는 작성자 이름이 가려진다.
type PostResponse struct {
	PostID     uuid.UUID `json:"postId"`
	BoardID    uuid.UUID `json:"boardId"`
	AuthorName string    `json:"authorName"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ImageURL   *string   `json:"imageUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
