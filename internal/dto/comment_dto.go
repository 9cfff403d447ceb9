package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCommentRequest represents the request to write a comment on a post
type CreateCommentRequest struct {
	Content    string     `json:"content" binding:"required,max=2000"`
	AuthorName string     `json:"authorName" binding:"required,max=100"`
	ParentID   *uuid.UUID `json:"parentId"`
	IsPrivate  bool       `json:"isPrivate"`
}

// UpdateCommentRequest represents the request to edit a comment
type UpdateCommentRequest struct {
	Content   *string `json:"content" binding:"omitempty,max=2000"`
	IsPrivate *bool   `json:"isPrivate"`
}

// CommentResponse represents a comment. 볼 수 없는 비밀 댓글은 내용이 가려진 채 내려간다.
type CommentResponse struct {
	CommentID  uuid.UUID  `json:"commentId"`
	PostID     uuid.UUID  `json:"postId"`
	ParentID   *uuid.UUID `json:"parentId"`
	AuthorName string     `json:"authorName"`
	Content    string     `json:"content"`
	IsPrivate  bool       `json:"isPrivate"`
	IsMasked   bool       `json:"isMasked"`
	CreatedAt  time.Time  `json:"createdAt"`
}
