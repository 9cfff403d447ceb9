package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateReviewRequest represents the request to write a review on a cafe
type CreateReviewRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// UpdateReviewRequest represents the request to edit a review
type UpdateReviewRequest struct {
	Content *string `json:"content" binding:"omitempty,max=2000"`
}

// ReviewResponse represents a review
type ReviewResponse struct {
	ReviewID  uuid.UUID `json:"reviewId"`
	CafeID    uuid.UUID `json:"cafeId"`
	AuthorID  uuid.UUID `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
