package dto

import (
	"time"

	"github.com/google/uuid"
)

// SubmitRatingRequest represents the request to rate a cafe
type SubmitRatingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// UpdateRatingRequest represents the request to change an existing rating
type UpdateRatingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// RatingResponse represents a stored rating with the refreshed cafe average
type RatingResponse struct {
	RatingID      uuid.UUID `json:"ratingId"`
	CafeID        uuid.UUID `json:"cafeId"`
	UserID        uuid.UUID `json:"userId"`
	Rating        int       `json:"rating"`
	AverageRating float64   `json:"averageRating"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RatingSummaryResponse represents the aggregate rating of a cafe
type RatingSummaryResponse struct {
	CafeID        uuid.UUID `json:"cafeId"`
	AverageRating float64   `json:"averageRating"`
	RatingCount   int64     `json:"ratingCount"`
}
