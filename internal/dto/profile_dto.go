package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpdateProfileRequest represents the request to create or replace the caller's profile
type UpdateProfileRequest struct {
	Nickname  string   `json:"nickname" binding:"required,max=100"`
	Age       *int     `json:"age" binding:"omitempty,min=1,max=150"`
	Gender    *string  `json:"gender" binding:"omitempty,oneof=M F"`
	Job       *string  `json:"job" binding:"omitempty,oneof=FE BE PM DS BL MK"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ProfileResponse represents a user profile
type ProfileResponse struct {
	ProfileID uuid.UUID `json:"profileId"`
	UserID    uuid.UUID `json:"userId"`
	Nickname  string    `json:"nickname"`
	Age       *int      `json:"age"`
	Gender    *string   `json:"gender"`
	Job       *string   `json:"job"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
