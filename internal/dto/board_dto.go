package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBoardRequest represents the request to create a board instance
type CreateBoardRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// BoardResponse represents a board
type BoardResponse struct {
	BoardID   uuid.UUID `json:"boardId"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
