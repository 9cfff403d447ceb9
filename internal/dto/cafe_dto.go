package dto

import (
	"time"

	"github.com/google/uuid"
)

// NearbySearchRequest represents the request body for single-user proximity search.
// 좌표를 생략하면 프로필에 저장된 위치를 사용한다.
type NearbySearchRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// MidpointSearchRequest represents the query parameters for midpoint search
type MidpointSearchRequest struct {
	User1Latitude  float64 `form:"user1_latitude" binding:"required"`
	User1Longitude float64 `form:"user1_longitude" binding:"required"`
	User2Latitude  float64 `form:"user2_latitude" binding:"required"`
	User2Longitude float64 `form:"user2_longitude" binding:"required"`
}

// CafeResponse represents a cafe with its computed opening status
type CafeResponse struct {
	CafeID        uuid.UUID `json:"cafeId"`
	Name          string    `json:"name"`
	Branch        *string   `json:"branch"`
	Address       *string   `json:"address"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	OpeningHours  *string   `json:"openingHours"`
	Status        string    `json:"status"`
	IsConcentrate bool      `json:"isConcentrate"`
	AverageRating float64   `json:"averageRating"`
	PhotoURL      *string   `json:"photoUrl"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NearbyCafeResponse represents a cafe in a proximity search result
type NearbyCafeResponse struct {
	CafeResponse
	DistanceKm float64 `json:"distanceKm"`
}

// MidpointSearchResponse carries the computed midpoint alongside the results
type MidpointSearchResponse struct {
	MidpointLatitude  float64              `json:"midpointLatitude"`
	MidpointLongitude float64              `json:"midpointLongitude"`
	Cafes             []NearbyCafeResponse `json:"cafes"`
}
