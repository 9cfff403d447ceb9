package dto

// DirectionRequest represents the request for walking directions to a cafe
type DirectionRequest struct {
	UserLatitude  float64 `json:"userLatitude" binding:"required"`
	UserLongitude float64 `json:"userLongitude" binding:"required"`
	CafeID        string  `json:"cafeId" binding:"required,uuid"`
}

// DirectionResponse represents a single directions result
type DirectionResponse struct {
	CafeName   string  `json:"cafeName"`
	URL        string  `json:"url"`
	DistanceKm float64 `json:"distanceKm"`
}

// MeetDirectionRequest represents the request for directions for two users
// meeting at cafes near their midpoint
type MeetDirectionRequest struct {
	User1Latitude  float64 `json:"user1Latitude" binding:"required"`
	User1Longitude float64 `json:"user1Longitude" binding:"required"`
	User2Latitude  float64 `json:"user2Latitude" binding:"required"`
	User2Longitude float64 `json:"user2Longitude" binding:"required"`
	CafeIDUser1    string  `json:"cafeIdUser1" binding:"required,uuid"`
	CafeIDUser2    string  `json:"cafeIdUser2" binding:"required,uuid"`
}

// MeetDirectionResponse represents directions for both users
type MeetDirectionResponse struct {
	User1 DirectionResponse `json:"user1"`
	User2 DirectionResponse `json:"user2"`
}
