package domain

import (
	"github.com/google/uuid"
)

// Rating represents a single user's score for a cafe.
// 한 사용자는 카페당 하나의 평점만 가진다.
type Rating struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_cafe" json:"user_id"`
	CafeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_cafe;index:idx_ratings_cafe_id" json:"cafe_id"`
	Value  int       `gorm:"not null" json:"value"`
}

// TableName specifies the table name for Rating
func (Rating) TableName() string {
	return "ratings"
}
