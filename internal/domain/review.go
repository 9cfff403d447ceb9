package domain

import (
	"github.com/google/uuid"
)

// Review represents a free-form text review for a cafe
type Review struct {
	BaseModel
	CafeID   uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_cafe_id" json:"cafe_id"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_author_id" json:"author_id"`
	Content  string    `gorm:"type:text;not null" json:"content"`
}

// TableName specifies the table name for Review
func (Review) TableName() string {
	return "reviews"
}
