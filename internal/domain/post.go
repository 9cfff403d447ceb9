package domain

import (
	"github.com/google/uuid"
)

// Post represents an article on a board
type Post struct {
	BaseModel
	BoardID    uuid.UUID `gorm:"type:uuid;not null;index:idx_posts_board_id" json:"board_id"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index:idx_posts_author_id" json:"author_id"`
	AuthorName string    `gorm:"type:varchar(100);not null" json:"author_name"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Content    string    `gorm:"type:text" json:"content"`
	ImageURL   *string   `gorm:"type:varchar(500)" json:"image_url"`
	Board      Board     `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"board,omitempty"`
	Comments   []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}
