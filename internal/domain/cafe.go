package domain

import (
	"nomad-place-api/internal/geo"
)

// Cafe represents a place entry in the catalog
type Cafe struct {
	BaseModel
	Name          string   `gorm:"type:varchar(255);not null;uniqueIndex:idx_cafes_name" json:"name"`
	Branch        *string  `gorm:"type:varchar(255)" json:"branch"`
	Address       *string  `gorm:"type:varchar(500)" json:"address"`
	Latitude      float64  `gorm:"not null" json:"latitude"`
	Longitude     float64  `gorm:"not null" json:"longitude"`
	OpeningHours  *string  `gorm:"type:varchar(100)" json:"opening_hours"`
	IsConcentrate bool     `gorm:"not null;default:false" json:"is_concentrate"`
	AverageRating float64  `gorm:"not null;default:0" json:"average_rating"`
	PhotoURL      *string  `gorm:"type:varchar(500)" json:"photo_url"`
	Ratings       []Rating `gorm:"foreignKey:CafeID;constraint:OnDelete:CASCADE" json:"ratings,omitempty"`
	Reviews       []Review `gorm:"foreignKey:CafeID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

// TableName specifies the table name for Cafe
func (Cafe) TableName() string {
	return "cafes"
}

// Location returns the cafe coordinates for proximity search
func (c Cafe) Location() geo.Point {
	return geo.Point{Latitude: c.Latitude, Longitude: c.Longitude}
}
