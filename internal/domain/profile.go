package domain

import (
	"github.com/google/uuid"
)

// Gender values accepted on a profile
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Job codes accepted on a profile
const (
	JobFrontend       = "FE"
	JobBackend        = "BE"
	JobProductManager = "PM"
	JobDataScientist  = "DS"
	JobBlockchain     = "BL"
	JobMarketer       = "MK"
)

// ValidGender reports whether the given code is a known gender value
func ValidGender(s string) bool {
	return s == GenderMale || s == GenderFemale
}

// ValidJob reports whether the given code is a known job value
func ValidJob(s string) bool {
	switch s {
	case JobFrontend, JobBackend, JobProductManager, JobDataScientist, JobBlockchain, JobMarketer:
		return true
	}
	return false
}

// Profile represents per-user settings including the stored location
// used as the default origin for proximity search
type Profile struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_profiles_user_id" json:"user_id"`
	Nickname  string    `gorm:"type:varchar(100);not null" json:"nickname"`
	Age       *int      `json:"age"`
	Gender    *string   `gorm:"type:varchar(1)" json:"gender"`
	Job       *string   `gorm:"type:varchar(2)" json:"job"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
}

// TableName specifies the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
