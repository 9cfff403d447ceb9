package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nomad-place-api/internal/domain"
)

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
}

// profileRepositoryImpl is the GORM implementation of ProfileRepository
type profileRepositoryImpl struct {
	db *gorm.DB
}

// NewProfileRepository creates a new instance of ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

// FindByUserID finds the profile belonging to a user
func (r *profileRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert inserts the profile or replaces the editable fields when one already
// exists for the user
func (r *profileRepositoryImpl) Upsert(ctx context.Context, profile *domain.Profile) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"nickname", "age", "gender", "job", "latitude", "longitude", "updated_at",
			}),
		}).
		Create(profile).Error; err != nil {
		return err
	}
	return nil
}
