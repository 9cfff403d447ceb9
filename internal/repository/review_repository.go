package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nomad-place-api/internal/domain"
)

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	FindByCafe(ctx context.Context, cafeID uuid.UUID) ([]*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// reviewRepositoryImpl is the GORM implementation of ReviewRepository
type reviewRepositoryImpl struct {
	db *gorm.DB
}

// NewReviewRepository creates a new instance of ReviewRepository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

// Create creates a new review
func (r *reviewRepositoryImpl) Create(ctx context.Context, review *domain.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a review by its ID
func (r *reviewRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var review domain.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// FindByCafe finds all reviews on a cafe, newest first
func (r *reviewRepositoryImpl) FindByCafe(ctx context.Context, cafeID uuid.UUID) ([]*domain.Review, error) {
	var reviews []*domain.Review
	if err := r.db.WithContext(ctx).
		Where("cafe_id = ?", cafeID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Update saves changes on an existing review
func (r *reviewRepositoryImpl) Update(ctx context.Context, review *domain.Review) error {
	if err := r.db.WithContext(ctx).Save(review).Error; err != nil {
		return err
	}
	return nil
}

// Delete deletes a review by ID
func (r *reviewRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Review{}, id).Error; err != nil {
		return err
	}
	return nil
}
