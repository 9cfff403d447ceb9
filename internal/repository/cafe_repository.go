package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nomad-place-api/internal/domain"
)

// CafeRepository defines the interface for cafe catalog data access
type CafeRepository interface {
	Create(ctx context.Context, cafe *domain.Cafe) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Cafe, error)
	FindByName(ctx context.Context, name string) (*domain.Cafe, error)
	FindAll(ctx context.Context) ([]*domain.Cafe, error)
	Update(ctx context.Context, cafe *domain.Cafe) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpsertByName(ctx context.Context, cafe *domain.Cafe) error
	Count(ctx context.Context) (int64, error)
}

// cafeRepositoryImpl is the GORM implementation of CafeRepository
type cafeRepositoryImpl struct {
	db *gorm.DB
}

// NewCafeRepository creates a new instance of CafeRepository
func NewCafeRepository(db *gorm.DB) CafeRepository {
	return &cafeRepositoryImpl{db: db}
}

// Create creates a new cafe
func (r *cafeRepositoryImpl) Create(ctx context.Context, cafe *domain.Cafe) error {
	if err := r.db.WithContext(ctx).Create(cafe).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a cafe by its ID
func (r *cafeRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Cafe, error) {
	var cafe domain.Cafe
	if err := r.db.WithContext(ctx).First(&cafe, id).Error; err != nil {
		return nil, err
	}
	return &cafe, nil
}

// FindByName finds a cafe by its unique name
func (r *cafeRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.Cafe, error) {
	var cafe domain.Cafe
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&cafe).Error; err != nil {
		return nil, err
	}
	return &cafe, nil
}

// FindAll returns the full catalog ordered by creation time
func (r *cafeRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Cafe, error) {
	var cafes []*domain.Cafe
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

// Update saves changes on an existing cafe
func (r *cafeRepositoryImpl) Update(ctx context.Context, cafe *domain.Cafe) error {
	if err := r.db.WithContext(ctx).Save(cafe).Error; err != nil {
		return err
	}
	return nil
}

// Delete soft deletes a cafe by ID
func (r *cafeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Cafe{}, id).Error; err != nil {
		return err
	}
	return nil
}

// UpsertByName inserts the cafe or refreshes catalog fields when the name already exists.
// 시드 작업에서 사용하며 평점 관련 컬럼은 건드리지 않는다.
func (r *cafeRepositoryImpl) UpsertByName(ctx context.Context, cafe *domain.Cafe) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"branch", "address", "latitude", "longitude",
				"opening_hours", "is_concentrate", "photo_url", "updated_at",
			}),
		}).
		Create(cafe).Error; err != nil {
		return err
	}
	return nil
}

// Count returns the number of cafes in the catalog
func (r *cafeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Cafe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
