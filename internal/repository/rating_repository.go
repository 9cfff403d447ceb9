package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nomad-place-api/internal/domain"
)

// RatingRepository defines the interface for rating data access.
// 평점 쓰기는 항상 카페 평균 재계산과 한 트랜잭션으로 묶인다.
type RatingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error)
	FindByUserAndCafe(ctx context.Context, userID, cafeID uuid.UUID) (*domain.Rating, error)
	FindByCafe(ctx context.Context, cafeID uuid.UUID) ([]*domain.Rating, error)
	CountByCafe(ctx context.Context, cafeID uuid.UUID) (int64, error)
	SubmitWithRecalculation(ctx context.Context, rating *domain.Rating) (float64, error)
	UpdateWithRecalculation(ctx context.Context, rating *domain.Rating) (float64, error)
	DeleteWithRecalculation(ctx context.Context, rating *domain.Rating) (float64, error)
}

// ratingRepositoryImpl is the GORM implementation of RatingRepository
type ratingRepositoryImpl struct {
	db *gorm.DB
}

// NewRatingRepository creates a new instance of RatingRepository
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepositoryImpl{db: db}
}

// FindByID finds a rating by its ID
func (r *ratingRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
	var rating domain.Rating
	if err := r.db.WithContext(ctx).First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// FindByUserAndCafe finds the rating a user left on a cafe
func (r *ratingRepositoryImpl) FindByUserAndCafe(ctx context.Context, userID, cafeID uuid.UUID) (*domain.Rating, error) {
	var rating domain.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND cafe_id = ?", userID, cafeID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// FindByCafe finds all ratings on a cafe
func (r *ratingRepositoryImpl) FindByCafe(ctx context.Context, cafeID uuid.UUID) ([]*domain.Rating, error) {
	var ratings []*domain.Rating
	if err := r.db.WithContext(ctx).
		Where("cafe_id = ?", cafeID).
		Order("created_at ASC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// CountByCafe returns the number of ratings on a cafe
func (r *ratingRepositoryImpl) CountByCafe(ctx context.Context, cafeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Rating{}).
		Where("cafe_id = ?", cafeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SubmitWithRecalculation upserts the user's rating for a cafe and stores the
// recomputed average on the cafe row, all inside one transaction.
// 같은 (user_id, cafe_id) 평점이 이미 있으면 값만 교체된다.
func (r *ratingRepositoryImpl) SubmitWithRecalculation(ctx context.Context, rating *domain.Rating) (float64, error) {
	var average float64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCafe(tx, rating.CafeID); err != nil {
			return err
		}
		if err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "cafe_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).
			Create(rating).Error; err != nil {
			return err
		}

		avg, err := recalculateAverage(tx, rating.CafeID)
		if err != nil {
			return err
		}
		average = avg
		return nil
	})
	return average, err
}

// UpdateWithRecalculation updates an existing rating row and recomputes the cafe average
func (r *ratingRepositoryImpl) UpdateWithRecalculation(ctx context.Context, rating *domain.Rating) (float64, error) {
	var average float64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCafe(tx, rating.CafeID); err != nil {
			return err
		}
		if err := tx.Save(rating).Error; err != nil {
			return err
		}

		avg, err := recalculateAverage(tx, rating.CafeID)
		if err != nil {
			return err
		}
		average = avg
		return nil
	})
	return average, err
}

// DeleteWithRecalculation removes a rating row and recomputes the cafe average
func (r *ratingRepositoryImpl) DeleteWithRecalculation(ctx context.Context, rating *domain.Rating) (float64, error) {
	var average float64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCafe(tx, rating.CafeID); err != nil {
			return err
		}
		if err := tx.Delete(&domain.Rating{}, rating.ID).Error; err != nil {
			return err
		}

		avg, err := recalculateAverage(tx, rating.CafeID)
		if err != nil {
			return err
		}
		average = avg
		return nil
	})
	return average, err
}

// lockCafe takes a row lock on the cafe so concurrent recalculations serialize.
// SQLite는 FOR UPDATE를 지원하지 않지만 쓰기 자체가 직렬화되므로 잠금 없이 진행한다.
func lockCafe(tx *gorm.DB, cafeID uuid.UUID) error {
	var cafe domain.Cafe
	if tx.Dialector.Name() == "sqlite" {
		return tx.First(&cafe, cafeID).Error
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&cafe, cafeID).Error
}

// recalculateAverage recomputes the average over all remaining ratings and
// stores it on the cafe. 평점이 하나도 없으면 0을 저장한다.
func recalculateAverage(tx *gorm.DB, cafeID uuid.UUID) (float64, error) {
	var result struct {
		Avg   *float64
		Count int64
	}
	if err := tx.Model(&domain.Rating{}).
		Select("AVG(value) AS avg, COUNT(*) AS count").
		Where("cafe_id = ?", cafeID).
		Scan(&result).Error; err != nil {
		return 0, err
	}

	average := 0.0
	if result.Avg != nil {
		average = *result.Avg
	}

	if err := tx.Model(&domain.Cafe{}).
		Where("id = ?", cafeID).
		Update("average_rating", average).Error; err != nil {
		return 0, err
	}
	return average, nil
}
