package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nomad-place-api/internal/domain"
	"nomad-place-api/internal/dto"
	"nomad-place-api/internal/metrics"
	"nomad-place-api/internal/repository"
	"nomad-place-api/internal/response"
)

// RatingService defines the interface for rating business logic
type RatingService interface {
	Submit(ctx context.Context, userID, cafeID uuid.UUID, req *dto.SubmitRatingRequest) (*dto.RatingResponse, error)
	GetSummary(ctx context.Context, cafeID uuid.UUID) (*dto.RatingSummaryResponse, error)
	Update(ctx context.Context, userID, ratingID uuid.UUID, req *dto.UpdateRatingRequest) (*dto.RatingResponse, error)
	Delete(ctx context.Context, userID, ratingID uuid.UUID) error
}

// ratingServiceImpl is the implementation of RatingService
type ratingServiceImpl struct {
	ratingRepo repository.RatingRepository
	cafeRepo   repository.CafeRepository
	cafeSvc    CafeService
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewRatingService creates a new instance of RatingService
func NewRatingService(
	ratingRepo repository.RatingRepository,
	cafeRepo repository.CafeRepository,
	cafeSvc CafeService,
	m *metrics.Metrics,
	logger *zap.Logger,
) RatingService {
	return &ratingServiceImpl{
		ratingRepo: ratingRepo,
		cafeRepo:   cafeRepo,
		cafeSvc:    cafeSvc,
		metrics:    m,
		logger:     logger,
	}
}

// Submit stores the caller's rating for a cafe and returns the refreshed average.
// 이미 남긴 평점이 있으면 값이 교체된다.
func (s *ratingServiceImpl) Submit(ctx context.Context, userID, cafeID uuid.UUID, req *dto.SubmitRatingRequest) (*dto.RatingResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, response.NewValidationError("Rating must be between 1 and 5", "")
	}

	if _, err := s.cafeRepo.FindByID(ctx, cafeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Cafe not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch cafe", err.Error())
	}

	rating := &domain.Rating{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		UserID:    userID,
		CafeID:    cafeID,
		Value:     req.Rating,
	}
	average, err := s.ratingRepo.SubmitWithRecalculation(ctx, rating)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to submit rating", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementRatingSubmitted()
	}
	s.invalidateCatalog(ctx)

	// Upsert may have kept the original row, so read back the canonical one
	stored, err := s.ratingRepo.FindByUserAndCafe(ctx, userID, cafeID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch stored rating", err.Error())
	}

	return s.toRatingResponse(stored, average), nil
}

// GetSummary returns the stored average and rating count of a cafe
func (s *ratingServiceImpl) GetSummary(ctx context.Context, cafeID uuid.UUID) (*dto.RatingSummaryResponse, error) {
	cafe, err := s.cafeRepo.FindByID(ctx, cafeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Cafe not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch cafe", err.Error())
	}

	count, err := s.ratingRepo.CountByCafe(ctx, cafeID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count ratings", err.Error())
	}

	return &dto.RatingSummaryResponse{
		CafeID:        cafe.ID,
		AverageRating: cafe.AverageRating,
		RatingCount:   count,
	}, nil
}

// Update changes the value of the caller's own rating
func (s *ratingServiceImpl) Update(ctx context.Context, userID, ratingID uuid.UUID, req *dto.UpdateRatingRequest) (*dto.RatingResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, response.NewValidationError("Rating must be between 1 and 5", "")
	}

	rating, err := s.ratingRepo.FindByID(ctx, ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Rating not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch rating", err.Error())
	}
	if rating.UserID != userID {
		return nil, response.NewForbiddenError("You can only modify your own rating", "")
	}

	rating.Value = req.Rating
	average, err := s.ratingRepo.UpdateWithRecalculation(ctx, rating)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update rating", err.Error())
	}
	s.invalidateCatalog(ctx)

	return s.toRatingResponse(rating, average), nil
}

// Delete removes the caller's own rating and refreshes the cafe average
func (s *ratingServiceImpl) Delete(ctx context.Context, userID, ratingID uuid.UUID) error {
	rating, err := s.ratingRepo.FindByID(ctx, ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Rating not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch rating", err.Error())
	}
	if rating.UserID != userID {
		return response.NewForbiddenError("You can only delete your own rating", "")
	}

	if _, err := s.ratingRepo.DeleteWithRecalculation(ctx, rating); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete rating", err.Error())
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *ratingServiceImpl) invalidateCatalog(ctx context.Context) {
	if s.cafeSvc != nil {
		s.cafeSvc.InvalidateCatalogCache(ctx)
	}
}

func (s *ratingServiceImpl) toRatingResponse(rating *domain.Rating, average float64) *dto.RatingResponse {
	return &dto.RatingResponse{
		RatingID:      rating.ID,
		CafeID:        rating.CafeID,
		UserID:        rating.UserID,
		Rating:        rating.Value,
		AverageRating: average,
		CreatedAt:     rating.CreatedAt,
		UpdatedAt:     rating.UpdatedAt,
	}
}
