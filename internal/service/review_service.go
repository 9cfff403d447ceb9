package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nomad-place-api/internal/domain"
	"nomad-place-api/internal/dto"
	"nomad-place-api/internal/repository"
	"nomad-place-api/internal/response"
)

// ReviewService defines the interface for review business logic
type ReviewService interface {
	Create(ctx context.Context, authorID, cafeID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListByCafe(ctx context.Context, cafeID uuid.UUID) ([]*dto.ReviewResponse, error)
	Update(ctx context.Context, authorID, reviewID uuid.UUID, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, authorID, reviewID uuid.UUID) error
}

// reviewServiceImpl is the implementation of ReviewService
type reviewServiceImpl struct {
	reviewRepo repository.ReviewRepository
	cafeRepo   repository.CafeRepository
	logger     *zap.Logger
}

// NewReviewService creates a new instance of ReviewService
func NewReviewService(reviewRepo repository.ReviewRepository, cafeRepo repository.CafeRepository, logger *zap.Logger) ReviewService {
	return &reviewServiceImpl{
		reviewRepo: reviewRepo,
		cafeRepo:   cafeRepo,
		logger:     logger,
	}
}

// Create writes a review on a cafe
func (s *reviewServiceImpl) Create(ctx context.Context, authorID, cafeID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if _, err := s.cafeRepo.FindByID(ctx, cafeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Cafe not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch cafe", err.Error())
	}

	review := &domain.Review{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		CafeID:    cafeID,
		AuthorID:  authorID,
		Content:   req.Content,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create review", err.Error())
	}

	return toReviewResponse(review), nil
}

// ListByCafe returns all reviews on a cafe, newest first
func (s *reviewServiceImpl) ListByCafe(ctx context.Context, cafeID uuid.UUID) ([]*dto.ReviewResponse, error) {
	if _, err := s.cafeRepo.FindByID(ctx, cafeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Cafe not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch cafe", err.Error())
	}

	reviews, err := s.reviewRepo.FindByCafe(ctx, cafeID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch reviews", err.Error())
	}

	responses := make([]*dto.ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = toReviewResponse(review)
	}
	return responses, nil
}

// Update edits the caller's own review
func (s *reviewServiceImpl) Update(ctx context.Context, authorID, reviewID uuid.UUID, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Review not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch review", err.Error())
	}
	if review.AuthorID != authorID {
		return nil, response.NewForbiddenError("You can only modify your own review", "")
	}

	if req.Content != nil {
		review.Content = *req.Content
	}
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update review", err.Error())
	}

	return toReviewResponse(review), nil
}

// Delete removes the caller's own review
func (s *reviewServiceImpl) Delete(ctx context.Context, authorID, reviewID uuid.UUID) error {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Review not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch review", err.Error())
	}
	if review.AuthorID != authorID {
		return response.NewForbiddenError("You can only delete your own review", "")
	}

	if err := s.reviewRepo.Delete(ctx, review.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete review", err.Error())
	}
	return nil
}

func toReviewResponse(review *domain.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ReviewID:  review.ID,
		CafeID:    review.CafeID,
		AuthorID:  review.AuthorID,
		Content:   review.Content,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}
