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

// ProfileService defines the interface for profile business logic
type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	Upsert(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

// profileServiceImpl is the implementation of ProfileService
type profileServiceImpl struct {
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(profileRepo repository.ProfileRepository, logger *zap.Logger) ProfileService {
	return &profileServiceImpl{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Get retrieves the caller's profile
func (s *profileServiceImpl) Get(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Profile not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch profile", err.Error())
	}
	return toProfileResponse(profile), nil
}

// Upsert creates or replaces the caller's profile
func (s *profileServiceImpl) Upsert(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if req.Gender != nil && !domain.ValidGender(*req.Gender) {
		return nil, response.NewValidationError("Invalid gender: "+*req.Gender, "")
	}
	if req.Job != nil && !domain.ValidJob(*req.Job) {
		return nil, response.NewValidationError("Invalid job: "+*req.Job, "")
	}

	profile := &domain.Profile{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		UserID:    userID,
		Nickname:  req.Nickname,
		Age:       req.Age,
		Gender:    req.Gender,
		Job:       req.Job,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save profile", err.Error())
	}

	// Upsert may have kept the original row, so read back the canonical one
	stored, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch stored profile", err.Error())
	}
	return toProfileResponse(stored), nil
}

func toProfileResponse(profile *domain.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ProfileID: profile.ID,
		UserID:    profile.UserID,
		Nickname:  profile.Nickname,
		Age:       profile.Age,
		Gender:    profile.Gender,
		Job:       profile.Job,
		Latitude:  profile.Latitude,
		Longitude: profile.Longitude,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}
