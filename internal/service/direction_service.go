package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nomad-place-api/internal/client"
	"nomad-place-api/internal/domain"
	"nomad-place-api/internal/dto"
	"nomad-place-api/internal/geo"
	"nomad-place-api/internal/repository"
	"nomad-place-api/internal/response"
)

// DirectionService defines the interface for directions business logic
type DirectionService interface {
	ToCafe(ctx context.Context, req *dto.DirectionRequest) (*dto.DirectionResponse, error)
	ToMeetingCafes(ctx context.Context, req *dto.MeetDirectionRequest) (*dto.MeetDirectionResponse, error)
}

// directionServiceImpl is the implementation of DirectionService
type directionServiceImpl struct {
	cafeRepo repository.CafeRepository
	naver    client.NaverMapClient
	logger   *zap.Logger
}

// NewDirectionService creates a new instance of DirectionService
func NewDirectionService(cafeRepo repository.CafeRepository, naver client.NaverMapClient, logger *zap.Logger) DirectionService {
	return &directionServiceImpl{
		cafeRepo: cafeRepo,
		naver:    naver,
		logger:   logger,
	}
}

// ToCafe builds a directions URL from the user's location to a chosen cafe
func (s *directionServiceImpl) ToCafe(ctx context.Context, req *dto.DirectionRequest) (*dto.DirectionResponse, error) {
	start := geo.Point{Latitude: req.UserLatitude, Longitude: req.UserLongitude}
	if !start.Valid() {
		return nil, response.NewValidationError("Coordinates must be finite numbers", "")
	}

	cafe, err := s.findCafe(ctx, req.CafeID)
	if err != nil {
		return nil, err
	}

	return s.toDirectionResponse(start, cafe), nil
}

// ToMeetingCafes builds directions URLs for two users heading to their chosen cafes
func (s *directionServiceImpl) ToMeetingCafes(ctx context.Context, req *dto.MeetDirectionRequest) (*dto.MeetDirectionResponse, error) {
	start1 := geo.Point{Latitude: req.User1Latitude, Longitude: req.User1Longitude}
	start2 := geo.Point{Latitude: req.User2Latitude, Longitude: req.User2Longitude}
	if !start1.Valid() || !start2.Valid() {
		return nil, response.NewValidationError("Coordinates must be finite numbers", "")
	}

	cafe1, err := s.findCafe(ctx, req.CafeIDUser1)
	if err != nil {
		return nil, err
	}
	cafe2, err := s.findCafe(ctx, req.CafeIDUser2)
	if err != nil {
		return nil, err
	}

	return &dto.MeetDirectionResponse{
		User1: *s.toDirectionResponse(start1, cafe1),
		User2: *s.toDirectionResponse(start2, cafe2),
	}, nil
}

func (s *directionServiceImpl) findCafe(ctx context.Context, rawID string) (*domain.Cafe, error) {
	cafeID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, response.NewValidationError("Invalid cafe ID: "+rawID, "")
	}

	cafe, err := s.cafeRepo.FindByID(ctx, cafeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Cafe not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch cafe", err.Error())
	}
	return cafe, nil
}

func (s *directionServiceImpl) toDirectionResponse(start geo.Point, cafe *domain.Cafe) *dto.DirectionResponse {
	goal := cafe.Location()
	return &dto.DirectionResponse{
		CafeName:   cafe.Name,
		URL:        s.naver.DirectionsURL(start, goal, cafe.Name),
		DistanceKm: geo.Distance(start, goal),
	}
}
