package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nomad-place-api/internal/client"
	"nomad-place-api/internal/domain"
	"nomad-place-api/internal/dto"
	"nomad-place-api/internal/geo"
	"nomad-place-api/internal/hours"
	"nomad-place-api/internal/metrics"
	"nomad-place-api/internal/repository"
	"nomad-place-api/internal/response"
)

const (
	nearbyRadiusKm   = 1.0
	nearbyLimit      = 5
	midpointRadiusKm = 5.0
	midpointLimit    = 5

	catalogCacheKey = "cafes:catalog"
	catalogCacheTTL = 5 * time.Minute
)

// CafeService defines the interface for cafe catalog business logic
type CafeService interface {
	FindNearby(ctx context.Context, userID uuid.UUID, req *dto.NearbySearchRequest) ([]dto.NearbyCafeResponse, error)
	FindNearMidpoint(ctx context.Context, req *dto.MidpointSearchRequest) (*dto.MidpointSearchResponse, error)
	GetCafe(ctx context.Context, cafeID uuid.UUID) (*dto.CafeResponse, error)
	GetCafeByName(ctx context.Context, name string) (*dto.CafeResponse, error)
	SearchExternalPlaces(ctx context.Context, query string, near *geo.Point) ([]client.Place, error)
	InvalidateCatalogCache(ctx context.Context)
}

// cafeServiceImpl is the implementation of CafeService
type cafeServiceImpl struct {
	cafeRepo    repository.CafeRepository
	profileRepo repository.ProfileRepository
	naver       client.NaverMapClient
	redis       *redis.Client
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewCafeService creates a new instance of CafeService
func NewCafeService(
	cafeRepo repository.CafeRepository,
	profileRepo repository.ProfileRepository,
	naver client.NaverMapClient,
	redisClient *redis.Client,
	m *metrics.Metrics,
	logger *zap.Logger,
) CafeService {
	return &cafeServiceImpl{
		cafeRepo:    cafeRepo,
		profileRepo: profileRepo,
		naver:       naver,
		redis:       redisClient,
		metrics:     m,
		logger:      logger,
	}
}

// FindNearby returns cafes within walking distance of the caller.
// 요청에 좌표가 없으면 프로필에 저장된 위치를 사용한다.
func (s *cafeServiceImpl) FindNearby(ctx context.Context, userID uuid.UUID, req *dto.NearbySearchRequest) ([]dto.NearbyCafeResponse, error) {
	origin, err := s.resolveOrigin(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	if !origin.Valid() {
		return nil, response.NewValidationError("Coordinates must be finite numbers", "")
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load cafe catalog", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementNearbySearch()
	}

	return s.search(catalog, origin, nearbyRadiusKm, nearbyLimit), nil
}

// FindNearMidpoint returns cafes near the midpoint of two users
func (s *cafeServiceImpl) FindNearMidpoint(ctx context.Context, req *dto.MidpointSearchRequest) (*dto.MidpointSearchResponse, error) {
	p1 := geo.Point{Latitude: req.User1Latitude, Longitude: req.User1Longitude}
	p2 := geo.Point{Latitude: req.User2Latitude, Longitude: req.User2Longitude}
	if !p1.Valid() || !p2.Valid() {
		return nil, response.NewValidationError("Coordinates must be finite numbers", "")
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load cafe catalog", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementNearbySearch()
	}

	mid := geo.Midpoint(p1, p2)
	return &dto.MidpointSearchResponse{
		MidpointLatitude:  mid.Latitude,
		MidpointLongitude: mid.Longitude,
		Cafes:             s.search(catalog, mid, midpointRadiusKm, midpointLimit),
	}, nil
}

// GetCafe retrieves a single cafe by ID
func (s *cafeServiceImpl) GetCafe(ctx context.Context, cafeID uuid.UUID) (*dto.CafeResponse, error) {
	cafe, err := s.cafeRepo.FindByID(ctx, cafeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Cafe not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch cafe", err.Error())
	}
	resp := toCafeResponse(cafe, time.Now())
	return &resp, nil
}

// GetCafeByName retrieves a single cafe by its unique name
func (s *cafeServiceImpl) GetCafeByName(ctx context.Context, name string) (*dto.CafeResponse, error) {
	if name == "" {
		return nil, response.NewValidationError("Cafe name is required", "")
	}
	cafe, err := s.cafeRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Cafe not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch cafe", err.Error())
	}
	resp := toCafeResponse(cafe, time.Now())
	return &resp, nil
}

// SearchExternalPlaces searches the Naver map API for places not in the catalog
func (s *cafeServiceImpl) SearchExternalPlaces(ctx context.Context, query string, near *geo.Point) ([]client.Place, error) {
	if query == "" {
		return nil, response.NewValidationError("Search query is required", "")
	}
	if near != nil && !near.Valid() {
		return nil, response.NewValidationError("Coordinates must be finite numbers", "")
	}

	places, err := s.naver.SearchPlaces(ctx, query, client.PlaceSearchOptions{
		Center:   near,
		RadiusM:  2000,
		MaxCount: 10,
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to search places", err.Error())
	}
	return places, nil
}

// InvalidateCatalogCache drops the cached catalog after a write
func (s *cafeServiceImpl) InvalidateCatalogCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, catalogCacheKey).Err(); err != nil {
		s.logger.Warn("Failed to invalidate cafe catalog cache", zap.Error(err))
	}
}

// resolveOrigin picks the search origin from the request or the stored profile
func (s *cafeServiceImpl) resolveOrigin(ctx context.Context, userID uuid.UUID, req *dto.NearbySearchRequest) (geo.Point, error) {
	if req.Latitude != nil && req.Longitude != nil {
		return geo.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}, nil
	}

	if userID == uuid.Nil {
		return geo.Point{}, response.NewValidationError("Coordinates are required", "no location in request and no authenticated user")
	}
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return geo.Point{}, response.NewValidationError("Coordinates are required", "no location stored on profile")
		}
		return geo.Point{}, response.NewAppError(response.ErrCodeInternal, "Failed to fetch profile", err.Error())
	}
	if profile.Latitude == nil || profile.Longitude == nil {
		return geo.Point{}, response.NewValidationError("Coordinates are required", "no location stored on profile")
	}
	return geo.Point{Latitude: *profile.Latitude, Longitude: *profile.Longitude}, nil
}

// loadCatalog returns the full cafe catalog, via the redis cache when possible.
// 캐시는 최선 노력이며 실패하면 DB로 내려간다.
func (s *cafeServiceImpl) loadCatalog(ctx context.Context) ([]*domain.Cafe, error) {
	if s.redis != nil {
		raw, err := s.redis.Get(ctx, catalogCacheKey).Bytes()
		if err == nil {
			var cached []*domain.Cafe
			if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
				return cached, nil
			}
			s.logger.Warn("Failed to decode cached cafe catalog, falling back to DB")
		} else if err != redis.Nil {
			s.logger.Warn("Failed to read cafe catalog cache", zap.Error(err))
		}
	}

	catalog, err := s.cafeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if raw, err := json.Marshal(catalog); err == nil {
			if err := s.redis.Set(ctx, catalogCacheKey, raw, catalogCacheTTL).Err(); err != nil {
				s.logger.Warn("Failed to cache cafe catalog", zap.Error(err))
			}
		}
	}
	return catalog, nil
}

// search runs the proximity search over the catalog and shapes the responses
func (s *cafeServiceImpl) search(catalog []*domain.Cafe, origin geo.Point, radiusKm float64, limit int) []dto.NearbyCafeResponse {
	now := time.Now()
	matches := geo.FindNearby(catalog, origin, radiusKm, limit)

	results := make([]dto.NearbyCafeResponse, len(matches))
	for i, m := range matches {
		results[i] = dto.NearbyCafeResponse{
			CafeResponse: toCafeResponse(catalog[m.Index], now),
			DistanceKm:   m.DistanceKm,
		}
	}
	return results
}

// toCafeResponse converts a cafe to its response shape with the opening status
// computed at the given time
func toCafeResponse(cafe *domain.Cafe, now time.Time) dto.CafeResponse {
	status := hours.StatusUnknown
	if cafe.OpeningHours != nil {
		status = hours.Evaluate(*cafe.OpeningHours, now)
	}
	return dto.CafeResponse{
		CafeID:        cafe.ID,
		Name:          cafe.Name,
		Branch:        cafe.Branch,
		Address:       cafe.Address,
		Latitude:      cafe.Latitude,
		Longitude:     cafe.Longitude,
		OpeningHours:  cafe.OpeningHours,
		Status:        string(status),
		IsConcentrate: cafe.IsConcentrate,
		AverageRating: cafe.AverageRating,
		PhotoURL:      cafe.PhotoURL,
		CreatedAt:     cafe.CreatedAt,
	}
}
