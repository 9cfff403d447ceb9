package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nomad-place-api/internal/client"
	"nomad-place-api/internal/domain"
	"nomad-place-api/internal/dto"
	"nomad-place-api/internal/hours"
	"nomad-place-api/internal/response"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func newTestCafe(name string, lat, lon float64) *domain.Cafe {
	return &domain.Cafe{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      name,
		Latitude:  lat,
		Longitude: lon,
	}
}

func newCafeServiceForTest(cafeRepo *MockCafeRepository, profileRepo *MockProfileRepository) CafeService {
	return NewCafeService(cafeRepo, profileRepo, &MockNaverMapClient{}, nil, nil, zap.NewNop())
}

func TestCafeService_FindNearby(t *testing.T) {
	ctx := context.Background()
	origin := dto.NearbySearchRequest{Latitude: floatPtr(37.5000), Longitude: floatPtr(127.0000)}

	catalog := []*domain.Cafe{
		newTestCafe("멀리", 37.6000, 127.1000),
		newTestCafe("가까이", 37.5010, 127.0010),
		newTestCafe("중간", 37.5050, 127.0050),
	}

	t.Run("성공: 1km 이내 카페만 거리 오름차순 반환", func(t *testing.T) {
		cafeRepo := &MockCafeRepository{
			FindAllFunc: func(ctx context.Context) ([]*domain.Cafe, error) {
				return catalog, nil
			},
		}
		svc := newCafeServiceForTest(cafeRepo, &MockProfileRepository{})

		results, err := svc.FindNearby(ctx, uuid.Nil, &origin)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "가까이", results[0].Name)
		assert.Equal(t, "중간", results[1].Name)
		assert.Less(t, results[0].DistanceKm, results[1].DistanceKm)
		assert.Equal(t, string(hours.StatusUnknown), results[0].Status)
	})

	t.Run("성공: 최대 5개까지만 반환", func(t *testing.T) {
		var many []*domain.Cafe
		for i := 0; i < 8; i++ {
			many = append(many, newTestCafe("카페", 37.5001+float64(i)*0.0001, 127.0001))
		}
		cafeRepo := &MockCafeRepository{
			FindAllFunc: func(ctx context.Context) ([]*domain.Cafe, error) {
				return many, nil
			},
		}
		svc := newCafeServiceForTest(cafeRepo, &MockProfileRepository{})

		results, err := svc.FindNearby(ctx, uuid.Nil, &origin)

		require.NoError(t, err)
		assert.Len(t, results, 5)
	})

	t.Run("성공: 좌표가 없으면 프로필 위치 사용", func(t *testing.T) {
		userID := uuid.New()
		cafeRepo := &MockCafeRepository{
			FindAllFunc: func(ctx context.Context) ([]*domain.Cafe, error) {
				return catalog, nil
			},
		}
		profileRepo := &MockProfileRepository{
			FindByUserIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
				assert.Equal(t, userID, id)
				return &domain.Profile{
					UserID:    userID,
					Nickname:  "노마드",
					Latitude:  floatPtr(37.5000),
					Longitude: floatPtr(127.0000),
				}, nil
			},
		}
		svc := newCafeServiceForTest(cafeRepo, profileRepo)

		results, err := svc.FindNearby(ctx, userID, &dto.NearbySearchRequest{})

		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("실패: 프로필에도 좌표가 없으면 VALIDATION_ERROR", func(t *testing.T) {
		userID := uuid.New()
		profileRepo := &MockProfileRepository{
			FindByUserIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
				return &domain.Profile{UserID: userID, Nickname: "노마드"}, nil
			},
		}
		svc := newCafeServiceForTest(&MockCafeRepository{}, profileRepo)

		_, err := svc.FindNearby(ctx, userID, &dto.NearbySearchRequest{})

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeValidation, appErr.Code)
	})

	t.Run("실패: 유한하지 않은 좌표는 VALIDATION_ERROR", func(t *testing.T) {
		svc := newCafeServiceForTest(&MockCafeRepository{}, &MockProfileRepository{})

		_, err := svc.FindNearby(ctx, uuid.Nil, &dto.NearbySearchRequest{
			Latitude:  floatPtr(math.NaN()),
			Longitude: floatPtr(127.0),
		})

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeValidation, appErr.Code)
	})

	t.Run("성공: 빈 카탈로그는 빈 결과", func(t *testing.T) {
		cafeRepo := &MockCafeRepository{
			FindAllFunc: func(ctx context.Context) ([]*domain.Cafe, error) {
				return []*domain.Cafe{}, nil
			},
		}
		svc := newCafeServiceForTest(cafeRepo, &MockProfileRepository{})

		results, err := svc.FindNearby(ctx, uuid.Nil, &origin)

		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestCafeService_FindNearMidpoint(t *testing.T) {
	ctx := context.Background()

	t.Run("성공: 중간 지점 좌표는 산술 평균", func(t *testing.T) {
		cafeRepo := &MockCafeRepository{
			FindAllFunc: func(ctx context.Context) ([]*domain.Cafe, error) {
				return []*domain.Cafe{
					newTestCafe("중간 카페", 37.5500, 127.0500),
					newTestCafe("먼 카페", 38.0000, 128.0000),
				}, nil
			},
		}
		svc := newCafeServiceForTest(cafeRepo, &MockProfileRepository{})

		result, err := svc.FindNearMidpoint(ctx, &dto.MidpointSearchRequest{
			User1Latitude:  37.50,
			User1Longitude: 127.00,
			User2Latitude:  37.60,
			User2Longitude: 127.10,
		})

		require.NoError(t, err)
		assert.InDelta(t, 37.55, result.MidpointLatitude, 1e-9)
		assert.InDelta(t, 127.05, result.MidpointLongitude, 1e-9)
		require.Len(t, result.Cafes, 1)
		assert.Equal(t, "중간 카페", result.Cafes[0].Name)
	})
}

func TestCafeService_GetCafe(t *testing.T) {
	ctx := context.Background()

	t.Run("성공: 영업 시간으로 상태 계산", func(t *testing.T) {
		cafe := newTestCafe("카페 어니언", 37.5663, 126.9779)
		cafe.OpeningHours = strPtr("00:00 ~ 23:59")
		cafeRepo := &MockCafeRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Cafe, error) {
				return cafe, nil
			},
		}
		svc := newCafeServiceForTest(cafeRepo, &MockProfileRepository{})

		result, err := svc.GetCafe(ctx, cafe.ID)

		require.NoError(t, err)
		assert.Equal(t, string(hours.StatusOpen), result.Status)
	})

	t.Run("실패: 없는 카페는 NOT_FOUND", func(t *testing.T) {
		cafeRepo := &MockCafeRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Cafe, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := newCafeServiceForTest(cafeRepo, &MockProfileRepository{})

		_, err := svc.GetCafe(ctx, uuid.New())

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
	})
}

func TestCafeService_SearchExternalPlaces(t *testing.T) {
	ctx := context.Background()

	t.Run("실패: 검색어가 없으면 VALIDATION_ERROR", func(t *testing.T) {
		svc := newCafeServiceForTest(&MockCafeRepository{}, &MockProfileRepository{})

		_, err := svc.SearchExternalPlaces(ctx, "", nil)

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeValidation, appErr.Code)
	})

	t.Run("실패: 외부 API 오류는 INTERNAL_ERROR", func(t *testing.T) {
		naver := &MockNaverMapClient{
			SearchPlacesFunc: func(ctx context.Context, query string, opts client.PlaceSearchOptions) ([]client.Place, error) {
				return nil, errors.New("naver unreachable")
			},
		}
		svc := NewCafeService(&MockCafeRepository{}, &MockProfileRepository{}, naver, nil, nil, zap.NewNop())

		_, err := svc.SearchExternalPlaces(ctx, "스타벅스", nil)

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeInternal, appErr.Code)
	})
}
