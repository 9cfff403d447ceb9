package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nomad-place-api/internal/domain"
	"nomad-place-api/internal/dto"
	"nomad-place-api/internal/response"
)

func newRatingServiceForTest(ratingRepo *MockRatingRepository, cafeRepo *MockCafeRepository) RatingService {
	return NewRatingService(ratingRepo, cafeRepo, nil, nil, zap.NewNop())
}

func TestRatingService_Submit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	cafe := newTestCafe("카페 어니언", 37.5663, 126.9779)

	t.Run("성공: 평점 등록 후 평균 반환", func(t *testing.T) {
		cafeRepo := &MockCafeRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Cafe, error) {
				return cafe, nil
			},
		}
		var submitted *domain.Rating
		ratingRepo := &MockRatingRepository{
			SubmitWithRecalculationFunc: func(ctx context.Context, rating *domain.Rating) (float64, error) {
				submitted = rating
				return 4.0, nil
			},
			FindByUserAndCafeFunc: func(ctx context.Context, uid, cid uuid.UUID) (*domain.Rating, error) {
				return submitted, nil
			},
		}
		svc := newRatingServiceForTest(ratingRepo, cafeRepo)

		result, err := svc.Submit(ctx, userID, cafe.ID, &dto.SubmitRatingRequest{Rating: 4})

		require.NoError(t, err)
		assert.Equal(t, 4, result.Rating)
		assert.InDelta(t, 4.0, result.AverageRating, 1e-9)
		assert.Equal(t, userID, submitted.UserID)
		assert.Equal(t, cafe.ID, submitted.CafeID)
	})

	t.Run("실패: 범위 밖 평점은 VALIDATION_ERROR", func(t *testing.T) {
		svc := newRatingServiceForTest(&MockRatingRepository{}, &MockCafeRepository{})

		for _, v := range []int{0, 6, -1} {
			_, err := svc.Submit(ctx, userID, cafe.ID, &dto.SubmitRatingRequest{Rating: v})

			var appErr *response.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, response.ErrCodeValidation, appErr.Code)
		}
	})

	t.Run("실패: 없는 카페는 NOT_FOUND", func(t *testing.T) {
		cafeRepo := &MockCafeRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Cafe, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := newRatingServiceForTest(&MockRatingRepository{}, cafeRepo)

		_, err := svc.Submit(ctx, userID, uuid.New(), &dto.SubmitRatingRequest{Rating: 3})

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
	})
}

func TestRatingService_Update(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	ratingID := uuid.New()
	stored := &domain.Rating{
		BaseModel: domain.BaseModel{ID: ratingID},
		UserID:    owner,
		CafeID:    uuid.New(),
		Value:     2,
	}

	t.Run("성공: 자신의 평점 수정", func(t *testing.T) {
		ratingRepo := &MockRatingRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
				copied := *stored
				return &copied, nil
			},
			UpdateWithRecalculationFunc: func(ctx context.Context, rating *domain.Rating) (float64, error) {
				assert.Equal(t, 5, rating.Value)
				return 5.0, nil
			},
		}
		svc := newRatingServiceForTest(ratingRepo, &MockCafeRepository{})

		result, err := svc.Update(ctx, owner, ratingID, &dto.UpdateRatingRequest{Rating: 5})

		require.NoError(t, err)
		assert.InDelta(t, 5.0, result.AverageRating, 1e-9)
	})

	t.Run("실패: 다른 사용자의 평점은 FORBIDDEN", func(t *testing.T) {
		ratingRepo := &MockRatingRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
				copied := *stored
				return &copied, nil
			},
		}
		svc := newRatingServiceForTest(ratingRepo, &MockCafeRepository{})

		_, err := svc.Update(ctx, uuid.New(), ratingID, &dto.UpdateRatingRequest{Rating: 5})

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeForbidden, appErr.Code)
	})
}

func TestRatingService_Delete(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	ratingID := uuid.New()
	stored := &domain.Rating{
		BaseModel: domain.BaseModel{ID: ratingID},
		UserID:    owner,
		CafeID:    uuid.New(),
		Value:     3,
	}

	t.Run("성공: 자신의 평점 삭제 후 평균 재계산", func(t *testing.T) {
		recalculated := false
		ratingRepo := &MockRatingRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
				copied := *stored
				return &copied, nil
			},
			DeleteWithRecalculationFunc: func(ctx context.Context, rating *domain.Rating) (float64, error) {
				recalculated = true
				return 4.5, nil
			},
		}
		svc := newRatingServiceForTest(ratingRepo, &MockCafeRepository{})

		err := svc.Delete(ctx, owner, ratingID)

		require.NoError(t, err)
		assert.True(t, recalculated)
	})

	t.Run("실패: 다른 사용자의 평점은 FORBIDDEN", func(t *testing.T) {
		ratingRepo := &MockRatingRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
				copied := *stored
				return &copied, nil
			},
		}
		svc := newRatingServiceForTest(ratingRepo, &MockCafeRepository{})

		err := svc.Delete(ctx, uuid.New(), ratingID)

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeForbidden, appErr.Code)
	})
}

func TestRatingService_GetSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("성공: 저장된 평균과 개수 반환", func(t *testing.T) {
		cafe := newTestCafe("카페 어니언", 37.5663, 126.9779)
		cafe.AverageRating = 4.0
		cafeRepo := &MockCafeRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Cafe, error) {
				return cafe, nil
			},
		}
		ratingRepo := &MockRatingRepository{
			CountByCafeFunc: func(ctx context.Context, cafeID uuid.UUID) (int64, error) {
				return 3, nil
			},
		}
		svc := newRatingServiceForTest(ratingRepo, cafeRepo)

		result, err := svc.GetSummary(ctx, cafe.ID)

		require.NoError(t, err)
		assert.InDelta(t, 4.0, result.AverageRating, 1e-9)
		assert.Equal(t, int64(3), result.RatingCount)
	})
}
