package service

import (
	"context"

	"github.com/google/uuid"

	"nomad-place-api/internal/client"
	"nomad-place-api/internal/domain"
	"nomad-place-api/internal/geo"
)

// MockCafeRepository is a mock implementation of CafeRepository
type MockCafeRepository struct {
	CreateFunc       func(ctx context.Context, cafe *domain.Cafe) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Cafe, error)
	FindByNameFunc   func(ctx context.Context, name string) (*domain.Cafe, error)
	FindAllFunc      func(ctx context.Context) ([]*domain.Cafe, error)
	UpdateFunc       func(ctx context.Context, cafe *domain.Cafe) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	UpsertByNameFunc func(ctx context.Context, cafe *domain.Cafe) error
	CountFunc        func(ctx context.Context) (int64, error)
}

func (m *MockCafeRepository) Create(ctx context.Context, cafe *domain.Cafe) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, cafe)
	}
	return nil
}

func (m *MockCafeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Cafe, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCafeRepository) FindByName(ctx context.Context, name string) (*domain.Cafe, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockCafeRepository) FindAll(ctx context.Context) ([]*domain.Cafe, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockCafeRepository) Update(ctx context.Context, cafe *domain.Cafe) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, cafe)
	}
	return nil
}

func (m *MockCafeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockCafeRepository) UpsertByName(ctx context.Context, cafe *domain.Cafe) error {
	if m.UpsertByNameFunc != nil {
		return m.UpsertByNameFunc(ctx, cafe)
	}
	return nil
}

func (m *MockCafeRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	FindByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpsertFunc       func(ctx context.Context, profile *domain.Profile) error
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, profile)
	}
	return nil
}

// MockRatingRepository is a mock implementation of RatingRepository
type MockRatingRepository struct {
	FindByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.Rating, error)
	FindByUserAndCafeFunc       func(ctx context.Context, userID, cafeID uuid.UUID) (*domain.Rating, error)
	FindByCafeFunc              func(ctx context.Context, cafeID uuid.UUID) ([]*domain.Rating, error)
	CountByCafeFunc             func(ctx context.Context, cafeID uuid.UUID) (int64, error)
	SubmitWithRecalculationFunc func(ctx context.Context, rating *domain.Rating) (float64, error)
	UpdateWithRecalculationFunc func(ctx context.Context, rating *domain.Rating) (float64, error)
	DeleteWithRecalculationFunc func(ctx context.Context, rating *domain.Rating) (float64, error)
}

func (m *MockRatingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockRatingRepository) FindByUserAndCafe(ctx context.Context, userID, cafeID uuid.UUID) (*domain.Rating, error) {
	if m.FindByUserAndCafeFunc != nil {
		return m.FindByUserAndCafeFunc(ctx, userID, cafeID)
	}
	return nil, nil
}

func (m *MockRatingRepository) FindByCafe(ctx context.Context, cafeID uuid.UUID) ([]*domain.Rating, error) {
	if m.FindByCafeFunc != nil {
		return m.FindByCafeFunc(ctx, cafeID)
	}
	return nil, nil
}

func (m *MockRatingRepository) CountByCafe(ctx context.Context, cafeID uuid.UUID) (int64, error) {
	if m.CountByCafeFunc != nil {
		return m.CountByCafeFunc(ctx, cafeID)
	}
	return 0, nil
}

func (m *MockRatingRepository) SubmitWithRecalculation(ctx context.Context, rating *domain.Rating) (float64, error) {
	if m.SubmitWithRecalculationFunc != nil {
		return m.SubmitWithRecalculationFunc(ctx, rating)
	}
	return 0, nil
}

func (m *MockRatingRepository) UpdateWithRecalculation(ctx context.Context, rating *domain.Rating) (float64, error) {
	if m.UpdateWithRecalculationFunc != nil {
		return m.UpdateWithRecalculationFunc(ctx, rating)
	}
	return 0, nil
}

func (m *MockRatingRepository) DeleteWithRecalculation(ctx context.Context, rating *domain.Rating) (float64, error) {
	if m.DeleteWithRecalculationFunc != nil {
		return m.DeleteWithRecalculationFunc(ctx, rating)
	}
	return 0, nil
}

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	CreateFunc     func(ctx context.Context, review *domain.Review) error
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	FindByCafeFunc func(ctx context.Context, cafeID uuid.UUID) ([]*domain.Review, error)
	UpdateFunc     func(ctx context.Context, review *domain.Review) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, review)
	}
	return nil
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockReviewRepository) FindByCafe(ctx context.Context, cafeID uuid.UUID) ([]*domain.Review, error) {
	if m.FindByCafeFunc != nil {
		return m.FindByCafeFunc(ctx, cafeID)
	}
	return nil, nil
}

func (m *MockReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, review)
	}
	return nil
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc          func(ctx context.Context, board *domain.Board) error
	FindByKindFunc      func(ctx context.Context, kind domain.BoardKind) ([]*domain.Board, error)
	FindByKindAndIDFunc func(ctx context.Context, kind domain.BoardKind, id uuid.UUID) (*domain.Board, error)
	CountFunc           func(ctx context.Context) (int64, error)
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByKind(ctx context.Context, kind domain.BoardKind) ([]*domain.Board, error) {
	if m.FindByKindFunc != nil {
		return m.FindByKindFunc(ctx, kind)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindByKindAndID(ctx context.Context, kind domain.BoardKind, id uuid.UUID) (*domain.Board, error) {
	if m.FindByKindAndIDFunc != nil {
		return m.FindByKindAndIDFunc(ctx, kind, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	CreateFunc           func(ctx context.Context, post *domain.Post) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	FindByBoardFunc      func(ctx context.Context, boardID uuid.UUID) ([]*domain.Post, error)
	FindByBoardAndIDFunc func(ctx context.Context, boardID, postID uuid.UUID) (*domain.Post, error)
	UpdateFunc           func(ctx context.Context, post *domain.Post) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	CountFunc            func(ctx context.Context) (int64, error)
}

func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPostRepository) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Post, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockPostRepository) FindByBoardAndID(ctx context.Context, boardID, postID uuid.UUID) (*domain.Post, error) {
	if m.FindByBoardAndIDFunc != nil {
		return m.FindByBoardAndIDFunc(ctx, boardID, postID)
	}
	return nil, nil
}

func (m *MockPostRepository) Update(ctx context.Context, post *domain.Post) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockPostRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc     func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindByPostFunc func(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error)
	UpdateFunc     func(ctx context.Context, comment *domain.Comment) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByPostFunc != nil {
		return m.FindByPostFunc(ctx, postID)
	}
	return nil, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockNaverMapClient is a mock implementation of NaverMapClient
type MockNaverMapClient struct {
	SearchPlacesFunc  func(ctx context.Context, query string, opts client.PlaceSearchOptions) ([]client.Place, error)
	DirectionsURLFunc func(start geo.Point, goal geo.Point, goalName string) string
}

func (m *MockNaverMapClient) SearchPlaces(ctx context.Context, query string, opts client.PlaceSearchOptions) ([]client.Place, error) {
	if m.SearchPlacesFunc != nil {
		return m.SearchPlacesFunc(ctx, query, opts)
	}
	return nil, nil
}

func (m *MockNaverMapClient) DirectionsURL(start geo.Point, goal geo.Point, goalName string) string {
	if m.DirectionsURLFunc != nil {
		return m.DirectionsURLFunc(start, goal, goalName)
	}
	return "https://map.naver.com/"
}
