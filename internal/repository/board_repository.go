package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nomad-place-api/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByKind(ctx context.Context, kind domain.BoardKind) ([]*domain.Board, error)
	FindByKindAndID(ctx context.Context, kind domain.BoardKind, id uuid.UUID) (*domain.Board, error)
	Count(ctx context.Context) (int64, error)
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

// Create creates a new board
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return err
	}
	return nil
}

// FindByKind finds all boards of the given kind
func (r *boardRepositoryImpl) FindByKind(ctx context.Context, kind domain.BoardKind) ([]*domain.Board, error) {
	var boards []*domain.Board
	if err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("created_at ASC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// FindByKindAndID finds a board by kind and ID.
// kind가 다르면 같은 ID라도 찾지 못한다.
func (r *boardRepositoryImpl) FindByKindAndID(ctx context.Context, kind domain.BoardKind, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).
		Where("kind = ? AND id = ?", kind, id).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// Count returns the number of boards
func (r *boardRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Board{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
