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

// BoardService defines the interface for board business logic
type BoardService interface {
	ListByKind(ctx context.Context, kind string) ([]*dto.BoardResponse, error)
	Create(ctx context.Context, kind string, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	ResolveBoard(ctx context.Context, kind string, boardID uuid.UUID) (*domain.Board, error)
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo repository.BoardRepository
	logger    *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(boardRepo repository.BoardRepository, logger *zap.Logger) BoardService {
	return &boardServiceImpl{
		boardRepo: boardRepo,
		logger:    logger,
	}
}

// ListByKind returns all boards of the given kind
func (s *boardServiceImpl) ListByKind(ctx context.Context, kind string) ([]*dto.BoardResponse, error) {
	if !domain.ValidBoardKind(kind) {
		return nil, response.NewValidationError("Invalid board kind: "+kind, "")
	}

	boards, err := s.boardRepo.FindByKind(ctx, domain.BoardKind(kind))
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch boards", err.Error())
	}

	responses := make([]*dto.BoardResponse, len(boards))
	for i, board := range boards {
		responses[i] = toBoardResponse(board)
	}
	return responses, nil
}

// Create creates a new board of the given kind
func (s *boardServiceImpl) Create(ctx context.Context, kind string, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if !domain.ValidBoardKind(kind) {
		return nil, response.NewValidationError("Invalid board kind: "+kind, "")
	}

	board := &domain.Board{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Kind:      domain.BoardKind(kind),
		Name:      req.Name,
	}
	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	return toBoardResponse(board), nil
}

// ResolveBoard finds a board by kind and ID. 종류가 맞지 않으면 NOT_FOUND로 처리한다.
func (s *boardServiceImpl) ResolveBoard(ctx context.Context, kind string, boardID uuid.UUID) (*domain.Board, error) {
	if !domain.ValidBoardKind(kind) {
		return nil, response.NewValidationError("Invalid board kind: "+kind, "")
	}

	board, err := s.boardRepo.FindByKindAndID(ctx, domain.BoardKind(kind), boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}
	return board, nil
}

func toBoardResponse(board *domain.Board) *dto.BoardResponse {
	return &dto.BoardResponse{
		BoardID:   board.ID,
		Kind:      string(board.Kind),
		Name:      board.Name,
		CreatedAt: board.CreatedAt,
	}
}
