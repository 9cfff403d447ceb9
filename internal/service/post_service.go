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

// 익명 게시판에 저장되는 작성자 표시 이름
const anonymousAuthorName = "익명"

// PostService defines the interface for post business logic
type PostService interface {
	Create(ctx context.Context, kind string, boardID, authorID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	ListByBoard(ctx context.Context, kind string, boardID uuid.UUID) ([]*dto.PostResponse, error)
	Get(ctx context.Context, kind string, boardID, postID uuid.UUID) (*dto.PostResponse, error)
	Update(ctx context.Context, kind string, boardID, postID, requesterID uuid.UUID, req *dto.UpdatePostRequest) (*dto.PostResponse, error)
	Delete(ctx context.Context, kind string, boardID, postID, requesterID uuid.UUID) error
}

// postServiceImpl is the implementation of PostService
type postServiceImpl struct {
	postRepo repository.PostRepository
	boardSvc BoardService
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewPostService creates a new instance of PostService
func NewPostService(postRepo repository.PostRepository, boardSvc BoardService, m *metrics.Metrics, logger *zap.Logger) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		boardSvc: boardSvc,
		metrics:  m,
		logger:   logger,
	}
}

// Create writes a post on a board. 익명 게시판이면 작성자 이름을 "익명"으로 저장한다.
func (s *postServiceImpl) Create(ctx context.Context, kind string, boardID, authorID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	board, err := s.boardSvc.ResolveBoard(ctx, kind, boardID)
	if err != nil {
		return nil, err
	}

	authorName := req.AuthorName
	if board.Kind.Anonymous() {
		authorName = anonymousAuthorName
	}

	post := &domain.Post{
		BaseModel:  domain.BaseModel{ID: uuid.New()},
		BoardID:    board.ID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Title:      req.Title,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create post", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementPostCreated()
	}

	return toPostResponse(post), nil
}

// ListByBoard returns all posts on a board, newest first
func (s *postServiceImpl) ListByBoard(ctx context.Context, kind string, boardID uuid.UUID) ([]*dto.PostResponse, error) {
	board, err := s.boardSvc.ResolveBoard(ctx, kind, boardID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.FindByBoard(ctx, board.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch posts", err.Error())
	}

	responses := make([]*dto.PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = toPostResponse(post)
	}
	return responses, nil
}

// Get retrieves a single post scoped to a board
func (s *postServiceImpl) Get(ctx context.Context, kind string, boardID, postID uuid.UUID) (*dto.PostResponse, error) {
	post, err := s.resolvePost(ctx, kind, boardID, postID)
	if err != nil {
		return nil, err
	}
	return toPostResponse(post), nil
}

// Update edits the caller's own post
func (s *postServiceImpl) Update(ctx context.Context, kind string, boardID, postID, requesterID uuid.UUID, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	post, err := s.resolvePost(ctx, kind, boardID, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != requesterID {
		return nil, response.NewForbiddenError("You can only modify your own post", "")
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.ImageURL != nil {
		post.ImageURL = req.ImageURL
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update post", err.Error())
	}

	return toPostResponse(post), nil
}

// Delete removes the caller's own post
func (s *postServiceImpl) Delete(ctx context.Context, kind string, boardID, postID, requesterID uuid.UUID) error {
	post, err := s.resolvePost(ctx, kind, boardID, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != requesterID {
		return response.NewForbiddenError("You can only delete your own post", "")
	}

	if err := s.postRepo.Delete(ctx, post.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete post", err.Error())
	}
	return nil
}

// resolvePost finds a post after checking the board reference.
// 게시판 종류와 ID가 모두 맞아야 게시글이 보인다.
func (s *postServiceImpl) resolvePost(ctx context.Context, kind string, boardID, postID uuid.UUID) (*domain.Post, error) {
	board, err := s.boardSvc.ResolveBoard(ctx, kind, boardID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.FindByBoardAndID(ctx, board.ID, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}
	return post, nil
}

func toPostResponse(post *domain.Post) *dto.PostResponse {
	return &dto.PostResponse{
		PostID:     post.ID,
		BoardID:    post.BoardID,
		AuthorName: post.AuthorName,
		Title:      post.Title,
		Content:    post.Content,
		ImageURL:   post.ImageURL,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}
}
