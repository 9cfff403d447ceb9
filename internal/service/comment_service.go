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

// 권한이 없는 사용자에게 보여 주는 비밀 댓글 내용
const maskedCommentContent = "비밀 댓글입니다."

// CommentService defines the interface for comment business logic
type CommentService interface {
	Create(ctx context.Context, kind string, boardID, postID, authorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListByPost(ctx context.Context, kind string, boardID, postID, requesterID uuid.UUID) ([]*dto.CommentResponse, error)
	Get(ctx context.Context, kind string, boardID, postID, commentID, requesterID uuid.UUID) (*dto.CommentResponse, error)
	Update(ctx context.Context, kind string, boardID, postID, commentID, requesterID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	Delete(ctx context.Context, kind string, boardID, postID, commentID, requesterID uuid.UUID) error
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	boardSvc    BoardService
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	boardSvc BoardService,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		boardSvc:    boardSvc,
		logger:      logger,
	}
}

// Create writes a comment on a post. 대댓글은 항상 비밀 댓글로 저장된다.
func (s *commentServiceImpl) Create(ctx context.Context, kind string, boardID, postID, authorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	post, err := s.resolvePost(ctx, kind, boardID, postID)
	if err != nil {
		return nil, err
	}

	isPrivate := req.IsPrivate
	if req.ParentID != nil {
		parent, err := s.commentRepo.FindByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError("Parent comment not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch parent comment", err.Error())
		}
		if parent.PostID != post.ID {
			return nil, response.NewNotFoundError("Parent comment not found", "parent belongs to a different post")
		}
		if parent.ParentID != nil {
			return nil, response.NewValidationError("Replies to replies are not allowed", "")
		}
		isPrivate = true
	}

	authorName := req.AuthorName
	if post.Board.Kind.Anonymous() {
		authorName = anonymousAuthorName
	}

	comment := &domain.Comment{
		BaseModel:  domain.BaseModel{ID: uuid.New()},
		PostID:     post.ID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Content:    req.Content,
		ParentID:   req.ParentID,
		IsPrivate:  isPrivate,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	return toCommentResponse(comment, post, authorID), nil
}

// ListByPost returns all comments on a post in thread order.
// 볼 수 없는 비밀 댓글은 제거하지 않고 내용만 가린다.
func (s *commentServiceImpl) ListByPost(ctx context.Context, kind string, boardID, postID, requesterID uuid.UUID) ([]*dto.CommentResponse, error) {
	post, err := s.resolvePost(ctx, kind, boardID, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByPost(ctx, post.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}

	responses := make([]*dto.CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = toCommentResponse(comment, post, requesterID)
	}
	return responses, nil
}

// Get retrieves a single comment. 볼 수 없는 비밀 댓글은 FORBIDDEN으로 거절한다.
func (s *commentServiceImpl) Get(ctx context.Context, kind string, boardID, postID, commentID, requesterID uuid.UUID) (*dto.CommentResponse, error) {
	post, comment, err := s.resolveComment(ctx, kind, boardID, postID, commentID)
	if err != nil {
		return nil, err
	}
	if !comment.CanView(post.AuthorID, requesterID) {
		return nil, response.NewForbiddenError("You are not allowed to view this comment", "")
	}
	return toCommentResponse(comment, post, requesterID), nil
}

// Update edits a comment. 댓글 작성자와 게시글 작성자만 수정할 수 있다.
func (s *commentServiceImpl) Update(ctx context.Context, kind string, boardID, postID, commentID, requesterID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	post, comment, err := s.resolveComment(ctx, kind, boardID, postID, commentID)
	if err != nil {
		return nil, err
	}
	if !comment.CanModify(post.AuthorID, requesterID) {
		return nil, response.NewForbiddenError("You are not allowed to modify this comment", "")
	}

	if req.Content != nil {
		comment.Content = *req.Content
	}
	if req.IsPrivate != nil {
		// 대댓글은 공개로 바꿀 수 없다
		if comment.ParentID != nil && !*req.IsPrivate {
			return nil, response.NewValidationError("Replies are always private", "")
		}
		comment.IsPrivate = *req.IsPrivate
	}
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update comment", err.Error())
	}

	return toCommentResponse(comment, post, requesterID), nil
}

// Delete removes a comment. 댓글 작성자와 게시글 작성자만 삭제할 수 있다.
func (s *commentServiceImpl) Delete(ctx context.Context, kind string, boardID, postID, commentID, requesterID uuid.UUID) error {
	post, comment, err := s.resolveComment(ctx, kind, boardID, postID, commentID)
	if err != nil {
		return err
	}
	if !comment.CanModify(post.AuthorID, requesterID) {
		return response.NewForbiddenError("You are not allowed to delete this comment", "")
	}

	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}
	return nil
}

// resolvePost finds a post after checking the board reference
func (s *commentServiceImpl) resolvePost(ctx context.Context, kind string, boardID, postID uuid.UUID) (*domain.Post, error) {
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
	post.Board = *board
	return post, nil
}

// resolveComment finds a comment scoped to its post and board
func (s *commentServiceImpl) resolveComment(ctx context.Context, kind string, boardID, postID, commentID uuid.UUID) (*domain.Post, *domain.Comment, error) {
	post, err := s.resolvePost(ctx, kind, boardID, postID)
	if err != nil {
		return nil, nil, err
	}

	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NewNotFoundError("Comment not found", "")
		}
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}
	if comment.PostID != post.ID {
		return nil, nil, response.NewNotFoundError("Comment not found", "comment belongs to a different post")
	}
	return post, comment, nil
}

// toCommentResponse shapes a comment for the given requester, masking private
// content the requester may not view
func toCommentResponse(comment *domain.Comment, post *domain.Post, requesterID uuid.UUID) *dto.CommentResponse {
	resp := &dto.CommentResponse{
		CommentID:  comment.ID,
		PostID:     comment.PostID,
		ParentID:   comment.ParentID,
		AuthorName: comment.AuthorName,
		Content:    comment.Content,
		IsPrivate:  comment.IsPrivate,
		CreatedAt:  comment.CreatedAt,
	}
	if !comment.CanView(post.AuthorID, requesterID) {
		resp.Content = maskedCommentContent
		resp.IsMasked = true
	}
	return resp
}
