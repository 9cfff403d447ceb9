package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nomad-place-api/internal/domain"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Post, error)
	FindByBoardAndID(ctx context.Context, boardID, postID uuid.UUID) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// postRepositoryImpl is the GORM implementation of PostRepository
type postRepositoryImpl struct {
	db *gorm.DB
}

// NewPostRepository creates a new instance of PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepositoryImpl{db: db}
}

// Create creates a new post
func (r *postRepositoryImpl) Create(ctx context.Context, post *domain.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a post by its ID
func (r *postRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByBoard finds all posts on a board, newest first
func (r *postRepositoryImpl) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Post, error) {
	var posts []*domain.Post
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByBoardAndID finds a post scoped to a specific board.
// 다른 게시판의 게시글 ID로는 찾지 못한다.
func (r *postRepositoryImpl) FindByBoardAndID(ctx context.Context, boardID, postID uuid.UUID) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).
		Where("board_id = ? AND id = ?", boardID, postID).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update saves changes on an existing post
func (r *postRepositoryImpl) Update(ctx context.Context, post *domain.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return err
	}
	return nil
}

// Delete deletes a post by ID
func (r *postRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Post{}, id).Error; err != nil {
		return err
	}
	return nil
}

// Count returns the number of posts
func (r *postRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Post{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
