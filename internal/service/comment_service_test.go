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

type commentTestFixture struct {
	board       *domain.Board
	post        *domain.Post
	postAuthor  uuid.UUID
	boardRepo   *MockBoardRepository
	postRepo    *MockPostRepository
	commentRepo *MockCommentRepository
}

func newCommentFixture(kind domain.BoardKind) *commentTestFixture {
	postAuthor := uuid.New()
	board := &domain.Board{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Kind:      kind,
		Name:      "자유게시판",
	}
	post := &domain.Post{
		BaseModel:  domain.BaseModel{ID: uuid.New()},
		BoardID:    board.ID,
		AuthorID:   postAuthor,
		AuthorName: "글쓴이",
		Title:      "오늘의 카페",
	}

	f := &commentTestFixture{
		board:       board,
		post:        post,
		postAuthor:  postAuthor,
		commentRepo: &MockCommentRepository{},
	}
	f.boardRepo = &MockBoardRepository{
		FindByKindAndIDFunc: func(ctx context.Context, k domain.BoardKind, id uuid.UUID) (*domain.Board, error) {
			if k == board.Kind && id == board.ID {
				return board, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	f.postRepo = &MockPostRepository{
		FindByBoardAndIDFunc: func(ctx context.Context, boardID, postID uuid.UUID) (*domain.Post, error) {
			if boardID == board.ID && postID == post.ID {
				copied := *post
				return &copied, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	return f
}

func (f *commentTestFixture) service() CommentService {
	boardSvc := NewBoardService(f.boardRepo, zap.NewNop())
	return NewCommentService(f.commentRepo, f.postRepo, boardSvc, zap.NewNop())
}

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("성공: 일반 댓글은 요청대로 저장", func(t *testing.T) {
		f := newCommentFixture(domain.BoardKindFtf)
		var created *domain.Comment
		f.commentRepo.CreateFunc = func(ctx context.Context, comment *domain.Comment) error {
			created = comment
			return nil
		}
		svc := f.service()

		result, err := svc.Create(ctx, "ftf", f.board.ID, f.post.ID, uuid.New(), &dto.CreateCommentRequest{
			Content:    "좋은 정보 감사합니다",
			AuthorName: "댓글러",
		})

		require.NoError(t, err)
		assert.False(t, created.IsPrivate)
		assert.False(t, result.IsMasked)
	})

	t.Run("성공: 대댓글은 항상 비밀로 저장", func(t *testing.T) {
		f := newCommentFixture(domain.BoardKindFtf)
		parentID := uuid.New()
		f.commentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
			return &domain.Comment{
				BaseModel: domain.BaseModel{ID: parentID},
				PostID:    f.post.ID,
				AuthorID:  uuid.New(),
				Content:   "원 댓글",
			}, nil
		}
		var created *domain.Comment
		f.commentRepo.CreateFunc = func(ctx context.Context, comment *domain.Comment) error {
			created = comment
			return nil
		}
		svc := f.service()

		_, err := svc.Create(ctx, "ftf", f.board.ID, f.post.ID, uuid.New(), &dto.CreateCommentRequest{
			Content:    "답글입니다",
			AuthorName: "댓글러",
			ParentID:   &parentID,
			IsPrivate:  false, // 명시적으로 공개를 요청해도
		})

		require.NoError(t, err)
		assert.True(t, created.IsPrivate)
		assert.Equal(t, &parentID, created.ParentID)
	})

	t.Run("실패: 다른 게시글의 부모 댓글은 NOT_FOUND", func(t *testing.T) {
		f := newCommentFixture(domain.BoardKindFtf)
		parentID := uuid.New()
		f.commentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
			return &domain.Comment{
				BaseModel: domain.BaseModel{ID: parentID},
				PostID:    uuid.New(), // 다른 게시글
			}, nil
		}
		svc := f.service()

		_, err := svc.Create(ctx, "ftf", f.board.ID, f.post.ID, uuid.New(), &dto.CreateCommentRequest{
			Content:    "답글",
			AuthorName: "댓글러",
			ParentID:   &parentID,
		})

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
	})

	t.Run("실패: 없는 부모 댓글은 NOT_FOUND", func(t *testing.T) {
		f := newCommentFixture(domain.BoardKindFtf)
		parentID := uuid.New()
		f.commentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc := f.service()

		_, err := svc.Create(ctx, "ftf", f.board.ID, f.post.ID, uuid.New(), &dto.CreateCommentRequest{
			Content:    "답글",
			AuthorName: "댓글러",
			ParentID:   &parentID,
		})

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
	})

	t.Run("실패: 대댓글의 대댓글은 VALIDATION_ERROR", func(t *testing.T) {
		f := newCommentFixture(domain.BoardKindFtf)
		grandParentID := uuid.New()
		parentID := uuid.New()
		f.commentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
			return &domain.Comment{
				BaseModel: domain.BaseModel{ID: parentID},
				PostID:    f.post.ID,
				ParentID:  &grandParentID,
			}, nil
		}
		svc := f.service()

		_, err := svc.Create(ctx, "ftf", f.board.ID, f.post.ID, uuid.New(), &dto.CreateCommentRequest{
			Content:    "답글의 답글",
			AuthorName: "댓글러",
			ParentID:   &parentID,
		})

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeValidation, appErr.Code)
	})

	t.Run("성공: 익명 게시판에서는 작성자 이름이 익명", func(t *testing.T) {
		f := newCommentFixture(domain.BoardKindAnonymous)
		var created *domain.Comment
		f.commentRepo.CreateFunc = func(ctx context.Context, comment *domain.Comment) error {
			created = comment
			return nil
		}
		svc := f.service()

		_, err := svc.Create(ctx, "anonymous", f.board.ID, f.post.ID, uuid.New(), &dto.CreateCommentRequest{
			Content:    "비밀 이야기",
			AuthorName: "실명",
		})

		require.NoError(t, err)
		assert.Equal(t, "익명", created.AuthorName)
	})
}

func TestCommentService_Visibility(t *testing.T) {
	ctx := context.Background()
	commentAuthor := uuid.New()
	stranger := uuid.New()

	newPrivateComment := func(f *commentTestFixture) *domain.Comment {
		return &domain.Comment{
			BaseModel:  domain.BaseModel{ID: uuid.New()},
			PostID:     f.post.ID,
			AuthorID:   commentAuthor,
			AuthorName: "댓글러",
			Content:    "비밀 내용",
			IsPrivate:  true,
		}
	}

	t.Run("성공: 목록에서 비밀 댓글은 제3자에게 가려진다", func(t *testing.T) {
		f := newCommentFixture(domain.BoardKindFtf)
		private := newPrivateComment(f)
		f.commentRepo.FindByPostFunc = func(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
			return []*domain.Comment{private}, nil
		}
		svc := f.service()

		cases := []struct {
			name      string
			requester uuid.UUID
			masked    bool
		}{
			{"댓글 작성자는 본다", commentAuthor, false},
			{"게시글 작성자도 본다", f.postAuthor, false},
			{"제3자는 가려진다", stranger, true},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				results, err := svc.ListByPost(ctx, "ftf", f.board.ID, f.post.ID, tc.requester)

				require.NoError(t, err)
				require.Len(t, results, 1)
				assert.Equal(t, tc.masked, results[0].IsMasked)
				if tc.masked {
					assert.NotEqual(t, "비밀 내용", results[0].Content)
				} else {
					assert.Equal(t, "비밀 내용", results[0].Content)
				}
			})
		}
	})

	t.Run("실패: 단건 조회에서 제3자는 FORBIDDEN", func(t *testing.T) {
		f := newCommentFixture(domain.BoardKindFtf)
		private := newPrivateComment(f)
		f.commentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
			return private, nil
		}
		svc := f.service()

		_, err := svc.Get(ctx, "ftf", f.board.ID, f.post.ID, private.ID, stranger)

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeForbidden, appErr.Code)
	})
}

func TestCommentService_Modify(t *testing.T) {
	ctx := context.Background()
	commentAuthor := uuid.New()

	t.Run("성공: 게시글 작성자도 댓글을 삭제할 수 있다", func(t *testing.T) {
		f := newCommentFixture(domain.BoardKindFtf)
		comment := &domain.Comment{
			BaseModel: domain.BaseModel{ID: uuid.New()},
			PostID:    f.post.ID,
			AuthorID:  commentAuthor,
			Content:   "지워질 댓글",
		}
		f.commentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
			copied := *comment
			return &copied, nil
		}
		deleted := false
		f.commentRepo.DeleteFunc = func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		}
		svc := f.service()

		err := svc.Delete(ctx, "ftf", f.board.ID, f.post.ID, comment.ID, f.postAuthor)

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("실패: 제3자는 수정할 수 없다", func(t *testing.T) {
		f := newCommentFixture(domain.BoardKindFtf)
		comment := &domain.Comment{
			BaseModel: domain.BaseModel{ID: uuid.New()},
			PostID:    f.post.ID,
			AuthorID:  commentAuthor,
			Content:   "원래 내용",
		}
		f.commentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
			copied := *comment
			return &copied, nil
		}
		svc := f.service()

		_, err := svc.Update(ctx, "ftf", f.board.ID, f.post.ID, comment.ID, uuid.New(), &dto.UpdateCommentRequest{
			Content: strPtr("바꾼 내용"),
		})

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeForbidden, appErr.Code)
	})

	t.Run("실패: 대댓글은 공개로 바꿀 수 없다", func(t *testing.T) {
		f := newCommentFixture(domain.BoardKindFtf)
		parentID := uuid.New()
		reply := &domain.Comment{
			BaseModel: domain.BaseModel{ID: uuid.New()},
			PostID:    f.post.ID,
			AuthorID:  commentAuthor,
			ParentID:  &parentID,
			IsPrivate: true,
		}
		f.commentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
			copied := *reply
			return &copied, nil
		}
		svc := f.service()

		public := false
		_, err := svc.Update(ctx, "ftf", f.board.ID, f.post.ID, reply.ID, commentAuthor, &dto.UpdateCommentRequest{
			IsPrivate: &public,
		})

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeValidation, appErr.Code)
	})
}
