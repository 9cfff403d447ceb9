package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nomad-place-api/internal/dto"
	"nomad-place-api/internal/response"
	"nomad-place-api/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// commentPath binds the board/post scope shared by every comment endpoint
type commentPath struct {
	kind    string
	boardID uuid.UUID
	postID  uuid.UUID
}

func (h *CommentHandler) bindPath(c *gin.Context) (commentPath, bool) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return commentPath{}, false
	}
	postID, ok := parseUUIDParam(c, "postId")
	if !ok {
		return commentPath{}, false
	}
	return commentPath{kind: c.Param("kind"), boardID: boardID, postID: postID}, true
}

// ListComments godoc
// @Summary      댓글 목록 조회
// @Description  게시글의 댓글을 순서대로 조회합니다. 볼 수 없는 비밀 댓글은 내용이 가려집니다.
// @Tags         comments
// @Produce      json
// @Param        kind path string true "게시판 종류" Enums(position, ftf, anonymous, generic)
// @Param        boardId path string true "Board ID (UUID)"
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CommentResponse} "댓글 목록"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{kind}/{boardId}/posts/{postId}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	path, ok := h.bindPath(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListByPost(c.Request.Context(), path.kind, path.boardID, path.postID, optionalUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comments)
}

// CreateComment godoc
// @Summary      댓글 작성
// @Description  게시글에 댓글을 작성합니다. 대댓글은 항상 비밀 댓글로 저장됩니다.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "게시판 종류" Enums(position, ftf, anonymous, generic)
// @Param        boardId path string true "Board ID (UUID)"
// @Param        postId path string true "Post ID (UUID)"
// @Param        request body dto.CreateCommentRequest true "댓글 내용"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse} "댓글 작성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      404 {object} response.ErrorResponse "게시글 또는 부모 댓글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{kind}/{boardId}/posts/{postId}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	path, ok := h.bindPath(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), path.kind, path.boardID, path.postID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}

// GetComment godoc
// @Summary      댓글 단건 조회
// @Description  댓글을 조회합니다. 볼 수 없는 비밀 댓글은 거절됩니다.
// @Tags         comments
// @Produce      json
// @Param        kind path string true "게시판 종류" Enums(position, ftf, anonymous, generic)
// @Param        boardId path string true "Board ID (UUID)"
// @Param        postId path string true "Post ID (UUID)"
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "댓글"
// @Failure      403 {object} response.ErrorResponse "비밀 댓글 열람 권한 없음"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{kind}/{boardId}/posts/{postId}/comments/{commentId} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	path, ok := h.bindPath(c)
	if !ok {
		return
	}
	commentID, ok := parseUUIDParam(c, "commentId")
	if !ok {
		return
	}

	comment, err := h.commentService.Get(c.Request.Context(), path.kind, path.boardID, path.postID, commentID, optionalUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// UpdateComment godoc
// @Summary      댓글 수정
// @Description  댓글 작성자 또는 게시글 작성자가 댓글을 수정합니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "게시판 종류" Enums(position, ftf, anonymous, generic)
// @Param        boardId path string true "Board ID (UUID)"
// @Param        postId path string true "Post ID (UUID)"
// @Param        commentId path string true "Comment ID (UUID)"
// @Param        request body dto.UpdateCommentRequest true "수정할 내용"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "댓글 수정 성공"
// @Failure      403 {object} response.ErrorResponse "수정 권한 없음"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{kind}/{boardId}/posts/{postId}/comments/{commentId} [patch]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	path, ok := h.bindPath(c)
	if !ok {
		return
	}
	commentID, ok := parseUUIDParam(c, "commentId")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), path.kind, path.boardID, path.postID, commentID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      댓글 삭제
// @Description  댓글 작성자 또는 게시글 작성자가 댓글을 삭제합니다
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "게시판 종류" Enums(position, ftf, anonymous, generic)
// @Param        boardId path string true "Board ID (UUID)"
// @Param        postId path string true "Post ID (UUID)"
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} response.SuccessResponse "댓글 삭제 성공"
// @Failure      403 {object} response.ErrorResponse "삭제 권한 없음"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{kind}/{boardId}/posts/{postId}/comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	path, ok := h.bindPath(c)
	if !ok {
		return
	}
	commentID, ok := parseUUIDParam(c, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), path.kind, path.boardID, path.postID, commentID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
}
