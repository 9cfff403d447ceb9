package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nomad-place-api/internal/dto"
	"nomad-place-api/internal/response"
	"nomad-place-api/internal/service"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// ListPosts godoc
// @Summary      게시글 목록 조회
// @Description  게시판의 게시글을 최신순으로 조회합니다
// @Tags         posts
// @Produce      json
// @Param        kind path string true "게시판 종류" Enums(position, ftf, anonymous, generic)
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.PostResponse} "게시글 목록"
// @Failure      404 {object} response.ErrorResponse "게시판을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{kind}/{boardId}/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	posts, err := h.postService.ListByBoard(c.Request.Context(), c.Param("kind"), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, posts)
}

// CreatePost godoc
// @Summary      게시글 작성
// @Description  게시판에 게시글을 작성합니다. 익명 게시판에서는 작성자 이름이 익명으로 저장됩니다.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "게시판 종류" Enums(position, ftf, anonymous, generic)
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.CreatePostRequest true "게시글 내용"
// @Success      201 {object} response.SuccessResponse{data=dto.PostResponse} "게시글 작성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      404 {object} response.ErrorResponse "게시판을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{kind}/{boardId}/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	post, err := h.postService.Create(c.Request.Context(), c.Param("kind"), boardID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, post)
}

// GetPost godoc
// @Summary      게시글 상세 조회
// @Tags         posts
// @Produce      json
// @Param        kind path string true "게시판 종류" Enums(position, ftf, anonymous, generic)
// @Param        boardId path string true "Board ID (UUID)"
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.PostResponse} "게시글 상세"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{kind}/{boardId}/posts/{postId} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	postID, ok := parseUUIDParam(c, "postId")
	if !ok {
		return
	}

	post, err := h.postService.Get(c.Request.Context(), c.Param("kind"), boardID, postID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, post)
}

// UpdatePost godoc
// @Summary      게시글 수정
// @Description  자신이 작성한 게시글을 수정합니다
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "게시판 종류" Enums(position, ftf, anonymous, generic)
// @Param        boardId path string true "Board ID (UUID)"
// @Param        postId path string true "Post ID (UUID)"
// @Param        request body dto.UpdatePostRequest true "수정할 내용"
// @Success      200 {object} response.SuccessResponse{data=dto.PostResponse} "게시글 수정 성공"
// @Failure      403 {object} response.ErrorResponse "자신의 게시글이 아님"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{kind}/{boardId}/posts/{postId} [patch]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	postID, ok := parseUUIDParam(c, "postId")
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	post, err := h.postService.Update(c.Request.Context(), c.Param("kind"), boardID, postID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, post)
}

// DeletePost godoc
// @Summary      게시글 삭제
// @Description  자신이 작성한 게시글을 삭제합니다
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "게시판 종류" Enums(position, ftf, anonymous, generic)
// @Param        boardId path string true "Board ID (UUID)"
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} response.SuccessResponse "게시글 삭제 성공"
// @Failure      403 {object} response.ErrorResponse "자신의 게시글이 아님"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{kind}/{boardId}/posts/{postId} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseUUIDParam(c, "boardId")
	if !ok {
		return
	}
	postID, ok := parseUUIDParam(c, "postId")
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), c.Param("kind"), boardID, postID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}
