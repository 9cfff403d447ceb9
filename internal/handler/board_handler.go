package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nomad-place-api/internal/dto"
	"nomad-place-api/internal/response"
	"nomad-place-api/internal/service"
)

type BoardHandler struct {
	boardService service.BoardService
}

func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// ListBoards godoc
// @Summary      게시판 목록 조회
// @Description  종류별 게시판 목록을 조회합니다
// @Tags         boards
// @Produce      json
// @Param        kind path string true "게시판 종류" Enums(position, ftf, anonymous, generic)
// @Success      200 {object} response.SuccessResponse{data=[]dto.BoardResponse} "게시판 목록"
// @Failure      400 {object} response.ErrorResponse "잘못된 게시판 종류"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{kind} [get]
func (h *BoardHandler) ListBoards(c *gin.Context) {
	boards, err := h.boardService.ListByKind(c.Request.Context(), c.Param("kind"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, boards)
}

// CreateBoard godoc
// @Summary      게시판 생성
// @Description  지정한 종류의 게시판을 새로 만듭니다
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "게시판 종류" Enums(position, ftf, anonymous, generic)
// @Param        request body dto.CreateBoardRequest true "게시판 이름"
// @Success      201 {object} response.SuccessResponse{data=dto.BoardResponse} "게시판 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{kind} [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.Create(c.Request.Context(), c.Param("kind"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}
