package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nomad-place-api/internal/dto"
	"nomad-place-api/internal/response"
	"nomad-place-api/internal/service"
)

type DirectionHandler struct {
	directionService service.DirectionService
}

func NewDirectionHandler(directionService service.DirectionService) *DirectionHandler {
	return &DirectionHandler{
		directionService: directionService,
	}
}

// GetDirections godoc
// @Summary      카페 길찾기
// @Description  현재 위치에서 선택한 카페까지의 네이버 지도 길찾기 URL을 생성합니다
// @Tags         directions
// @Accept       json
// @Produce      json
// @Param        request body dto.DirectionRequest true "출발 좌표와 카페 ID"
// @Success      200 {object} response.SuccessResponse{data=dto.DirectionResponse} "길찾기 URL"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "카페를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /directions [post]
func (h *DirectionHandler) GetDirections(c *gin.Context) {
	var req dto.DirectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	direction, err := h.directionService.ToCafe(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, direction)
}

// GetMeetingDirections godoc
// @Summary      만남 길찾기
// @Description  두 사용자가 각자 선택한 카페까지 가는 길찾기 URL을 한 번에 생성합니다
// @Tags         directions
// @Accept       json
// @Produce      json
// @Param        request body dto.MeetDirectionRequest true "두 사용자의 출발 좌표와 카페 ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MeetDirectionResponse} "길찾기 URL 목록"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "카페를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /directions/meet [post]
func (h *DirectionHandler) GetMeetingDirections(c *gin.Context) {
	var req dto.MeetDirectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	directions, err := h.directionService.ToMeetingCafes(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, directions)
}
