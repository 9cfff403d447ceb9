package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nomad-place-api/internal/dto"
	"nomad-place-api/internal/response"
	"nomad-place-api/internal/service"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// SubmitRating godoc
// @Summary      카페 평점 등록
// @Description  카페에 1~5점의 평점을 남깁니다. 이미 남긴 평점이 있으면 교체됩니다.
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        cafeId path string true "Cafe ID (UUID)"
// @Param        request body dto.SubmitRatingRequest true "평점"
// @Success      201 {object} response.SuccessResponse{data=dto.RatingResponse} "평점 등록 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 평점"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      404 {object} response.ErrorResponse "카페를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /cafes/{cafeId}/ratings [post]
func (h *RatingHandler) SubmitRating(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	cafeID, ok := parseUUIDParam(c, "cafeId")
	if !ok {
		return
	}

	var req dto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Rating must be between 1 and 5")
		return
	}

	rating, err := h.ratingService.Submit(c.Request.Context(), userID, cafeID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, rating)
}

// GetRatingSummary godoc
// @Summary      카페 평점 요약 조회
// @Description  카페의 평균 평점과 평점 개수를 조회합니다
// @Tags         ratings
// @Produce      json
// @Param        cafeId path string true "Cafe ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.RatingSummaryResponse} "평점 요약"
// @Failure      404 {object} response.ErrorResponse "카페를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /cafes/{cafeId}/ratings [get]
func (h *RatingHandler) GetRatingSummary(c *gin.Context) {
	cafeID, ok := parseUUIDParam(c, "cafeId")
	if !ok {
		return
	}

	summary, err := h.ratingService.GetSummary(c.Request.Context(), cafeID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, summary)
}

// UpdateRating godoc
// @Summary      평점 수정
// @Description  자신이 남긴 평점의 값을 수정합니다
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        ratingId path string true "Rating ID (UUID)"
// @Param        request body dto.UpdateRatingRequest true "평점"
// @Success      200 {object} response.SuccessResponse{data=dto.RatingResponse} "평점 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 평점"
// @Failure      403 {object} response.ErrorResponse "자신의 평점이 아님"
// @Failure      404 {object} response.ErrorResponse "평점을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /ratings/{ratingId} [patch]
func (h *RatingHandler) UpdateRating(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	ratingID, ok := parseUUIDParam(c, "ratingId")
	if !ok {
		return
	}

	var req dto.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Rating must be between 1 and 5")
		return
	}

	rating, err := h.ratingService.Update(c.Request.Context(), userID, ratingID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, rating)
}

// DeleteRating godoc
// @Summary      평점 삭제
// @Description  자신이 남긴 평점을 삭제하고 평균을 재계산합니다
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Param        ratingId path string true "Rating ID (UUID)"
// @Success      200 {object} response.SuccessResponse "평점 삭제 성공"
// @Failure      403 {object} response.ErrorResponse "자신의 평점이 아님"
// @Failure      404 {object} response.ErrorResponse "평점을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /ratings/{ratingId} [delete]
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	ratingID, ok := parseUUIDParam(c, "ratingId")
	if !ok {
		return
	}

	if err := h.ratingService.Delete(c.Request.Context(), userID, ratingID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Rating deleted successfully"})
}
