package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nomad-place-api/internal/dto"
	"nomad-place-api/internal/response"
	"nomad-place-api/internal/service"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// ListReviews godoc
// @Summary      카페 리뷰 목록 조회
// @Description  카페의 리뷰를 최신순으로 조회합니다
// @Tags         reviews
// @Produce      json
// @Param        cafeId path string true "Cafe ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ReviewResponse} "리뷰 목록"
// @Failure      404 {object} response.ErrorResponse "카페를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /cafes/{cafeId}/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	cafeID, ok := parseUUIDParam(c, "cafeId")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByCafe(c.Request.Context(), cafeID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, reviews)
}

// CreateReview godoc
// @Summary      카페 리뷰 작성
// @Description  카페에 리뷰를 작성합니다
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        cafeId path string true "Cafe ID (UUID)"
// @Param        request body dto.CreateReviewRequest true "리뷰 내용"
// @Success      201 {object} response.SuccessResponse{data=dto.ReviewResponse} "리뷰 작성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      404 {object} response.ErrorResponse "카페를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /cafes/{cafeId}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	cafeID, ok := parseUUIDParam(c, "cafeId")
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), userID, cafeID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, review)
}

// UpdateReview godoc
// @Summary      리뷰 수정
// @Description  자신이 작성한 리뷰를 수정합니다
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        reviewId path string true "Review ID (UUID)"
// @Param        request body dto.UpdateReviewRequest true "수정할 내용"
// @Success      200 {object} response.SuccessResponse{data=dto.ReviewResponse} "리뷰 수정 성공"
// @Failure      403 {object} response.ErrorResponse "자신의 리뷰가 아님"
// @Failure      404 {object} response.ErrorResponse "리뷰를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /reviews/{reviewId} [patch]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(c, "reviewId")
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), userID, reviewID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, review)
}

// DeleteReview godoc
// @Summary      리뷰 삭제
// @Description  자신이 작성한 리뷰를 삭제합니다
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        reviewId path string true "Review ID (UUID)"
// @Success      200 {object} response.SuccessResponse "리뷰 삭제 성공"
// @Failure      403 {object} response.ErrorResponse "자신의 리뷰가 아님"
// @Failure      404 {object} response.ErrorResponse "리뷰를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /reviews/{reviewId} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(c, "reviewId")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), userID, reviewID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Review deleted successfully"})
}
