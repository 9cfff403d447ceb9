package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nomad-place-api/internal/dto"
	"nomad-place-api/internal/response"
	"nomad-place-api/internal/service"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetMyProfile godoc
// @Summary      내 프로필 조회
// @Description  로그인한 사용자의 프로필을 조회합니다
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse{data=dto.ProfileResponse} "프로필"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      404 {object} response.ErrorResponse "프로필이 아직 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /profiles/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, profile)
}

// UpdateMyProfile godoc
// @Summary      내 프로필 등록/수정
// @Description  로그인한 사용자의 프로필을 등록하거나 수정합니다. 위치 좌표를 저장하면 주변 검색에 사용됩니다.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateProfileRequest true "프로필 내용"
// @Success      200 {object} response.SuccessResponse{data=dto.ProfileResponse} "프로필 저장 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /profiles/me [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	profile, err := h.profileService.Upsert(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, profile)
}
