package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nomad-place-api/internal/dto"
	"nomad-place-api/internal/geo"
	"nomad-place-api/internal/response"
	"nomad-place-api/internal/service"
)

type CafeHandler struct {
	cafeService service.CafeService
}

func NewCafeHandler(cafeService service.CafeService) *CafeHandler {
	return &CafeHandler{
		cafeService: cafeService,
	}
}

// NearbyCafes godoc
// @Summary      주변 카페 검색
// @Description  사용자 위치 1km 이내의 카페를 거리순으로 최대 5개 반환합니다. 좌표를 생략하면 프로필 위치를 사용합니다.
// @Tags         cafes
// @Accept       json
// @Produce      json
// @Param        request body dto.NearbySearchRequest true "검색 기준 좌표"
// @Success      200 {object} response.SuccessResponse{data=[]dto.NearbyCafeResponse} "주변 카페 목록"
// @Failure      400 {object} response.ErrorResponse "잘못된 좌표"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /cafes/nearby [post]
func (h *CafeHandler) NearbyCafes(c *gin.Context) {
	var req dto.NearbySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	cafes, err := h.cafeService.FindNearby(c.Request.Context(), optionalUserID(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, cafes)
}

// MidpointCafes godoc
// @Summary      중간 지점 카페 검색
// @Description  두 사용자의 중간 지점에서 5km 이내의 카페를 거리순으로 최대 5개 반환합니다
// @Tags         cafes
// @Produce      json
// @Param        user1_latitude query number true "사용자 1 위도"
// @Param        user1_longitude query number true "사용자 1 경도"
// @Param        user2_latitude query number true "사용자 2 위도"
// @Param        user2_longitude query number true "사용자 2 경도"
// @Success      200 {object} response.SuccessResponse{data=dto.MidpointSearchResponse} "중간 지점과 카페 목록"
// @Failure      400 {object} response.ErrorResponse "잘못된 좌표"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /cafes/midpoint [get]
func (h *CafeHandler) MidpointCafes(c *gin.Context) {
	var req dto.MidpointSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}

	result, err := h.cafeService.FindNearMidpoint(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// GetCafe godoc
// @Summary      카페 상세 조회
// @Description  카페 ID로 상세 정보와 영업 상태를 조회합니다
// @Tags         cafes
// @Produce      json
// @Param        cafeId path string true "Cafe ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CafeResponse} "카페 상세"
// @Failure      400 {object} response.ErrorResponse "잘못된 Cafe ID"
// @Failure      404 {object} response.ErrorResponse "카페를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /cafes/{cafeId} [get]
func (h *CafeHandler) GetCafe(c *gin.Context) {
	cafeID, ok := parseUUIDParam(c, "cafeId")
	if !ok {
		return
	}

	cafe, err := h.cafeService.GetCafe(c.Request.Context(), cafeID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, cafe)
}

// GetCafeByName godoc
// @Summary      이름으로 카페 조회
// @Description  카페 이름으로 상세 정보를 조회합니다
// @Tags         cafes
// @Produce      json
// @Param        name path string true "카페 이름"
// @Success      200 {object} response.SuccessResponse{data=dto.CafeResponse} "카페 상세"
// @Failure      404 {object} response.ErrorResponse "카페를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /cafes/by-name/{name} [get]
func (h *CafeHandler) GetCafeByName(c *gin.Context) {
	cafe, err := h.cafeService.GetCafeByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, cafe)
}

// SearchPlaces godoc
// @Summary      외부 장소 검색
// @Description  네이버 지도 API로 카탈로그에 없는 장소를 검색합니다
// @Tags         cafes
// @Produce      json
// @Param        query query string true "검색어"
// @Param        latitude query number false "검색 중심 위도"
// @Param        longitude query number false "검색 중심 경도"
// @Success      200 {object} response.SuccessResponse "검색된 장소 목록"
// @Failure      400 {object} response.ErrorResponse "검색어 누락"
// @Failure      500 {object} response.ErrorResponse "외부 API 오류"
// @Router       /places/search [get]
func (h *CafeHandler) SearchPlaces(c *gin.Context) {
	query := c.Query("query")

	var near *geo.Point
	latStr, lonStr := c.Query("latitude"), c.Query("longitude")
	if latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid coordinates")
			return
		}
		near = &geo.Point{Latitude: lat, Longitude: lon}
	}

	places, err := h.cafeService.SearchExternalPlaces(c.Request.Context(), query, near)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, places)
}
