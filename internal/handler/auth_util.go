package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nomad-place-api/internal/response"
)

// requireUserID extracts the authenticated user ID set by the auth middleware.
// 인증되지 않은 요청이면 401을 보내고 false를 반환한다.
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDValue, exists := c.Get("user_id")
	if !exists {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid authentication context")
		return uuid.Nil, false
	}
	return userID, true
}

// optionalUserID extracts the user ID when present, uuid.Nil otherwise.
// 읽기 전용 엔드포인트에서 비로그인 사용자를 허용할 때 쓴다.
func optionalUserID(c *gin.Context) uuid.UUID {
	userIDValue, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil
	}
	if userID, ok := userIDValue.(uuid.UUID); ok {
		return userID
	}
	return uuid.Nil
}

// parseUUIDParam parses a path parameter as a UUID.
// 형식이 틀리면 400을 보내고 false를 반환한다.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
