package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Auth returns a middleware that validates JWT tokens and requires a valid user
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticate(c, jwtSecret)
		if !ok {
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// AuthOptional resolves the user from a Bearer token when one is present,
// but lets anonymous requests through. Read endpoints use this so that
// private comments can be unmasked for their authors.
func AuthOptional(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		if userID, err := parseBearerToken(authHeader, jwtSecret); err == nil {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, jwtSecret string) (uuid.UUID, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		abortUnauthorized(c, "Authorization header is required", "인증이 필요합니다")
		return uuid.Nil, false
	}

	userID, err := parseBearerToken(authHeader, jwtSecret)
	if err != nil {
		abortUnauthorized(c, "Invalid or expired token", "유효하지 않거나 만료된 토큰입니다")
		return uuid.Nil, false
	}
	return userID, true
}

func parseBearerToken(authHeader, jwtSecret string) (uuid.UUID, error) {
	// Extract token from "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, jwt.ErrTokenMalformed
	}
	tokenString := parts[1]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, jwt.ErrTokenSignatureInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	// Extract user ID from claims (support multiple claim formats)
	var userIDStr string
	if uid, ok := claims["user_id"].(string); ok {
		userIDStr = uid
	} else if sub, ok := claims["sub"].(string); ok {
		userIDStr = sub
	} else if uid, ok := claims["uid"].(string); ok {
		userIDStr = uid
	} else {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	return uuid.Parse(userIDStr)
}

func abortUnauthorized(c *gin.Context, message, localized string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
		"message": localized,
	})
	c.Abort()
}
