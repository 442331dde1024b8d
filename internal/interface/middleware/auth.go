package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"videotube/pkg/helpers"
	"videotube/pkg/response"
)

// extractToken pulls the access token from the access_token cookie first,
// then from an Authorization: Bearer header.
func extractToken(c *gin.Context) string {
	if tok, err := c.Cookie("access_token"); err == nil && tok != "" {
		return tok
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

// sessionFor validates the token against the JWT manager and the Redis
// session hash. Returns the user id on success.
func sessionFor(c *gin.Context, rdb *redis.Client, jwt *helpers.JWTManager, token string) (string, bool) {
	claims, err := jwt.ParseAccessToken(token)
	if err != nil {
		return "", false
	}
	key := "user:session:" + claims.UserID
	data, err := rdb.HGetAll(c.Request.Context(), key).Result()
	if err != nil || len(data) == 0 {
		return "", false
	}
	// A fresh login rotates the session id; tokens minted before the
	// rotation must not pass.
	if sid, ok := data["sid"]; ok && sid != claims.SessionID {
		return "", false
	}
	c.Set("userName", data["username"])
	c.Set("userEmail", data["email"])
	return claims.UserID, true
}

// Auth validates the access token and ensures an active session exists in
// Redis. It sets userID in the Gin context on success.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.AbortError[any](c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		uid, ok := sessionFor(c, rdb, jwt, token)
		if !ok {
			response.AbortError[any](c, http.StatusUnauthorized, "invalid or expired session", nil)
			return
		}
		c.Set("userID", uid)
		c.Next()
	}
}

// OptionalAuth resolves the session like Auth but never rejects: requests
// without a valid token continue as guests with no userID set.
func OptionalAuth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if uid, ok := sessionFor(c, rdb, jwt, token); ok {
				c.Set("userID", uid)
			}
		}
		c.Next()
	}
}
