package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"skillmatch-backend/internal/delivery/http/response"
	"skillmatch-backend/internal/domain"
	"skillmatch-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// AuthMiddleware requires a valid bearer token and stores the user id in the
// gin context and the request context. audit may be nil.
func AuthMiddleware(verifier domain.IdentityVerifier, log *slog.Logger, audit *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			audit.LogUnauthorized(c.Request.Context(), c.ClientIP(), c.Request.UserAgent(), requestIDOf(c), c.FullPath(), "missing bearer token")
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		uid, err := verifier.Verify(c.Request.Context(), token)
		if err != nil || uid == "" {
			log.Info("Token validation failed", "path", c.FullPath(), "error", err)
			audit.LogUnauthorized(c.Request.Context(), c.ClientIP(), c.Request.UserAgent(), requestIDOf(c), c.FullPath(), "invalid token")
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), uid)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), domain.KeyUserID, uid))
		c.Next()
	}
}

// UserID returns the id set by AuthMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

func requestIDOf(c *gin.Context) string {
	return c.GetString(string(domain.KeyRequestID))
}
