package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/citypulse/waterlog-api/internal/models"
	"github.com/citypulse/waterlog-api/internal/service"
)

const (
	ctxUserID   = "user_id"
	ctxUserRole = "user_role"
)

// JWTAuthMiddleware verifies the Bearer access token and stores the
// caller's identity on the request context.
func JWTAuthMiddleware(auth service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			log.Warn("Missing bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := auth.VerifyAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.WithError(err).Warn("Invalid access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserRole, claims.Role)
		c.Next()
	}
}

// RequireTriageRole rejects callers whose role may not triage reports.
// It must run after JWTAuthMiddleware.
func RequireTriageRole(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := callerRole(c)
		if !role.CanTriage() {
			log.WithField("role", role).Warn("Triage endpoint called without authority role")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "authority role required"})
			return
		}
		c.Next()
	}
}

func callerID(c *gin.Context) int64 {
	id, _ := c.Get(ctxUserID)
	userID, _ := id.(int64)
	return userID
}

func callerRole(c *gin.Context) models.Role {
	v, _ := c.Get(ctxUserRole)
	role, _ := v.(models.Role)
	return role
}
