package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/auth"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

const (
	GinContextKeyAdminID = "adminID"
)

func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyAdminID, claims.AdminID)

		c.Next()
	}
}

func GetAdminIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	adminID, ok := c.Get(GinContextKeyAdminID)
	if !ok {
		return uuid.Nil, false
	}
	adminIDUUID, ok := adminID.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return adminIDUUID, true
}

// ErrorMiddleware converts errors attached via c.Error into JSON responses.
// Handlers never write error bodies themselves.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status == http.StatusInternalServerError {
				log.Error("Request failed", appErr)
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("Unhandled request error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
