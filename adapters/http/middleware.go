package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devhubio/profile-service/pkg/apperror"
	"github.com/devhubio/profile-service/pkg/auth"
	"github.com/devhubio/profile-service/pkg/logger"
)

const GinContextKeyUserID = "userID"

func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Abort()
			respond(c, http.StatusUnauthorized, "Authorization header is required", nil)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Abort()
			respond(c, http.StatusUnauthorized, "Invalid token format", nil)
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.Abort()
			respond(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			return
		}

		c.Set(GinContextKeyUserID, claims.UserID)

		c.Next()
	}
}

func GetUserIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(GinContextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	userIDUUID, ok := userID.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return userIDUUID, true
}

// ErrorMiddleware converts errors handlers push onto the Gin error
// chain into the response envelope. Internal causes are logged, never
// echoed to the caller.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		message := "An internal server error occurred"
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && status != http.StatusInternalServerError {
			message = appErr.Message
		}

		if status == http.StatusInternalServerError {
			log.Error("request failed", err,
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
			)
		}

		respond(c, status, message, nil)
	}
}
