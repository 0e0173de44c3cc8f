// utils/response.go
package utils

import (
	"log"

	"washxpress-backend/apperrors"

	"github.com/gin-gonic/gin"
)

// RespondWithError writes a JSON error body with the given status.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// RespondWithAppError maps a service error onto an HTTP response.
// Persistence failures are logged with their cause but surfaced with a
// generic message only.
func RespondWithAppError(c *gin.Context, err error) {
	appErr := apperrors.As(err)
	if appErr.Code == apperrors.CodePersistence {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, gin.H{
		"error": appErr.Message,
		"code":  appErr.Code,
	})
}
