package controllers

import (
	"washxpress-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentIdentity builds the acting identity from the context values
// set by the auth middleware.
func currentIdentity(c *gin.Context) (models.Identity, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		return models.Identity{}, false
	}
	idStr, ok := userID.(string)
	if !ok {
		return models.Identity{}, false
	}
	uid, err := uuid.Parse(idStr)
	if err != nil {
		return models.Identity{}, false
	}

	role, _ := c.Get("role")
	roleStr, _ := role.(string)

	return models.Identity{UserID: uid, Role: roleStr}, true
}
