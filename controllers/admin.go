package controllers

import (
	"net/http"

	"washxpress-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUsers lists every account. Admin only.
func GetUsers(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	users, err := userService().ListUsers(identity)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// DeleteUser removes a non-admin account. Admin only.
func DeleteUser(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	if err := userService().DeleteUser(identity, id); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
