package controllers

import (
	"net/http"

	"washxpress-backend/config"
	"washxpress-backend/services"
	"washxpress-backend/utils"

	"github.com/gin-gonic/gin"
)

// SubmitMessageInput defines the expected JSON structure for the contact form
type SubmitMessageInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func contactService() *services.ContactService {
	return services.NewContactService(config.DB)
}

// SubmitMessage stores an inbound contact form message. Public route.
func SubmitMessage(c *gin.Context) {
	var input SubmitMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	msg, err := contactService().Submit(services.SubmitMessageInput{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	})
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"contact": msg,
	})
}

// GetMessages lists all contact messages, newest first. Admin only.
func GetMessages(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	messages, err := contactService().ListMessages(identity)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
