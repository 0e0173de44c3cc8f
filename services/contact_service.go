// services/contact_service.go
package services

import (
	"strings"

	"washxpress-backend/apperrors"
	"washxpress-backend/models"

	"gorm.io/gorm"
)

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

type SubmitMessageInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Submit stores an inbound contact message. Open to anonymous visitors,
// so it takes no identity.
func (s *ContactService) Submit(input SubmitMessageInput) (*models.ContactMessage, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Subject) == "" ||
		strings.TrimSpace(input.Message) == "" {
		return nil, apperrors.Validation("all fields are required")
	}

	msg := models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}
	return &msg, nil
}

// ListMessages returns all contact messages, newest first. Admin only.
func (s *ContactService) ListMessages(identity models.Identity) ([]models.ContactMessage, error) {
	if err := RequireAdmin(identity); err != nil {
		return nil, err
	}

	var messages []models.ContactMessage
	if err := s.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}
	return messages, nil
}
