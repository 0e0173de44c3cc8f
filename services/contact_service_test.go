package services

import (
	"testing"

	"washxpress-backend/apperrors"
	"washxpress-backend/models"

	"github.com/google/uuid"
)

func TestSubmitMessage(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	msg, err := svc.Submit(SubmitMessageInput{
		Name:    "Tashi",
		Email:   "tashi@example.com",
		Subject: "Opening hours",
		Message: "Are you open on Sundays?",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if msg.ID == uuid.Nil || msg.CreatedAt.IsZero() {
		t.Errorf("expected server-assigned id and timestamp")
	}

	_, err = svc.Submit(SubmitMessageInput{
		Name:    "Tashi",
		Email:   "tashi@example.com",
		Subject: "   ",
		Message: "hello",
	})
	if !apperrors.Is(err, apperrors.CodeValidation) {
		t.Fatalf("expected validation error for blank subject, got %v", err)
	}
}

func TestListMessagesAdminOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)
	admin := seedUser(t, db, models.RoleAdmin)
	provider := seedUser(t, db, models.RoleProvider)
	user := seedUser(t, db, models.RoleUser)

	for _, subject := range []string{"first", "second"} {
		if _, err := svc.Submit(SubmitMessageInput{
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Subject: subject,
			Message: "hello",
		}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	messages, err := svc.ListMessages(identityOf(admin))
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}

	// Providers and customers are both denied, anonymous too
	if _, err := svc.ListMessages(identityOf(provider)); !apperrors.Is(err, apperrors.CodeAuthorization) {
		t.Errorf("expected authorization error for provider, got %v", err)
	}
	if _, err := svc.ListMessages(identityOf(user)); !apperrors.Is(err, apperrors.CodeAuthorization) {
		t.Errorf("expected authorization error for user, got %v", err)
	}
	if _, err := svc.ListMessages(models.Identity{}); !apperrors.Is(err, apperrors.CodeAuthentication) {
		t.Errorf("expected authentication error without identity, got %v", err)
	}
}
