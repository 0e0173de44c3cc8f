package services

import (
	"testing"

	"washxpress-backend/apperrors"
	"washxpress-backend/models"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register(RegisterUserInput{
		Name:     "Karma",
		Email:    "Karma@Example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != models.RoleUser {
		t.Errorf("expected default role USER, got %s", user.Role)
	}
	if user.Email != "karma@example.com" {
		t.Errorf("expected lower-cased email, got %q", user.Email)
	}
	if user.Password == "correct-horse" {
		t.Errorf("password stored in plain text")
	}

	// Duplicate email, any casing
	_, err = svc.Register(RegisterUserInput{
		Name:     "Karma Again",
		Email:    "karma@example.com",
		Password: "another-pass",
	})
	if !apperrors.Is(err, apperrors.CodeConflict) {
		t.Fatalf("expected conflict for duplicate email, got %v", err)
	}

	if _, err := svc.Authenticate("karma@example.com", "correct-horse"); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if _, err := svc.Authenticate("karma@example.com", "wrong"); err == nil {
		t.Fatalf("expected failure for wrong password")
	}
	if _, err := svc.Authenticate("nobody@example.com", "whatever"); err == nil {
		t.Fatalf("expected failure for unknown email")
	}
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	user := seedUser(t, db, models.RoleUser)

	name := "New Name"
	phone := "+97517111222"
	updated, err := svc.UpdateProfile(identityOf(user), UpdateProfileInput{
		Name:  &name,
		Phone: &phone,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != name || updated.Phone != phone {
		t.Errorf("profile not updated: %+v", updated)
	}

	bad := "not-a-phone"
	if _, err := svc.UpdateProfile(identityOf(user), UpdateProfileInput{Phone: &bad}); !apperrors.Is(err, apperrors.CodeValidation) {
		t.Errorf("expected validation error for bad phone, got %v", err)
	}
	empty := " "
	if _, err := svc.UpdateProfile(identityOf(user), UpdateProfileInput{Name: &empty}); !apperrors.Is(err, apperrors.CodeValidation) {
		t.Errorf("expected validation error for blank name, got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	admin := seedUser(t, db, models.RoleAdmin)
	otherAdmin := seedUser(t, db, models.RoleAdmin)
	user := seedUser(t, db, models.RoleUser)
	provider := seedUser(t, db, models.RoleProvider)

	// Non-admins may not delete anyone
	if err := svc.DeleteUser(identityOf(provider), user.ID); !apperrors.Is(err, apperrors.CodeAuthorization) {
		t.Errorf("expected authorization error for provider, got %v", err)
	}

	if err := svc.DeleteUser(identityOf(admin), user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := svc.GetByID(user.ID); !apperrors.Is(err, apperrors.CodeNotFound) {
		t.Errorf("expected user gone, got %v", err)
	}

	// Admin accounts are not deletable
	if err := svc.DeleteUser(identityOf(admin), otherAdmin.ID); !apperrors.Is(err, apperrors.CodeAuthorization) {
		t.Errorf("expected authorization error deleting an admin, got %v", err)
	}
}

func TestListUsersAdminOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	admin := seedUser(t, db, models.RoleAdmin)
	seedUser(t, db, models.RoleUser)

	users, err := svc.ListUsers(identityOf(admin))
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}

	if _, err := svc.ListUsers(models.Identity{}); !apperrors.Is(err, apperrors.CodeAuthentication) {
		t.Errorf("expected authentication error without identity, got %v", err)
	}
}
