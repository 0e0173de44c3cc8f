// services/user_service.go
package services

import (
	"errors"
	"strings"

	"washxpress-backend/apperrors"
	"washxpress-backend/models"
	"washxpress-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type RegisterUserInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Register creates a customer account with role USER.
func (s *UserService) Register(input RegisterUserInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || email == "" || input.Password == "" {
		return nil, apperrors.Validation("name, email and password are required")
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		return nil, apperrors.Validation("invalid phone number format")
	}

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Persistence(err)
	}

	user := models.User{
		Name:     input.Name,
		Email:    email,
		Phone:    input.Phone,
		Password: input.Password, // hashed in BeforeCreate
		Role:     models.RoleUser,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("email already registered")
		}
		return nil, apperrors.Persistence(err)
	}
	return &user, nil
}

// Authenticate checks credentials and returns the user. The failure is
// the same whether the email is unknown or the password wrong.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Authorization("invalid credentials")
		}
		return nil, apperrors.Persistence(err)
	}
	if user.Password == "" || !utils.CheckPasswordHash(password, user.Password) {
		return nil, apperrors.Authorization("invalid credentials")
	}
	return &user, nil
}

// GetByID returns a single user record.
func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.Persistence(err)
	}
	return &user, nil
}

type UpdateProfileInput struct {
	Name  *string
	Phone *string
}

// UpdateProfile lets an authenticated user change their own name and
// phone.
func (s *UserService) UpdateProfile(identity models.Identity, input UpdateProfileInput) (*models.User, error) {
	if identity.IsZero() {
		return nil, apperrors.Authentication()
	}
	user, err := s.GetByID(identity.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperrors.Validation("name cannot be empty")
		}
		user.Name = *input.Name
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			return nil, apperrors.Validation("invalid phone number format")
		}
		user.Phone = *input.Phone
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}
	return user, nil
}

// ListUsers returns every account, newest first. Admin only.
func (s *UserService) ListUsers(identity models.Identity) ([]models.User, error) {
	if err := RequireAdmin(identity); err != nil {
		return nil, err
	}

	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}
	return users, nil
}

// DeleteUser removes a non-admin account. Admin only; admin accounts
// cannot be deleted, not even by other admins.
func (s *UserService) DeleteUser(identity models.Identity, id uuid.UUID) error {
	if err := RequireAdmin(identity); err != nil {
		return err
	}

	user, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if user.Role == models.RoleAdmin {
		return apperrors.Authorization("admin accounts cannot be deleted")
	}

	if err := s.db.Delete(user).Error; err != nil {
		return apperrors.Persistence(err)
	}
	return nil
}
