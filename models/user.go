package models

import (
	"time"
	"washxpress-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles recognized by the access guard.
const (
	RoleUser     = "USER"
	RoleProvider = "PROVIDER"
	RoleAdmin    = "ADMIN"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone    string    `json:"phone,omitempty"`
	Password string    `json:"-"` // empty for externally provisioned accounts
	Role     string    `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.Password != "" {
		hashed, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashed
	}
	return
}

// Identity is the acting {userId, role} pair established by the auth
// layer for the current request. Core operations take it explicitly;
// there is no ambient session state.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

func (i Identity) IsZero() bool {
	return i.UserID == uuid.Nil
}

// IsStaff reports whether the identity may act on any booking.
func (i Identity) IsStaff() bool {
	return i.Role == RoleProvider || i.Role == RoleAdmin
}
