package config

import (
	"errors"
	"log"
	"os"

	"washxpress-backend/models"

	"gorm.io/gorm"
)

// SeedAdmin provisions the administrator account from ADMIN_EMAIL /
// ADMIN_PASSWORD / ADMIN_NAME. Nothing happens if the account already
// exists or the variables are unset. This is the explicit bootstrap
// step for the first admin; there are no implicit admin credentials
// anywhere in the request path.
func SeedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Admin"
	}

	admin := models.User{
		Name:     name,
		Email:    email,
		Password: password, // hashed in BeforeCreate
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Seeded admin user %s", email)
	return nil
}
