package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"washxpress-backend/config"
	"washxpress-backend/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// newTestDB opens a fresh in-memory database with the full schema,
// including the partial unique index guarding slot exclusivity.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("washxpress_test_%d", atomic.AddInt64(&testDBSeq, 1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// seedUser creates a user with the given role. No password, so the
// bcrypt hook stays out of the hot path.
func seedUser(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()

	user := models.User{
		Name:  "Test " + role,
		Email: fmt.Sprintf("%s-%s@example.com", role, uuid.NewString()[:8]),
		Role:  role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedVehicle(t *testing.T, db *gorm.DB, owner models.User) models.Vehicle {
	t.Helper()

	vehicle := models.Vehicle{
		Make:    "Toyota",
		Model:   "Hilux",
		Year:    2020,
		License: "BP-" + uuid.NewString()[:8],
		Type:    models.VehicleCar,
		OwnerID: owner.ID,
	}
	if err := db.Create(&vehicle).Error; err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	return vehicle
}

func identityOf(u models.User) models.Identity {
	return models.Identity{UserID: u.ID, Role: u.Role}
}
