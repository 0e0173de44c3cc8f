package config

import (
	"os"

	"washxpress-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	// TranslateError turns driver unique-violations into
	// gorm.ErrDuplicatedKey, which the services map to conflicts.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}

// Migrate creates the schema plus the slot-exclusivity index. The index
// is partial: CANCELLED rows do not hold their slot, so a cancelled
// booking's (date, time_slot) pair can be booked again. Two concurrent
// creates for the same slot race to this index and exactly one wins.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Booking{},
		&models.ContactMessage{},
	); err != nil {
		return err
	}

	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
		 ON bookings (date, time_slot)
		 WHERE status <> 'CANCELLED'`,
	).Error
}
