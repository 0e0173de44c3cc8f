// services/retention_service.go
package services

import (
	"log"
	"os"
	"strconv"
	"time"

	"washxpress-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const defaultRetentionDays = 90

// RetentionService purges cancelled bookings once they are older than
// the retention window. Cancellation itself is a soft status change so
// the slot frees up immediately and an audit trail remains; this sweep
// is the eventual hard delete.
type RetentionService struct {
	db   *gorm.DB
	days int
}

func NewRetentionService(db *gorm.DB) *RetentionService {
	days := defaultRetentionDays
	if env := os.Getenv("BOOKING_RETENTION_DAYS"); env != "" {
		if d, err := strconv.Atoi(env); err == nil && d > 0 {
			days = d
		}
	}
	return &RetentionService{db: db, days: days}
}

func (s *RetentionService) StartScheduler() {
	c := cron.New()

	// Run every day at 3 AM
	if _, err := c.AddFunc("0 3 * * *", s.PurgeCancelledBookings); err != nil {
		log.Printf("Failed to schedule retention sweep: %v", err)
		return
	}

	c.Start()
	log.Println("Retention scheduler started")
}

// PurgeCancelledBookings deletes CANCELLED bookings whose date is past
// the retention window.
func (s *RetentionService) PurgeCancelledBookings() {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.days)

	result := s.db.Where("status = ? AND date < ?", models.StatusCancelled, cutoff).
		Delete(&models.Booking{})
	if result.Error != nil {
		log.Printf("Retention sweep failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Retention sweep purged %d cancelled bookings", result.RowsAffected)
	}
}
