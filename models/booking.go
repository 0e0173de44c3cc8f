package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service types offered, matching the booking form.
const (
	ServiceBasicWash     = "BASIC_WASH"
	ServicePremiumWash   = "PREMIUM_WASH"
	ServiceFullDetailing = "FULL_DETAILING"
	ServiceOther         = "OTHER"
)

// Booking statuses.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// TimeSlots is the closed set of bookable two-hour bands.
var TimeSlots = []string{
	"8:00 - 10:00",
	"10:00 - 12:00",
	"12:00 - 14:00",
	"14:00 - 16:00",
	"16:00 - 18:00",
	"18:00 - 20:00",
}

var serviceTypes = map[string]bool{
	ServiceBasicWash:     true,
	ServicePremiumWash:   true,
	ServiceFullDetailing: true,
	ServiceOther:         true,
}

var bookingStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

func ValidServiceType(t string) bool {
	return serviceTypes[t]
}

func ValidBookingStatus(s string) bool {
	return bookingStatuses[s]
}

func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// statusTransitions lists the allowed moves out of each status.
// COMPLETED and CANCELLED are terminal.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCompleted, StatusCancelled},
	StatusConfirmed: {StatusPending, StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransitionStatus reports whether from -> to is an allowed status
// change. Same-status updates are allowed as no-ops.
func CanTransitionStatus(from, to string) bool {
	if from == to {
		return true
	}
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	VehicleID uuid.UUID `gorm:"type:uuid;index;not null" json:"vehicleId"`

	ServiceType     string    `gorm:"type:varchar(20);not null" json:"serviceType"`
	Date            time.Time `gorm:"index:idx_booking_slot;not null" json:"date"` // normalized to start of day UTC
	TimeSlot        string    `gorm:"index:idx_booking_slot;not null" json:"timeSlot"`
	SpecialRequests string    `json:"specialRequests,omitempty"`

	Status      string     `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
