// services/booking_service.go
package services

import (
	"errors"
	"time"

	"washxpress-backend/apperrors"
	"washxpress-backend/models"
	"washxpress-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff list filters.
const (
	FilterPending   = "pending"   // PENDING + CONFIRMED
	FilterCompleted = "completed" // COMPLETED + CANCELLED
	FilterAll       = "all"
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

type CreateBookingInput struct {
	VehicleID       uuid.UUID
	ServiceType     string
	Date            string // YYYY-MM-DD
	TimeSlot        string
	SpecialRequests string
}

type UpdateBookingInput struct {
	Date            *string
	TimeSlot        *string
	SpecialRequests *string
}

// Create books a slot for one of the caller's own vehicles. The slot is
// exclusive across all users and vehicles; a cancelled booking does not
// hold its slot. The friendly pre-check below can race with a
// concurrent create, so correctness rests on the partial unique index:
// the losing insert comes back as a duplicated key and is reported as
// the same conflict.
func (s *BookingService) Create(identity models.Identity, input CreateBookingInput) (*models.Booking, error) {
	if identity.IsZero() {
		return nil, apperrors.Authentication()
	}

	if !models.ValidServiceType(input.ServiceType) {
		return nil, apperrors.Validation("invalid service type")
	}
	if !models.ValidTimeSlot(input.TimeSlot) {
		return nil, apperrors.Validation("invalid time slot")
	}
	date, err := utils.ParseBookingDate(input.Date)
	if err != nil {
		return nil, apperrors.Validation("invalid date, expected YYYY-MM-DD")
	}
	if date.Before(utils.BeginningOfDay(time.Now().UTC())) {
		return nil, apperrors.Validation("cannot book a date in the past")
	}

	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, "id = ?", input.VehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("vehicle")
		}
		return nil, apperrors.Persistence(err)
	}
	if vehicle.OwnerID != identity.UserID {
		return nil, apperrors.Ownership("vehicle does not belong to you")
	}

	var existing models.Booking
	err = s.db.Where("date = ? AND time_slot = ? AND status <> ?", date, input.TimeSlot, models.StatusCancelled).
		First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("this time slot is already booked")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Persistence(err)
	}

	booking := models.Booking{
		UserID:          identity.UserID,
		VehicleID:       vehicle.ID,
		ServiceType:     input.ServiceType,
		Date:            date,
		TimeSlot:        input.TimeSlot,
		SpecialRequests: input.SpecialRequests,
		Status:          models.StatusPending,
	}
	if err := s.db.Create(&booking).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, apperrors.Conflict("this time slot is already booked")
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, apperrors.NotFound("referenced entity")
		default:
			return nil, apperrors.Persistence(err)
		}
	}
	return &booking, nil
}

// GetByID returns one booking with its user and vehicle, visible to
// staff or the owner.
func (s *BookingService) GetByID(identity models.Identity, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeBooking(identity, OpReadBooking, booking.UserID); err != nil {
		return nil, err
	}
	if err := s.db.Preload("User").Preload("Vehicle").First(booking, "id = ?", id).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}
	return booking, nil
}

// ListMine returns the caller's own bookings, newest date first.
func (s *BookingService) ListMine(identity models.Identity) ([]models.Booking, error) {
	if identity.IsZero() {
		return nil, apperrors.Authentication()
	}
	var bookings []models.Booking
	err := s.db.Where("user_id = ?", identity.UserID).
		Order("date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}
	return bookings, nil
}

// ListForStaff returns the operational view for providers and admins,
// date ascending with user and vehicle attached. The caller partitions
// the result into dashboard buckets at read time; no bucket is stored.
func (s *BookingService) ListForStaff(identity models.Identity, filter string) ([]models.Booking, error) {
	if err := RequireStaff(identity); err != nil {
		return nil, err
	}

	query := s.db.Preload("User").Preload("Vehicle").Order("date ASC")
	switch filter {
	case FilterPending:
		query = query.Where("status IN ?", []string{models.StatusPending, models.StatusConfirmed})
	case FilterCompleted:
		query = query.Where("status IN ?", []string{models.StatusCompleted, models.StatusCancelled})
	case FilterAll, "":
	default:
		return nil, apperrors.Validation("unknown filter")
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}
	return bookings, nil
}

// UpdateStatus transitions a booking's status. Staff only. Moving to
// COMPLETED stamps CompletedAt in the same write; no other transition
// touches it. COMPLETED and CANCELLED are terminal.
func (s *BookingService) UpdateStatus(identity models.Identity, id uuid.UUID, newStatus string) (*models.Booking, error) {
	booking, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeBooking(identity, OpUpdateBookingStatus, booking.UserID); err != nil {
		return nil, err
	}

	if !models.ValidBookingStatus(newStatus) {
		return nil, apperrors.Validation("invalid booking status")
	}
	if !models.CanTransitionStatus(booking.Status, newStatus) {
		return nil, apperrors.Validation("cannot change status from " + booking.Status + " to " + newStatus)
	}

	updates := map[string]interface{}{"status": newStatus}
	if newStatus == models.StatusCompleted && booking.CompletedAt == nil {
		now := time.Now().UTC()
		updates["completed_at"] = &now
	}
	if err := s.db.Model(booking).Updates(updates).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}
	return s.load(id)
}

// Update changes date, slot or special requests on a booking. Owner or
// staff, never status. Moving the slot re-runs the conflict check.
func (s *BookingService) Update(identity models.Identity, id uuid.UUID, input UpdateBookingInput) (*models.Booking, error) {
	booking, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeBooking(identity, OpUpdateBookingFields, booking.UserID); err != nil {
		return nil, err
	}
	if booking.Status == models.StatusCompleted || booking.Status == models.StatusCancelled {
		return nil, apperrors.Validation("cannot modify a " + booking.Status + " booking")
	}

	date := booking.Date
	slot := booking.TimeSlot
	if input.Date != nil {
		date, err = utils.ParseBookingDate(*input.Date)
		if err != nil {
			return nil, apperrors.Validation("invalid date, expected YYYY-MM-DD")
		}
		if date.Before(utils.BeginningOfDay(time.Now().UTC())) {
			return nil, apperrors.Validation("cannot book a date in the past")
		}
	}
	if input.TimeSlot != nil {
		if !models.ValidTimeSlot(*input.TimeSlot) {
			return nil, apperrors.Validation("invalid time slot")
		}
		slot = *input.TimeSlot
	}

	slotMoved := !date.Equal(booking.Date) || slot != booking.TimeSlot
	if slotMoved {
		var existing models.Booking
		err := s.db.Where("date = ? AND time_slot = ? AND status <> ? AND id <> ?",
			date, slot, models.StatusCancelled, booking.ID).
			First(&existing).Error
		if err == nil {
			return nil, apperrors.Conflict("this time slot is already booked")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Persistence(err)
		}
	}

	booking.Date = date
	booking.TimeSlot = slot
	if input.SpecialRequests != nil {
		booking.SpecialRequests = *input.SpecialRequests
	}
	if err := s.db.Save(booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("this time slot is already booked")
		}
		return nil, apperrors.Persistence(err)
	}
	return booking, nil
}

// Cancel soft-cancels a booking, freeing its slot. Owner or staff.
// Cancelled rows are purged later by the retention sweep.
func (s *BookingService) Cancel(identity models.Identity, id uuid.UUID) error {
	booking, err := s.load(id)
	if err != nil {
		return err
	}
	if err := AuthorizeBooking(identity, OpCancelBooking, booking.UserID); err != nil {
		return err
	}
	if !models.CanTransitionStatus(booking.Status, models.StatusCancelled) {
		return apperrors.Validation("cannot cancel a " + booking.Status + " booking")
	}
	if booking.Status == models.StatusCancelled {
		return nil
	}
	if err := s.db.Model(booking).Update("status", models.StatusCancelled).Error; err != nil {
		return apperrors.Persistence(err)
	}
	return nil
}

func (s *BookingService) load(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("booking")
		}
		return nil, apperrors.Persistence(err)
	}
	return &booking, nil
}
