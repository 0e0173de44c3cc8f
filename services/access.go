package services

import (
	"washxpress-backend/apperrors"
	"washxpress-backend/models"

	"github.com/google/uuid"
)

// Operation names a guarded action on a booking.
type Operation string

const (
	OpReadBooking         Operation = "booking.read"
	OpUpdateBookingFields Operation = "booking.update"
	OpUpdateBookingStatus Operation = "booking.status"
	OpCancelBooking       Operation = "booking.cancel"
)

// AuthorizeBooking decides whether identity may perform op on a booking
// owned by ownerID. Status writes are staff-only; everything else is
// allowed to staff or the owner. Denials use a generic message so they
// never confirm that another user's booking exists.
func AuthorizeBooking(identity models.Identity, op Operation, ownerID uuid.UUID) error {
	if identity.IsZero() {
		return apperrors.Authentication()
	}

	switch op {
	case OpUpdateBookingStatus:
		if !identity.IsStaff() {
			return apperrors.Authorization("only service providers can update booking status")
		}
		return nil
	case OpReadBooking, OpUpdateBookingFields, OpCancelBooking:
		if identity.IsStaff() || identity.UserID == ownerID {
			return nil
		}
		return apperrors.Ownership("you do not have access to this booking")
	default:
		return apperrors.Authorization("operation not permitted")
	}
}

// RequireStaff allows PROVIDER and ADMIN only.
func RequireStaff(identity models.Identity) error {
	if identity.IsZero() {
		return apperrors.Authentication()
	}
	if !identity.IsStaff() {
		return apperrors.Authorization("provider access required")
	}
	return nil
}

// RequireAdmin allows ADMIN only.
func RequireAdmin(identity models.Identity) error {
	if identity.IsZero() {
		return apperrors.Authentication()
	}
	if identity.Role != models.RoleAdmin {
		return apperrors.Authorization("admin access required")
	}
	return nil
}
