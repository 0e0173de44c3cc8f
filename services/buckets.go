// services/buckets.go
package services

import (
	"time"

	"washxpress-backend/models"
	"washxpress-backend/utils"
)

// BookingBuckets is the provider dashboard view, derived from status
// and the wall clock on every read. No bucket is ever stored, so the
// view cannot drift from the underlying rows. The four predicates are
// evaluated independently and are not mutually exclusive in every edge
// case: a booking CANCELLED today matches none of them, and a COMPLETED
// booking whose CompletedAt is exactly 24 hours old still counts as
// recent. Both behaviors are pinned by tests.
type BookingBuckets struct {
	Pending         []models.Booking `json:"pending"`
	DidntMakeOut    []models.Booking `json:"didntMakeOut"`
	CompletedRecent []models.Booking `json:"completedRecent"`
	History         []models.Booking `json:"history"`
}

// PartitionBookings classifies bookings into the four dashboard buckets
// as of now.
func PartitionBookings(bookings []models.Booking, now time.Time) BookingBuckets {
	buckets := BookingBuckets{
		Pending:         []models.Booking{},
		DidntMakeOut:    []models.Booking{},
		CompletedRecent: []models.Booking{},
		History:         []models.Booking{},
	}
	startOfToday := utils.BeginningOfDay(now.UTC())

	for _, b := range bookings {
		open := b.Status == models.StatusPending || b.Status == models.StatusConfirmed

		if open && !b.Date.Before(startOfToday) {
			buckets.Pending = append(buckets.Pending, b)
		}
		if open && b.Date.Before(startOfToday) {
			buckets.DidntMakeOut = append(buckets.DidntMakeOut, b)
		}
		if b.Status == models.StatusCompleted && b.CompletedAt != nil &&
			now.Sub(*b.CompletedAt) <= 24*time.Hour {
			buckets.CompletedRecent = append(buckets.CompletedRecent, b)
		}
		if (b.Status == models.StatusCompleted && b.CompletedAt != nil &&
			now.Sub(*b.CompletedAt) > 24*time.Hour) ||
			(!b.Date.Equal(startOfToday) && !open) {
			buckets.History = append(buckets.History, b)
		}
	}
	return buckets
}
