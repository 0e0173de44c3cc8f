package models

import "testing"

func TestCanTransitionStatus(t *testing.T) {
	allowed := [][2]string{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCompleted},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusPending},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
		{StatusCompleted, StatusCompleted}, // same-status no-op
	}
	for _, pair := range allowed {
		if !CanTransitionStatus(pair[0], pair[1]) {
			t.Errorf("expected %s -> %s allowed", pair[0], pair[1])
		}
	}

	forbidden := [][2]string{
		{StatusCompleted, StatusPending},
		{StatusCompleted, StatusConfirmed},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusCancelled, StatusCompleted},
	}
	for _, pair := range forbidden {
		if CanTransitionStatus(pair[0], pair[1]) {
			t.Errorf("expected %s -> %s forbidden", pair[0], pair[1])
		}
	}
}

func TestValidTimeSlot(t *testing.T) {
	for _, slot := range TimeSlots {
		if !ValidTimeSlot(slot) {
			t.Errorf("expected %q valid", slot)
		}
	}
	if len(TimeSlots) != 6 {
		t.Errorf("expected 6 bookable bands, got %d", len(TimeSlots))
	}
	for _, slot := range []string{"", "8:00-10:00", "20:00 - 22:00", "08:00 - 10:00"} {
		if ValidTimeSlot(slot) {
			t.Errorf("expected %q invalid", slot)
		}
	}
}

func TestValidEnums(t *testing.T) {
	if !ValidServiceType(ServiceBasicWash) || ValidServiceType("WAX_ONLY") {
		t.Errorf("service type validation wrong")
	}
	if !ValidBookingStatus(StatusPending) || ValidBookingStatus("ARCHIVED") {
		t.Errorf("booking status validation wrong")
	}
	if !ValidVehicleType(VehicleBicycle) || ValidVehicleType("BOAT") {
		t.Errorf("vehicle type validation wrong")
	}
}
