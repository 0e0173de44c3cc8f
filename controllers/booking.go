package controllers

import (
	"net/http"
	"time"

	"washxpress-backend/config"
	"washxpress-backend/services"
	"washxpress-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateBookingInput defines the expected JSON structure for creating a booking
type CreateBookingInput struct {
	VehicleID       uuid.UUID `json:"vehicleId" binding:"required"`
	ServiceType     string    `json:"serviceType" binding:"required"`
	Date            string    `json:"date" binding:"required"`
	TimeSlot        string    `json:"timeSlot" binding:"required"`
	SpecialRequests string    `json:"specialRequests"`
}

// UpdateBookingInput defines the expected JSON structure for updating a booking
type UpdateBookingInput struct {
	Status          *string `json:"status"`
	Date            *string `json:"date"`
	TimeSlot        *string `json:"timeSlot"`
	SpecialRequests *string `json:"specialRequests"`
}

func bookingService() *services.BookingService {
	return services.NewBookingService(config.DB)
}

// CreateBooking books a wash slot for one of the caller's vehicles
func CreateBooking(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bookingService().Create(identity, services.CreateBookingInput{
		VehicleID:       input.VehicleID,
		ServiceType:     input.ServiceType,
		Date:            input.Date,
		TimeSlot:        input.TimeSlot,
		SpecialRequests: input.SpecialRequests,
	})
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetMyBookings lists the caller's own bookings, newest date first
func GetMyBookings(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	bookings, err := bookingService().ListMine(identity)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookings lists bookings for the provider dashboard, with an
// optional filter of pending, completed or all
func GetBookings(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	filter := c.DefaultQuery("filter", services.FilterAll)
	bookings, err := bookingService().ListForStaff(identity, filter)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookingBuckets returns the four dashboard buckets derived from the
// wall clock at request time
func GetBookingBuckets(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	bookings, err := bookingService().ListForStaff(identity, services.FilterAll)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.PartitionBookings(bookings, time.Now()))
}

// GetBooking retrieves a single booking
func GetBooking(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	booking, err := bookingService().GetByID(identity, id)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking applies field changes and/or a status change. Field
// changes are allowed to the owner, status changes to staff only.
func UpdateBooking(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svc := bookingService()

	if input.Date != nil || input.TimeSlot != nil || input.SpecialRequests != nil {
		if _, err := svc.Update(identity, id, services.UpdateBookingInput{
			Date:            input.Date,
			TimeSlot:        input.TimeSlot,
			SpecialRequests: input.SpecialRequests,
		}); err != nil {
			utils.RespondWithAppError(c, err)
			return
		}
	}

	if input.Status != nil {
		if _, err := svc.UpdateStatus(identity, id, *input.Status); err != nil {
			utils.RespondWithAppError(c, err)
			return
		}
	}

	booking, err := svc.GetByID(identity, id)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking cancels a booking
func DeleteBooking(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	if err := bookingService().Cancel(identity, id); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}
