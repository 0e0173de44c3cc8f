package controllers

import (
	"net/http"

	"washxpress-backend/config"
	"washxpress-backend/services"
	"washxpress-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateVehicleInput defines the expected JSON structure for registering a vehicle
type CreateVehicleInput struct {
	Make    string `json:"make" binding:"required"`
	Model   string `json:"model" binding:"required"`
	Year    int    `json:"year" binding:"required"`
	License string `json:"license" binding:"required"`
	Type    string `json:"type" binding:"required"`
}

func vehicleService() *services.VehicleService {
	return services.NewVehicleService(config.DB)
}

// CreateVehicle registers a vehicle for the caller
func CreateVehicle(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	var input CreateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	vehicle, err := vehicleService().Register(identity, services.RegisterVehicleInput{
		Make:    input.Make,
		Model:   input.Model,
		Year:    input.Year,
		License: input.License,
		Type:    input.Type,
	})
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// GetVehicles lists vehicles. Without a userId query the caller's own
// vehicles are returned; staff may pass any userId.
func GetVehicles(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	vehicles, err := vehicleService().ListByOwner(identity, c.Query("userId"))
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}
