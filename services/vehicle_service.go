// services/vehicle_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"washxpress-backend/apperrors"
	"washxpress-backend/models"
	"washxpress-backend/utils"

	"gorm.io/gorm"
)

type VehicleService struct {
	db *gorm.DB
}

func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

type RegisterVehicleInput struct {
	Make    string
	Model   string
	Year    int
	License string
	Type    string
}

// Register adds a vehicle for the calling user. The license plate is
// stored upper-cased and must be unique case-insensitively across all
// owners.
func (s *VehicleService) Register(identity models.Identity, input RegisterVehicleInput) (*models.Vehicle, error) {
	if identity.IsZero() {
		return nil, apperrors.Authentication()
	}

	make := strings.TrimSpace(input.Make)
	model := strings.TrimSpace(input.Model)
	license := utils.NormalizeLicense(input.License)
	if make == "" || model == "" || license == "" {
		return nil, apperrors.Validation("make, model and license are required")
	}
	if input.Year < 1900 || input.Year > time.Now().Year() {
		return nil, apperrors.Validation("invalid year")
	}
	if !models.ValidVehicleType(input.Type) {
		return nil, apperrors.Validation("invalid vehicle type")
	}

	var existing models.Vehicle
	err := s.db.Where("license = ?", license).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("a vehicle with this license plate is already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Persistence(err)
	}

	vehicle := models.Vehicle{
		Make:    make,
		Model:   model,
		Year:    input.Year,
		License: license,
		Type:    input.Type,
		OwnerID: identity.UserID,
	}
	if err := s.db.Create(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("a vehicle with this license plate is already registered")
		}
		return nil, apperrors.Persistence(err)
	}
	return &vehicle, nil
}

// ListByOwner returns the caller's vehicles ordered by make. Staff may
// list any owner's vehicles.
func (s *VehicleService) ListByOwner(identity models.Identity, ownerID string) ([]models.Vehicle, error) {
	if identity.IsZero() {
		return nil, apperrors.Authentication()
	}
	if ownerID == "" {
		ownerID = identity.UserID.String()
	}
	if ownerID != identity.UserID.String() && !identity.IsStaff() {
		return nil, apperrors.Ownership("you can only list your own vehicles")
	}

	var vehicles []models.Vehicle
	err := s.db.Where("owner_id = ?", ownerID).
		Order("make ASC").
		Find(&vehicles).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}
	return vehicles, nil
}
