package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle types offered on the booking form.
const (
	VehicleCar        = "CAR"
	VehicleSUVTruck   = "SUV_TRUCK"
	VehicleMotorcycle = "MOTORCYCLE"
	VehicleBicycle    = "BICYCLE"
	VehicleOther      = "OTHER"
)

var vehicleTypes = map[string]bool{
	VehicleCar:        true,
	VehicleSUVTruck:   true,
	VehicleMotorcycle: true,
	VehicleBicycle:    true,
	VehicleOther:      true,
}

func ValidVehicleType(t string) bool {
	return vehicleTypes[t]
}

type Vehicle struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Make    string    `gorm:"not null" json:"make"`
	Model   string    `gorm:"not null" json:"model"`
	Year    int       `gorm:"not null" json:"year"`
	License string    `gorm:"uniqueIndex;not null" json:"license"` // stored upper-cased
	Type    string    `gorm:"type:varchar(20);not null" json:"type"`
	OwnerID uuid.UUID `gorm:"type:uuid;index;not null" json:"ownerId"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
