// Package vehiclerepo persists vehicles.
package vehiclerepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicles.
type VehicleDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Brand     string
	Model     string
	Plate     string    `gorm:"uniqueIndex"`
	Year      int
	ClientID  uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// FromDomainVehicle converts a vehicle entity to its database representation.
func FromDomainVehicle(veh vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:        veh.ID.Bytes(),
		Brand:     veh.Brand,
		Model:     veh.Model,
		Plate:     veh.Plate,
		Year:      veh.Year,
		ClientID:  veh.ClientID.Bytes(),
		CreatedAt: veh.CreatedAt,
		UpdatedAt: veh.UpdatedAt,
	}
}

// ToDomain converts the DTO back to the vehicle entity.
func (dto VehicleDTO) ToDomain() (vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return vehicle.Vehicle{}, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return vehicle.Vehicle{}, err
	}

	return vehicle.Vehicle{
		ID:        id,
		Brand:     dto.Brand,
		Model:     dto.Model,
		Plate:     dto.Plate,
		Year:      dto.Year,
		ClientID:  clientID,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}, nil
}
