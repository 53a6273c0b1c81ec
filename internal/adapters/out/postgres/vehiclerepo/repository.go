package vehiclerepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Add saves a new vehicle to the database.
func (r *GormVehicleRepository) Add(ctx context.Context, veh vehicle.Vehicle) error {
	dto := FromDomainVehicle(veh)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return vehicle.Vehicle{}, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return vehicle.Vehicle{}, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return vehicle.Vehicle{}, err
	}

	return dto.ToDomain()
}

// GetAllOfClient retrieves every vehicle registered to the given client.
func (r *GormVehicleRepository) GetAllOfClient(ctx context.Context, clientID kernel.UUID) ([]vehicle.Vehicle, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "client_id = ?", clientID.Bytes()).Error; err != nil {
		return nil, err
	}

	vehicles := make([]vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		veh, err := dto.ToDomain()
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, veh)
	}

	return vehicles, nil
}

// Update saves an existing vehicle to the database.
func (r *GormVehicleRepository) Update(ctx context.Context, veh vehicle.Vehicle) error {
	dto := FromDomainVehicle(veh)
	result := r.db.WithContext(ctx).Model(&VehicleDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", veh.ID.String())
	}
	return nil
}

// Delete removes a vehicle and reports whether a row was removed.
func (r *GormVehicleRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&VehicleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
