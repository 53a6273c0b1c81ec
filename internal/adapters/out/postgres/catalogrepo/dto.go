// Package catalogrepo persists the service and material catalog. All money
// columns are bigint minor units; conversion to major units happens only in
// the work order's external representation.
package catalogrepo

import (
	"time"

	"workshop/internal/core/domain/model/catalog"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ServiceDTO represents the database structure for persisting catalog services.
type ServiceDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex"`
	Price     int64     `gorm:"type:bigint"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "services".
func (ServiceDTO) TableName() string {
	return "services"
}

// FromDomainService converts a catalog service to its database representation.
func FromDomainService(svc catalog.Service) ServiceDTO {
	return ServiceDTO{
		ID:        svc.ID.Bytes(),
		Name:      svc.Name,
		Price:     svc.Price.MinorUnits(),
		CreatedAt: svc.CreatedAt,
		UpdatedAt: svc.UpdatedAt,
	}
}

// ToDomain converts the DTO back to the catalog service.
func (dto ServiceDTO) ToDomain() (catalog.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Service{}, err
	}

	return catalog.Service{
		ID:        id,
		Name:      dto.Name,
		Price:     kernel.NewMoney(dto.Price),
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}, nil
}

// MaterialDTO represents the database structure for persisting catalog materials.
type MaterialDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	SKU           *string `gorm:"column:sku;uniqueIndex"`
	Description   *string
	StockQuantity int
	CostPrice     int64 `gorm:"type:bigint"`
	SalePrice     int64 `gorm:"type:bigint"`
	InternalPrice int64 `gorm:"type:bigint"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming to use "materials".
func (MaterialDTO) TableName() string {
	return "materials"
}

// FromDomainMaterial converts a catalog material to its database representation.
func FromDomainMaterial(mat catalog.Material) MaterialDTO {
	return MaterialDTO{
		ID:            mat.ID.Bytes(),
		Name:          mat.Name,
		SKU:           mat.SKU,
		Description:   mat.Description,
		StockQuantity: mat.StockQuantity,
		CostPrice:     mat.CostPrice.MinorUnits(),
		SalePrice:     mat.SalePrice.MinorUnits(),
		InternalPrice: mat.InternalPrice.MinorUnits(),
		CreatedAt:     mat.CreatedAt,
		UpdatedAt:     mat.UpdatedAt,
	}
}

// ToDomain converts the DTO back to the catalog material.
func (dto MaterialDTO) ToDomain() (catalog.Material, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Material{}, err
	}

	return catalog.Material{
		ID:            id,
		Name:          dto.Name,
		SKU:           dto.SKU,
		Description:   dto.Description,
		StockQuantity: dto.StockQuantity,
		CostPrice:     kernel.NewMoney(dto.CostPrice),
		SalePrice:     kernel.NewMoney(dto.SalePrice),
		InternalPrice: kernel.NewMoney(dto.InternalPrice),
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	}, nil
}
