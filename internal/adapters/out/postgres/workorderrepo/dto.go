// Package workorderrepo provides data transfer objects and mapping functions
// for work-order persistence. The work order is the only aggregate with
// guarded state, so this package carries the whole object graph: the order
// row, the client and vehicle it references and the service/material link
// rows, rehydrated in one preloaded query.
package workorderrepo

import (
	"time"

	"workshop/internal/adapters/out/postgres/catalogrepo"
	"workshop/internal/adapters/out/postgres/clientrepo"
	"workshop/internal/adapters/out/postgres/vehiclerepo"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

// WorkOrderDTO represents the database structure for persisting work orders.
// UpdatedAt is stamped by the repository, not by GORM, so it stays NULL until
// the first mutation.
type WorkOrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID `gorm:"type:uuid;index"`
	VehicleID   uuid.UUID `gorm:"type:uuid;index"`
	Description *string
	Status      string     `gorm:"type:varchar(32);index"`
	OpenedAt    time.Time
	FinishedAt  *time.Time
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`

	Client    clientrepo.ClientDTO   `gorm:"foreignKey:ClientID"`
	Vehicle   vehiclerepo.VehicleDTO `gorm:"foreignKey:VehicleID"`
	Services  []ServiceLinkDTO       `gorm:"foreignKey:WorkOrderID"`
	Materials []MaterialLinkDTO      `gorm:"foreignKey:WorkOrderID"`
}

// TableName overrides GORM's default naming to use "work_orders".
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// ServiceLinkDTO is one row of the order-to-service link table. Each link has
// its own identifier, returned to the caller when the link is created.
type ServiceLinkDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;index"`
	ServiceID   uuid.UUID `gorm:"type:uuid;index"`

	Service catalogrepo.ServiceDTO `gorm:"foreignKey:ServiceID"`
}

// TableName overrides GORM's default naming to use "work_order_services".
func (ServiceLinkDTO) TableName() string {
	return "work_order_services"
}

// MaterialLinkDTO is one row of the order-to-material link table.
type MaterialLinkDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;index"`
	MaterialID  uuid.UUID `gorm:"type:uuid;index"`

	Material catalogrepo.MaterialDTO `gorm:"foreignKey:MaterialID"`
}

// TableName overrides GORM's default naming to use "work_order_materials".
func (MaterialLinkDTO) TableName() string {
	return "work_order_materials"
}

// fromDomain converts a work-order aggregate to its database representation.
// Link rows are managed separately and are not written through this mapping.
func fromDomain(order *workorder.WorkOrder) WorkOrderDTO {
	return WorkOrderDTO{
		ID:          order.ID().Bytes(),
		ClientID:    order.Client().ID.Bytes(),
		VehicleID:   order.Vehicle().ID.Bytes(),
		Description: order.Description(),
		Status:      string(order.Status()),
		OpenedAt:    order.OpenedAt(),
		FinishedAt:  order.FinishedAt(),
		UpdatedAt:   order.UpdatedAt(),
	}
}

// toDomain converts a preloaded DTO to a work-order aggregate.
func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cl, err := dto.Client.ToDomain()
	if err != nil {
		return nil, err
	}

	veh, err := dto.Vehicle.ToDomain()
	if err != nil {
		return nil, err
	}

	services := make([]workorder.ServiceLine, 0, len(dto.Services))
	for _, link := range dto.Services {
		svc, svcErr := link.Service.ToDomain()
		if svcErr != nil {
			return nil, svcErr
		}
		services = append(services, workorder.ServiceLine{
			ID:    svc.ID,
			Name:  svc.Name,
			Price: svc.Price,
		})
	}

	materials := make([]workorder.MaterialLine, 0, len(dto.Materials))
	for _, link := range dto.Materials {
		mat, matErr := link.Material.ToDomain()
		if matErr != nil {
			return nil, matErr
		}
		materials = append(materials, workorder.MaterialLine{
			ID:            mat.ID,
			Name:          mat.Name,
			InternalPrice: mat.InternalPrice,
		})
	}

	return workorder.RestoreWorkOrder(
		id,
		cl,
		veh,
		dto.Description,
		workorder.Status(dto.Status),
		dto.OpenedAt,
		dto.FinishedAt,
		dto.UpdatedAt,
		services,
		materials,
	)
}
