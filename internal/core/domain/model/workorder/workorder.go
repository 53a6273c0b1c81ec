package workorder

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
)

var (
	// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was not
	// created through NewWorkOrder or RestoreWorkOrder.
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder or RestoreWorkOrder")
)

// ServiceLine is a service linked to a work order. It references the catalog
// service by id and carries the price visible at link time; the catalog
// remains the source of truth for the price.
type ServiceLine struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Money
}

// MaterialLine is a material linked to a work order. Work orders bill the
// material's internal-use price, not its sale price.
type MaterialLine struct {
	ID            kernel.UUID
	Name          string
	InternalPrice kernel.Money
}

// Patch is a typed partial update for a work order. Nil fields are left
// untouched; the gateway applies set fields one by one. Dynamic field-map
// merging is intentionally not supported.
type Patch struct {
	Description *string
	Status      *Status
	FinishedAt  *time.Time
}

// WorkOrder is the service-order aggregate. It binds one client and one
// vehicle (both set once at creation and never reassigned), carries the
// lifecycle status, and holds the currently linked services and materials.
//
// WorkOrder follows these invariants:
//   - Must have a valid unique identifier
//   - Client and vehicle references are immutable after creation
//   - Status is always one of the nine enumerated values
//   - finishedAt is non-nil only in the Finished status
//   - Can only be created through NewWorkOrder or RestoreWorkOrder
type WorkOrder struct {
	id          kernel.UUID
	client      client.Client
	vehicle     vehicle.Vehicle
	description *string
	status      Status
	openedAt    time.Time
	finishedAt  *time.Time
	updatedAt   *time.Time
	services    []ServiceLine
	materials   []MaterialLine

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewWorkOrder creates a new work order in the Received status, opened at the
// given instant. The description is optional.
//
// The client and vehicle must already be resolved; the use-case layer is the
// only caller and performs those lookups first.
func NewWorkOrder(
	id kernel.UUID,
	cl client.Client,
	veh vehicle.Vehicle,
	description *string,
	openedAt time.Time,
) (*WorkOrder, error) {
	if err := errors.Join(
		id.Validate(),
		cl.ID.Validate(),
		veh.ID.Validate(),
	); err != nil {
		return nil, err
	}

	return &WorkOrder{
		id:            id,
		client:        cl,
		vehicle:       veh,
		description:   description,
		status:        Received,
		openedAt:      openedAt,
		isConstructed: true,
	}, nil
}

// RestoreWorkOrder reconstructs a work order from its persisted state.
// Used by gateway adapters when rehydrating aggregates.
func RestoreWorkOrder(
	id kernel.UUID,
	cl client.Client,
	veh vehicle.Vehicle,
	description *string,
	status Status,
	openedAt time.Time,
	finishedAt *time.Time,
	updatedAt *time.Time,
	services []ServiceLine,
	materials []MaterialLine,
) (*WorkOrder, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &WorkOrder{
		id:            id,
		client:        cl,
		vehicle:       veh,
		description:   description,
		status:        status,
		openedAt:      openedAt,
		finishedAt:    finishedAt,
		updatedAt:     updatedAt,
		services:      services,
		materials:     materials,
		isConstructed: true,
	}, nil
}

// Validate ensures the WorkOrder instance was properly constructed.
func (w *WorkOrder) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two work orders by their unique identifiers.
func (w *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the work order's unique identifier.
func (w *WorkOrder) ID() kernel.UUID {
	return w.id
}

// Client returns the client the order was opened for.
func (w *WorkOrder) Client() client.Client {
	return w.client
}

// Vehicle returns the vehicle under repair.
func (w *WorkOrder) Vehicle() vehicle.Vehicle {
	return w.vehicle
}

// Description returns the optional free-text description.
func (w *WorkOrder) Description() *string {
	return w.description
}

// Status returns the current lifecycle status.
func (w *WorkOrder) Status() Status {
	return w.status
}

// OpenedAt returns the immutable creation timestamp.
func (w *WorkOrder) OpenedAt() time.Time {
	return w.openedAt
}

// FinishedAt returns the finish timestamp, nil unless the order is Finished.
func (w *WorkOrder) FinishedAt() *time.Time {
	return w.finishedAt
}

// UpdatedAt returns the last-mutation timestamp, nil until the first mutation.
func (w *WorkOrder) UpdatedAt() *time.Time {
	return w.updatedAt
}

// Services returns the currently linked services.
func (w *WorkOrder) Services() []ServiceLine {
	return w.services
}

// Materials returns the currently linked materials.
func (w *WorkOrder) Materials() []MaterialLine {
	return w.materials
}

// Close is the in-entity convenience finish: it sets the status to Finished
// and stamps the last-updated time, without touching finishedAt.
//
// The authoritative finish path is the gateway's status update, which stamps
// finishedAt on the transition to Finished. Production flows use that path;
// Close exists for completeness and is not wired into any handler.
func (w *WorkOrder) Close(now time.Time) {
	w.status = Finished
	w.updatedAt = &now
}
