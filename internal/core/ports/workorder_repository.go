package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work-order
// aggregates. The use-case layer depends on this contract only; SQL, locking
// and identifier translation are adapter concerns.
//
// Mutating operations that return an aggregate always return the rehydrated
// persisted state, including side effects the adapter applied (for example
// the finished-at stamp on a status update to Finished).
type WorkOrderRepository interface {
	// Add persists a new work-order aggregate.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work order by its unique identifier, with its client,
	// vehicle and linked catalog items resolved.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// Update applies a typed partial update field-by-field and returns the
	// rehydrated aggregate.
	Update(ctx context.Context, id kernel.UUID, patch workorder.Patch) (*workorder.WorkOrder, error)

	// UpdateStatus writes the target status and returns the rehydrated
	// aggregate. When the target is Finished the adapter stamps finished-at.
	UpdateStatus(ctx context.Context, id kernel.UUID, status workorder.Status) (*workorder.WorkOrder, error)

	// Delete removes the work order row and reports whether a row was removed.
	Delete(ctx context.Context, id kernel.UUID) (bool, error)

	// List retrieves work orders, optionally filtered by status. Filter
	// validity is the adapter's call: filtering by Finished or Delivered is
	// rejected there.
	List(ctx context.Context, status *workorder.Status) ([]*workorder.WorkOrder, error)

	// LinkService links a catalog service to the order and returns the new
	// link's identifier.
	LinkService(ctx context.Context, orderID, serviceID kernel.UUID) (string, error)

	// UnlinkService removes the link between the order and the service and
	// returns the affected row count. Zero affected rows is surfaced by the
	// adapter as a persistence failure.
	UnlinkService(ctx context.Context, orderID, serviceID kernel.UUID) (int64, error)

	// LinkMaterial links a catalog material to the order and returns the new
	// link's identifier.
	LinkMaterial(ctx context.Context, orderID, materialID kernel.UUID) (string, error)

	// UnlinkMaterial removes the link between the order and the material and
	// returns the affected row count, with the same zero-row contract as
	// UnlinkService.
	UnlinkMaterial(ctx context.Context, orderID, materialID kernel.UUID) (int64, error)

	// GetAllOfClientWithStatus retrieves the client's orders in the given status.
	GetAllOfClientWithStatus(ctx context.Context, clientID kernel.UUID, status workorder.Status) ([]*workorder.WorkOrder, error)

	// GetAllOfClientWithStatusNot retrieves the client's orders whose status
	// differs from the given one. Used by the creation guard against a second
	// unfinished order.
	GetAllOfClientWithStatusNot(ctx context.Context, clientID kernel.UUID, status workorder.Status) ([]*workorder.WorkOrder, error)
}
