package workorderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkOrderRepository creates a new GORM work-order repository.
func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// withGraph attaches the preloads every aggregate read needs.
func (r *GormWorkOrderRepository) withGraph(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Client").
		Preload("Vehicle").
		Preload("Services.Service").
		Preload("Materials.Material")
}

// Add saves a new work order to the database. Client and vehicle rows must
// already exist; only the order row is written.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return errs.NewPersistenceFailureErrorWithCause("create work order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a work order by ID with its full object graph.
func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	if err := r.withGraph(ctx).First(&dto, "work_orders.id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update applies the set fields of the patch one by one, stamps updated_at
// and returns the rehydrated aggregate.
func (r *GormWorkOrderRepository) Update(
	ctx context.Context,
	id kernel.UUID,
	patch workorder.Patch,
) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"updated_at": time.Now().UTC(),
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}
	if patch.FinishedAt != nil {
		updates["finished_at"] = *patch.FinishedAt
	}

	result := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).Where("id = ?", id.Bytes()).Updates(updates)
	if result.Error != nil {
		return nil, errs.NewPersistenceFailureErrorWithCause("update work order", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("work order", id.String())
	}

	updated, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(id, updated)
	return updated, nil
}

// UpdateStatus writes the target status and stamps updated_at. A transition
// to Finished also stamps finished_at; this is the authoritative finish path.
func (r *GormWorkOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	status workorder.Status,
) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updates := map[string]any{
		"status":     string(status),
		"updated_at": now,
	}
	if status == workorder.Finished {
		updates["finished_at"] = now
	}

	result := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).Where("id = ?", id.Bytes()).Updates(updates)
	if result.Error != nil {
		return nil, errs.NewPersistenceFailureErrorWithCause("update work order status", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("work order", id.String())
	}

	updated, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(id, updated)
	return updated, nil
}

// Delete removes the order row and its link rows, reporting whether the
// order row existed.
func (r *GormWorkOrderRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	db := r.db.WithContext(ctx)
	if err := db.Delete(&ServiceLinkDTO{}, "work_order_id = ?", id.Bytes()).Error; err != nil {
		return false, errs.NewPersistenceFailureErrorWithCause("delete work order service links", err)
	}
	if err := db.Delete(&MaterialLinkDTO{}, "work_order_id = ?", id.Bytes()).Error; err != nil {
		return false, errs.NewPersistenceFailureErrorWithCause("delete work order material links", err)
	}

	result := db.Delete(&WorkOrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return false, errs.NewPersistenceFailureErrorWithCause("delete work order", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// List retrieves work orders ordered by opening time, oldest first.
// Filtering by Finished or Delivered is rejected: closed orders are reachable
// individually but are kept out of the working list.
func (r *GormWorkOrderRepository) List(
	ctx context.Context,
	status *workorder.Status,
) ([]*workorder.WorkOrder, error) {
	query := r.withGraph(ctx).Order("opened_at")

	if status != nil {
		if *status == workorder.Finished || *status == workorder.Delivered {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"status",
				fmt.Errorf("work orders cannot be listed by %s status", *status),
			)
		}
		query = query.Where("status = ?", string(*status))
	}

	var dtos []WorkOrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// LinkService creates a link row between the order and the catalog service
// and returns the link's identifier.
func (r *GormWorkOrderRepository) LinkService(ctx context.Context, orderID, serviceID kernel.UUID) (string, error) {
	link := ServiceLinkDTO{
		ID:          uuid.New(),
		WorkOrderID: orderID.Bytes(),
		ServiceID:   serviceID.Bytes(),
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&link).Error; err != nil {
		return "", errs.NewPersistenceFailureErrorWithCause("link service to work order", err)
	}

	return link.ID.String(), nil
}

// UnlinkService removes the link between the order and the service. A delete
// that touches no rows is reported as a persistence failure: the caller saw
// the link a moment ago, so its absence means the write was lost.
func (r *GormWorkOrderRepository) UnlinkService(ctx context.Context, orderID, serviceID kernel.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Delete(&ServiceLinkDTO{}, "work_order_id = ? AND service_id = ?", orderID.Bytes(), serviceID.Bytes())
	if result.Error != nil {
		return 0, errs.NewPersistenceFailureErrorWithCause("unlink service from work order", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewPersistenceFailureError("unlink service from work order: no link removed")
	}

	return result.RowsAffected, nil
}

// LinkMaterial creates a link row between the order and the catalog material
// and returns the link's identifier.
func (r *GormWorkOrderRepository) LinkMaterial(ctx context.Context, orderID, materialID kernel.UUID) (string, error) {
	link := MaterialLinkDTO{
		ID:          uuid.New(),
		WorkOrderID: orderID.Bytes(),
		MaterialID:  materialID.Bytes(),
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&link).Error; err != nil {
		return "", errs.NewPersistenceFailureErrorWithCause("link material to work order", err)
	}

	return link.ID.String(), nil
}

// UnlinkMaterial removes the link between the order and the material, with
// the same zero-row contract as UnlinkService.
func (r *GormWorkOrderRepository) UnlinkMaterial(ctx context.Context, orderID, materialID kernel.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Delete(&MaterialLinkDTO{}, "work_order_id = ? AND material_id = ?", orderID.Bytes(), materialID.Bytes())
	if result.Error != nil {
		return 0, errs.NewPersistenceFailureErrorWithCause("unlink material from work order", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewPersistenceFailureError("unlink material from work order: no link removed")
	}

	return result.RowsAffected, nil
}

// GetAllOfClientWithStatus retrieves the client's orders in the given status.
func (r *GormWorkOrderRepository) GetAllOfClientWithStatus(
	ctx context.Context,
	clientID kernel.UUID,
	status workorder.Status,
) ([]*workorder.WorkOrder, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkOrderDTO
	err := r.withGraph(ctx).
		Where("client_id = ? AND status = ?", clientID.Bytes(), string(status)).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllOfClientWithStatusNot retrieves the client's orders whose status
// differs from the given one.
func (r *GormWorkOrderRepository) GetAllOfClientWithStatusNot(
	ctx context.Context,
	clientID kernel.UUID,
	status workorder.Status,
) ([]*workorder.WorkOrder, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkOrderDTO
	err := r.withGraph(ctx).
		Where("client_id = ? AND status != ?", clientID.Bytes(), string(status)).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []WorkOrderDTO) ([]*workorder.WorkOrder, error) {
	orders := make([]*workorder.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		order, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}
