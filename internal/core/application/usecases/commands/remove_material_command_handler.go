package commands

import (
	"context"
)

// RemoveMaterialCommandHandler detaches a material from a work order.
// Removal is allowed only while the order is still negotiable, that is in
// the received or awaiting-approval status.
type RemoveMaterialCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewRemoveMaterialCommandHandler creates a handler for material detachment.
func NewRemoveMaterialCommandHandler(uowFactory WorkOrderUoWFactory) RemoveMaterialCommandHandler {
	return RemoveMaterialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the material link and returns the number of rows affected.
func (h RemoveMaterialCommandHandler) Handle(ctx context.Context, cmd RemoveMaterialCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()
	order, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	if err = order.Status().ValidateDetachMaterial(); err != nil {
		return 0, err
	}

	affected, err := repo.UnlinkMaterial(ctx, order.ID(), cmd.MaterialID())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return affected, nil
}
