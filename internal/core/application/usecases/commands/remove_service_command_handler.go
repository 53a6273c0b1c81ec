package commands

import (
	"context"
)

// RemoveServiceCommandHandler detaches a service from a work order.
// Removal is allowed only while the order is still negotiable, that is in
// the received or awaiting-approval status.
type RemoveServiceCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewRemoveServiceCommandHandler creates a handler for service detachment.
func NewRemoveServiceCommandHandler(uowFactory WorkOrderUoWFactory) RemoveServiceCommandHandler {
	return RemoveServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the service link and returns the number of rows affected.
func (h RemoveServiceCommandHandler) Handle(ctx context.Context, cmd RemoveServiceCommand) (int64, error) {
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

	if err = order.Status().ValidateDetachService(); err != nil {
		return 0, err
	}

	affected, err := repo.UnlinkService(ctx, order.ID(), cmd.ServiceID())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return affected, nil
}
