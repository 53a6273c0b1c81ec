package commands

import (
	"context"

	"workshop/internal/core/domain/model/workorder"
)

// DisapproveWorkOrderCommandHandler mirrors the approval handler with
// Rejected as the target status. The guard set is identical: only an order
// awaiting approval may be rejected.
type DisapproveWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewDisapproveWorkOrderCommandHandler creates a handler for order disapproval.
func NewDisapproveWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) DisapproveWorkOrderCommandHandler {
	return DisapproveWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the disapproval command and returns the aggregate
// rehydrated from the persisted status update.
func (h DisapproveWorkOrderCommandHandler) Handle(
	ctx context.Context,
	cmd DisapproveWorkOrderCommand,
) (*workorder.WorkOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()
	order, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	next, err := order.Status().Disapprove()
	if err != nil {
		return nil, err
	}

	updated, err := repo.UpdateStatus(ctx, cmd.OrderID(), next)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
