package commands

import (
	"context"

	"workshop/internal/core/domain/model/workorder"
)

// UpdateWorkOrderStatusCommandHandler performs the generic status change.
// Unlike approval and disapproval it carries no source-state guard: any valid
// target status is accepted from any current status. The asymmetry with the
// strict approval path is deliberate; the two must stay independent.
//
// When the target is Finished, the gateway stamps the finished-at timestamp
// as a side effect of the status update.
type UpdateWorkOrderStatusCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewUpdateWorkOrderStatusCommandHandler creates a handler for generic status updates.
func NewUpdateWorkOrderStatusCommandHandler(uowFactory WorkOrderUoWFactory) UpdateWorkOrderStatusCommandHandler {
	return UpdateWorkOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order, validates that the target is one of the nine
// enumerated statuses, and performs the status update. The write path is
// never reached with an invalid target. Returns the rehydrated aggregate.
func (h UpdateWorkOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateWorkOrderStatusCommand,
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
	if _, err := repo.Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	target := workorder.Status(cmd.RawStatus())
	if err := target.Validate(); err != nil {
		return nil, err
	}

	updated, err := repo.UpdateStatus(ctx, cmd.OrderID(), target)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
