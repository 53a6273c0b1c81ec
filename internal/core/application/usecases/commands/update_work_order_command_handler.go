package commands

import (
	"context"

	"workshop/internal/core/domain/model/workorder"
)

// UpdateWorkOrderCommandHandler applies a typed partial update to a work
// order. Business/state legality is not re-checked here: the patch path is
// the generic mutation channel and delegates entirely to the gateway, which
// applies set fields one by one and reports the resulting state.
type UpdateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewUpdateWorkOrderCommandHandler creates a handler for partial updates.
func NewUpdateWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) UpdateWorkOrderCommandHandler {
	return UpdateWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order and delegates the patch to the gateway.
// Returns the rehydrated aggregate reflecting whatever fields were supplied,
// including any status or finished-at side effects the gateway applied.
func (h UpdateWorkOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateWorkOrderCommand,
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

	updated, err := repo.Update(ctx, cmd.OrderID(), cmd.Patch())
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
