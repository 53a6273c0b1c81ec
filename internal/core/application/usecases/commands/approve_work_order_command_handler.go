package commands

import (
	"context"

	"workshop/internal/core/domain/model/workorder"
)

// ApproveWorkOrderCommandHandler enforces the approval guard: only an order
// awaiting approval may be approved. An already approved order yields a
// conflict; every other status yields a guard violation naming that status.
//
// Example:
//
//	handler := NewApproveWorkOrderCommandHandler(uowFactory)
//	cmd, _ := NewApproveWorkOrderCommand(orderID)
//	order, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict):
//	    // already approved
//	case errors.Is(err, errs.ErrGuardViolation):
//	    // not awaiting approval
//	}
type ApproveWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewApproveWorkOrderCommandHandler creates a handler for order approval.
func NewApproveWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) ApproveWorkOrderCommandHandler {
	return ApproveWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command and returns the aggregate rehydrated
// from the persisted status update.
func (h ApproveWorkOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ApproveWorkOrderCommand,
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

	next, err := order.Status().Approve()
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
