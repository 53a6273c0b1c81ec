package commands

import (
	"context"
	"errors"

	"workshop/internal/pkg/errs"
)

// DeleteWorkOrderCommandHandler removes a work order with no guard on its
// current status and passes the gateway's boolean result through verbatim.
//
// An absent order is reported as a validation error ("not found by given
// identifier") rather than a not-found error. The divergence from the other
// operations' not-found class is historical and preserved as-is.
type DeleteWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewDeleteWorkOrderCommandHandler creates a handler for order deletion.
func NewDeleteWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) DeleteWorkOrderCommandHandler {
	return DeleteWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command and returns the gateway's boolean
// result without transformation.
func (h DeleteWorkOrderCommandHandler) Handle(ctx context.Context, cmd DeleteWorkOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()
	if _, err := repo.Get(ctx, cmd.OrderID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, errs.NewValueIsInvalidErrorWithCause(
				"work order not found by given identifier", err,
			)
		}
		return false, err
	}

	deleted, err := repo.Delete(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	if err := uow.Commit(ctx); err != nil {
		return false, err
	}

	return deleted, nil
}
