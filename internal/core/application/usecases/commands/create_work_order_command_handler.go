package commands

import (
	"context"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"
)

// CreateWorkOrderCommandHandler handles the business logic for opening work
// orders. It resolves the client and vehicle, enforces the one-unfinished-order
// rule per client, and persists the new order in the Received status.
//
// The unfinished-order check and the insert are not atomic across concurrent
// requests; closing that race is the persistence boundary's concern (a
// uniqueness constraint or row locking), not this handler's.
type CreateWorkOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
}

// NewCreateWorkOrderCommandHandler creates a handler for work-order creation.
func NewCreateWorkOrderCommandHandler(uowFactory IntakeUoWFactory) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command.
// Fails with an object-not-found error when the client or vehicle is absent
// and with a conflict reporting the exact count when the client already has
// unfinished orders. Returns the newly created aggregate.
func (h CreateWorkOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateWorkOrderCommand,
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

	cl, err := uow.ClientRepository().Get(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}

	veh, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.WorkOrderRepository()
	unfinished, err := orderRepo.GetAllOfClientWithStatusNot(ctx, cmd.ClientID(), workorder.Finished)
	if err != nil {
		return nil, err
	}
	if len(unfinished) > 0 {
		return nil, errs.NewConflictError(
			fmt.Sprintf("client has %d unfinished order(s)", len(unfinished)),
		)
	}

	order, err := workorder.NewWorkOrder(kernel.NewUUID(), cl, veh, cmd.Description(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
