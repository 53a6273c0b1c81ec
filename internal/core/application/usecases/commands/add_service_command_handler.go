package commands

import (
	"context"
)

// AddServiceCommandHandler links a catalog service to a work order.
// The order must still accept additions; finished, cancelled, rejected and
// delivered orders refuse new services.
type AddServiceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewAddServiceCommandHandler creates a handler for service attachment.
func NewAddServiceCommandHandler(uowFactory CatalogUoWFactory) AddServiceCommandHandler {
	return AddServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle attaches the catalog service to the work order and returns the
// identifier of the created link. Resolves the order before the catalog item,
// so a missing order is reported even when the service is missing too.
func (h AddServiceCommandHandler) Handle(ctx context.Context, cmd AddServiceCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.WorkOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	service, err := uow.ServiceRepository().Get(ctx, cmd.ServiceID())
	if err != nil {
		return "", err
	}

	if err = order.Status().ValidateAttachService(); err != nil {
		return "", err
	}

	linkID, err := orderRepo.LinkService(ctx, order.ID(), service.ID)
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return linkID, nil
}
