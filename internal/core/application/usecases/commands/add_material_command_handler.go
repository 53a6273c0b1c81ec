package commands

import (
	"context"
)

// AddMaterialCommandHandler links a catalog material to a work order.
// The order must still accept additions; finished, cancelled, rejected and
// delivered orders refuse new materials.
type AddMaterialCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewAddMaterialCommandHandler creates a handler for material attachment.
func NewAddMaterialCommandHandler(uowFactory CatalogUoWFactory) AddMaterialCommandHandler {
	return AddMaterialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle attaches the catalog material to the work order and returns the
// identifier of the created link. Resolves the order before the catalog item,
// so a missing order is reported even when the material is missing too.
func (h AddMaterialCommandHandler) Handle(ctx context.Context, cmd AddMaterialCommand) (string, error) {
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

	material, err := uow.MaterialRepository().Get(ctx, cmd.MaterialID())
	if err != nil {
		return "", err
	}

	if err = order.Status().ValidateAttachMaterial(); err != nil {
		return "", err
	}

	linkID, err := orderRepo.LinkMaterial(ctx, order.ID(), material.ID)
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return linkID, nil
}
