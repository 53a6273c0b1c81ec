package queries

import (
	"context"
	"errors"

	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"
)

// GetWorkOrderQueryHandler retrieves a single work order in its external form.
//
// Absence is not an error on the read side: both an empty identifier and an
// unknown one yield a nil result with a nil error. Callers decide how to
// present the empty case.
type GetWorkOrderQueryHandler struct {
	repo ports.WorkOrderRepository
}

// NewGetWorkOrderQueryHandler creates a handler for single-order reads.
func NewGetWorkOrderQueryHandler(repo ports.WorkOrderRepository) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{repo: repo}
}

// Handle resolves the order and renders its external representation.
func (h GetWorkOrderQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderQuery,
) (map[string]any, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.HasID() {
		return nil, nil
	}

	order, err := h.repo.Get(ctx, query.ID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return order.Representation(), nil
}
