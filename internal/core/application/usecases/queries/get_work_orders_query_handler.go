package queries

import (
	"context"

	"workshop/internal/core/ports"
)

// GetWorkOrdersQueryHandler lists work orders in their external form.
type GetWorkOrdersQueryHandler struct {
	repo ports.WorkOrderRepository
}

// NewGetWorkOrdersQueryHandler creates a handler for work-order listings.
func NewGetWorkOrdersQueryHandler(repo ports.WorkOrderRepository) GetWorkOrdersQueryHandler {
	return GetWorkOrdersQueryHandler{repo: repo}
}

// Handle retrieves matching orders and renders each as its external
// representation, including computed totals in major currency units.
func (h GetWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrdersQuery,
) ([]map[string]any, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.List(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	result := make([]map[string]any, 0, len(orders))
	for _, order := range orders {
		result = append(result, order.Representation())
	}

	return result, nil
}
