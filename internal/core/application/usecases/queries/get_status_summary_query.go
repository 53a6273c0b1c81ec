package queries

import (
	"errors"

	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/guard"
)

var ErrGetStatusSummaryQueryIsNotConstructed = errors.New(
	"GetStatusSummaryQuery must be created via NewGetStatusSummaryQuery constructor",
)

// GetStatusSummaryQuery counts work orders per status. This is a
// parameterless query used by the periodic status report.
type GetStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatusSummaryQuery creates a summary query.
func NewGetStatusSummaryQuery() GetStatusSummaryQuery {
	return GetStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusSummaryQueryIsNotConstructed)
}

// GetStatusSummaryQueryResponse is one row of the per-status count.
type GetStatusSummaryQueryResponse struct {
	Status workorder.Status
	Count  int64
}
