// Package queries contains the read-side operations. Query handlers bypass
// the aggregate's write machinery: list and detail reads go through the
// repository and render external representations, the status summary reads
// the database directly.
package queries

import (
	"errors"

	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/guard"
)

var ErrGetWorkOrdersQueryIsNotConstructed = errors.New(
	"GetWorkOrdersQuery must be created via NewGetWorkOrdersQuery constructor",
)

// GetWorkOrdersQuery retrieves work orders, optionally narrowed to a single
// status. The filter must name one of the nine statuses; whether a given
// status is listable at all is decided by the repository.
type GetWorkOrdersQuery struct {
	status *workorder.Status

	guard guard.ConstructorGuard
}

// NewGetWorkOrdersQuery creates a listing query. A nil status means no filter.
func NewGetWorkOrdersQuery(status *string) (GetWorkOrdersQuery, error) {
	query := GetWorkOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if status != nil {
		candidate := workorder.Status(*status)
		if err := candidate.Validate(); err != nil {
			return GetWorkOrdersQuery{}, err
		}
		query.status = &candidate
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetWorkOrdersQuery) Status() *workorder.Status {
	return q.status
}
