package queries

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrGetWorkOrderQueryIsNotConstructed = errors.New(
	"GetWorkOrderQuery must be created via NewGetWorkOrderQuery constructor",
)

// GetWorkOrderQuery retrieves a single work order by identifier. An empty
// identifier is tolerated at construction: the handler answers it with an
// empty result instead of an error, and never reaches the repository.
type GetWorkOrderQuery struct {
	id    kernel.UUID
	hasID bool

	guard guard.ConstructorGuard
}

// NewGetWorkOrderQuery creates a detail query for the given identifier.
func NewGetWorkOrderQuery(id string) (GetWorkOrderQuery, error) {
	query := GetWorkOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(id) == "" {
		return query, nil
	}

	parsed, err := kernel.UUIDFromString(id)
	if err != nil {
		return GetWorkOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("work order identifier", err)
	}

	query.id = parsed
	query.hasID = true
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}

// ID returns the requested identifier.
func (q GetWorkOrderQuery) ID() kernel.UUID {
	return q.id
}

// HasID reports whether an identifier was supplied.
func (q GetWorkOrderQuery) HasID() bool {
	return q.hasID
}
