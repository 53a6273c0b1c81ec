package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrUpdateWorkOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateWorkOrderStatusCommand must be created via NewUpdateWorkOrderStatusCommand constructor",
)

// UpdateWorkOrderStatusCommand represents a generic status change request.
// The raw target string is carried as-is; membership in the status
// enumeration is checked by the handler after the order is resolved, so that
// an unknown order reports not-found before an invalid status reports
// validation.
type UpdateWorkOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	rawStatus string

	guard guard.ConstructorGuard
}

// NewUpdateWorkOrderStatusCommand creates a status update command. An empty
// order identifier is rejected as "identifier not provided".
func NewUpdateWorkOrderStatusCommand(orderID, status string) (UpdateWorkOrderStatusCommand, error) {
	cmd := UpdateWorkOrderStatusCommand{
		rawStatus: status,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateWorkOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateWorkOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateWorkOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RawStatus returns the unvalidated target status string.
func (c UpdateWorkOrderStatusCommand) RawStatus() string {
	return c.rawStatus
}

func (c *UpdateWorkOrderStatusCommand) setOrderID(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errs.NewValueIsRequiredError("work order identifier not provided")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("work order identifier", err)
	}

	c.orderID = id
	return nil
}
