package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrDeleteWorkOrderCommandIsNotConstructed = errors.New(
	"DeleteWorkOrderCommand must be created via NewDeleteWorkOrderCommand constructor",
)

// DeleteWorkOrderCommand represents the physical removal of a work order.
// Deletion carries no status guard: any order may be removed.
type DeleteWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteWorkOrderCommand creates a deletion command for the given order identifier.
func NewDeleteWorkOrderCommand(orderID string) (DeleteWorkOrderCommand, error) {
	cmd := DeleteWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeleteWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWorkOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DeleteWorkOrderCommand) setOrderID(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errs.NewValueIsRequiredError("work order identifier")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("work order identifier", err)
	}

	c.orderID = id
	return nil
}
