package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrDisapproveWorkOrderCommandIsNotConstructed = errors.New(
	"DisapproveWorkOrderCommand must be created via NewDisapproveWorkOrderCommand constructor",
)

// DisapproveWorkOrderCommand represents the client's rejection of a proposed
// work order that is awaiting approval.
type DisapproveWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDisapproveWorkOrderCommand creates a disapproval command for the given
// order identifier.
func NewDisapproveWorkOrderCommand(orderID string) (DisapproveWorkOrderCommand, error) {
	cmd := DisapproveWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DisapproveWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DisapproveWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrDisapproveWorkOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to reject.
func (c DisapproveWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DisapproveWorkOrderCommand) setOrderID(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errs.NewValueIsRequiredError("work order not properly specified")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("work order identifier", err)
	}

	c.orderID = id
	return nil
}
