package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrApproveWorkOrderCommandIsNotConstructed = errors.New(
	"ApproveWorkOrderCommand must be created via NewApproveWorkOrderCommand constructor",
)

// ApproveWorkOrderCommand represents the client's acceptance of a proposed
// work order that is awaiting approval.
type ApproveWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveWorkOrderCommand creates an approval command for the given order
// identifier. An empty identifier is rejected as "work order not properly
// specified".
func NewApproveWorkOrderCommand(orderID string) (ApproveWorkOrderCommand, error) {
	cmd := ApproveWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ApproveWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveWorkOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to approve.
func (c ApproveWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ApproveWorkOrderCommand) setOrderID(raw string) error {
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
