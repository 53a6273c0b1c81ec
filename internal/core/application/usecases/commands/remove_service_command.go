package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrRemoveServiceCommandIsNotConstructed = errors.New(
	"RemoveServiceCommand must be created via NewRemoveServiceCommand constructor",
)

// RemoveServiceCommand represents detaching a service from a work order.
type RemoveServiceCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	serviceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveServiceCommand creates a command to remove the given service link
// from the given work order.
func NewRemoveServiceCommand(orderID, serviceID string) (RemoveServiceCommand, error) {
	cmd := RemoveServiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setServiceID(serviceID),
	); err != nil {
		return RemoveServiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveServiceCommand) Validate() error {
	return c.guard.Validate(ErrRemoveServiceCommandIsNotConstructed)
}

// OrderID returns the identifier of the target work order.
func (c RemoveServiceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ServiceID returns the identifier of the service to unlink.
func (c RemoveServiceCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

func (c *RemoveServiceCommand) setOrderID(raw string) error {
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

func (c *RemoveServiceCommand) setServiceID(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errs.NewValueIsRequiredError("service identifier")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("service identifier", err)
	}

	c.serviceID = id
	return nil
}
