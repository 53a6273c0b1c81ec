package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrAddServiceCommandIsNotConstructed = errors.New(
	"AddServiceCommand must be created via NewAddServiceCommand constructor",
)

// AddServiceCommand represents linking a catalog service to a work order.
type AddServiceCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	serviceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddServiceCommand creates a command to link the given catalog service
// to the given work order.
func NewAddServiceCommand(orderID, serviceID string) (AddServiceCommand, error) {
	cmd := AddServiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setServiceID(serviceID),
	); err != nil {
		return AddServiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddServiceCommand) Validate() error {
	return c.guard.Validate(ErrAddServiceCommandIsNotConstructed)
}

// OrderID returns the identifier of the target work order.
func (c AddServiceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ServiceID returns the identifier of the catalog service to link.
func (c AddServiceCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

func (c *AddServiceCommand) setOrderID(raw string) error {
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

func (c *AddServiceCommand) setServiceID(raw string) error {
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
