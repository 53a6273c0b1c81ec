package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrUpdateWorkOrderCommandIsNotConstructed = errors.New(
	"UpdateWorkOrderCommand must be created via NewUpdateWorkOrderCommand constructor",
)

// UpdateWorkOrderCommand represents a partial update of a work order's
// mutable fields: description and/or status, with an optional finished-at
// override. Nil patch fields are left untouched by the gateway.
type UpdateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	patch   workorder.Patch

	guard guard.ConstructorGuard
}

// NewUpdateWorkOrderCommand creates a partial update command. An empty order
// identifier is rejected as "identifier not provided".
func NewUpdateWorkOrderCommand(orderID string, patch workorder.Patch) (UpdateWorkOrderCommand, error) {
	cmd := UpdateWorkOrderCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Patch returns the typed partial update to apply.
func (c UpdateWorkOrderCommand) Patch() workorder.Patch {
	return c.patch
}

func (c *UpdateWorkOrderCommand) setOrderID(raw string) error {
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
