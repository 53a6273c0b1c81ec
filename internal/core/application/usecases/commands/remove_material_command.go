package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrRemoveMaterialCommandIsNotConstructed = errors.New(
	"RemoveMaterialCommand must be created via NewRemoveMaterialCommand constructor",
)

// RemoveMaterialCommand represents detaching a material from a work order.
type RemoveMaterialCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	materialID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveMaterialCommand creates a command to remove the given material link
// from the given work order.
func NewRemoveMaterialCommand(orderID, materialID string) (RemoveMaterialCommand, error) {
	cmd := RemoveMaterialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMaterialID(materialID),
	); err != nil {
		return RemoveMaterialCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMaterialCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMaterialCommandIsNotConstructed)
}

// OrderID returns the identifier of the target work order.
func (c RemoveMaterialCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MaterialID returns the identifier of the material to unlink.
func (c RemoveMaterialCommand) MaterialID() kernel.UUID {
	return c.materialID
}

func (c *RemoveMaterialCommand) setOrderID(raw string) error {
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

func (c *RemoveMaterialCommand) setMaterialID(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errs.NewValueIsRequiredError("material identifier")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("material identifier", err)
	}

	c.materialID = id
	return nil
}
