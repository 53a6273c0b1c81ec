package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrAddMaterialCommandIsNotConstructed = errors.New(
	"AddMaterialCommand must be created via NewAddMaterialCommand constructor",
)

// AddMaterialCommand represents linking a catalog material to a work order.
type AddMaterialCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	materialID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddMaterialCommand creates a command to link the given catalog material
// to the given work order.
func NewAddMaterialCommand(orderID, materialID string) (AddMaterialCommand, error) {
	cmd := AddMaterialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMaterialID(materialID),
	); err != nil {
		return AddMaterialCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMaterialCommand) Validate() error {
	return c.guard.Validate(ErrAddMaterialCommandIsNotConstructed)
}

// OrderID returns the identifier of the target work order.
func (c AddMaterialCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MaterialID returns the identifier of the catalog material to link.
func (c AddMaterialCommand) MaterialID() kernel.UUID {
	return c.materialID
}

func (c *AddMaterialCommand) setOrderID(raw string) error {
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

func (c *AddMaterialCommand) setMaterialID(raw string) error {
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
