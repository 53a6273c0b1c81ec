package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
	"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
)

// CreateWorkOrderCommand represents a request to open a new work order for a
// client's vehicle. The description is optional free text from the intake desk.
//
// Example:
//
//	cmd, err := NewCreateWorkOrderCommand(clientID, vehicleID, &description)
//	if err != nil {
//	    return fmt.Errorf("invalid work order data: %w", err)
//	}
//
//	order, err := handler.Handle(ctx, cmd)
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	clientID    kernel.UUID
	vehicleID   kernel.UUID
	description *string

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a command to open a work order.
// The client and vehicle identifiers must be non-empty valid UUID strings.
func NewCreateWorkOrderCommand(clientID, vehicleID string, description *string) (CreateWorkOrderCommand, error) {
	cmd := CreateWorkOrderCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setVehicleID(vehicleID),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// ClientID returns the identifier of the client opening the order.
func (c CreateWorkOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// VehicleID returns the identifier of the vehicle under repair.
func (c CreateWorkOrderCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Description returns the optional intake description.
func (c CreateWorkOrderCommand) Description() *string {
	return c.description
}

func (c *CreateWorkOrderCommand) setClientID(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errs.NewValueIsRequiredError("client identifier")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("client identifier", err)
	}

	c.clientID = id
	return nil
}

func (c *CreateWorkOrderCommand) setVehicleID(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errs.NewValueIsRequiredError("vehicle identifier")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicle identifier", err)
	}

	c.vehicleID = id
	return nil
}
