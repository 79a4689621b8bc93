package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrPickupReturnCommandIsNotConstructed = errors.New(
	"PickupReturnCommand must be created via NewPickupReturnCommand constructor",
)

// PickupReturnCommand represents a courier collecting an approved return from
// the college.
type PickupReturnCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickupReturnCommand creates a command for a courier pickup of an
// approved return.
func NewPickupReturnCommand(requestID, courierID kernel.UUID) (PickupReturnCommand, error) {
	cmd := PickupReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setCourierID(courierID),
	); err != nil {
		return PickupReturnCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupReturnCommand) Validate() error {
	return c.guard.Validate(ErrPickupReturnCommandIsNotConstructed)
}

// RequestID returns the identifier of the return being picked up.
func (c PickupReturnCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CourierID returns the collecting courier's identifier.
func (c PickupReturnCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *PickupReturnCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}

func (c *PickupReturnCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}
