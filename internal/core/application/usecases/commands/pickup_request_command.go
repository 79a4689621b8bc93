package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrPickupRequestCommandIsNotConstructed = errors.New(
	"PickupRequestCommand must be created via NewPickupRequestCommand constructor",
)

// PickupRequestCommand represents a courier collecting an approved outgoing
// request from the central warehouse.
type PickupRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickupRequestCommand creates a command for a courier pickup of an
// approved outgoing request.
func NewPickupRequestCommand(requestID, courierID kernel.UUID) (PickupRequestCommand, error) {
	cmd := PickupRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setCourierID(courierID),
	); err != nil {
		return PickupRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupRequestCommand) Validate() error {
	return c.guard.Validate(ErrPickupRequestCommandIsNotConstructed)
}

// RequestID returns the identifier of the record being picked up.
func (c PickupRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CourierID returns the collecting courier's identifier.
func (c PickupRequestCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *PickupRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}

func (c *PickupRequestCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}
