package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrDeliverReturnCommandIsNotConstructed = errors.New(
	"DeliverReturnCommand must be created via NewDeliverReturnCommand constructor",
)

// DeliverReturnCommand represents a courier delivering returned items back to
// the central warehouse.
type DeliverReturnCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverReturnCommand creates a command for completing a return delivery.
func NewDeliverReturnCommand(requestID, courierID kernel.UUID) (DeliverReturnCommand, error) {
	cmd := DeliverReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setCourierID(courierID),
	); err != nil {
		return DeliverReturnCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverReturnCommand) Validate() error {
	return c.guard.Validate(ErrDeliverReturnCommandIsNotConstructed)
}

// RequestID returns the identifier of the return being delivered.
func (c DeliverReturnCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CourierID returns the delivering courier's identifier.
func (c DeliverReturnCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *DeliverReturnCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}

func (c *DeliverReturnCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}
