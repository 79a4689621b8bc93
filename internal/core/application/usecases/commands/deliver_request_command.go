package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrDeliverRequestCommandIsNotConstructed = errors.New(
	"DeliverRequestCommand must be created via NewDeliverRequestCommand constructor",
)

// DeliverRequestCommand represents a courier completing delivery of an
// outgoing request to the college.
type DeliverRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverRequestCommand creates a command for completing an outgoing delivery.
func NewDeliverRequestCommand(requestID, courierID kernel.UUID) (DeliverRequestCommand, error) {
	cmd := DeliverRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setCourierID(courierID),
	); err != nil {
		return DeliverRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverRequestCommand) Validate() error {
	return c.guard.Validate(ErrDeliverRequestCommandIsNotConstructed)
}

// RequestID returns the identifier of the record being delivered.
func (c DeliverRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CourierID returns the delivering courier's identifier.
func (c DeliverRequestCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *DeliverRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}

func (c *DeliverRequestCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}
