package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrApproveRequestCommandIsNotConstructed = errors.New(
	"ApproveRequestCommand must be created via NewApproveRequestCommand constructor",
)

// ApproveRequestCommand represents a manager approving a pending request or
// return. For outgoing requests the approval also reserves central stock.
type ApproveRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	managerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveRequestCommand creates a command to approve a pending record.
func NewApproveRequestCommand(requestID, managerID kernel.UUID) (ApproveRequestCommand, error) {
	cmd := ApproveRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setManagerID(managerID),
	); err != nil {
		return ApproveRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRequestCommand) Validate() error {
	return c.guard.Validate(ErrApproveRequestCommandIsNotConstructed)
}

// RequestID returns the identifier of the record being approved.
func (c ApproveRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ManagerID returns the approving manager's identifier.
func (c ApproveRequestCommand) ManagerID() kernel.UUID {
	return c.managerID
}

func (c *ApproveRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}

func (c *ApproveRequestCommand) setManagerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.managerID = id
	return nil
}
