package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var (
	ErrRejectRequestCommandIsNotConstructed = errors.New(
		"RejectRequestCommand must be created via NewRejectRequestCommand constructor",
	)
	ErrReasonIsRequired = errors.New("reason is required")
)

// RejectRequestCommand represents a manager declining a pending record with a
// mandatory reason. Rejection is terminal and moves no stock.
type RejectRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	managerID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewRejectRequestCommand creates a command to reject a pending record.
func NewRejectRequestCommand(requestID, managerID kernel.UUID, reason string) (RejectRequestCommand, error) {
	cmd := RejectRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setManagerID(managerID),
		cmd.setReason(reason),
	); err != nil {
		return RejectRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectRequestCommandIsNotConstructed)
}

// RequestID returns the identifier of the record being rejected.
func (c RejectRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ManagerID returns the rejecting manager's identifier.
func (c RejectRequestCommand) ManagerID() kernel.UUID {
	return c.managerID
}

// Reason returns the manager's rejection reason.
func (c RejectRequestCommand) Reason() string {
	return c.reason
}

func (c *RejectRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}

func (c *RejectRequestCommand) setManagerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.managerID = id
	return nil
}

func (c *RejectRequestCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
