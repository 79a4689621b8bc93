package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/request"
	"inventory/internal/pkg/guard"
)

var (
	ErrCreateRequestCommandIsNotConstructed = errors.New(
		"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// CreateRequestCommand represents a college submitting a new request or
// return. No stock moves at this point; the record simply enters the
// manager's pending queue.
//
// Example:
//
//	requestID := kernel.NewUUID()
//	cmd, err := NewCreateRequestCommand(requestID, collegeID, itemID, 5, "chemistry lab", request.KindRequest)
//	if err != nil {
//	    return fmt.Errorf("invalid request data: %w", err)
//	}
//
//	handler := NewCreateRequestCommandHandler(uowFactory, auditLog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create request: %w", err)
//	}
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	collegeID kernel.UUID
	itemID    kernel.UUID
	quantity  int
	purpose   string
	kind      request.Kind

	guard guard.ConstructorGuard
}

// NewCreateRequestCommand creates a command to register a new request or return.
// Validates that all identifiers are valid, the quantity is positive, and the
// kind names a known flow. Returns an error if any validation fails.
func NewCreateRequestCommand(
	requestID kernel.UUID,
	collegeID kernel.UUID,
	itemID kernel.UUID,
	quantity int,
	purpose string,
	kind request.Kind,
) (CreateRequestCommand, error) {
	cmd := CreateRequestCommand{
		purpose: purpose,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setCollegeID(collegeID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
		cmd.setKind(kind),
	); err != nil {
		return CreateRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRequestCommandIsNotConstructed if validation fails.
func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the new record.
func (c CreateRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CollegeID returns the requesting college's identifier.
func (c CreateRequestCommand) CollegeID() kernel.UUID {
	return c.collegeID
}

// ItemID returns the inventory item's identifier.
func (c CreateRequestCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the number of units requested or returned.
func (c CreateRequestCommand) Quantity() int {
	return c.quantity
}

// Purpose returns the free-form notes supplied by the college.
func (c CreateRequestCommand) Purpose() string {
	return c.purpose
}

// Kind returns the flow discriminator (KindRequest or KindReturn).
func (c CreateRequestCommand) Kind() request.Kind {
	return c.kind
}

func (c *CreateRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}

func (c *CreateRequestCommand) setCollegeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.collegeID = id
	return nil
}

func (c *CreateRequestCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.itemID = id
	return nil
}

func (c *CreateRequestCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateRequestCommand) setKind(kind request.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}
