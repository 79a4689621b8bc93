package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
	ErrDeltaIsZero = errors.New("delta must not be zero")
)

// AdjustStockCommand represents a manual correction to the central warehouse
// quantity, such as a physical recount or recorded damage. The delta may be
// positive or negative but never zero.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	managerID kernel.UUID
	delta     int

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command for a manual stock correction.
func NewAdjustStockCommand(itemID, managerID kernel.UUID, delta int) (AdjustStockCommand, error) {
	cmd := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setManagerID(managerID),
		cmd.setDelta(delta),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// ItemID returns the identifier of the item being corrected.
func (c AdjustStockCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ManagerID returns the acting manager's identifier.
func (c AdjustStockCommand) ManagerID() kernel.UUID {
	return c.managerID
}

// Delta returns the signed correction to apply.
func (c AdjustStockCommand) Delta() int {
	return c.delta
}

func (c *AdjustStockCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.itemID = id
	return nil
}

func (c *AdjustStockCommand) setManagerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.managerID = id
	return nil
}

func (c *AdjustStockCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsZero
	}

	c.delta = delta
	return nil
}
