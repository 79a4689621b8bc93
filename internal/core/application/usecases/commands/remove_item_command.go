package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a manager removing an item from the central
// catalog.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	managerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove a catalog item.
func NewRemoveItemCommand(itemID, managerID kernel.UUID) (RemoveItemCommand, error) {
	cmd := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setManagerID(managerID),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item being removed.
func (c RemoveItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ManagerID returns the acting manager's identifier.
func (c RemoveItemCommand) ManagerID() kernel.UUID {
	return c.managerID
}

func (c *RemoveItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.itemID = id
	return nil
}

func (c *RemoveItemCommand) setManagerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.managerID = id
	return nil
}
