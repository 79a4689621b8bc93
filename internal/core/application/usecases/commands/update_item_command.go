package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a manager editing the catalog fields of an
// existing item. The central quantity is not part of the edit; it moves only
// through stock adjustments.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	itemID       kernel.UUID
	managerID    kernel.UUID
	name         string
	category     string
	unit         string
	reorderLevel int

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to edit a catalog item.
func NewUpdateItemCommand(
	itemID kernel.UUID,
	managerID kernel.UUID,
	name, category, unit string,
	reorderLevel int,
) (UpdateItemCommand, error) {
	cmd := UpdateItemCommand{
		category: category,
		unit:     unit,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setManagerID(managerID),
		cmd.setName(name),
		cmd.setReorderLevel(reorderLevel),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item being edited.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ManagerID returns the acting manager's identifier.
func (c UpdateItemCommand) ManagerID() kernel.UUID {
	return c.managerID
}

// Name returns the item's new display name.
func (c UpdateItemCommand) Name() string {
	return c.name
}

// Category returns the item's new grouping label.
func (c UpdateItemCommand) Category() string {
	return c.category
}

// Unit returns the item's new unit of measure.
func (c UpdateItemCommand) Unit() string {
	return c.unit
}

// ReorderLevel returns the new low-stock threshold.
func (c UpdateItemCommand) ReorderLevel() int {
	return c.reorderLevel
}

func (c *UpdateItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.itemID = id
	return nil
}

func (c *UpdateItemCommand) setManagerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.managerID = id
	return nil
}

func (c *UpdateItemCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateItemCommand) setReorderLevel(level int) error {
	if level < 0 {
		return ErrReorderLevelIsInvalid
	}

	c.reorderLevel = level
	return nil
}
