package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrItemNameIsRequired       = errors.New("name is required")
	ErrInitialQuantityIsInvalid = errors.New("initial quantity must not be negative")
	ErrReorderLevelIsInvalid    = errors.New("reorder level must not be negative")
)

// AddItemCommand represents a manager adding a new item to the central
// catalog with an initial warehouse quantity and reorder threshold.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	itemID          kernel.UUID
	managerID       kernel.UUID
	name            string
	category        string
	unit            string
	quantityCentral int
	reorderLevel    int

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to register a new catalog item.
func NewAddItemCommand(
	itemID kernel.UUID,
	managerID kernel.UUID,
	name, category, unit string,
	quantityCentral, reorderLevel int,
) (AddItemCommand, error) {
	cmd := AddItemCommand{
		category: category,
		unit:     unit,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setManagerID(managerID),
		cmd.setName(name),
		cmd.setQuantityCentral(quantityCentral),
		cmd.setReorderLevel(reorderLevel),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the new item.
func (c AddItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ManagerID returns the acting manager's identifier.
func (c AddItemCommand) ManagerID() kernel.UUID {
	return c.managerID
}

// Name returns the item's display name.
func (c AddItemCommand) Name() string {
	return c.name
}

// Category returns the item's grouping label.
func (c AddItemCommand) Category() string {
	return c.category
}

// Unit returns the item's unit of measure.
func (c AddItemCommand) Unit() string {
	return c.unit
}

// QuantityCentral returns the initial central warehouse quantity.
func (c AddItemCommand) QuantityCentral() int {
	return c.quantityCentral
}

// ReorderLevel returns the low-stock threshold.
func (c AddItemCommand) ReorderLevel() int {
	return c.reorderLevel
}

func (c *AddItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.itemID = id
	return nil
}

func (c *AddItemCommand) setManagerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.managerID = id
	return nil
}

func (c *AddItemCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddItemCommand) setQuantityCentral(quantity int) error {
	if quantity < 0 {
		return ErrInitialQuantityIsInvalid
	}

	c.quantityCentral = quantity
	return nil
}

func (c *AddItemCommand) setReorderLevel(level int) error {
	if level < 0 {
		return ErrReorderLevelIsInvalid
	}

	c.reorderLevel = level
	return nil
}
