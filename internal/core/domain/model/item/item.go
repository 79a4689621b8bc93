// Package item provides the Item aggregate for the central inventory catalog.
// An Item carries the central warehouse quantity and the reorder threshold
// used for low-stock alerting.
//
// Key business rules:
//   - Central quantity and reorder level are never negative
//   - An item is low on stock when its central quantity is at or below the
//     reorder level
//   - Central quantity is mutated only through atomic ledger adjustments in
//     the storage layer; the aggregate itself is a consistent snapshot
package item

import (
	"errors"
	"fmt"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrInsufficientStock is returned when a stock reservation asks for more
	// units than the central warehouse holds. The reservation is refused and
	// the central quantity is left unchanged.
	ErrInsufficientStock = errors.New("insufficient central stock")
)

// Item is the aggregate root for one catalog entry in the central inventory.
type Item struct {
	id              kernel.UUID
	name            string
	category        string
	unit            string
	quantityCentral int
	reorderLevel    int

	guard guard.ConstructorGuard
}

// NewItem creates a new catalog item.
//
// Parameters:
//   - id: unique identifier
//   - name: display name (required)
//   - category: free-form grouping label
//   - unit: unit of measure, e.g. "box" or "piece"
//   - quantityCentral: initial central warehouse quantity (non-negative)
//   - reorderLevel: low-stock threshold (non-negative)
func NewItem(id kernel.UUID, name, category, unit string, quantityCentral, reorderLevel int) (*Item, error) {
	it := &Item{
		category: category,
		unit:     unit,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setName(name),
		it.setQuantityCentral(quantityCentral),
		it.setReorderLevel(reorderLevel),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// RestoreItem reconstructs an Item aggregate from persistent storage.
func RestoreItem(id kernel.UUID, name, category, unit string, quantityCentral, reorderLevel int) (*Item, error) {
	return NewItem(id, name, category, unit, quantityCentral, reorderLevel)
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Category returns the item's grouping label.
func (i *Item) Category() string {
	return i.category
}

// Unit returns the item's unit of measure.
func (i *Item) Unit() string {
	return i.unit
}

// QuantityCentral returns the central warehouse quantity in this snapshot.
func (i *Item) QuantityCentral() int {
	return i.quantityCentral
}

// ReorderLevel returns the low-stock threshold.
func (i *Item) ReorderLevel() int {
	return i.reorderLevel
}

// UpdateDetails replaces the catalog fields of the item. The central quantity
// is untouched; it moves only through the ledger adjustments.
func (i *Item) UpdateDetails(name, category, unit string, reorderLevel int) error {
	if err := errors.Join(
		i.setName(name),
		i.setReorderLevel(reorderLevel),
	); err != nil {
		return err
	}

	i.category = category
	i.unit = unit
	return nil
}

// IsLowStock reports whether the central quantity is at or below the reorder level.
func (i *Item) IsLowStock() bool {
	return i.quantityCentral <= i.reorderLevel
}

// CanFulfill reports whether the central quantity covers the requested number
// of units. This is a snapshot check only; the authoritative sufficiency guard
// is the conditional decrement in the stock repository.
func (i *Item) CanFulfill(quantity int) bool {
	return quantity > 0 && i.quantityCentral >= quantity
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantityCentral(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantityCentral is invalid",
			fmt.Errorf("%d is negative", quantity))
	}
	i.quantityCentral = quantity
	return nil
}

func (i *Item) setReorderLevel(level int) error {
	if level < 0 {
		return errs.NewValueIsInvalidErrorWithCause("reorderLevel is invalid",
			fmt.Errorf("%d is negative", level))
	}
	i.reorderLevel = level
	return nil
}
