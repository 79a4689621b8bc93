// Package custody provides the custody balance entity: the quantity of an
// item physically held by a college, distinct from the central warehouse
// count. Balances increase on delivery and decrease on return pickup; a
// balance with quantity zero is treated as absent for return eligibility.
package custody

import (
	"errors"
	"fmt"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var (
	// ErrBalanceIsNotConstructed is returned when using an improperly initialized Balance.
	ErrBalanceIsNotConstructed = errors.New("Balance must be created via NewBalance")

	// ErrInsufficientCustody is returned when a return pickup would drive a
	// college's custody balance negative. The decrement is refused and the
	// balance is left unchanged.
	ErrInsufficientCustody = errors.New("insufficient college custody")
)

// Balance is one (college, item) custody row: the number of units the college
// currently holds. Mutations happen through atomic ledger adjustments in the
// storage layer; the entity is a consistent snapshot used by read models and
// return-eligibility checks.
type Balance struct {
	collegeID kernel.UUID
	itemID    kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewBalance creates a custody balance snapshot.
// Quantity must be non-negative; custody never goes below zero.
func NewBalance(collegeID, itemID kernel.UUID, quantity int) (*Balance, error) {
	b := &Balance{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setCollegeID(collegeID),
		b.setItemID(itemID),
		b.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the Balance instance was properly constructed.
func (b *Balance) Validate() error {
	if b == nil {
		return ErrBalanceIsNotConstructed
	}
	return b.guard.Validate(ErrBalanceIsNotConstructed)
}

// CollegeID returns the holding college's identifier.
func (b *Balance) CollegeID() kernel.UUID {
	return b.collegeID
}

// ItemID returns the held item's identifier.
func (b *Balance) ItemID() kernel.UUID {
	return b.itemID
}

// Quantity returns the number of units held in this snapshot.
func (b *Balance) Quantity() int {
	return b.quantity
}

// IsHeld reports whether the balance counts for return eligibility.
// A zero-quantity row is logically absent.
func (b *Balance) IsHeld() bool {
	return b.quantity > 0
}

// CanRelease reports whether the balance covers a return of the given size.
// This is a snapshot check only; the authoritative guard is the conditional
// decrement in the custody repository.
func (b *Balance) CanRelease(quantity int) bool {
	return quantity > 0 && b.quantity >= quantity
}

func (b *Balance) setCollegeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("collegeID: %w", err)
	}
	b.collegeID = id
	return nil
}

func (b *Balance) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("itemID: %w", err)
	}
	b.itemID = id
	return nil
}

func (b *Balance) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is negative", quantity))
	}
	b.quantity = quantity
	return nil
}
