package ports

import (
	"context"

	"inventory/internal/core/domain/model/item"
	"inventory/internal/core/domain/model/kernel"
)

// StockRepository defines the persistence contract for the central stock
// ledger: the item catalog and its warehouse quantities.
//
// All quantity mutations are expressed as single atomic statements in the
// adapter (increment-by-delta, conditional decrement), never as a read
// followed by a write in application code. This prevents lost updates when
// two approvals target the same item concurrently.
type StockRepository interface {
	// Add persists a new catalog item.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists catalog edits (name, category, unit, reorder level).
	// Central quantity is not written here; use the adjustment operations.
	Update(ctx context.Context, aggregate *item.Item) error

	// Remove deletes an item from the catalog.
	Remove(ctx context.Context, id kernel.UUID) error

	// Get retrieves an item by its unique identifier.
	// Returns errs.ErrObjectNotFound (wrapped) when no such item exists.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// AdjustCentralStock applies quantity_central += delta as one atomic
	// statement. It does not clamp at zero: callers issuing a negative delta
	// must have already guaranteed sufficiency via ReserveCentralStock.
	AdjustCentralStock(ctx context.Context, itemID kernel.UUID, delta int) error

	// ReserveCentralStock atomically decrements quantity_central by quantity,
	// guarded by quantity_central >= quantity in the same statement. Returns
	// item.ErrInsufficientStock (wrapped) and leaves the ledger unchanged if
	// the guard fails, or errs.ErrObjectNotFound if the item does not exist.
	ReserveCentralStock(ctx context.Context, itemID kernel.UUID, quantity int) error

	// GetLowStock retrieves all items with quantity_central <= reorder_level.
	// Read-only, no side effects.
	GetLowStock(ctx context.Context) ([]*item.Item, error)
}
