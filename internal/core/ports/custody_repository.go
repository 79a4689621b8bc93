package ports

import (
	"context"

	"inventory/internal/core/domain/model/custody"
	"inventory/internal/core/domain/model/kernel"
)

// CustodyRepository defines the persistence contract for per-college custody
// balances. Mutations follow the same atomic-statement discipline as the
// stock ledger.
type CustodyRepository interface {
	// Adjust applies quantity += delta to the (college, item) balance with
	// upsert semantics: if no row exists, one is inserted with the delta as
	// its quantity (delta is expected positive on first insert).
	Adjust(ctx context.Context, collegeID, itemID kernel.UUID, delta int) error

	// Release atomically decrements the (college, item) balance by quantity,
	// guarded by quantity >= requested in the same statement. Returns
	// custody.ErrInsufficientCustody (wrapped) and leaves the balance
	// unchanged if the guard fails or no row exists.
	Release(ctx context.Context, collegeID, itemID kernel.UUID, quantity int) error

	// Get retrieves one (college, item) balance.
	// Returns errs.ErrObjectNotFound (wrapped) when no row exists.
	Get(ctx context.Context, collegeID, itemID kernel.UUID) (*custody.Balance, error)

	// GetByCollege retrieves all balances held by one college, including
	// zero-quantity rows; callers filter with Balance.IsHeld as needed.
	GetByCollege(ctx context.Context, collegeID kernel.UUID) ([]*custody.Balance, error)
}
