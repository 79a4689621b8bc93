package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each operation.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Each lifecycle operation acquires one unit of work, performs its status
// transition and ledger adjustments inside it, and commits or rolls back as a
// whole, so "status change + stock delta" stays a single commit unit.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// RequestRepository returns a RequestRepository bound to the current transaction.
	RequestRepository() RequestRepository

	// StockRepository returns a StockRepository bound to the current transaction.
	StockRepository() StockRepository

	// CustodyRepository returns a CustodyRepository bound to the current transaction.
	CustodyRepository() CustodyRepository

	// CollegeRepository returns a CollegeRepository bound to the current transaction.
	CollegeRepository() CollegeRepository
}
