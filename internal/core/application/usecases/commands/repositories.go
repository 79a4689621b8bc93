// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"inventory/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequestRepoFactory provides access to the request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// StockRepoFactory provides access to the central stock ledger within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// CustodyRepoFactory provides access to custody balances within a transaction.
	CustodyRepoFactory interface {
		CustodyRepository() ports.CustodyRepository
	}

	// CollegeRepoFactory provides access to the college repository within a transaction.
	CollegeRepoFactory interface {
		CollegeRepository() ports.CollegeRepository
	}

	// RequestUoW manages transactions for request-only operations.
	// Used when commands only touch the request lifecycle (create, reject, pickup).
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	// RequestUoWFactory creates new request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// StockUoW manages transactions for catalog and stock ledger operations.
	StockUoW interface {
		TxManager
		StockRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// CollegeUoW manages transactions for college registration.
	CollegeUoW interface {
		TxManager
		CollegeRepoFactory
	}

	// CollegeUoWFactory creates new college unit of work instances.
	CollegeUoWFactory interface {
		Create() CollegeUoW
	}

	// RequestStockUoW manages transactions coupling a request transition to
	// the central stock ledger. Used by approval (reserve on approve) and
	// return delivery (restock on receipt), where the status change and the
	// stock delta must commit as one unit.
	RequestStockUoW interface {
		TxManager
		RequestRepoFactory
		StockRepoFactory
	}

	// RequestStockUoWFactory creates new request+stock unit of work instances.
	RequestStockUoWFactory interface {
		Create() RequestStockUoW
	}

	// RequestCollegeStockUoW manages transactions for request submission,
	// which must confirm the referenced college and item exist before the
	// pending record is persisted.
	RequestCollegeStockUoW interface {
		TxManager
		RequestRepoFactory
		CollegeRepoFactory
		StockRepoFactory
	}

	// RequestCollegeStockUoWFactory creates new request+college+stock unit of work instances.
	RequestCollegeStockUoWFactory interface {
		Create() RequestCollegeStockUoW
	}

	// RequestCustodyUoW manages transactions coupling a request transition to
	// college custody balances. Used by request delivery (custody up) and
	// return pickup (custody down).
	RequestCustodyUoW interface {
		TxManager
		RequestRepoFactory
		CustodyRepoFactory
	}

	// RequestCustodyUoWFactory creates new request+custody unit of work instances.
	RequestCustodyUoWFactory interface {
		Create() RequestCustodyUoW
	}
)
