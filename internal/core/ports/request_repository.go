// Package ports defines repository interfaces for the inventory domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for request aggregates.
type RequestRepository interface {
	// Add persists a new request aggregate to storage.
	// The request must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *request.Request) error

	// Get retrieves a request aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound (wrapped) when no such request exists.
	Get(ctx context.Context, id kernel.UUID) (*request.Request, error)

	// Transition persists the aggregate's current state under a conditional
	// update guard: the write only applies if the stored row still carries
	// the expected prior status. When zero rows match (the request was
	// transitioned concurrently, or the caller held a stale view) it returns
	// request.ErrInvalidTransition (wrapped) and the store is unchanged.
	//
	// This guard is the system's sole concurrency-correctness mechanism for
	// request lifecycles: at most one writer wins any given transition,
	// losers must re-fetch and retry.
	Transition(ctx context.Context, aggregate *request.Request, expectedCurrent request.Status) error
}
