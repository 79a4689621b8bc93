package queries

import (
	"errors"

	"inventory/internal/pkg/guard"
)

var ErrGetPendingRequestsQueryIsNotConstructed = errors.New(
	"GetPendingRequestsQuery must be created via NewGetPendingRequestsQuery constructor",
)

// GetPendingRequestsQuery retrieves all records awaiting a manager decision.
// This is the manager's work queue, ordered oldest first.
type GetPendingRequestsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingRequestsQuery creates a query for the pending queue.
// This is a parameterless query.
func NewGetPendingRequestsQuery() GetPendingRequestsQuery {
	return GetPendingRequestsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingRequestsQueryIsNotConstructed)
}
