package queries

import (
	"errors"

	"inventory/internal/pkg/guard"
)

var ErrGetAllCustodyQueryIsNotConstructed = errors.New(
	"GetAllCustodyQuery must be created via NewGetAllCustodyQuery constructor",
)

// GetAllCustodyQuery retrieves custody balances across all colleges. This is
// the manager's view of where the inventory's items currently sit.
type GetAllCustodyQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCustodyQuery creates a query for the full custody report.
// This is a parameterless query.
func NewGetAllCustodyQuery() GetAllCustodyQuery {
	return GetAllCustodyQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCustodyQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustodyQueryIsNotConstructed)
}
