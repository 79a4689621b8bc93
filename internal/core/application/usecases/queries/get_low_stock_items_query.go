package queries

import (
	"errors"

	"inventory/internal/pkg/guard"
)

var ErrGetLowStockItemsQueryIsNotConstructed = errors.New(
	"GetLowStockItemsQuery must be created via NewGetLowStockItemsQuery constructor",
)

// GetLowStockItemsQuery retrieves every catalog item whose central quantity
// has fallen to or below its reorder level.
type GetLowStockItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLowStockItemsQuery creates a query for the low stock report.
// This is a parameterless query.
func NewGetLowStockItemsQuery() GetLowStockItemsQuery {
	return GetLowStockItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockItemsQueryIsNotConstructed)
}
