package queries

import (
	"errors"

	"inventory/internal/pkg/guard"
)

var ErrGetItemsQueryIsNotConstructed = errors.New(
	"GetItemsQuery must be created via NewGetItemsQuery constructor",
)

// GetItemsQuery retrieves the item catalog, optionally narrowed to a single
// category. An empty category means the full catalog.
type GetItemsQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewGetItemsQuery creates a query for the catalog listing.
func NewGetItemsQuery(category string) GetItemsQuery {
	return GetItemsQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemsQueryIsNotConstructed)
}

// Category returns the category filter; empty means no filter.
func (q GetItemsQuery) Category() string {
	return q.category
}
