package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetLowStockItemsQueryHandler retrieves the low stock report from the database.
type GetLowStockItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockItemsQueryHandler creates a handler for low stock report queries.
// Requires a GORM database connection for query execution.
func NewGetLowStockItemsQueryHandler(db *gorm.DB) GetLowStockItemsQueryHandler {
	return GetLowStockItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve all items at or below their reorder
// level, ordered by name. An item exactly at its reorder level is included.
func (h GetLowStockItemsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockItemsQuery,
) ([]ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+itemColumns+`
		FROM items
		WHERE quantity_central <= reorder_level
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItemRows(rows)
}
