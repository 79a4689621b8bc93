package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllCustodyQueryHandler retrieves the full custody report from the database.
type GetAllCustodyQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustodyQueryHandler creates a handler for full custody report queries.
// Requires a GORM database connection for query execution.
func NewGetAllCustodyQueryHandler(db *gorm.DB) GetAllCustodyQueryHandler {
	return GetAllCustodyQueryHandler{db: db}
}

// Handle executes the query to retrieve custody balances across colleges,
// grouped by college name and then item name. Balances that have dropped back
// to zero are omitted: the report shows where items currently sit.
func (h GetAllCustodyQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustodyQuery,
) ([]CustodyResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+custodyColumns+`
		FROM custody_balances cb
		JOIN colleges c ON c.id = cb.college_id
		JOIN items i ON i.id = cb.item_id
		WHERE cb.quantity > 0
		ORDER BY c.name, i.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCustodyRows(rows)
}
