package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCollegeCustodyQueryHandler retrieves one college's custody balances from
// the database.
type GetCollegeCustodyQueryHandler struct {
	db *gorm.DB
}

// NewGetCollegeCustodyQueryHandler creates a handler for college custody queries.
// Requires a GORM database connection for query execution.
func NewGetCollegeCustodyQueryHandler(db *gorm.DB) GetCollegeCustodyQueryHandler {
	return GetCollegeCustodyQueryHandler{db: db}
}

// Handle executes the query to retrieve every custody balance of the college,
// ordered by item name. Balances that have been released back to zero still
// appear, recording that the college once held the item.
func (h GetCollegeCustodyQueryHandler) Handle(
	ctx context.Context,
	query GetCollegeCustodyQuery,
) ([]CustodyResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+custodyColumns+`
		FROM custody_balances cb
		JOIN colleges c ON c.id = cb.college_id
		JOIN items i ON i.id = cb.item_id
		WHERE cb.college_id = ?
		ORDER BY i.name
	`, query.CollegeID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCustodyRows(rows)
}
