package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetItemsQueryHandler retrieves the catalog listing from the database.
type GetItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetItemsQueryHandler creates a handler for catalog listing queries.
// Requires a GORM database connection for query execution.
func NewGetItemsQueryHandler(db *gorm.DB) GetItemsQueryHandler {
	return GetItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve the item catalog ordered by name.
// A non-empty category narrows the listing to that category.
func (h GetItemsQueryHandler) Handle(
	ctx context.Context,
	query GetItemsQuery,
) ([]ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT ` + itemColumns + `
		FROM items
		ORDER BY name
	`
	args := make([]any, 0, 1)
	if query.Category() != "" {
		stmt = `
			SELECT ` + itemColumns + `
			FROM items
			WHERE category = ?
			ORDER BY name
		`
		args = append(args, query.Category())
	}

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItemRows(rows)
}
