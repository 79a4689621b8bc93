package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRequestsByStageQueryHandler retrieves one stage of one flow from the database.
type GetRequestsByStageQueryHandler struct {
	db *gorm.DB
}

// NewGetRequestsByStageQueryHandler creates a handler for stage queries.
// Requires a GORM database connection for query execution.
func NewGetRequestsByStageQueryHandler(db *gorm.DB) GetRequestsByStageQueryHandler {
	return GetRequestsByStageQueryHandler{db: db}
}

// Handle executes the query to retrieve all records of the given kind in the
// given status, oldest first.
func (h GetRequestsByStageQueryHandler) Handle(
	ctx context.Context,
	query GetRequestsByStageQuery,
) ([]RequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+requestColumns+`
		FROM requests
		WHERE status = ? AND kind = ?
		ORDER BY created_at
	`, int(query.Status()), int(query.Kind())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequestRows(rows)
}
