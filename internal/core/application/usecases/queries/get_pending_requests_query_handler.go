package queries

import (
	"context"

	"inventory/internal/core/domain/model/request"

	"gorm.io/gorm"
)

// GetPendingRequestsQueryHandler retrieves the pending queue from the database.
type GetPendingRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingRequestsQueryHandler creates a handler for pending queue queries.
// Requires a GORM database connection for query execution.
func NewGetPendingRequestsQueryHandler(db *gorm.DB) GetPendingRequestsQueryHandler {
	return GetPendingRequestsQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending records, oldest first.
func (h GetPendingRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingRequestsQuery,
) ([]RequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+requestColumns+`
		FROM requests
		WHERE status = ?
		ORDER BY created_at
	`, int(request.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequestRows(rows)
}
