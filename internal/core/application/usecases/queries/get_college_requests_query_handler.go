package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCollegeRequestsQueryHandler retrieves one college's history from the database.
type GetCollegeRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetCollegeRequestsQueryHandler creates a handler for college history queries.
// Requires a GORM database connection for query execution.
func NewGetCollegeRequestsQueryHandler(db *gorm.DB) GetCollegeRequestsQueryHandler {
	return GetCollegeRequestsQueryHandler{db: db}
}

// Handle executes the query to retrieve every record filed by the college,
// oldest first.
func (h GetCollegeRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetCollegeRequestsQuery,
) ([]RequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+requestColumns+`
		FROM requests
		WHERE college_id = ?
		ORDER BY created_at
	`, query.CollegeID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequestRows(rows)
}
