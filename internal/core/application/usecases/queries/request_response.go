// Package queries contains read-only operations for the CQRS read side.
// Query handlers go straight to the database with raw SQL, bypassing the
// domain aggregates; responses carry the canonical display strings for
// status and kind.
package queries

import (
	"database/sql"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestResponse represents one request or return record in query results.
type RequestResponse struct {
	ID              kernel.UUID
	CollegeID       kernel.UUID
	ItemID          kernel.UUID
	CourierID       *kernel.UUID
	Quantity        int
	Purpose         string
	Kind            string
	Status          string
	RejectionReason string
	CreatedAt       time.Time
}

// requestColumns is the select list every request query shares; the scan in
// scanRequestRows depends on this exact order.
const requestColumns = `
		id,
		college_id,
		item_id,
		courier_id,
		quantity,
		purpose,
		kind,
		status,
		rejection_reason,
		created_at
`

// scanRequestRows converts raw request rows into query responses.
func scanRequestRows(rows *sql.Rows) ([]RequestResponse, error) {
	responses := make([]RequestResponse, 0)

	for rows.Next() {
		var (
			id        uuid.UUID
			collegeID uuid.UUID
			itemID    uuid.UUID
			courierID *uuid.UUID
			resp      RequestResponse
			kind      int
			status    int
		)

		err := rows.Scan(
			&id,
			&collegeID,
			&itemID,
			&courierID,
			&resp.Quantity,
			&resp.Purpose,
			&kind,
			&status,
			&resp.RejectionReason,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CollegeID, err = kernel.UUIDFromBytes(collegeID[:]); err != nil {
			return nil, err
		}
		if resp.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		if courierID != nil {
			cID, idErr := kernel.UUIDFromBytes((*courierID)[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.CourierID = &cID
		}

		resp.Kind = request.Kind(kind).String()
		resp.Status = request.Status(status).String()
		responses = append(responses, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
