package queries

import (
	"database/sql"

	"inventory/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemResponse represents one catalog item in query results.
type ItemResponse struct {
	ID              kernel.UUID
	Name            string
	Category        string
	Unit            string
	QuantityCentral int
	ReorderLevel    int
}

// itemColumns is the column list every item query selects, in the order
// scanItemRows expects.
const itemColumns = `
	id,
	name,
	category,
	unit,
	quantity_central,
	reorder_level`

func scanItemRows(rows *sql.Rows) ([]ItemResponse, error) {
	responses := make([]ItemResponse, 0)

	for rows.Next() {
		var (
			id   uuid.UUID
			resp ItemResponse
		)

		err := rows.Scan(
			&id,
			&resp.Name,
			&resp.Category,
			&resp.Unit,
			&resp.QuantityCentral,
			&resp.ReorderLevel,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		responses = append(responses, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
