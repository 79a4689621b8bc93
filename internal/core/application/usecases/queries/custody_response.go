package queries

import (
	"database/sql"

	"inventory/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustodyResponse represents one custody balance in query results. The item
// and college names are joined in so callers do not need a second lookup.
type CustodyResponse struct {
	CollegeID   kernel.UUID
	CollegeName string
	ItemID      kernel.UUID
	ItemName    string
	Quantity    int
}

// custodyColumns is the select list every custody query shares; the scan in
// scanCustodyRows depends on this exact order. The FROM clause must alias
// custody_balances as cb and join colleges c and items i.
const custodyColumns = `
		cb.college_id,
		c.name,
		cb.item_id,
		i.name,
		cb.quantity
`

// scanCustodyRows converts raw custody balance rows into query responses.
func scanCustodyRows(rows *sql.Rows) ([]CustodyResponse, error) {
	responses := make([]CustodyResponse, 0)

	for rows.Next() {
		var (
			collegeID uuid.UUID
			itemID    uuid.UUID
			resp      CustodyResponse
		)

		err := rows.Scan(
			&collegeID,
			&resp.CollegeName,
			&itemID,
			&resp.ItemName,
			&resp.Quantity,
		)
		if err != nil {
			return nil, err
		}

		if resp.CollegeID, err = kernel.UUIDFromBytes(collegeID[:]); err != nil {
			return nil, err
		}
		if resp.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}

		responses = append(responses, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
