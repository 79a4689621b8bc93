package queries

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrGetCollegeCustodyQueryIsNotConstructed = errors.New(
	"GetCollegeCustodyQuery must be created via NewGetCollegeCustodyQuery constructor",
)

// GetCollegeCustodyQuery retrieves the custody balances of one college: how
// many units of each item it currently holds.
type GetCollegeCustodyQuery struct { //nolint:recvcheck //using for validation
	collegeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCollegeCustodyQuery creates a query for one college's custody balances.
func NewGetCollegeCustodyQuery(collegeID kernel.UUID) (GetCollegeCustodyQuery, error) {
	q := GetCollegeCustodyQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCollegeID(collegeID); err != nil {
		return GetCollegeCustodyQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCollegeCustodyQuery) Validate() error {
	return q.guard.Validate(ErrGetCollegeCustodyQueryIsNotConstructed)
}

// CollegeID returns the college whose balances are being listed.
func (q GetCollegeCustodyQuery) CollegeID() kernel.UUID {
	return q.collegeID
}

func (q *GetCollegeCustodyQuery) setCollegeID(collegeID kernel.UUID) error {
	if err := collegeID.Validate(); err != nil {
		return err
	}

	q.collegeID = collegeID
	return nil
}
