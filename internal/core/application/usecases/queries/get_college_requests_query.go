package queries

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrGetCollegeRequestsQueryIsNotConstructed = errors.New(
	"GetCollegeRequestsQuery must be created via NewGetCollegeRequestsQuery constructor",
)

// GetCollegeRequestsQuery retrieves the full history of one college: every
// request and return it ever filed, in any status.
type GetCollegeRequestsQuery struct { //nolint:recvcheck //using for validation
	collegeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCollegeRequestsQuery creates a query for one college's history.
func NewGetCollegeRequestsQuery(collegeID kernel.UUID) (GetCollegeRequestsQuery, error) {
	q := GetCollegeRequestsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCollegeID(collegeID); err != nil {
		return GetCollegeRequestsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCollegeRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetCollegeRequestsQueryIsNotConstructed)
}

// CollegeID returns the college whose history is being listed.
func (q GetCollegeRequestsQuery) CollegeID() kernel.UUID {
	return q.collegeID
}

func (q *GetCollegeRequestsQuery) setCollegeID(collegeID kernel.UUID) error {
	if err := collegeID.Validate(); err != nil {
		return err
	}

	q.collegeID = collegeID
	return nil
}
