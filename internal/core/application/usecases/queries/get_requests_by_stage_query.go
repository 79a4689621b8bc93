package queries

import (
	"errors"

	"inventory/internal/core/domain/model/request"
	"inventory/internal/pkg/guard"
)

var ErrGetRequestsByStageQueryIsNotConstructed = errors.New(
	"GetRequestsByStageQuery must be created via NewGetRequestsByStageQuery constructor",
)

// GetRequestsByStageQuery retrieves all records of one kind sitting in one
// lifecycle status. Couriers use it for their pickup and delivery queues
// ("Approved - Ready for Pickup", "In Transit to College", and the return
// counterparts).
type GetRequestsByStageQuery struct { //nolint:recvcheck //using for validation
	status request.Status
	kind   request.Kind

	guard guard.ConstructorGuard
}

// NewGetRequestsByStageQuery creates a query for one (kind, status) stage.
func NewGetRequestsByStageQuery(status request.Status, kind request.Kind) (GetRequestsByStageQuery, error) {
	q := GetRequestsByStageQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setStatus(status),
		q.setKind(kind),
	); err != nil {
		return GetRequestsByStageQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRequestsByStageQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestsByStageQueryIsNotConstructed)
}

// Status returns the lifecycle status being listed.
func (q GetRequestsByStageQuery) Status() request.Status {
	return q.status
}

// Kind returns the flow discriminator being listed.
func (q GetRequestsByStageQuery) Kind() request.Kind {
	return q.kind
}

func (q *GetRequestsByStageQuery) setStatus(status request.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}

func (q *GetRequestsByStageQuery) setKind(kind request.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	q.kind = kind
	return nil
}
