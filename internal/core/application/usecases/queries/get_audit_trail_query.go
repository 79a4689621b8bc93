package queries

import (
	"errors"

	"inventory/internal/pkg/guard"
)

var ErrGetAuditTrailQueryIsNotConstructed = errors.New(
	"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
)

// GetAuditTrailQuery retrieves the full transaction log in append order. This
// is the manager's review of every lifecycle and stock action.
type GetAuditTrailQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAuditTrailQuery creates a query for the transaction log listing.
// This is a parameterless query.
func NewGetAuditTrailQuery() GetAuditTrailQuery {
	return GetAuditTrailQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}
