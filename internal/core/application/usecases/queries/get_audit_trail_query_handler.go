package queries

import (
	"context"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/ports"
)

// AuditEntryResponse represents one transaction log entry in query results.
type AuditEntryResponse struct {
	At         time.Time
	ActorID    kernel.UUID
	Action     string
	SubjectRef string
	Quantity   int
}

// GetAuditTrailQueryHandler retrieves the transaction log through the audit
// log port, which reads entries back in append order.
type GetAuditTrailQueryHandler struct {
	auditLog ports.AuditLog
}

// NewGetAuditTrailQueryHandler creates a handler for transaction log queries.
func NewGetAuditTrailQueryHandler(auditLog ports.AuditLog) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{auditLog: auditLog}
}

// Handle executes the query to retrieve every transaction log entry in the
// order it was appended.
func (h GetAuditTrailQueryHandler) Handle(
	ctx context.Context,
	query GetAuditTrailQuery,
) ([]AuditEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.auditLog.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]AuditEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, AuditEntryResponse{
			At:         entry.At,
			ActorID:    entry.ActorID,
			Action:     entry.Action,
			SubjectRef: entry.SubjectRef,
			Quantity:   entry.Quantity,
		})
	}

	return responses, nil
}
