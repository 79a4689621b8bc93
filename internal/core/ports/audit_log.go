package ports

import (
	"context"
	"time"

	"inventory/internal/core/domain/model/kernel"
)

// AuditEntry is one immutable line of the transaction log: who did what to
// which subject, with the quantity involved. Entries are write-once; they are
// never updated or deleted.
type AuditEntry struct {
	At         time.Time
	ActorID    kernel.UUID
	Action     string
	SubjectRef string
	Quantity   int
}

// AuditLog is the append-only sink for the transaction log.
//
// Appending is best-effort: it runs outside the unit of work, and callers
// report append failures without rolling back the originating business
// operation.
type AuditLog interface {
	// Append writes one entry, stamping the current time if Entry.At is zero.
	Append(ctx context.Context, entry AuditEntry) error

	// ReadAll returns every entry in append order, for export and review.
	ReadAll(ctx context.Context) ([]AuditEntry, error)
}
