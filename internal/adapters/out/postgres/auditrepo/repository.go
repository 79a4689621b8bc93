// Package auditrepo persists the append-only transaction log. Entries record
// who performed which lifecycle or stock action and with what quantity; rows
// are never updated or deleted.
package auditrepo

import (
	"context"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntryDTO represents one row of the transaction log.
type EntryDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	At         time.Time `gorm:"index"`
	ActorID    uuid.UUID `gorm:"type:uuid;index"`
	Action     string
	SubjectRef string
	Quantity   int
}

// TableName specifies the database table name for transaction log records.
func (EntryDTO) TableName() string {
	return "transaction_log"
}

// GormAuditLog implements AuditLog using GORM.
type GormAuditLog struct {
	db *gorm.DB
}

// NewGormAuditLog creates a new GORM transaction log.
func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{
		db: db,
	}
}

// Append writes one entry, stamping the current time if the entry carries none.
func (l *GormAuditLog) Append(ctx context.Context, entry ports.AuditEntry) error {
	at := entry.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	dto := EntryDTO{
		At:         at,
		ActorID:    entry.ActorID.Bytes(),
		Action:     entry.Action,
		SubjectRef: entry.SubjectRef,
		Quantity:   entry.Quantity,
	}

	return l.db.WithContext(ctx).Create(&dto).Error
}

// ReadAll returns every entry in append order.
func (l *GormAuditLog) ReadAll(ctx context.Context) ([]ports.AuditEntry, error) {
	var dtos []EntryDTO
	if err := l.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]ports.AuditEntry, 0, len(dtos))
	for _, dto := range dtos {
		actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
		if err != nil {
			return nil, err
		}

		entries = append(entries, ports.AuditEntry{
			At:         dto.At,
			ActorID:    actorID,
			Action:     dto.Action,
			SubjectRef: dto.SubjectRef,
			Quantity:   dto.Quantity,
		})
	}

	return entries, nil
}
