// Package custodyrepo provides persistence for per-college custody balances.
// The (college, item) pair is the primary key; quantity mutations are issued
// as atomic upserts and conditional decrements.
package custodyrepo

import (
	"inventory/internal/core/domain/model/custody"
	"inventory/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BalanceDTO represents the database structure for one custody row.
type BalanceDTO struct {
	CollegeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
}

// TableName specifies the database table name for custody records.
func (BalanceDTO) TableName() string {
	return "custody_balances"
}

// toDomain converts a database DTO to a custody balance entity.
func toDomain(dto BalanceDTO) (*custody.Balance, error) {
	collegeID, err := kernel.UUIDFromBytes(dto.CollegeID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	return custody.NewBalance(collegeID, itemID, dto.Quantity)
}
