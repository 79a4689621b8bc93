// Package itemrepo provides data transfer objects and mapping functions for
// the central stock ledger. Quantity mutations go through atomic SQL
// expressions rather than read-modify-write, so concurrent approvals never
// lose updates.
package itemrepo

import (
	"inventory/internal/core/domain/model/item"
	"inventory/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting catalog items.
// Name carries a unique index so the catalog cannot hold duplicates.
type ItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"uniqueIndex"`
	Category        string
	Unit            string
	QuantityCentral int
	ReorderLevel    int
}

// TableName specifies the database table name for item records.
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an item domain aggregate to its database representation.
func fromDomain(aggregate *item.Item) ItemDTO {
	return ItemDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Category:        aggregate.Category(),
		Unit:            aggregate.Unit(),
		QuantityCentral: aggregate.QuantityCentral(),
		ReorderLevel:    aggregate.ReorderLevel(),
	}
}

// toDomain converts a database DTO to an item domain aggregate.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, dto.Name, dto.Category, dto.Unit, dto.QuantityCentral, dto.ReorderLevel)
}
