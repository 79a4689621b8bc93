// Package collegerepo provides data transfer objects and mapping functions
// for college persistence.
package collegerepo

import (
	"inventory/internal/core/domain/model/college"
	"inventory/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CollegeDTO represents the database structure for persisting colleges.
type CollegeDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for college records.
func (CollegeDTO) TableName() string {
	return "colleges"
}

// fromDomain converts a college entity to its database representation.
func fromDomain(aggregate *college.College) CollegeDTO {
	return CollegeDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}

// toDomain converts a database DTO to a college entity.
func toDomain(dto CollegeDTO) (*college.College, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return college.RestoreCollege(id, dto.Name)
}
