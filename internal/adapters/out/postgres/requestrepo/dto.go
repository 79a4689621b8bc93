// Package requestrepo provides data transfer objects and mapping functions for
// request persistence. This package implements the repository pattern for the
// request domain aggregate, handling the conversion between domain entities
// and database representations.
package requestrepo

import (
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting request
// aggregates. Indexed by status and kind for the manager and courier queue
// queries, and by college for per-college history.
type RequestDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CollegeID       uuid.UUID  `gorm:"type:uuid;index"`
	ItemID          uuid.UUID  `gorm:"type:uuid;index"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	Quantity        int
	Purpose         string
	Kind            int `gorm:"index"`
	Status          int `gorm:"index"`
	RejectionReason string
	CreatedAt       time.Time
}

// TableName specifies the database table name for request records.
func (RequestDTO) TableName() string {
	return "requests"
}

// fromDomain converts a request domain aggregate to its database representation.
func fromDomain(aggregate *request.Request) RequestDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return RequestDTO{
		ID:              aggregate.ID().Bytes(),
		CollegeID:       aggregate.CollegeID().Bytes(),
		ItemID:          aggregate.ItemID().Bytes(),
		CourierID:       courierID,
		Quantity:        aggregate.Quantity(),
		Purpose:         aggregate.Purpose(),
		Kind:            int(aggregate.Kind()),
		Status:          int(aggregate.Status()),
		RejectionReason: aggregate.RejectionReason(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a request domain aggregate using RestoreRequest.
func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	collegeID, err := kernel.UUIDFromBytes(dto.CollegeID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	return request.RestoreRequest(
		id,
		collegeID,
		itemID,
		dto.Quantity,
		dto.Purpose,
		request.Kind(dto.Kind),
		request.Status(dto.Status),
		dto.RejectionReason,
		courierID,
		dto.CreatedAt,
	)
}
