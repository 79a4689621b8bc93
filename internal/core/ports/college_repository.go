package ports

import (
	"context"

	"inventory/internal/core/domain/model/college"
	"inventory/internal/core/domain/model/kernel"
)

// CollegeRepository defines the persistence contract for college entities.
type CollegeRepository interface {
	// Add persists a new college.
	Add(ctx context.Context, aggregate *college.College) error

	// Get retrieves a college by its unique identifier.
	// Returns errs.ErrObjectNotFound (wrapped) when no such college exists.
	Get(ctx context.Context, id kernel.UUID) (*college.College, error)

	// GetAll retrieves all colleges ordered by name.
	GetAll(ctx context.Context) ([]*college.College, error)
}
