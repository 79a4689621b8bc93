package collegerepo

import (
	"context"
	"errors"
	"fmt"

	"inventory/internal/core/domain/model/college"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

// GormCollegeRepository implements CollegeRepository using GORM.
type GormCollegeRepository struct {
	db *gorm.DB
}

// NewGormCollegeRepository creates a new GORM college repository.
func NewGormCollegeRepository(db *gorm.DB) *GormCollegeRepository {
	return &GormCollegeRepository{
		db: db,
	}
}

// Add saves a new college to the database.
func (r *GormCollegeRepository) Add(ctx context.Context, aggregate *college.College) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return errs.NewValueIsInvalidErrorWithCause("name is invalid",
				fmt.Errorf("college %q already exists", aggregate.Name()))
		}
		return err
	}

	return nil
}

// Get retrieves a college by ID.
func (r *GormCollegeRepository) Get(ctx context.Context, id kernel.UUID) (*college.College, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CollegeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("college", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all colleges ordered by name.
func (r *GormCollegeRepository) GetAll(ctx context.Context) ([]*college.College, error) {
	var dtos []CollegeDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	colleges := make([]*college.College, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		colleges = append(colleges, aggregate)
	}

	return colleges, nil
}
