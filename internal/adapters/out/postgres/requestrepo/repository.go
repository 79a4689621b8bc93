package requestrepo

import (
	"context"
	"errors"
	"fmt"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/request"
	"inventory/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a new GORM request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new request to the database.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a request by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Transition persists the aggregate's mutable state under a conditional
// update guard. The statement is "set status, courier, reason where id = X
// and status = expectedCurrent"; zero matched rows means another writer won
// the transition (or the caller's view was stale) and the store is unchanged.
func (r *GormRequestRepository) Transition(
	ctx context.Context,
	aggregate *request.Request,
	expectedCurrent request.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedCurrent.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedCurrent)).
		Updates(map[string]any{
			"status":           dto.Status,
			"courier_id":       dto.CourierID,
			"rejection_reason": dto.RejectionReason,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("request %s is no longer %q: %w",
			aggregate.ID(), expectedCurrent.String(), request.ErrInvalidTransition)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
