package itemrepo

import (
	"context"
	"errors"
	"fmt"

	"inventory/internal/core/domain/model/item"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog item to the database.
// A duplicate name is reported as a validation error rather than a raw
// driver error.
func (r *GormStockRepository) Add(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return errs.NewValueIsInvalidErrorWithCause("name is invalid",
				fmt.Errorf("item %q already exists", aggregate.Name()))
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists catalog edits. The central quantity column is not written
// here; quantity moves only through AdjustCentralStock and ReserveCentralStock.
func (r *GormStockRepository) Update(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":          dto.Name,
			"category":      dto.Category,
			"unit":          dto.Unit,
			"reorder_level": dto.ReorderLevel,
		})
	if result.Error != nil {
		var pqErr *pq.Error
		if errors.As(result.Error, &pqErr) && pqErr.Code == uniqueViolationCode {
			return errs.NewValueIsInvalidErrorWithCause("name is invalid",
				fmt.Errorf("item %q already exists", aggregate.Name()))
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Remove deletes an item from the catalog.
func (r *GormStockRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", id.String())
	}

	return nil
}

// Get retrieves an item by ID.
func (r *GormStockRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AdjustCentralStock applies quantity_central += delta as one atomic statement.
func (r *GormStockRepository) AdjustCentralStock(ctx context.Context, itemID kernel.UUID, delta int) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ?", itemID.Bytes()).
		UpdateColumn("quantity_central", gorm.Expr("quantity_central + ?", delta))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", itemID.String())
	}

	return nil
}

// ReserveCentralStock atomically decrements quantity_central with the
// sufficiency guard folded into the same statement. Zero matched rows means
// either the item is missing or it holds fewer units than requested; a
// follow-up existence check picks the right error.
func (r *GormStockRepository) ReserveCentralStock(ctx context.Context, itemID kernel.UUID, quantity int) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ? AND quantity_central >= ?", itemID.Bytes(), quantity).
		UpdateColumn("quantity_central", gorm.Expr("quantity_central - ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&ItemDTO{}).
			Where("id = ?", itemID.Bytes()).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("item", itemID.String())
		}
		return fmt.Errorf("item %s holds fewer than %d units: %w",
			itemID.String(), quantity, item.ErrInsufficientStock)
	}

	return nil
}

// GetLowStock retrieves all items at or below their reorder level, ordered by name.
func (r *GormStockRepository) GetLowStock(ctx context.Context) ([]*item.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).
		Where("quantity_central <= reorder_level").
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*item.Item, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, aggregate)
	}

	return items, nil
}
