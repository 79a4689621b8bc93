package custodyrepo

import (
	"context"
	"errors"
	"fmt"

	"inventory/internal/core/domain/model/custody"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustodyRepository implements CustodyRepository using GORM.
type GormCustodyRepository struct {
	db *gorm.DB
}

// NewGormCustodyRepository creates a new GORM custody repository.
func NewGormCustodyRepository(db *gorm.DB) *GormCustodyRepository {
	return &GormCustodyRepository{
		db: db,
	}
}

// Adjust applies quantity += delta to the (college, item) row with upsert
// semantics. The insert-or-increment happens in one statement, so two
// concurrent deliveries to the same college never lose a delta.
func (r *GormCustodyRepository) Adjust(ctx context.Context, collegeID, itemID kernel.UUID, delta int) error {
	if err := errors.Join(collegeID.Validate(), itemID.Validate()); err != nil {
		return err
	}

	dto := BalanceDTO{
		CollegeID: collegeID.Bytes(),
		ItemID:    itemID.Bytes(),
		Quantity:  delta,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "college_id"}, {Name: "item_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("quantity + ?", delta),
			}),
		}).
		Create(&dto).Error
}

// Release atomically decrements the (college, item) balance with the
// sufficiency guard folded into the same statement. Zero matched rows means
// the college holds fewer units than requested (or none at all); either way
// the return pickup must be refused.
func (r *GormCustodyRepository) Release(ctx context.Context, collegeID, itemID kernel.UUID, quantity int) error {
	if err := errors.Join(collegeID.Validate(), itemID.Validate()); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	result := r.db.WithContext(ctx).
		Model(&BalanceDTO{}).
		Where("college_id = ? AND item_id = ? AND quantity >= ?",
			collegeID.Bytes(), itemID.Bytes(), quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("college %s holds fewer than %d units of item %s: %w",
			collegeID.String(), quantity, itemID.String(), custody.ErrInsufficientCustody)
	}

	return nil
}

// Get retrieves one (college, item) balance.
func (r *GormCustodyRepository) Get(ctx context.Context, collegeID, itemID kernel.UUID) (*custody.Balance, error) {
	if err := errors.Join(collegeID.Validate(), itemID.Validate()); err != nil {
		return nil, err
	}

	var dto BalanceDTO
	err := r.db.WithContext(ctx).
		First(&dto, "college_id = ? AND item_id = ?", collegeID.Bytes(), itemID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("custody balance",
				collegeID.String()+"/"+itemID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCollege retrieves all balances held by one college.
func (r *GormCustodyRepository) GetByCollege(ctx context.Context, collegeID kernel.UUID) ([]*custody.Balance, error) {
	if err := collegeID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BalanceDTO
	if err := r.db.WithContext(ctx).
		Where("college_id = ?", collegeID.Bytes()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	balances := make([]*custody.Balance, 0, len(dtos))
	for _, dto := range dtos {
		balance, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}

	return balances, nil
}
