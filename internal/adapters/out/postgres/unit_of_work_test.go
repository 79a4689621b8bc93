package postgres_test

import (
	"context"
	"testing"

	"inventory/internal/adapters/out/postgres"
	"inventory/internal/adapters/out/postgres/custodyrepo"
	"inventory/internal/adapters/out/postgres/itemrepo"
	"inventory/internal/adapters/out/postgres/requestrepo"
	"inventory/internal/core/domain/model/item"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupFactory(t *testing.T) (*postgres.GormUnitOfWorkFactory, *gorm.DB) {
	t.Helper()

	dsn := "file:uow_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&requestrepo.RequestDTO{},
		&itemrepo.ItemDTO{},
		&custodyrepo.BalanceDTO{},
	))

	return postgres.NewGormUnitOfWorkFactory(db), db
}

func TestGormUnitOfWork_CommitPersistsAllWrites(t *testing.T) {
	factory, db := setupFactory(t)
	ctx := context.Background()

	testItem, err := item.NewItem(kernel.NewUUID(), "Oscilloscope", "Lab", "unit", 20, 5)
	require.NoError(t, err)
	require.NoError(t, itemrepo.NewGormStockRepository(db, noopTracker{}).Add(ctx, testItem))

	req, err := request.NewRequest(kernel.NewUUID(), kernel.NewUUID(), testItem.ID(), 8, "lab", request.KindRequest)
	require.NoError(t, err)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.RequestRepository().Add(ctx, req))
	require.NoError(t, uow.StockRepository().ReserveCentralStock(ctx, testItem.ID(), 8))
	require.NoError(t, uow.Commit(ctx))

	stored, err := itemrepo.NewGormStockRepository(db, noopTracker{}).Get(ctx, testItem.ID())
	require.NoError(t, err)
	assert.Equal(t, 12, stored.QuantityCentral())

	restored, err := requestrepo.NewGormRequestRepository(db, noopTracker{}).Get(ctx, req.ID())
	require.NoError(t, err)
	assert.Equal(t, request.Pending, restored.Status())
}

func TestGormUnitOfWork_RollbackDiscardsAllWrites(t *testing.T) {
	factory, db := setupFactory(t)
	ctx := context.Background()

	testItem, err := item.NewItem(kernel.NewUUID(), "Router", "Networking", "unit", 20, 5)
	require.NoError(t, err)
	require.NoError(t, itemrepo.NewGormStockRepository(db, noopTracker{}).Add(ctx, testItem))

	req, err := request.NewRequest(kernel.NewUUID(), kernel.NewUUID(), testItem.ID(), 8, "lab", request.KindRequest)
	require.NoError(t, err)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.RequestRepository().Add(ctx, req))
	require.NoError(t, uow.StockRepository().ReserveCentralStock(ctx, testItem.ID(), 8))
	require.NoError(t, uow.Rollback(ctx))

	stored, err := itemrepo.NewGormStockRepository(db, noopTracker{}).Get(ctx, testItem.ID())
	require.NoError(t, err)
	assert.Equal(t, 20, stored.QuantityCentral(), "rolled back reservation must not touch the ledger")

	_, err = requestrepo.NewGormRequestRepository(db, noopTracker{}).Get(ctx, req.ID())
	require.Error(t, err)
}

func TestGormUnitOfWork_CommitWithoutBegin(t *testing.T) {
	factory, _ := setupFactory(t)

	uow := factory.Create()
	require.ErrorIs(t, uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
	require.ErrorIs(t, uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func TestGormUnitOfWork_BeginIsIdempotent(t *testing.T) {
	factory, _ := setupFactory(t)
	ctx := context.Background()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Rollback(ctx))
}

// noopTracker satisfies the repository tracker interface for direct-DB checks.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, interface{}) {}
