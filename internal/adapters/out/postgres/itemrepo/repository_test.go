package itemrepo_test

import (
	"context"
	"testing"

	"inventory/internal/adapters/out/postgres/itemrepo"
	"inventory/internal/core/domain/model/item"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:itemrepo_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&itemrepo.ItemDTO{}))

	return db
}

func setupRepository(t *testing.T) (*itemrepo.GormStockRepository, *MockAggregateTracker, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()

	return itemrepo.NewGormStockRepository(db, tracker), tracker, db
}

func newTestItem(t *testing.T, name string, quantityCentral, reorderLevel int) *item.Item {
	t.Helper()

	testItem, err := item.NewItem(kernel.NewUUID(), name, "Electronics", "piece", quantityCentral, reorderLevel)
	require.NoError(t, err)

	return testItem
}

func TestGormStockRepository_AddAndGet(t *testing.T) {
	t.Run("should persist and restore item", func(t *testing.T) {
		repo, _, _ := setupRepository(t)
		ctx := context.Background()

		original := newTestItem(t, "Microscope", 40, 5)
		require.NoError(t, repo.Add(ctx, original))

		retrieved, err := repo.Get(ctx, original.ID())
		require.NoError(t, err)

		assert.True(t, original.IsEqual(retrieved))
		assert.Equal(t, "Microscope", retrieved.Name())
		assert.Equal(t, "Electronics", retrieved.Category())
		assert.Equal(t, "piece", retrieved.Unit())
		assert.Equal(t, 40, retrieved.QuantityCentral())
		assert.Equal(t, 5, retrieved.ReorderLevel())
	})

	t.Run("should reject duplicate name", func(t *testing.T) {
		repo, _, _ := setupRepository(t)
		ctx := context.Background()

		require.NoError(t, repo.Add(ctx, newTestItem(t, "Beaker", 10, 2)))

		err := repo.Add(ctx, newTestItem(t, "Beaker", 7, 1))
		require.Error(t, err)
	})

	t.Run("should return not found for unknown id", func(t *testing.T) {
		repo, _, _ := setupRepository(t)

		retrieved, err := repo.Get(context.Background(), kernel.NewUUID())
		assert.Nil(t, retrieved)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGormStockRepository_Update(t *testing.T) {
	t.Run("should persist catalog edits without touching quantity", func(t *testing.T) {
		repo, _, _ := setupRepository(t)
		ctx := context.Background()

		original := newTestItem(t, "Projector", 12, 3)
		require.NoError(t, repo.Add(ctx, original))

		edited, err := item.RestoreItem(original.ID(), "Projector HD", "AV", "unit", 999, 4)
		require.NoError(t, err)
		require.NoError(t, repo.Update(ctx, edited))

		retrieved, err := repo.Get(ctx, original.ID())
		require.NoError(t, err)
		assert.Equal(t, "Projector HD", retrieved.Name())
		assert.Equal(t, "AV", retrieved.Category())
		assert.Equal(t, 4, retrieved.ReorderLevel())
		assert.Equal(t, 12, retrieved.QuantityCentral(), "quantity must only move via ledger adjustments")
	})

	t.Run("should return not found for unknown item", func(t *testing.T) {
		repo, _, _ := setupRepository(t)

		err := repo.Update(context.Background(), newTestItem(t, "Ghost", 1, 0))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGormStockRepository_Remove(t *testing.T) {
	t.Run("should delete item", func(t *testing.T) {
		repo, _, _ := setupRepository(t)
		ctx := context.Background()

		testItem := newTestItem(t, "Whiteboard", 6, 1)
		require.NoError(t, repo.Add(ctx, testItem))
		require.NoError(t, repo.Remove(ctx, testItem.ID()))

		_, err := repo.Get(ctx, testItem.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should return not found for unknown item", func(t *testing.T) {
		repo, _, _ := setupRepository(t)

		err := repo.Remove(context.Background(), kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGormStockRepository_AdjustCentralStock(t *testing.T) {
	t.Run("should increment by positive delta", func(t *testing.T) {
		repo, _, _ := setupRepository(t)
		ctx := context.Background()

		testItem := newTestItem(t, "Cable", 10, 2)
		require.NoError(t, repo.Add(ctx, testItem))

		require.NoError(t, repo.AdjustCentralStock(ctx, testItem.ID(), 15))

		retrieved, err := repo.Get(ctx, testItem.ID())
		require.NoError(t, err)
		assert.Equal(t, 25, retrieved.QuantityCentral())
	})

	t.Run("should decrement by negative delta", func(t *testing.T) {
		repo, _, _ := setupRepository(t)
		ctx := context.Background()

		testItem := newTestItem(t, "Stand", 10, 2)
		require.NoError(t, repo.Add(ctx, testItem))

		require.NoError(t, repo.AdjustCentralStock(ctx, testItem.ID(), -4))

		retrieved, err := repo.Get(ctx, testItem.ID())
		require.NoError(t, err)
		assert.Equal(t, 6, retrieved.QuantityCentral())
	})

	t.Run("should return not found for unknown item", func(t *testing.T) {
		repo, _, _ := setupRepository(t)

		err := repo.AdjustCentralStock(context.Background(), kernel.NewUUID(), 5)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGormStockRepository_ReserveCentralStock(t *testing.T) {
	t.Run("should decrement when stock suffices", func(t *testing.T) {
		repo, _, _ := setupRepository(t)
		ctx := context.Background()

		testItem := newTestItem(t, "Laptop", 8, 2)
		require.NoError(t, repo.Add(ctx, testItem))

		require.NoError(t, repo.ReserveCentralStock(ctx, testItem.ID(), 8))

		retrieved, err := repo.Get(ctx, testItem.ID())
		require.NoError(t, err)
		assert.Equal(t, 0, retrieved.QuantityCentral())
	})

	t.Run("should refuse and leave ledger unchanged when stock is short", func(t *testing.T) {
		repo, _, _ := setupRepository(t)
		ctx := context.Background()

		testItem := newTestItem(t, "Printer", 3, 1)
		require.NoError(t, repo.Add(ctx, testItem))

		err := repo.ReserveCentralStock(ctx, testItem.ID(), 4)
		require.ErrorIs(t, err, item.ErrInsufficientStock)

		retrieved, getErr := repo.Get(ctx, testItem.ID())
		require.NoError(t, getErr)
		assert.Equal(t, 3, retrieved.QuantityCentral())
	})

	t.Run("should return not found for unknown item", func(t *testing.T) {
		repo, _, _ := setupRepository(t)

		err := repo.ReserveCentralStock(context.Background(), kernel.NewUUID(), 1)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		repo, _, _ := setupRepository(t)

		err := repo.ReserveCentralStock(context.Background(), kernel.NewUUID(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGormStockRepository_GetLowStock(t *testing.T) {
	t.Run("should return only items at or below reorder level, by name", func(t *testing.T) {
		repo, _, _ := setupRepository(t)
		ctx := context.Background()

		require.NoError(t, repo.Add(ctx, newTestItem(t, "Zebra Paper", 2, 5)))
		require.NoError(t, repo.Add(ctx, newTestItem(t, "Apple Stickers", 5, 5)))
		require.NoError(t, repo.Add(ctx, newTestItem(t, "Healthy Markers", 50, 5)))

		lowStock, err := repo.GetLowStock(ctx)
		require.NoError(t, err)

		require.Len(t, lowStock, 2)
		assert.Equal(t, "Apple Stickers", lowStock[0].Name())
		assert.Equal(t, "Zebra Paper", lowStock[1].Name())
		for _, it := range lowStock {
			assert.True(t, it.IsLowStock())
		}
	})

	t.Run("should return empty slice when nothing is low", func(t *testing.T) {
		repo, _, _ := setupRepository(t)
		ctx := context.Background()

		require.NoError(t, repo.Add(ctx, newTestItem(t, "Chargers", 100, 5)))

		lowStock, err := repo.GetLowStock(ctx)
		require.NoError(t, err)
		assert.Empty(t, lowStock)
	})
}
