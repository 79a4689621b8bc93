package custodyrepo_test

import (
	"context"
	"testing"

	"inventory/internal/adapters/out/postgres/custodyrepo"
	"inventory/internal/core/domain/model/custody"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepository(t *testing.T) *custodyrepo.GormCustodyRepository {
	t.Helper()

	dsn := "file:custodyrepo_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&custodyrepo.BalanceDTO{}))

	return custodyrepo.NewGormCustodyRepository(db)
}

func TestGormCustodyRepository_Adjust(t *testing.T) {
	t.Run("should insert row on first delivery", func(t *testing.T) {
		repo := setupRepository(t)
		ctx := context.Background()
		collegeID, itemID := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, repo.Adjust(ctx, collegeID, itemID, 7))

		balance, err := repo.Get(ctx, collegeID, itemID)
		require.NoError(t, err)
		assert.Equal(t, 7, balance.Quantity())
		assert.True(t, balance.IsHeld())
	})

	t.Run("should accumulate deltas on subsequent deliveries", func(t *testing.T) {
		repo := setupRepository(t)
		ctx := context.Background()
		collegeID, itemID := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, repo.Adjust(ctx, collegeID, itemID, 7))
		require.NoError(t, repo.Adjust(ctx, collegeID, itemID, 3))

		balance, err := repo.Get(ctx, collegeID, itemID)
		require.NoError(t, err)
		assert.Equal(t, 10, balance.Quantity())
	})

	t.Run("should keep balances per item", func(t *testing.T) {
		repo := setupRepository(t)
		ctx := context.Background()
		collegeID := kernel.NewUUID()
		itemA, itemB := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, repo.Adjust(ctx, collegeID, itemA, 4))
		require.NoError(t, repo.Adjust(ctx, collegeID, itemB, 9))

		balanceA, err := repo.Get(ctx, collegeID, itemA)
		require.NoError(t, err)
		assert.Equal(t, 4, balanceA.Quantity())

		balanceB, err := repo.Get(ctx, collegeID, itemB)
		require.NoError(t, err)
		assert.Equal(t, 9, balanceB.Quantity())
	})
}

func TestGormCustodyRepository_Release(t *testing.T) {
	t.Run("should decrement when custody suffices", func(t *testing.T) {
		repo := setupRepository(t)
		ctx := context.Background()
		collegeID, itemID := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, repo.Adjust(ctx, collegeID, itemID, 10))
		require.NoError(t, repo.Release(ctx, collegeID, itemID, 10))

		balance, err := repo.Get(ctx, collegeID, itemID)
		require.NoError(t, err)
		assert.Equal(t, 0, balance.Quantity())
		assert.False(t, balance.IsHeld())
	})

	t.Run("should refuse and leave balance unchanged when custody is short", func(t *testing.T) {
		repo := setupRepository(t)
		ctx := context.Background()
		collegeID, itemID := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, repo.Adjust(ctx, collegeID, itemID, 3))

		err := repo.Release(ctx, collegeID, itemID, 4)
		require.ErrorIs(t, err, custody.ErrInsufficientCustody)

		balance, getErr := repo.Get(ctx, collegeID, itemID)
		require.NoError(t, getErr)
		assert.Equal(t, 3, balance.Quantity())
	})

	t.Run("should refuse when no row exists", func(t *testing.T) {
		repo := setupRepository(t)

		err := repo.Release(context.Background(), kernel.NewUUID(), kernel.NewUUID(), 1)
		require.ErrorIs(t, err, custody.ErrInsufficientCustody)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		repo := setupRepository(t)

		err := repo.Release(context.Background(), kernel.NewUUID(), kernel.NewUUID(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGormCustodyRepository_Get(t *testing.T) {
	t.Run("should return not found for missing row", func(t *testing.T) {
		repo := setupRepository(t)

		balance, err := repo.Get(context.Background(), kernel.NewUUID(), kernel.NewUUID())
		assert.Nil(t, balance)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGormCustodyRepository_GetByCollege(t *testing.T) {
	t.Run("should return all balances for one college only", func(t *testing.T) {
		repo := setupRepository(t)
		ctx := context.Background()
		collegeA, collegeB := kernel.NewUUID(), kernel.NewUUID()
		itemA, itemB := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, repo.Adjust(ctx, collegeA, itemA, 5))
		require.NoError(t, repo.Adjust(ctx, collegeA, itemB, 2))
		require.NoError(t, repo.Adjust(ctx, collegeB, itemA, 8))

		balances, err := repo.GetByCollege(ctx, collegeA)
		require.NoError(t, err)

		require.Len(t, balances, 2)
		for _, balance := range balances {
			assert.True(t, collegeA.IsEqual(balance.CollegeID()))
		}
	})

	t.Run("should include zero-quantity rows", func(t *testing.T) {
		repo := setupRepository(t)
		ctx := context.Background()
		collegeID, itemID := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, repo.Adjust(ctx, collegeID, itemID, 2))
		require.NoError(t, repo.Release(ctx, collegeID, itemID, 2))

		balances, err := repo.GetByCollege(ctx, collegeID)
		require.NoError(t, err)

		require.Len(t, balances, 1)
		assert.False(t, balances[0].IsHeld())
	})

	t.Run("should return empty slice for unknown college", func(t *testing.T) {
		repo := setupRepository(t)

		balances, err := repo.GetByCollege(context.Background(), kernel.NewUUID())
		require.NoError(t, err)
		assert.Empty(t, balances)
	})
}
