package cache_test

import (
	"context"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"eventease-booking/internal/cache"
	"eventease-booking/internal/testutil"
	apperrors "eventease-booking/pkg/app_errors"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRdb *redis.Client

func TestMain(m *testing.M) {
	rdb, cleanup, err := testutil.SetupRedisOnly()
	if err != nil {
		log.Printf("Skipping cache tests: %v", err)
	} else {
		testRdb = rdb
	}

	code := m.Run()
	if cleanup != nil {
		cleanup()
	}
	os.Exit(code)
}

func getTestRdb(t *testing.T) *redis.Client {
	t.Helper()
	if testRdb == nil {
		t.Skip("test redis is not available")
	}
	ctx := context.Background()
	require.NoError(t, testRdb.FlushDB(ctx).Err())
	t.Cleanup(func() {
		testRdb.FlushDB(ctx)
	})
	return testRdb
}

func verifyRemaining(t *testing.T, ctx context.Context, guard cache.TicketInventoryGuard, categoryID int, expected int) {
	t.Helper()
	remaining, err := guard.Remaining(ctx, categoryID)
	assert.NoError(t, err)
	assert.Equal(t, expected, remaining)
}

func TestTicketInventoryGuard_WarmUp(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		guard := cache.NewRedisTicketInventoryGuard(getTestRdb(t))

		require.NoError(t, guard.WarmUp(ctx, 1, 100, 0))
		verifyRemaining(t, ctx, guard, 1, 100)
	})

	t.Run("DoesNotOverwrite", func(t *testing.T) {
		guard := cache.NewRedisTicketInventoryGuard(getTestRdb(t))

		require.NoError(t, guard.WarmUp(ctx, 1, 100, 0))
		require.NoError(t, guard.Reserve(ctx, []cache.Reservation{{CategoryID: 1, Quantity: 3}}))
		require.NoError(t, guard.WarmUp(ctx, 1, 100, 0))

		verifyRemaining(t, ctx, guard, 1, 97)
	})

	t.Run("SubtractsHeldTickets", func(t *testing.T) {
		guard := cache.NewRedisTicketInventoryGuard(getTestRdb(t))

		require.NoError(t, guard.WarmUp(ctx, 1, 10, 4))
		require.NoError(t, guard.WarmUp(ctx, 2, 3, 5))

		verifyRemaining(t, ctx, guard, 1, 6)
		verifyRemaining(t, ctx, guard, 2, 0)
	})

	t.Run("Failed - NotLoaded", func(t *testing.T) {
		guard := cache.NewRedisTicketInventoryGuard(getTestRdb(t))

		remaining, err := guard.Remaining(ctx, 1)
		assert.ErrorIs(t, err, apperrors.ErrInventoryNotLoaded)
		assert.Equal(t, -1, remaining)
	})
}

func TestTicketInventoryGuard_Reserve(t *testing.T) {
	ctx := context.Background()

	t.Run("AllOrNothing", func(t *testing.T) {
		guard := cache.NewRedisTicketInventoryGuard(getTestRdb(t))
		require.NoError(t, guard.WarmUp(ctx, 1, 10, 0))
		require.NoError(t, guard.WarmUp(ctx, 2, 1, 0))

		err := guard.Reserve(ctx, []cache.Reservation{
			{CategoryID: 1, Quantity: 2},
			{CategoryID: 2, Quantity: 2},
		})

		assert.ErrorIs(t, err, apperrors.ErrInsufficientTickets)
		assert.Contains(t, err.Error(), "category 2")
		verifyRemaining(t, ctx, guard, 1, 10)
		verifyRemaining(t, ctx, guard, 2, 1)
	})

	t.Run("SkipsZeroQuantity", func(t *testing.T) {
		guard := cache.NewRedisTicketInventoryGuard(getTestRdb(t))
		require.NoError(t, guard.WarmUp(ctx, 1, 10, 0))

		err := guard.Reserve(ctx, []cache.Reservation{
			{CategoryID: 1, Quantity: 4},
			{CategoryID: 99, Quantity: 0},
		})

		require.NoError(t, err)
		verifyRemaining(t, ctx, guard, 1, 6)
	})

	t.Run("Failed - NotLoaded", func(t *testing.T) {
		guard := cache.NewRedisTicketInventoryGuard(getTestRdb(t))

		err := guard.Reserve(ctx, []cache.Reservation{{CategoryID: 5, Quantity: 1}})

		assert.ErrorIs(t, err, apperrors.ErrInventoryNotLoaded)
	})

	t.Run("ConcurrentNeverOversells", func(t *testing.T) {
		guard := cache.NewRedisTicketInventoryGuard(getTestRdb(t))
		require.NoError(t, guard.WarmUp(ctx, 1, 5, 0))

		var wg sync.WaitGroup
		var succeeded int32
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if guard.Reserve(ctx, []cache.Reservation{{CategoryID: 1, Quantity: 1}}) == nil {
					atomic.AddInt32(&succeeded, 1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(5), succeeded)
		verifyRemaining(t, ctx, guard, 1, 0)
	})
}

func TestTicketInventoryGuard_ReleaseAndReset(t *testing.T) {
	ctx := context.Background()

	t.Run("Release", func(t *testing.T) {
		guard := cache.NewRedisTicketInventoryGuard(getTestRdb(t))
		require.NoError(t, guard.WarmUp(ctx, 1, 10, 0))
		reservations := []cache.Reservation{{CategoryID: 1, Quantity: 3}}
		require.NoError(t, guard.Reserve(ctx, reservations))

		require.NoError(t, guard.Release(ctx, reservations))
		verifyRemaining(t, ctx, guard, 1, 10)
	})

	t.Run("ReleaseAfterResetDoesNotRecreate", func(t *testing.T) {
		guard := cache.NewRedisTicketInventoryGuard(getTestRdb(t))
		require.NoError(t, guard.WarmUp(ctx, 1, 10, 0))
		require.NoError(t, guard.Reset(ctx, 1))

		require.NoError(t, guard.Release(ctx, []cache.Reservation{{CategoryID: 1, Quantity: 3}}))

		_, err := guard.Remaining(ctx, 1)
		assert.ErrorIs(t, err, apperrors.ErrInventoryNotLoaded)
	})

	t.Run("ReleaseNeverExceedsCapacity", func(t *testing.T) {
		guard := cache.NewRedisTicketInventoryGuard(getTestRdb(t))
		reservations := []cache.Reservation{{CategoryID: 1, Quantity: 2}}
		require.NoError(t, guard.WarmUp(ctx, 1, 10, 0))
		require.NoError(t, guard.Reserve(ctx, reservations))

		// 數量調整後重新預熱，但未計入仍持有的 2 張
		require.NoError(t, guard.Reset(ctx, 1))
		require.NoError(t, guard.WarmUp(ctx, 1, 10, 0))
		require.NoError(t, guard.Release(ctx, reservations))

		verifyRemaining(t, ctx, guard, 1, 10)
		err := guard.Reserve(ctx, []cache.Reservation{{CategoryID: 1, Quantity: 11}})
		assert.ErrorIs(t, err, apperrors.ErrInsufficientTickets)
	})

	t.Run("RewarmCountsHeldTickets", func(t *testing.T) {
		guard := cache.NewRedisTicketInventoryGuard(getTestRdb(t))
		reservations := []cache.Reservation{{CategoryID: 1, Quantity: 2}}
		require.NoError(t, guard.WarmUp(ctx, 1, 10, 0))
		require.NoError(t, guard.Reserve(ctx, reservations))

		require.NoError(t, guard.Reset(ctx, 1))
		require.NoError(t, guard.WarmUp(ctx, 1, 10, 2))
		verifyRemaining(t, ctx, guard, 1, 8)

		require.NoError(t, guard.Release(ctx, reservations))
		verifyRemaining(t, ctx, guard, 1, 10)
	})
}
