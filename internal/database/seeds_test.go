package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCurrencies(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	MigrationsDir = "file://../../migrations"
	t.Cleanup(func() { MigrationsDir = "file://migrations" })

	dbURL := getTestDBURL()
	pool := getTestPool(t)
	defer pool.Close()

	_ = RollbackMigrations(dbURL)
	require.NoError(t, RunMigrations(dbURL))

	ctx := context.Background()

	t.Run("seed inserts the builtin currencies", func(t *testing.T) {
		require.NoError(t, SeedCurrencies(ctx, pool))

		var count int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM currencies").Scan(&count))
		assert.Equal(t, 3, count)

		var rate float64
		require.NoError(t, pool.QueryRow(ctx, "SELECT rate_to_base FROM currencies WHERE code = 'XOF'").Scan(&rate))
		assert.InDelta(t, 655.957, rate, 1e-9)
	})

	t.Run("idempotency - running twice does not duplicate", func(t *testing.T) {
		require.NoError(t, SeedCurrencies(ctx, pool))

		var count int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM currencies").Scan(&count))
		assert.Equal(t, 3, count)
	})

	_ = RollbackMigrations(dbURL)
}
