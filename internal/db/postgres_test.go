package db

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDB connects to the database named by TEST_DATABASE_URL, skipping the
// test when no database is reachable.
func testDB(t *testing.T) *PostgresDB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("database unreachable: %v", err)
	}
	t.Cleanup(pool.Close)

	return &PostgresDB{Pool: pool}
}

func TestCloseWithoutPool(t *testing.T) {
	database := &PostgresDB{}
	assert.NotPanics(t, func() { database.Close() })
}

func TestWithTransactionCommits(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	_, err := database.Pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS tx_commit_check (id SERIAL PRIMARY KEY, note TEXT)`)
	require.NoError(t, err)
	t.Cleanup(func() {
		database.Pool.Exec(context.Background(), `DROP TABLE IF EXISTS tx_commit_check`)
	})

	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO tx_commit_check (note) VALUES ('kept')`)
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, database.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM tx_commit_check WHERE note = 'kept'`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	_, err := database.Pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS tx_rollback_check (id SERIAL PRIMARY KEY, note TEXT)`)
	require.NoError(t, err)
	t.Cleanup(func() {
		database.Pool.Exec(context.Background(), `DROP TABLE IF EXISTS tx_rollback_check`)
	})

	boom := errors.New("boom")
	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `INSERT INTO tx_rollback_check (note) VALUES ('discarded')`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, database.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM tx_rollback_check`).Scan(&count))
	assert.Equal(t, 0, count)
}
