package migrations

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumaster/backend/internal/db"
)

// testDB connects to the database named by TEST_DATABASE_URL, skipping the
// test when no database is reachable.
func testDB(t *testing.T) *db.PostgresDB {
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

	return &db.PostgresDB{Pool: pool}
}

func writeMigration(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func cleanupVersion(t *testing.T, database *db.PostgresDB, version, table string) {
	t.Helper()
	t.Cleanup(func() {
		ctx := context.Background()
		database.Pool.Exec(ctx, `DELETE FROM schema_migrations WHERE version = $1`, version)
		database.Pool.Exec(ctx, `DROP TABLE IF EXISTS `+table)
	})
}

func TestMigrateFromFileAppliesOnce(t *testing.T) {
	database := testDB(t)
	migrator := NewMigrator(database)
	ctx := context.Background()

	path := writeMigration(t, t.TempDir(), "900_roundtrip.sql",
		`CREATE TABLE migrator_roundtrip_check (id SERIAL PRIMARY KEY);`)
	cleanupVersion(t, database, "900", "migrator_roundtrip_check")

	require.NoError(t, migrator.MigrateFromFile(path))

	var recorded bool
	require.NoError(t, database.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = '900')`).Scan(&recorded))
	assert.True(t, recorded)

	// Second run is a no-op, not a duplicate-table error
	require.NoError(t, migrator.MigrateFromFile(path))
}

func TestMigrateFromFileRollsBackOnFailure(t *testing.T) {
	database := testDB(t)
	migrator := NewMigrator(database)
	ctx := context.Background()

	// The second statement fails, so the first must not survive either
	path := writeMigration(t, t.TempDir(), "901_broken.sql",
		`CREATE TABLE migrator_broken_check (id SERIAL PRIMARY KEY);
		 INSERT INTO migrator_broken_check (no_such_column) VALUES (1);`)
	cleanupVersion(t, database, "901", "migrator_broken_check")

	require.Error(t, migrator.MigrateFromFile(path))

	var tableExists bool
	require.NoError(t, database.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM information_schema.tables WHERE table_name = 'migrator_broken_check')`).Scan(&tableExists))
	assert.False(t, tableExists)

	var recorded bool
	require.NoError(t, database.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = '901')`).Scan(&recorded))
	assert.False(t, recorded)
}
