package repository

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/vacations/pkg/postgres"
)

var (
	testDB     *pgxpool.Pool
	testDBOnce sync.Once
)

// SetupTestDatabase connects to TEST_POSTGRES_DSN, applies migrations once
// and empties user data tables. The test is skipped when the variable is unset.
func SetupTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	testDBOnce.Do(func() {
		require.NoError(t, postgres.UpMigrations(dsn))

		db, err := postgres.Connect(context.Background(), dsn, 4)
		require.NoError(t, err)

		testDB = db
	})

	require.NotNil(t, testDB)

	CleanupDatabase(t, testDB)

	return testDB
}

func CleanupDatabase(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{
		"likes",
		"vacations",
		"users",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, "DELETE FROM "+table)
		if err != nil {
			t.Logf("Warning: failed to cleanup table %s: %v", table, err)
		}
	}

	_, err := db.Exec(ctx, "DELETE FROM countries WHERE name LIKE 'Test %'")
	if err != nil {
		t.Logf("Warning: failed to cleanup test countries: %v", err)
	}

	_, err = db.Exec(ctx, "DELETE FROM roles WHERE id > 2")
	if err != nil {
		t.Logf("Warning: failed to cleanup test roles: %v", err)
	}
}
