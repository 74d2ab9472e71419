package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/article-sections/migrations"
	"github.com/pkordes/article-sections/testutil"
)

// TestMain runs before any test in the repo_test package.
// It applies all pending migrations to the test database so individual tests
// never need to think about schema state.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		// No test DB configured; every test skips itself via testutil.
		os.Exit(m.Run())
	}

	// goose needs database/sql, not a pgx pool. TestMain has no *testing.T,
	// so the connection is opened manually.
	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	defer db.Close()

	if _, err := migrations.Up(context.Background(), db); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}
