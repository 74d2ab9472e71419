//go:build integration

package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pkordes/article-sections/migrations"
)

// StartPostgres runs a throwaway Postgres container, applies every migration
// and returns its DSN. The container is terminated when the test finishes.
// Only built with -tags integration, since it needs a Docker daemon.
func StartPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "sections", "POSTGRES_PASSWORD": "sections", "POSTGRES_DB": "sections"},
		ExposedPorts: []string{"5432/tcp"},
		// Postgres logs readiness twice: once for the init server, once for the real one.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("testutil.StartPostgres: start: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("testutil.StartPostgres: host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("testutil.StartPostgres: mapped port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://sections:sections@%s:%s/sections?sslmode=disable", host, port.Port())

	db := MustOpenSQLDB(dsn)
	defer db.Close()
	if _, err := migrations.Up(ctx, db); err != nil {
		t.Fatalf("testutil.StartPostgres: %v", err)
	}
	return dsn
}
