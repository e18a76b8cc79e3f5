// Package testhelpers provides throwaway databases for tests.
package testhelpers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/pageza/moodbites/backend/config"
	"github.com/pageza/moodbites/backend/internal/database"
)

func baseConfig(dsn string) *config.Config {
	return &config.Config{
		DatabaseURL:       dsn,
		DBMaxOpenConns:    1,
		DBMaxIdleConns:    1,
		DBConnMaxLifetime: time.Hour,
	}
}

// SetupTestDatabase returns a migrated, private in-memory SQLite database. The pool is
// capped at one connection so every query sees the same memory database.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := database.New(baseConfig(dsn))
	require.NoError(t, err)
	require.NoError(t, database.EnsureSchema(db))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// SetupPostgresDatabase starts a PostgreSQL container and returns a migrated database
// connected to it through the production code path.
func SetupPostgresDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "moodbites",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/moodbites?sslmode=disable", host, port.Port())
	cfg := baseConfig(dsn)
	cfg.DBMaxOpenConns = 5
	db, err := database.New(cfg)
	require.NoError(t, err)
	require.NoError(t, database.EnsureSchema(db))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
