package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store/drivers/postgres"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store/storetest"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres boots a throwaway postgres and returns host:port. Every
// conformance subtest gets its own database inside the one container.
func startPostgres(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container in -short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "mutuals",
			"POSTGRES_PASSWORD": "mutuals",
			"POSTGRES_DB":       "mutuals",
		},
		// postgres logs this line twice, once for the init server
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("%s:%s", host, port.Port())
}

func dsnFor(addr, database string) string {
	return fmt.Sprintf("postgres://mutuals:mutuals@%s/%s?sslmode=disable", addr, database)
}

func TestConformance(t *testing.T) {
	addr := startPostgres(t)

	admin, err := sql.Open("pgx", dsnFor(addr, "mutuals"))
	require.NoError(t, err)
	defer admin.Close()

	n := 0
	storetest.Run(t, func(t *testing.T) store.Store {
		n++
		name := fmt.Sprintf("conformance_%d", n)
		_, err := admin.ExecContext(context.Background(), "CREATE DATABASE "+name)
		require.NoError(t, err)

		s, err := postgres.NewStore(dsnFor(addr, name))
		require.NoError(t, err)
		require.NoError(t, s.ApplyMigrations())
		return s
	})
}
