//go:build e2e

package kvstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"course-cart/internal/infra/db"
	"course-cart/internal/infra/kvstore"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestPostgres(t *testing.T) {
	ctx := t.Context()

	container, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.WithDatabase("course_cart"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, cleanup, err := db.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	kv := kvstore.NewPostgres(pool, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, kv.EnsureSchema(ctx))
	require.NoError(t, kv.EnsureSchema(ctx))

	runContract(t, kv)
}
