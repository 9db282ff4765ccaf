package kvstore

import (
	"context"
	"errors"
	"log/slog"

	"course-cart/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const backendPostgres = "postgres"

const schema = `CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const (
	getEntry    = `SELECT value FROM kv_entries WHERE key = $1`
	upsertEntry = `INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	deleteEntry = `DELETE FROM kv_entries WHERE key = $1`
)

// Postgres keeps every key as one row of kv_entries.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *slog.Logger) *Postgres {
	return &Postgres{pool: pool, logger: logger}
}

// EnsureSchema creates kv_entries when missing.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return infra.WrapStorageErr(p.logger, backendPostgres, infra.KindUnavailable, "create kv_entries", err)
	}
	return nil
}

func (p *Postgres) wrap(kind infra.StorageErrorKind, op, key string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		kind = infra.KindTimeout
	}
	return infra.WrapStorageErr(p.logger, backendPostgres, kind, op+" "+key, err)
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.pool.QueryRow(ctx, getEntry, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, p.wrap(infra.KindReadFailed, "get", key, err)
	}
	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	if _, err := p.pool.Exec(ctx, upsertEntry, key, value); err != nil {
		return p.wrap(infra.KindWriteFailed, "set", key, err)
	}
	return nil
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	if _, err := p.pool.Exec(ctx, deleteEntry, key); err != nil {
		return p.wrap(infra.KindWriteFailed, "delete", key, err)
	}
	return nil
}
