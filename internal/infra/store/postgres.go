package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"quotemaster/go_backend/internal/infra/db/postgres"
)

type Postgres struct {
	db *postgres.DB
}

func NewPostgres(db *postgres.DB) *Postgres { return &Postgres{db: db} }

func (p *Postgres) Migrate(ctx context.Context) error {
	_, err := p.db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS app_kv (
			key        text PRIMARY KEY,
			value      text NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	return err
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := p.db.Pool.QueryRow(ctx, `SELECT value FROM app_kv WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	_, err := p.db.Pool.Exec(ctx, `
		INSERT INTO app_kv (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	return err
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	_, err := p.db.Pool.Exec(ctx, `DELETE FROM app_kv WHERE key = $1`, key)
	return err
}
