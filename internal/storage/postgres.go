package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (p *PostgresStore) EnsureSchema() error {
	_, err := p.DB.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			key TEXT PRIMARY KEY,
			payload BYTEA NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure snapshots schema: %w", err)
	}
	return nil
}

func (p *PostgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := p.DB.QueryRowContext(ctx,
		"SELECT payload FROM snapshots WHERE key = $1", key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

func (p *PostgresStore) Save(ctx context.Context, key string, payload []byte) error {
	_, err := p.DB.ExecContext(ctx, `
		INSERT INTO snapshots (key, payload, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = CURRENT_TIMESTAMP
	`, key, payload)
	return err
}

var _ SnapshotStore = (*PostgresStore)(nil)
