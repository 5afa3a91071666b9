package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// StateKey is the storage key for the current schema version.
const StateKey = "compass-state-v2"

// SQLiteStateRepo implements StateRepo using a SQLite database.
type SQLiteStateRepo struct {
	db  *sql.DB
	key string
}

// NewSQLiteStateRepo creates a new SQLiteStateRepo bound to StateKey.
func NewSQLiteStateRepo(conn *sql.DB) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: conn, key: StateKey}
}

func (r *SQLiteStateRepo) Get(ctx context.Context) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, r.key)

	var value []byte
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("state %s: %w", r.key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning state: %w", err)
	}
	return value, nil
}

func (r *SQLiteStateRepo) Put(ctx context.Context, data []byte) error {
	query := `INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, r.key, data); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}
