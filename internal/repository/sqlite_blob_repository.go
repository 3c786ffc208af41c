package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	errorvalues "github.com/limbo/focusflow/internal/error_values"
	"github.com/limbo/focusflow/pkg/cleanup"
	_ "modernc.org/sqlite"
)

// SQLiteBlobRepository keeps the blobs in a single local database file.
type SQLiteBlobRepository struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the database at path and applies migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLiteBlobRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer at a time; modernc serializes anyway but this avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := Migrate(db, DialectSQLite); err != nil {
		_ = db.Close()
		return nil, err
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite",
		F:    db.Close,
	})
	return NewSQLiteBlobRepoWithDB(db), nil
}

func NewSQLiteBlobRepoWithDB(db *sql.DB) *SQLiteBlobRepository {
	return &SQLiteBlobRepository{db: db}
}

func (r *SQLiteBlobRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	row := r.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrBlobNotFound
		}
		return nil, fmt.Errorf("blob get: %w", err)
	}
	return []byte(value), nil
}

func (r *SQLiteBlobRepository) Put(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO blobs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("blob put: %w", err)
	}
	return nil
}

func (r *SQLiteBlobRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("blob delete: %w", err)
	}
	return nil
}
