// Package pgkv provides PostgreSQL-backed slot storage.
package pgkv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/career-journal/internal/kv"
)

const createTable = `CREATE TABLE IF NOT EXISTS career_slots (
	slot_key   TEXT PRIMARY KEY,
	content    BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

var _ kv.Timestamped = (*DB)(nil)

// Connect establishes a connection pool to the database and ensures the slot table exists
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, createTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create slot table: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() error {
	if db.pool != nil {
		db.pool.Close()
	}
	return nil
}

// Get retrieves a slot document by key
func (db *DB) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := kv.ValidateKey(key); err != nil {
		return nil, false, err
	}

	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM career_slots WHERE slot_key = $1`,
		key,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get slot %s: %w", key, err)
	}
	return content, true, nil
}

// Put stores a slot document, replacing any previous content
func (db *DB) Put(ctx context.Context, key string, value []byte) error {
	if err := kv.ValidateKey(key); err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO career_slots (slot_key, content)
		 VALUES ($1, $2)
		 ON CONFLICT (slot_key) DO UPDATE SET content = $2, updated_at = NOW()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to save slot %s: %w", key, err)
	}
	return nil
}

// UpdatedAt reports when a slot document was last written
func (db *DB) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	if err := kv.ValidateKey(key); err != nil {
		return time.Time{}, false, err
	}

	var updatedAt time.Time
	err := db.pool.QueryRow(ctx,
		`SELECT updated_at FROM career_slots WHERE slot_key = $1`,
		key,
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to get slot timestamp %s: %w", key, err)
	}
	return updatedAt.UTC(), true, nil
}

// Delete removes a slot document
func (db *DB) Delete(ctx context.Context, key string) error {
	if err := kv.ValidateKey(key); err != nil {
		return err
	}

	_, err := db.pool.Exec(ctx, `DELETE FROM career_slots WHERE slot_key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}
