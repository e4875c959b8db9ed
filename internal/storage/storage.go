// Package storage opens the slot store selected by configuration.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/career-journal/internal/config"
	"github.com/jonathan/career-journal/internal/kv"
	"github.com/jonathan/career-journal/internal/kv/pgkv"
	"github.com/jonathan/career-journal/internal/kv/rediskv"
	"github.com/jonathan/career-journal/internal/kv/sqlitekv"
)

// ErrUnknownBackend is returned for a backend name Open does not recognize
var ErrUnknownBackend = errors.New("unknown storage backend")

// Open connects to the backend named by cfg.Backend. The caller owns the returned
// store and must Close it.
func Open(ctx context.Context, cfg config.StorageConfig) (kv.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return kv.NewMemory(), nil

	case config.BackendDir:
		path, err := cfg.DataPath()
		if err != nil {
			return nil, err
		}
		return opened(kv.OpenDir(path))

	case config.BackendSQLite:
		path, err := cfg.DataPath()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		return opened(sqlitekv.Open(path))

	case config.BackendRedis:
		return opened(rediskv.Open(ctx, rediskv.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}))

	case config.BackendPostgres:
		return opened(pgkv.Connect(ctx, cfg.DSN))

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// opened keeps a failed constructor's typed nil out of the kv.Store interface
func opened[S kv.Store](s S, err error) (kv.Store, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
