//go:build integration

package rediskv

import (
	"context"
	"os"
	"testing"

	"github.com/jonathan/career-journal/internal/kv"
	"github.com/jonathan/career-journal/internal/kv/kvtest"
	"github.com/stretchr/testify/require"
)

// These tests require a running Redis server.
// Set TEST_REDIS_ADDR to run them, e.g. TEST_REDIS_ADDR=localhost:6379

func TestIntegration_Store_Contract(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	kvtest.RunContract(t, func(t *testing.T) kv.Store {
		ctx := context.Background()
		s, err := Open(ctx, Options{Addr: addr, DB: 15})
		require.NoError(t, err)
		require.NoError(t, s.rdb.FlushDB(ctx).Err())
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}
