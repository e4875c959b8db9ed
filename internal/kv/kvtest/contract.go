// Package kvtest holds the behaviour every kv.Store backend must share.
package kvtest

import (
	"context"
	"testing"

	"github.com/jonathan/career-journal/internal/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunContract exercises a backend. newStore must return a store with no keys set.
func RunContract(t *testing.T, newStore func(t *testing.T) kv.Store) {
	t.Helper()

	t.Run("missing key", func(t *testing.T) {
		s := newStore(t)
		value, found, err := s.Get(context.Background(), "profile")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, value)
	})

	t.Run("put then get", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Put(ctx, "career-entries", []byte(`[{"id":"1"}]`)))

		value, found, err := s.Get(ctx, "career-entries")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `[{"id":"1"}]`, string(value))
	})

	t.Run("put overwrites", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Put(ctx, "profile", []byte(`{"name":"old"}`)))
		require.NoError(t, s.Put(ctx, "profile", []byte(`{"name":"new"}`)))

		value, found, err := s.Get(ctx, "profile")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `{"name":"new"}`, string(value))
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Put(ctx, "profile", []byte("p")))
		require.NoError(t, s.Put(ctx, "career-entries", []byte("e")))
		require.NoError(t, s.Delete(ctx, "profile"))

		_, found, err := s.Get(ctx, "profile")
		require.NoError(t, err)
		assert.False(t, found)

		value, found, err := s.Get(ctx, "career-entries")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "e", string(value))
	})

	t.Run("delete missing key", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Delete(context.Background(), "never-written"))
	})

	t.Run("empty key rejected", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		assert.Error(t, s.Put(ctx, "", []byte("x")))
		_, _, err := s.Get(ctx, "  ")
		assert.Error(t, err)
	})

	t.Run("stored value is not aliased", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		buf := []byte("abc")
		require.NoError(t, s.Put(ctx, "profile", buf))
		buf[0] = 'x'

		value, _, err := s.Get(ctx, "profile")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(value))
	})
}
