package rediskv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_RequiresAddr(t *testing.T) {
	_, err := Open(context.Background(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis address is required")
}

func TestStore_RejectsEmptyKey(t *testing.T) {
	// Key validation happens before any network round trip
	s := &Store{}
	assert.Error(t, s.Put(context.Background(), "", []byte("x")))
	_, _, err := s.Get(context.Background(), " ")
	assert.Error(t, err)
	assert.Error(t, s.Delete(context.Background(), ""))
}
