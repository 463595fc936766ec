package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledStoreIsNoop(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, "", nil)
	assert.False(t, s.Enabled())

	s.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute)
	var out map[string]int
	assert.False(t, s.GetJSON(ctx, "k", &out))

	require.NoError(t, s.Mark(ctx, "flag", time.Minute))
	ok, err := s.Exists(ctx, "flag")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Close())
}

func TestInvalidURLDisablesStore(t *testing.T) {
	s := New(context.Background(), "not a url", nil)
	assert.False(t, s.Enabled())
}

func TestNilStoreIsDisabled(t *testing.T) {
	var s *Store
	assert.False(t, s.Enabled())
}
