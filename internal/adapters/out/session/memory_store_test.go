package session_test

import (
	"context"
	"testing"

	"shipments/internal/adapters/out/session"
	"shipments/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	_, ok, err := store.Get(ctx, ports.SessionKeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, ports.SessionKeyToken, "abc"))
	v, ok, err := store.Get(ctx, ports.SessionKeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	require.NoError(t, store.Clear(ctx, ports.SessionKeyToken))
	_, ok, _ = store.Get(ctx, ports.SessionKeyToken)
	assert.False(t, ok)
}
