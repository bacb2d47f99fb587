package kv

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	err error
}

func (f *failingStore) Get(ctx context.Context, name string) ([]byte, error) {
	return nil, f.err
}

func (f *failingStore) Put(ctx context.Context, name string, data []byte) error {
	return f.err
}

func (f *failingStore) Close() error { return nil }

func nopLogger() *zerolog.Logger {
	l := zerolog.New(io.Discard)
	return &l
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "bookings")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "bookings", []byte(`[]`)))

	data, err := store.Get(ctx, "bookings")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	// Mutating the returned slice must not affect stored data.
	data[0] = 'x'
	again, err := store.Get(ctx, "bookings")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(again))
}

func TestFailoverStore(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy primary serves reads and mirrors writes", func(t *testing.T) {
		primary := NewMemoryStore()
		fallback := NewMemoryStore()
		store := NewFailoverStore(primary, fallback, nopLogger())

		require.NoError(t, store.Put(ctx, "providers", []byte(`["a"]`)))

		data, err := primary.Get(ctx, "providers")
		require.NoError(t, err)
		assert.Equal(t, `["a"]`, string(data))

		mirrored, err := fallback.Get(ctx, "providers")
		require.NoError(t, err)
		assert.Equal(t, `["a"]`, string(mirrored))
	})

	t.Run("failing primary falls back", func(t *testing.T) {
		fallback := NewMemoryStore()
		require.NoError(t, fallback.Put(ctx, "providers", []byte(`["b"]`)))

		store := NewFailoverStore(&failingStore{err: errors.New("connection refused")}, fallback, nopLogger())

		data, err := store.Get(ctx, "providers")
		require.NoError(t, err)
		assert.Equal(t, `["b"]`, string(data))

		// Writes keep landing in the fallback while the primary is down.
		require.NoError(t, store.Put(ctx, "providers", []byte(`["c"]`)))
		data, err = fallback.Get(ctx, "providers")
		require.NoError(t, err)
		assert.Equal(t, `["c"]`, string(data))
	})

	t.Run("not found from primary is not a failure", func(t *testing.T) {
		primary := NewMemoryStore()
		fallback := NewMemoryStore()
		require.NoError(t, fallback.Put(ctx, "reviews", []byte(`["stale"]`)))

		store := NewFailoverStore(primary, fallback, nopLogger())

		// The primary stays authoritative even when the key is absent.
		_, err := store.Get(ctx, "reviews")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
