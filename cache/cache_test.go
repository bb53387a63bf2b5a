package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	modified := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	key := Key(7, modified)
	assert.Equal(t, "schema_7_1709634600", key)

	t.Run("changes with item", func(t *testing.T) {
		assert.NotEqual(t, key, Key(8, modified))
	})

	t.Run("changes with modification time", func(t *testing.T) {
		assert.NotEqual(t, key, Key(7, modified.Add(time.Second)))
	})
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	t.Run("miss yields ErrNotFound", func(t *testing.T) {
		_, err := m.Get(ctx, "absent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, m.Set(ctx, "k", []byte("v")))
		got, err := m.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("returned value is a copy", func(t *testing.T) {
		require.NoError(t, m.Set(ctx, "copy", []byte("abc")))
		got, err := m.Get(ctx, "copy")
		require.NoError(t, err)
		got[0] = 'x'

		again, err := m.Get(ctx, "copy")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, m.Set(ctx, "gone", []byte("v")))
		require.NoError(t, m.Delete(ctx, "gone"))
		_, err := m.Get(ctx, "gone")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, m.Delete(ctx, "gone"))
	})

	t.Run("flush empties the cache", func(t *testing.T) {
		require.NoError(t, m.Set(ctx, "a", []byte("1")))
		require.NoError(t, m.Set(ctx, "b", []byte("2")))
		m.Flush()
		assert.Equal(t, 0, m.Len())
	})
}
