package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Cache(t *testing.T) {
	t.Run("returns stored values until they expire", func(t *testing.T) {
		current := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
		c := New[string, int](time.Minute)
		c.now = func() time.Time { return current }

		c.Set("k", 42)

		got, ok := c.Get("k")
		require.True(t, ok)
		require.Equal(t, 42, got)

		current = current.Add(2 * time.Minute)
		_, ok = c.Get("k")
		require.False(t, ok)
	})

	t.Run("missing and deleted keys", func(t *testing.T) {
		c := New[string, string](time.Minute)

		_, ok := c.Get("missing")
		require.False(t, ok)

		c.Set("k", "v")
		c.Delete("k")
		_, ok = c.Get("k")
		require.False(t, ok)
	})
}
