package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		s := NewInMemoryStore()
		defer s.Close()

		require.NoError(t, s.Set(ctx, "k", "v", time.Minute))

		got, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", got)
	})

	t.Run("missing key", func(t *testing.T) {
		s := NewInMemoryStore()
		defer s.Close()

		_, ok, err := s.Get(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expired entry is not returned", func(t *testing.T) {
		s := NewInMemoryStore()
		defer s.Close()

		require.NoError(t, s.Set(ctx, "k", "v", time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		_, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("overwrite refreshes value and ttl", func(t *testing.T) {
		s := NewInMemoryStore()
		defer s.Close()

		require.NoError(t, s.Set(ctx, "k", "old", time.Minute))
		require.NoError(t, s.Set(ctx, "k", "new", time.Minute))

		got, ok, _ := s.Get(ctx, "k")
		assert.True(t, ok)
		assert.Equal(t, "new", got)
	})

	t.Run("concurrent access is safe", func(t *testing.T) {
		s := NewInMemoryStore()
		defer s.Close()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = s.Set(ctx, "shared", "v", time.Minute)
			}()
			go func() {
				defer wg.Done()
				_, _, _ = s.Get(ctx, "shared")
			}()
		}
		wg.Wait()
	})

	t.Run("close is idempotent", func(t *testing.T) {
		s := NewInMemoryStore()
		require.NoError(t, s.Close())
		require.NoError(t, s.Close())
	})
}

func TestEvictExpired(t *testing.T) {
	s := NewInMemoryStore()
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "stale", "v", -time.Second))
	require.NoError(t, s.Set(ctx, "fresh", "v", time.Hour))

	s.evictExpired()

	s.mu.RLock()
	defer s.mu.RUnlock()
	assert.NotContains(t, s.entries, "stale")
	assert.Contains(t, s.entries, "fresh")
}
