package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bizos/backend/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type countingGenerator struct {
	calls    int
	response string
	err      error
}

func (c *countingGenerator) GenerateJSON(context.Context, string, *genai.Schema) (string, error) {
	c.calls++
	return c.response, c.err
}

func (c *countingGenerator) GenerateJSONWithImage(context.Context, string, []byte, string, *genai.Schema) (string, error) {
	c.calls++
	return c.response, c.err
}

func (c *countingGenerator) GenerateText(context.Context, string) (string, error) {
	c.calls++
	return c.response, c.err
}

func TestCachedGenerator(t *testing.T) {
	ctx := context.Background()
	schema := &genai.Schema{Type: genai.TypeObject}

	t.Run("identical calls hit the cache", func(t *testing.T) {
		store := cache.NewInMemoryStore()
		defer store.Close()
		inner := &countingGenerator{response: `{"a":1}`}
		g := NewCachedGenerator(inner, store, time.Minute, zap.NewNop())

		first, err := g.GenerateJSON(ctx, "prompt", schema)
		require.NoError(t, err)
		second, err := g.GenerateJSON(ctx, "prompt", schema)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, inner.calls)
	})

	t.Run("different prompts miss", func(t *testing.T) {
		store := cache.NewInMemoryStore()
		defer store.Close()
		inner := &countingGenerator{response: `{"a":1}`}
		g := NewCachedGenerator(inner, store, time.Minute, zap.NewNop())

		_, _ = g.GenerateJSON(ctx, "one", schema)
		_, _ = g.GenerateJSON(ctx, "two", schema)
		assert.Equal(t, 2, inner.calls)
	})

	t.Run("image bytes participate in the key", func(t *testing.T) {
		store := cache.NewInMemoryStore()
		defer store.Close()
		inner := &countingGenerator{response: `{"a":1}`}
		g := NewCachedGenerator(inner, store, time.Minute, zap.NewNop())

		_, _ = g.GenerateJSONWithImage(ctx, "p", []byte{1, 2}, "image/png", schema)
		_, _ = g.GenerateJSONWithImage(ctx, "p", []byte{3, 4}, "image/png", schema)
		assert.Equal(t, 2, inner.calls)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		store := cache.NewInMemoryStore()
		defer store.Close()
		inner := &countingGenerator{err: errors.New("boom")}
		g := NewCachedGenerator(inner, store, time.Minute, zap.NewNop())

		_, err := g.GenerateJSON(ctx, "p", schema)
		require.Error(t, err)

		inner.err = nil
		inner.response = `{"ok":true}`
		got, err := g.GenerateJSON(ctx, "p", schema)
		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, got)
		assert.Equal(t, 2, inner.calls)
	})

	t.Run("text and json with same prompt do not collide", func(t *testing.T) {
		store := cache.NewInMemoryStore()
		defer store.Close()
		inner := &countingGenerator{response: "out"}
		g := NewCachedGenerator(inner, store, time.Minute, zap.NewNop())

		_, _ = g.GenerateText(ctx, "p")
		_, _ = g.GenerateJSON(ctx, "p", nil)
		assert.Equal(t, 2, inner.calls)
	})
}
