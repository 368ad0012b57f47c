package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/bizos/backend/internal/aiflow"
	"github.com/bizos/backend/internal/infrastructure/cache"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// CachedGenerator wraps a Generator with a result cache keyed by a hash of
// the model inputs. A cache hit skips the provider call entirely. Failures to
// read or write the cache degrade to a direct call, never to an error.
type CachedGenerator struct {
	inner   aiflow.Generator
	store   cache.Store
	ttl     time.Duration
	logger  *zap.Logger
	onEvent func(ctx context.Context, hit bool)
}

// NewCachedGenerator wraps inner with the given store and TTL
func NewCachedGenerator(inner aiflow.Generator, store cache.Store, ttl time.Duration, logger *zap.Logger) *CachedGenerator {
	return &CachedGenerator{inner: inner, store: store, ttl: ttl, logger: logger.Named("aicache")}
}

// SetCacheObserver installs a hook invoked with every lookup's outcome.
// Call before the generator serves traffic.
func (g *CachedGenerator) SetCacheObserver(fn func(ctx context.Context, hit bool)) {
	g.onEvent = fn
}

// GenerateJSON implements aiflow.Generator
func (g *CachedGenerator) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	key := cacheKey("json", prompt, nil, schema)
	if value, ok := g.lookup(ctx, key); ok {
		return value, nil
	}
	result, err := g.inner.GenerateJSON(ctx, prompt, schema)
	if err != nil {
		return "", err
	}
	g.save(ctx, key, result)
	return result, nil
}

// GenerateJSONWithImage implements aiflow.Generator
func (g *CachedGenerator) GenerateJSONWithImage(ctx context.Context, prompt string, image []byte, mimeType string, schema *genai.Schema) (string, error) {
	key := cacheKey("json:"+mimeType, prompt, image, schema)
	if value, ok := g.lookup(ctx, key); ok {
		return value, nil
	}
	result, err := g.inner.GenerateJSONWithImage(ctx, prompt, image, mimeType, schema)
	if err != nil {
		return "", err
	}
	g.save(ctx, key, result)
	return result, nil
}

// GenerateText implements aiflow.Generator
func (g *CachedGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	key := cacheKey("text", prompt, nil, nil)
	if value, ok := g.lookup(ctx, key); ok {
		return value, nil
	}
	result, err := g.inner.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}
	g.save(ctx, key, result)
	return result, nil
}

func (g *CachedGenerator) lookup(ctx context.Context, key string) (string, bool) {
	value, ok, err := g.store.Get(ctx, key)
	if err != nil {
		g.logger.Warn("cache read failed", zap.Error(err))
		ok = false
		value = ""
	}
	if g.onEvent != nil {
		g.onEvent(ctx, ok)
	}
	return value, ok
}

func (g *CachedGenerator) save(ctx context.Context, key, value string) {
	if err := g.store.Set(ctx, key, value, g.ttl); err != nil {
		g.logger.Warn("cache write failed", zap.Error(err))
	}
}

func cacheKey(kind, prompt string, image []byte, schema *genai.Schema) string {
	h := sha256.New()
	h.Write([]byte(kind))
	h.Write([]byte{0})
	h.Write([]byte(prompt))
	if len(image) > 0 {
		h.Write([]byte{0})
		h.Write(image)
	}
	if schema != nil {
		if encoded, err := json.Marshal(schema); err == nil {
			h.Write([]byte{0})
			h.Write(encoded)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
