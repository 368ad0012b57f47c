// Package cache provides the generation-result cache used to avoid paying for
// identical provider calls twice. Two implementations exist: redis for
// multi-instance deployments and an in-memory map for single instances and
// tests.
package cache

import (
	"context"
	"time"
)

// Store is a string key-value cache with per-entry TTL
type Store interface {
	// Get returns the cached value and whether the key was present
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key for ttl
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Close releases any resources held by the store
	Close() error
}
