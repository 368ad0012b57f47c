package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var _ ObjectStorage = (*MemoryStorage)(nil)

// MemoryStorage is an in-process ObjectStorage for development and tests
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
	BaseURL string
}

// NewMemoryStorage creates an empty in-memory store
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		objects: make(map[string][]byte),
		BaseURL: "https://storage.invalid",
	}
}

// Upload implements ObjectStorage
func (m *MemoryStorage) Upload(_ context.Context, storageKey string, data []byte, _ string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.objects[storageKey] = stored
	return nil
}

// Download implements ObjectStorage
func (m *MemoryStorage) Download(_ context.Context, storageKey string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[storageKey]
	if !ok {
		return nil, fmt.Errorf("object %s does not exist", storageKey)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Delete implements ObjectStorage
func (m *MemoryStorage) Delete(_ context.Context, storageKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, storageKey)
	return nil
}

// Exists implements ObjectStorage
func (m *MemoryStorage) Exists(_ context.Context, storageKey string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[storageKey]
	return ok, nil
}

// GenerateDownloadURL implements ObjectStorage
func (m *MemoryStorage) GenerateDownloadURL(_ context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	expiresAt := time.Now().Add(expiresIn)
	return m.BaseURL + "/" + storageKey, expiresAt, nil
}
