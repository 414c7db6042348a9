package session

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/redis/v3"
)

// NewStorage picks the session backend: Redis when a URL is configured,
// otherwise an in-process map (single-instance deployments and tests).
func NewStorage(redisURL string) fiber.Storage {
	if redisURL != "" {
		return redis.New(redis.Config{URL: redisURL})
	}
	return newMemoryStorage()
}

// memoryStorage is a minimal fiber.Storage over a mutex-guarded map with
// lazy expiry.
type memoryStorage struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value   []byte
	expires time.Time
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{entries: make(map[string]memoryEntry)}
}

func (m *memoryStorage) Get(key string) ([]byte, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, nil
	}
	return e.value, nil
}

func (m *memoryStorage) Set(key string, val []byte, exp time.Duration) error {
	e := memoryEntry{value: val}
	if exp > 0 {
		e.expires = time.Now().Add(exp)
	}
	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

func (m *memoryStorage) Delete(key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *memoryStorage) Reset() error {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry)
	m.mu.Unlock()
	return nil
}

func (m *memoryStorage) Close() error {
	return nil
}
