package site

import (
	"context"
	"sync"
	"time"

	"github.com/codeninjahub/codeninjahub/internal/platform/constants"
)

// PageCache stores rendered documents by page key ("home", "language:<slug>").
type PageCache interface {
	// Get reports whether key holds a live page.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, page []byte) error
	// Ping checks the backend for the readiness probe.
	Ping(ctx context.Context) error
	// Name identifies the backend in logs and health checks.
	Name() string
}

const (
	// HomeKey is the cache key of the landing page.
	HomeKey = constants.PageKeyHome

	notFoundKey = "not-found"
)

// LanguageKey is the cache key of a language page.
func LanguageKey(slug string) string {
	return constants.PageKeyLanguagePrefix + slug
}

type memoryEntry struct {
	page      []byte
	expiresAt time.Time
}

func (entry memoryEntry) expired(now time.Time) bool {
	return !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt)
}

// MemoryCache is a process-local [PageCache] with a fixed TTL.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates an empty cache. A non-positive ttl keeps pages forever.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (cache *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	cache.mu.RLock()
	entry, found := cache.entries[key]
	cache.mu.RUnlock()

	if !found {
		return nil, false, nil
	}
	now := cache.now()
	if !entry.expired(now) {
		return entry.page, true, nil
	}

	// A Set may have refreshed the key since the read lock was released.
	cache.mu.Lock()
	defer cache.mu.Unlock()
	entry, found = cache.entries[key]
	if !found {
		return nil, false, nil
	}
	if entry.expired(now) {
		delete(cache.entries, key)
		return nil, false, nil
	}
	return entry.page, true, nil
}

func (cache *MemoryCache) Set(_ context.Context, key string, page []byte) error {
	entry := memoryEntry{page: page}
	if cache.ttl > 0 {
		entry.expiresAt = cache.now().Add(cache.ttl)
	}

	cache.mu.Lock()
	cache.entries[key] = entry
	cache.mu.Unlock()
	return nil
}

func (cache *MemoryCache) Ping(context.Context) error { return nil }

func (cache *MemoryCache) Name() string { return "memory" }
