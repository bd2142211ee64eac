package desk

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/helpwire-io/deskapi/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrCacheKeyNotFound  = errors.New("key not found")
	ErrCacheEntryExpired = errors.New("entry expired")
)

// Cache is the interface for response cache backends.
type Cache interface {
	// Get retrieves a cached entry by key
	Get(ctx context.Context, key string) (*CacheEntry, error)

	// Set stores an entry under key
	Set(ctx context.Context, key string, entry *CacheEntry) error

	// Delete removes an entry by key
	Delete(ctx context.Context, key string) error

	// Clear removes all entries
	Clear(ctx context.Context) error

	// Has reports whether a non-expired entry exists for key
	Has(ctx context.Context, key string) bool
}

// CacheEntry is a single cached response.
type CacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
	ETag      string    `json:"etag,omitempty"`
}

// Expired reports whether the entry is past its expiry time.
func (e *CacheEntry) Expired() bool {
	return time.Now().After(e.ExpiresAt)
}

// CacheOptions configures common cache behavior for any backend.
type CacheOptions struct {
	// TTL is the default time-to-live for entries
	TTL time.Duration

	// MaxSize is the maximum number of entries
	MaxSize int

	// EnableETags enables conditional request support
	EnableETags bool
}

// DefaultCacheOptions returns the default cache options.
func DefaultCacheOptions() *CacheOptions {
	return &CacheOptions{
		TTL:         constants.DefaultCacheTTL,
		MaxSize:     constants.DefaultCacheSize,
		EnableETags: true,
	}
}

// MemoryCache is an in-memory cache with size-bounded eviction.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*CacheEntry
	maxSize int
}

// NewMemoryCache creates an in-memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = constants.DefaultCacheSize
	}

	return &MemoryCache{
		entries: make(map[string]*CacheEntry),
		maxSize: maxSize,
	}
}

// Get retrieves a cached entry by key.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	if entry.Expired() {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryExpired, key)
	}

	return entry, nil
}

// Set stores an entry, evicting the soonest-expiring entry when full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = entry

	return nil
}

// evictOldest removes the entry with the earliest expiry. Caller holds the lock.
func (c *MemoryCache) evictOldest() {
	var (
		oldestKey    string
		oldestExpiry time.Time
	)

	for key, entry := range c.entries {
		if oldestKey == "" || entry.ExpiresAt.Before(oldestExpiry) {
			oldestKey = key
			oldestExpiry = entry.ExpiresAt
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// Delete removes an entry by key.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)

	return nil
}

// Has reports whether a non-expired entry exists for key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]

	return ok && !entry.Expired()
}

// Cleanup removes all expired entries.
func (c *MemoryCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if entry.Expired() {
			delete(c.entries, key)
		}
	}
}

// StartCleanup runs Cleanup on the given interval until ctx is done.
func (c *MemoryCache) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Cleanup()
			}
		}
	}()
}

// CacheStats tracks cache effectiveness counters.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Sets   int64 `json:"sets"`
}

// GetHitRate returns the fraction of lookups served from cache.
func (s *CacheStats) GetHitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}

// CacheManager wraps a cache backend with key derivation and statistics.
type CacheManager struct {
	cache   Cache
	options *CacheOptions

	mu    sync.Mutex
	stats CacheStats
}

// NewCacheManager creates a cache manager over the given backend. A nil
// cache disables caching; nil options use DefaultCacheOptions.
func NewCacheManager(cache Cache, options *CacheOptions) *CacheManager {
	if options == nil {
		options = DefaultCacheOptions()
	}

	return &CacheManager{
		cache:   cache,
		options: options,
	}
}

// GetCacheKey derives the cache key for a request.
func (m *CacheManager) GetCacheKey(method, path string, params map[string]string) string {
	if len(params) == 0 {
		return method + ":" + path
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	return method + ":" + path + ":" + strings.Join(pairs, "&")
}

// Get retrieves cached data by key.
func (m *CacheManager) Get(ctx context.Context, key string) ([]byte, error) {
	if m.cache == nil {
		return nil, ErrCacheKeyNotFound
	}

	entry, err := m.cache.Get(ctx, key)
	if err != nil {
		m.mu.Lock()
		m.stats.Misses++
		m.mu.Unlock()

		return nil, err
	}

	m.mu.Lock()
	m.stats.Hits++
	m.mu.Unlock()

	return entry.Data, nil
}

// GetETag returns the stored ETag for key, or empty string.
func (m *CacheManager) GetETag(ctx context.Context, key string) string {
	if m.cache == nil || !m.options.EnableETags {
		return ""
	}

	entry, err := m.cache.Get(ctx, key)
	if err != nil {
		return ""
	}

	return entry.ETag
}

// Set stores data under key with the given TTL.
func (m *CacheManager) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return m.SetWithETag(ctx, key, data, "", ttl)
}

// SetWithETag stores data plus its ETag under key with the given TTL.
func (m *CacheManager) SetWithETag(ctx context.Context, key string, data []byte, etag string, ttl time.Duration) error {
	if m.cache == nil {
		return nil
	}

	if ttl <= 0 {
		ttl = m.options.TTL
	}

	entry := &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
		ETag:      etag,
	}

	err := m.cache.Set(ctx, key, entry)
	if err != nil {
		return fmt.Errorf("caching entry: %w", err)
	}

	m.mu.Lock()
	m.stats.Sets++
	m.mu.Unlock()

	return nil
}

// Invalidate removes the entry for key.
func (m *CacheManager) Invalidate(ctx context.Context, key string) error {
	if m.cache == nil {
		return nil
	}

	return m.cache.Delete(ctx, key)
}

// GetStats returns a snapshot of the cache counters.
func (m *CacheManager) GetStats() CacheStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stats
}

// CachingPolicy decides which responses are cacheable.
type CachingPolicy struct {
	// CacheGET enables caching of GET responses
	CacheGET bool

	// CachePOST enables caching of POST responses
	CachePOST bool

	// CacheErrors enables caching of non-2xx responses
	CacheErrors bool

	// IncludePaths, when non-empty, restricts caching to these path prefixes
	IncludePaths []string

	// ExcludePaths disables caching for these path prefixes
	ExcludePaths []string
}

// DefaultCachingPolicy returns the default policy: GET-only, successful
// responses, with live statistics endpoints excluded.
func DefaultCachingPolicy() *CachingPolicy {
	return &CachingPolicy{
		CacheGET:     true,
		ExcludePaths: []string{constants.APIPathVoiceStats},
	}
}

// ShouldCache reports whether a response is cacheable under this policy.
func (p *CachingPolicy) ShouldCache(method, path string, statusCode int) bool {
	switch method {
	case "GET":
		if !p.CacheGET {
			return false
		}
	case "POST":
		if !p.CachePOST {
			return false
		}
	default:
		return false
	}

	if !p.CacheErrors && (statusCode < 200 || statusCode >= 300) {
		return false
	}

	for _, prefix := range p.ExcludePaths {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}

	if len(p.IncludePaths) > 0 {
		for _, prefix := range p.IncludePaths {
			if strings.HasPrefix(path, prefix) {
				return true
			}
		}

		return false
	}

	return true
}
