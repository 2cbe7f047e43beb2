package cache

import (
	"sync"
	"time"

	"AlphaDesk/internal/domain/models"
)

type entry struct {
	res      *models.SimulationResult
	expireAt time.Time
	lastUsed time.Time
}

// ResultCache memoizes simulation results for explicitly seeded requests.
// A seeded run is fully deterministic, so replaying it only burns CPU.
// Unseeded runs must never be cached; the caller enforces that.
type ResultCache struct {
	mu      sync.Mutex
	items   map[string]*entry
	maxSize int
	ttl     time.Duration
}

func New(maxSize int, ttl time.Duration) *ResultCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ResultCache{
		items:   make(map[string]*entry),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// Get returns the cached result for key, if present and fresh.
func (c *ResultCache) Get(key string) (*models.SimulationResult, bool) {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if now.After(e.expireAt) {
		delete(c.items, key)
		return nil, false
	}
	e.lastUsed = now
	return e.res, true
}

// Put stores a result under key, evicting the least recently used
// entry when the cache is full.
func (c *ResultCache) Put(key string, res *models.SimulationResult) {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; !ok && len(c.items) >= c.maxSize {
		c.evictLRU()
	}
	c.items[key] = &entry{res: res, expireAt: now.Add(c.ttl), lastUsed: now}
}

// Len reports the number of cached entries, expired or not.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *ResultCache) evictLRU() {
	var oldestKey string
	var oldest time.Time
	first := true
	for k, e := range c.items {
		if first || e.lastUsed.Before(oldest) {
			oldestKey, oldest = k, e.lastUsed
			first = false
		}
	}
	if oldestKey != "" {
		delete(c.items, oldestKey)
	}
}
