// Package cache provides a process local TTL cache for recomputable aggregates
// it is not a correctness critical store; a cold cache just re-runs the query
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     any
	writtenAt time.Time
	ttl       time.Duration
}

func (e entry) expired(now time.Time) bool {
	return e.ttl > 0 && now.After(e.writtenAt.Add(e.ttl))
}

// Cache is a concurrency safe map with per entry TTL and a background sweep
// writes are last-writer-wins; concurrent writers to one key may race, which
// is acceptable for recomputable aggregate values
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry

	sweepEvery time.Duration
	stopOnce   sync.Once
	stop       chan struct{}

	now func() time.Time // seam for tests
}

// Option mutates a Cache during New
type Option func(*Cache)

// WithSweepInterval overrides the background sweep cadence
func WithSweepInterval(d time.Duration) Option {
	return func(c *Cache) { c.sweepEvery = d }
}

// WithClock overrides the time source, for tests
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New builds a Cache and starts its sweep goroutine
// callers own the lifecycle and must call Stop on shutdown
func New(opts ...Option) *Cache {
	c := &Cache{
		entries:    make(map[string]entry),
		sweepEvery: time.Minute,
		stop:       make(chan struct{}),
		now:        time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	go c.run()
	return c
}

// Get returns the live value for key; an expired entry is a miss
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || e.expired(c.now()) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the given ttl, last writer wins
// ttl <= 0 means the entry never expires (sweep leaves it alone)
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, writtenAt: c.now(), ttl: ttl}
	c.mu.Unlock()
}

// Invalidate drops every entry whose key starts with prefix and reports how many
// an empty prefix clears the whole cache
func (c *Cache) Invalidate(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Len reports the entry count including not yet swept expired entries
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stop terminates the sweep goroutine, safe to call more than once
func (c *Cache) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache) run() {
	t := time.NewTicker(c.sweepEvery)
	defer t.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-t.C:
			c.sweep()
		}
	}
}

func (c *Cache) sweep() {
	now := c.now()
	c.mu.Lock()
	for k, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
}

// Key canonicalizes a parameter map into a stable cache key
// logically identical maps collide regardless of construction order
func Key(scope string, params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		// json gives stable scalar and slice encodings; fall back to %v
		if raw, err := json.Marshal(params[k]); err == nil {
			b.Write(raw)
		} else {
			fmt.Fprintf(&b, "%v", params[k])
		}
		b.WriteByte(';')
	}
	sum := sha256.Sum256([]byte(b.String()))
	return scope + ":" + hex.EncodeToString(sum[:16])
}

// GetAs is a typed Get; a present entry of the wrong type is a miss
func GetAs[T any](c *Cache, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Remember is a read-through helper: hit returns the cached value, miss runs
// compute and stores its result under key with ttl
func Remember[T any](c *Cache, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	if v, ok := GetAs[T](c, key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(key, v, ttl)
	return v, nil
}
