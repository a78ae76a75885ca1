package lru

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"go.expect.digital/lrucache/internal/index"
	"go.expect.digital/lrucache/internal/list"
)

const (
	defaultLimit = 100
	maxPrealloc  = 1024
)

var (
	ErrNotFound    = errors.New("not found")
	ErrStaleHandle = errors.New("stale handle")
)

// zeroValue returns the zero value of the type.
func zeroValue[T any]() (zero T) { //nolint:ireturn
	return
}

// Pair is a key and the value stored under it.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Handle refers to a cache entry. It is only meaningful to the cache that issued it
// and stops resolving once the entry is deleted or evicted.
type Handle struct {
	h list.Handle
}

// Stats holds the cache counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Inserts   uint64
	Updates   uint64
	Evictions uint64
}

// Cache is a least recently used cache.
//
// Cache is not safe for concurrent use. See Synced.
type Cache[K comparable, V any] struct {
	limit   int
	onEvict OnEvict[K, V]
	log     *zap.Logger
	entries *list.List[Pair[K, V]]
	lookup  *index.Index[K]
	stats   Stats
}

// Limit returns the max number of entries, or 0 if the cache is unbounded.
func (c *Cache[K, V]) Limit() int {
	return c.limit
}

// Len returns the number of entries stored in the cache.
func (c *Cache[K, V]) Len() int {
	return c.lookup.Len()
}

// Stats returns a copy of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}

// Contains reports whether key is in the cache without changing its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	return c.lookup.Has(key)
}

// Get returns the value associated with the key. Get does not change the recency of the key.
func (c *Cache[K, V]) Get(key K) (V, error) { //nolint:ireturn
	h, ok := c.lookup.Get(key)
	if !ok {
		c.stats.Misses++

		return zeroValue[V](), fmt.Errorf("value not found for key: %v: %w", key, ErrNotFound)
	}

	p, _ := c.entries.Get(h)
	c.stats.Hits++

	return p.Value, nil
}

// Set stores value under key and marks the entry as the most recently used.
// If key is new and the cache is full, the least recently used entry is evicted first.
func (c *Cache[K, V]) Set(key K, value V) Handle {
	// If the key already exists, update the value and move the element to the front of the list.
	if h, ok := c.lookup.Get(key); ok {
		c.entries.Set(h, Pair[K, V]{Key: key, Value: value})
		h, _ = c.entries.MoveToFront(h)
		c.lookup.Set(key, h)
		c.stats.Updates++

		if ce := c.log.Check(zap.DebugLevel, "cache hit on set"); ce != nil {
			ce.Write(zap.Any("key", key))
		}

		return Handle{h: h}
	}

	if c.limit > 0 && c.entries.Len() >= c.limit {
		c.evict()
	}

	h := c.entries.PushFront(Pair[K, V]{Key: key, Value: value})
	c.lookup.Set(key, h)
	c.stats.Inserts++

	if ce := c.log.Check(zap.DebugLevel, "added to cache"); ce != nil {
		ce.Write(zap.Any("key", key), zap.Int("len", c.entries.Len()))
	}

	return Handle{h: h}
}

// SetMany calls Set for each pair in order and returns one handle per pair.
// Eviction applies to every insert, so a large batch may evict its own earlier pairs.
func (c *Cache[K, V]) SetMany(pairs ...Pair[K, V]) []Handle {
	handles := make([]Handle, len(pairs))

	for i, p := range pairs {
		handles[i] = c.Set(p.Key, p.Value)
	}

	return handles
}

// Touch marks key as the most recently used without changing its value.
func (c *Cache[K, V]) Touch(key K) error {
	h, ok := c.lookup.Get(key)
	if !ok {
		return fmt.Errorf("touch key: %v: %w", key, ErrNotFound)
	}

	h, _ = c.entries.MoveToFront(h)
	c.lookup.Set(key, h)

	if ce := c.log.Check(zap.DebugLevel, "bumped to most recent"); ce != nil {
		ce.Write(zap.Any("key", key))
	}

	return nil
}

// Delete removes key from the cache. It reports whether the key was present.
func (c *Cache[K, V]) Delete(key K) bool {
	h, ok := c.lookup.Get(key)
	if !ok {
		return false
	}

	c.entries.Remove(h)
	c.lookup.Delete(key)

	return true
}

// Purge removes all entries. OnEvict is not called.
func (c *Cache[K, V]) Purge() {
	c.entries.Reset()
	c.lookup.Reset()
}

// Entry returns the entry referred to by h.
func (c *Cache[K, V]) Entry(h Handle) (Pair[K, V], error) {
	p, ok := c.entries.Get(h.h)
	if !ok {
		return Pair[K, V]{}, ErrStaleHandle
	}

	return p, nil
}

// Keys returns the keys ordered from the most to the least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.entries.Len())

	c.entries.Each(func(_ list.Handle, p Pair[K, V]) bool {
		keys = append(keys, p.Key)
		return true
	})

	return keys
}

// MostRecent returns the most recently used entry.
func (c *Cache[K, V]) MostRecent() (Pair[K, V], error) {
	p, err := c.entries.Front()
	if err != nil {
		return Pair[K, V]{}, fmt.Errorf("most recent entry: %w", ErrNotFound)
	}

	return p, nil
}

// MostRecentKey returns the key of the most recently used entry.
func (c *Cache[K, V]) MostRecentKey() (K, error) { //nolint:ireturn
	p, err := c.MostRecent()
	return p.Key, err
}

// MostRecentValue returns the value of the most recently used entry.
func (c *Cache[K, V]) MostRecentValue() (V, error) { //nolint:ireturn
	p, err := c.MostRecent()
	return p.Value, err
}

// LeastRecent returns the least recently used entry, the next one to be evicted.
func (c *Cache[K, V]) LeastRecent() (Pair[K, V], error) {
	p, err := c.entries.Back()
	if err != nil {
		return Pair[K, V]{}, fmt.Errorf("least recent entry: %w", ErrNotFound)
	}

	return p, nil
}

// LeastRecentKey returns the key of the least recently used entry.
func (c *Cache[K, V]) LeastRecentKey() (K, error) { //nolint:ireturn
	p, err := c.LeastRecent()
	return p.Key, err
}

// LeastRecentValue returns the value of the least recently used entry.
func (c *Cache[K, V]) LeastRecentValue() (V, error) { //nolint:ireturn
	p, err := c.LeastRecent()
	return p.Value, err
}

// evict removes the least recently used entry. The caller guarantees the cache is not empty.
func (c *Cache[K, V]) evict() {
	p, err := c.entries.PopBack()
	if err != nil {
		// Only reachable if the index and the list went out of sync.
		panic(fmt.Errorf("lru: evict with %d indexed keys: %w", c.lookup.Len(), err))
	}

	c.lookup.Delete(p.Key)
	c.stats.Evictions++

	if ce := c.log.Check(zap.DebugLevel, "hit cache limit, evicted"); ce != nil {
		ce.Write(zap.Any("key", p.Key), zap.Int("limit", c.limit))
	}

	if c.onEvict != nil {
		c.onEvict(p.Key, p.Value)
	}
}

type Option[K comparable, V any] func(*Cache[K, V])

// WithLimit sets the max number of entries in the cache.
// If the cache is full, the least recently used entry is evicted.
// A limit of zero or less disables eviction.
func WithLimit[K comparable, V any](n int) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.limit = n
	}
}

type OnEvict[K comparable, V any] func(key K, value V)

// WithOnEvict sets a function to be called after an entry is evicted to make room for a new key.
// It is not called for Delete or Purge.
func WithOnEvict[K comparable, V any](onEvict OnEvict[K, V]) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = onEvict
	}
}

// WithLogger sets the logger used for debug messages about inserts, hits and evictions.
func WithLogger[K comparable, V any](log *zap.Logger) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.log = log
	}
}

// New returns an empty cache. Without WithLimit the cache holds at most 100 entries.
func New[K comparable, V any](options ...Option[K, V]) *Cache[K, V] {
	c := &Cache[K, V]{limit: defaultLimit}

	for _, f := range options {
		f(c)
	}

	if c.limit < 0 {
		c.limit = 0
	}

	if c.log == nil {
		c.log = zap.NewNop()
	}

	prealloc := min(c.limit, maxPrealloc)

	c.entries = list.New[Pair[K, V]](prealloc)
	c.lookup = index.New[K](prealloc)

	return c
}
