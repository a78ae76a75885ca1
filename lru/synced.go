package lru

import "sync"

// Synced wraps a Cache with a single mutex held for the duration of each call.
// Get updates the hit counters, so reads take the exclusive lock too.
//
// OnEvict runs with the lock held and must not call back into the Synced cache.
type Synced[K comparable, V any] struct {
	mu    sync.Mutex
	cache *Cache[K, V]
}

// NewSynced returns an empty Synced cache built with the given options.
func NewSynced[K comparable, V any](options ...Option[K, V]) *Synced[K, V] {
	return &Synced[K, V]{cache: New(options...)}
}

func (s *Synced[K, V]) Limit() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Limit()
}

func (s *Synced[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Len()
}

func (s *Synced[K, V]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Stats()
}

func (s *Synced[K, V]) Contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Contains(key)
}

func (s *Synced[K, V]) Get(key K) (V, error) { //nolint:ireturn
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Get(key)
}

func (s *Synced[K, V]) Set(key K, value V) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Set(key, value)
}

// SetMany holds the lock for the whole batch.
func (s *Synced[K, V]) SetMany(pairs ...Pair[K, V]) []Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.SetMany(pairs...)
}

func (s *Synced[K, V]) Touch(key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Touch(key)
}

func (s *Synced[K, V]) Delete(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Delete(key)
}

func (s *Synced[K, V]) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Purge()
}

func (s *Synced[K, V]) Entry(h Handle) (Pair[K, V], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Entry(h)
}

func (s *Synced[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Keys()
}

func (s *Synced[K, V]) MostRecent() (Pair[K, V], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.MostRecent()
}

func (s *Synced[K, V]) MostRecentKey() (K, error) { //nolint:ireturn
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.MostRecentKey()
}

func (s *Synced[K, V]) MostRecentValue() (V, error) { //nolint:ireturn
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.MostRecentValue()
}

func (s *Synced[K, V]) LeastRecent() (Pair[K, V], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.LeastRecent()
}

func (s *Synced[K, V]) LeastRecentKey() (K, error) { //nolint:ireturn
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.LeastRecentKey()
}

func (s *Synced[K, V]) LeastRecentValue() (V, error) { //nolint:ireturn
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.LeastRecentValue()
}
