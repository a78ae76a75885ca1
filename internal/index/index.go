// Package index maps cache keys to list handles.
package index

import "go.expect.digital/lrucache/internal/list"

// Index is a mapping from key to the handle of the list element holding it.
// It never owns the element data.
type Index[K comparable] struct {
	m map[K]list.Handle
}

// New returns an empty index sized for capacity keys.
func New[K comparable](capacity int) *Index[K] {
	if capacity < 0 {
		capacity = 0
	}

	return &Index[K]{m: make(map[K]list.Handle, capacity)}
}

// Has reports whether key is present.
func (x *Index[K]) Has(key K) bool {
	_, ok := x.m[key]
	return ok
}

// Get returns the handle stored for key.
func (x *Index[K]) Get(key K) (list.Handle, bool) {
	h, ok := x.m[key]
	return h, ok
}

// Set inserts or overwrites the handle for key.
func (x *Index[K]) Set(key K, h list.Handle) { x.m[key] = h }

// Delete removes key. It is a no-op if key is absent.
func (x *Index[K]) Delete(key K) { delete(x.m, key) }

// Len returns the number of keys.
func (x *Index[K]) Len() int { return len(x.m) }

// Reset removes all keys.
func (x *Index[K]) Reset() { clear(x.m) }
