// Package list implements a doubly linked list stored in a flat arena of slots.
//
// Elements are addressed by Handle rather than by pointer. A handle holds the
// slot index and the slot generation, so a handle to a removed element never
// resolves again, even after its slot has been reused.
package list

import "errors"

var (
	// ErrEmpty is returned when popping from an empty list.
	ErrEmpty = errors.New("list is empty")
	// ErrNotFound is returned when peeking into an empty list.
	ErrNotFound = errors.New("not found")
)

// root is the sentinel slot. Its next is the front, its prev is the back.
const root int32 = 0

// Handle addresses one element of a List. The zero value addresses nothing.
type Handle struct {
	idx int32
	gen uint32
}

// Valid reports whether h was ever issued by a List.
func (h Handle) Valid() bool { return h.idx > root }

type slot[V any] struct {
	value V
	prev  int32
	next  int32
	gen   uint32
	used  bool
}

// List represents a doubly linked list.
type List[V any] struct {
	slots []slot[V]
	free  int32 // head of the free slot chain, linked through next
	n     int
}

// New returns a new list with room for capacity elements before the arena grows.
func New[V any](capacity int) *List[V] {
	if capacity < 0 {
		capacity = 0
	}

	l := new(List[V])
	l.slots = make([]slot[V], 1, capacity+1)

	return l
}

func (l *List[V]) alloc(v V) int32 {
	if i := l.free; i != root {
		s := &l.slots[i]
		l.free = s.next
		s.value = v
		s.used = true

		return i
	}

	l.slots = append(l.slots, slot[V]{value: v, gen: 1, used: true})

	return int32(len(l.slots) - 1) //nolint:gosec
}

func (l *List[V]) release(i int32) {
	var zero V

	s := &l.slots[i]
	s.value = zero
	s.used = false
	s.gen++
	s.prev = root
	s.next = l.free
	l.free = i
}

// link inserts slot i after slot at.
func (l *List[V]) link(i, at int32) {
	s := &l.slots[i]
	s.prev = at
	s.next = l.slots[at].next
	l.slots[s.next].prev = i
	l.slots[at].next = i
	l.n++
}

func (l *List[V]) unlink(i int32) {
	s := &l.slots[i]
	l.slots[s.prev].next = s.next
	l.slots[s.next].prev = s.prev
	s.prev = root
	s.next = root
	l.n--
}

func (l *List[V]) resolve(h Handle) (int32, bool) {
	if h.idx <= root || int(h.idx) >= len(l.slots) {
		return root, false
	}

	s := &l.slots[h.idx]
	if !s.used || s.gen != h.gen {
		return root, false
	}

	return h.idx, true
}

func (l *List[V]) handle(i int32) Handle {
	return Handle{idx: i, gen: l.slots[i].gen}
}

// Len returns the number of elements of list.
func (l *List[V]) Len() int { return l.n }

// Slots returns the number of slots allocated in the arena, used or free.
func (l *List[V]) Slots() int { return len(l.slots) - 1 }

// PushFront inserts v at the front.
func (l *List[V]) PushFront(v V) Handle {
	i := l.alloc(v)
	l.link(i, root)

	return l.handle(i)
}

// PushBack inserts v at the back.
func (l *List[V]) PushBack(v V) Handle {
	i := l.alloc(v)
	l.link(i, l.slots[root].prev)

	return l.handle(i)
}

// Remove removes the element addressed by h and returns its value.
// It returns false if h is stale.
func (l *List[V]) Remove(h Handle) (V, bool) { //nolint:ireturn
	i, ok := l.resolve(h)
	if !ok {
		var zero V
		return zero, false
	}

	v := l.slots[i].value
	l.unlink(i)
	l.release(i)

	return v, true
}

// MoveToFront moves the element addressed by h to the front.
// The returned handle addresses the element at its new position.
func (l *List[V]) MoveToFront(h Handle) (Handle, bool) {
	i, ok := l.resolve(h)
	if !ok {
		return Handle{}, false
	}

	if l.slots[root].next != i {
		l.unlink(i)
		l.link(i, root)
	}

	return l.handle(i), true
}

// Get returns the value addressed by h.
func (l *List[V]) Get(h Handle) (V, bool) { //nolint:ireturn
	i, ok := l.resolve(h)
	if !ok {
		var zero V
		return zero, false
	}

	return l.slots[i].value, true
}

// Set replaces the value addressed by h without moving it.
func (l *List[V]) Set(h Handle, v V) bool {
	i, ok := l.resolve(h)
	if !ok {
		return false
	}

	l.slots[i].value = v

	return true
}

// Front returns the first value of list.
func (l *List[V]) Front() (V, error) { //nolint:ireturn
	return l.peek(l.slots[root].next)
}

// Back returns the last value of list.
func (l *List[V]) Back() (V, error) { //nolint:ireturn
	return l.peek(l.slots[root].prev)
}

func (l *List[V]) peek(i int32) (V, error) { //nolint:ireturn
	if i == root {
		var zero V
		return zero, ErrNotFound
	}

	return l.slots[i].value, nil
}

// PopFront removes and returns the first value of list.
func (l *List[V]) PopFront() (V, error) { //nolint:ireturn
	return l.pop(l.slots[root].next)
}

// PopBack removes and returns the last value of list.
func (l *List[V]) PopBack() (V, error) { //nolint:ireturn
	return l.pop(l.slots[root].prev)
}

func (l *List[V]) pop(i int32) (V, error) { //nolint:ireturn
	if i == root {
		var zero V
		return zero, ErrEmpty
	}

	v := l.slots[i].value
	l.unlink(i)
	l.release(i)

	return v, nil
}

// Each calls fn for every element from front to back until fn returns false.
func (l *List[V]) Each(fn func(h Handle, v V) bool) {
	for i := l.slots[root].next; i != root; {
		next := l.slots[i].next
		if !fn(l.handle(i), l.slots[i].value) {
			return
		}

		i = next
	}
}

// Reset removes all elements. Allocated slots are kept for reuse and every
// outstanding handle becomes stale.
func (l *List[V]) Reset() {
	var zero V

	l.free = root

	for i := len(l.slots) - 1; i > int(root); i-- {
		s := &l.slots[i]
		if s.used {
			s.gen++
		}

		s.value = zero
		s.used = false
		s.prev = root
		s.next = l.free
		l.free = int32(i) //nolint:gosec
	}

	l.slots[root] = slot[V]{}
	l.n = 0
}
