package index

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.expect.digital/lrucache/internal/list"
)

func TestIndex(t *testing.T) {
	t.Parallel()

	l := list.New[string](0)
	a := l.PushFront("a")
	b := l.PushFront("b")

	x := New[string](2)

	assert.False(t, x.Has("a"))

	x.Set("a", a)
	x.Set("b", b)

	assert.True(t, x.Has("a"))
	assert.Equal(t, 2, x.Len())

	h, ok := x.Get("b")
	assert.True(t, ok)
	assert.Equal(t, b, h)

	x.Set("b", a)

	h, _ = x.Get("b")
	assert.Equal(t, a, h)
	assert.Equal(t, 2, x.Len())

	x.Delete("a")
	x.Delete("a")

	assert.False(t, x.Has("a"))
	assert.Equal(t, 1, x.Len())

	_, ok = x.Get("a")
	assert.False(t, ok)

	x.Reset()
	assert.Zero(t, x.Len())
}
