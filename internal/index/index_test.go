package index

import (
	"testing"

	"github.com/hupe1980/assoc/internal/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(ix Index) ([]string, []arena.Handle) {
	var keys []string
	var handles []arena.Handle
	ix.Ascend(func(key string, h arena.Handle) bool {
		keys = append(keys, key)
		handles = append(handles, h)
		return true
	})
	return keys, handles
}

func TestIndex(t *testing.T) {
	impls := map[string]func() Index{
		"ordered":   func() Index { return NewOrdered(0) },
		"insertion": func() Index { return NewInsertion(4) },
	}

	for name, newIndex := range impls {
		t.Run(name, func(t *testing.T) {
			ix := newIndex()

			ix.Insert("b", 1)
			ix.Insert("a", 2)
			ix.Insert("", 3)
			assert.Equal(t, 3, ix.Len())

			h, ok := ix.Lookup("a")
			assert.True(t, ok)
			assert.Equal(t, arena.Handle(2), h)

			h, ok = ix.Lookup("")
			assert.True(t, ok, "empty key is a valid key")
			assert.Equal(t, arena.Handle(3), h)

			_, ok = ix.Lookup("A")
			assert.False(t, ok, "lookups are case sensitive")

			h, ok = ix.Delete("b")
			require.True(t, ok)
			assert.Equal(t, arena.Handle(1), h)

			_, ok = ix.Delete("b")
			assert.False(t, ok)
			assert.Equal(t, 2, ix.Len())

			ix.Clear()
			assert.Equal(t, 0, ix.Len())
			keys, _ := collect(ix)
			assert.Empty(t, keys)

			ix.Insert("z", 9)
			h, ok = ix.Lookup("z")
			assert.True(t, ok)
			assert.Equal(t, arena.Handle(9), h)
		})
	}
}

func TestOrdered_Ascend(t *testing.T) {
	ix := NewOrdered(2)
	for i, k := range []string{"numbers", "x", "nothing", "letters", "\xff", "N"} {
		ix.Insert(k, arena.Handle(i))
	}

	keys, handles := collect(ix)
	assert.Equal(t, []string{"N", "letters", "nothing", "numbers", "x", "\xff"}, keys)
	assert.Equal(t, []arena.Handle{5, 3, 2, 0, 1, 4}, handles)
}

func TestInsertion_Ascend(t *testing.T) {
	ix := NewInsertion(0)
	for i, k := range []string{"x", "letters", "numbers", "nothing"} {
		ix.Insert(k, arena.Handle(i))
	}

	ix.Delete("letters")
	ix.Delete("x")
	keys, _ := collect(ix)
	assert.Equal(t, []string{"numbers", "nothing"}, keys)

	ix.Insert("x", 7)
	keys, handles := collect(ix)
	assert.Equal(t, []string{"numbers", "nothing", "x"}, keys)
	assert.Equal(t, []arena.Handle{2, 3, 7}, handles)

	ix.Delete("x")
	ix.Delete("nothing")
	ix.Delete("numbers")
	keys, _ = collect(ix)
	assert.Empty(t, keys)
	assert.Nil(t, ix.head)
	assert.Nil(t, ix.tail)
}

func TestAscend_StopsEarly(t *testing.T) {
	for _, ix := range []Index{NewOrdered(0), NewInsertion(0)} {
		ix.Insert("a", 0)
		ix.Insert("b", 1)
		ix.Insert("c", 2)

		var seen []string
		ix.Ascend(func(key string, _ arena.Handle) bool {
			seen = append(seen, key)
			return len(seen) < 2
		})
		assert.Equal(t, []string{"a", "b"}, seen)
	}
}
