package index

import "github.com/hupe1980/assoc/internal/arena"

// Index maps keys to arena handles.
type Index interface {
	// Lookup returns the handle for key.
	Lookup(key string) (arena.Handle, bool)
	// Insert adds key. The key must not be present.
	Insert(key string, h arena.Handle)
	// Delete removes key and returns the handle it referenced.
	Delete(key string) (arena.Handle, bool)
	// Len returns the number of keys.
	Len() int
	// Ascend calls fn for every key in index order until fn returns false.
	Ascend(fn func(key string, h arena.Handle) bool)
	// Clear removes every key and drops the memory held for them.
	Clear()
}
