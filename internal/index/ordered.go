package index

import (
	"github.com/google/btree"
	"github.com/hupe1980/assoc/internal/arena"
)

// DefaultDegree is the default B-tree degree.
const DefaultDegree = 32

type item struct {
	key    string
	handle arena.Handle
}

func lessItem(a, b item) bool {
	return a.key < b.key
}

// Ordered is an Index that keeps keys in byte-lexicographic order.
type Ordered struct {
	degree int
	tree   *btree.BTreeG[item]
}

// NewOrdered creates an ordered index with the given B-tree degree.
// Degrees below 2 select DefaultDegree.
func NewOrdered(degree int) *Ordered {
	if degree < 2 {
		degree = DefaultDegree
	}
	return &Ordered{
		degree: degree,
		tree:   btree.NewG(degree, lessItem),
	}
}

// Lookup implements Index.
func (o *Ordered) Lookup(key string) (arena.Handle, bool) {
	it, ok := o.tree.Get(item{key: key})
	return it.handle, ok
}

// Insert implements Index.
func (o *Ordered) Insert(key string, h arena.Handle) {
	o.tree.ReplaceOrInsert(item{key: key, handle: h})
}

// Delete implements Index.
func (o *Ordered) Delete(key string) (arena.Handle, bool) {
	it, ok := o.tree.Delete(item{key: key})
	return it.handle, ok
}

// Len implements Index.
func (o *Ordered) Len() int {
	return o.tree.Len()
}

// Ascend implements Index.
func (o *Ordered) Ascend(fn func(key string, h arena.Handle) bool) {
	o.tree.Ascend(func(it item) bool {
		return fn(it.key, it.handle)
	})
}

// Clear implements Index.
// The tree is replaced rather than recycled so its nodes can be collected.
func (o *Ordered) Clear() {
	o.tree = btree.NewG(o.degree, lessItem)
}
