package index

import "github.com/hupe1980/assoc/internal/arena"

type node struct {
	key        string
	handle     arena.Handle
	prev, next *node
}

// Insertion is an Index that iterates keys in first-insertion order.
// Deleting a key and inserting it again moves it to the end.
type Insertion struct {
	capacity int
	nodes    map[string]*node
	head     *node
	tail     *node
}

// NewInsertion creates an insertion-ordered index sized for capacity keys.
func NewInsertion(capacity int) *Insertion {
	if capacity < 0 {
		capacity = 0
	}
	return &Insertion{
		capacity: capacity,
		nodes:    make(map[string]*node, capacity),
	}
}

// Lookup implements Index.
func (ix *Insertion) Lookup(key string) (arena.Handle, bool) {
	n, ok := ix.nodes[key]
	if !ok {
		return 0, false
	}
	return n.handle, true
}

// Insert implements Index.
func (ix *Insertion) Insert(key string, h arena.Handle) {
	if n, ok := ix.nodes[key]; ok {
		n.handle = h
		return
	}
	n := &node{key: key, handle: h, prev: ix.tail}
	if ix.tail != nil {
		ix.tail.next = n
	} else {
		ix.head = n
	}
	ix.tail = n
	ix.nodes[key] = n
}

// Delete implements Index.
func (ix *Insertion) Delete(key string) (arena.Handle, bool) {
	n, ok := ix.nodes[key]
	if !ok {
		return 0, false
	}
	delete(ix.nodes, key)

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		ix.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		ix.tail = n.prev
	}
	n.prev, n.next = nil, nil
	return n.handle, true
}

// Len implements Index.
func (ix *Insertion) Len() int {
	return len(ix.nodes)
}

// Ascend implements Index.
func (ix *Insertion) Ascend(fn func(key string, h arena.Handle) bool) {
	for n := ix.head; n != nil; n = n.next {
		if !fn(n.key, n.handle) {
			return
		}
	}
}

// Clear implements Index.
// A fresh map is allocated because clear() keeps the old bucket array alive.
func (ix *Insertion) Clear() {
	ix.nodes = make(map[string]*node, ix.capacity)
	ix.head = nil
	ix.tail = nil
}
