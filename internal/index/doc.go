// Package index maps keys to arena handles.
//
// Two implementations share the Index interface and differ only in the order
// Ascend visits keys:
//
//   - Ordered: a B-tree keyed by the raw key bytes; Ascend is byte-lexicographic.
//   - Insertion: a hash map plus an intrusive list; Ascend follows first-insertion order.
//
// Both own every key they hold. Nothing is registered in process-wide state,
// so the footprint of a key ends when it is deleted or the index is cleared.
//
// Neither implementation is safe for concurrent use, and an index must not be
// modified from inside an Ascend callback.
package index
