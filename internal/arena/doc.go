// Package arena provides the value-slot arena behind an associative store.
//
// Slots live in fixed-size segments that are allocated on demand, so growing
// the arena never moves an occupied slot and a handle stays valid for as long
// as its slot is occupied.
//
// # Reuse
//
// Released handles go into a free set (a roaring bitmap). Alloc always hands
// out the lowest free handle before issuing a new one, which bounds arena
// growth under churn and keeps handle assignment deterministic.
//
// # Memory Accounting
//
// When a MemoryAcquirer is configured, every new segment is charged to it
// before it is allocated and refunded on Reset. A refused charge surfaces as
// ErrAllocationFailed and leaves the arena untouched.
//
// # Concurrency Model
//
// Arena is not safe for concurrent use. It is owned by exactly one store,
// which serializes all access.
package arena
