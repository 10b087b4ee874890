// Package assoc provides an embeddable associative store for Go.
//
// A Store maps byte-string keys to values of any type through a private
// index over a reusable slot arena. Lookups and inserts touch nothing but
// the store's own memory: there is no process-wide key table, so a workload
// that streams millions of distinct ephemeral keys leaves no residue once
// they are removed.
//
// # Quick Start
//
//	s := assoc.New[any](nil) // nil is returned for missing keys
//	defer s.Close()
//
//	_ = s.Set("x", 100)
//	_ = s.MSet(
//	    assoc.Entry[any]{Key: "letters", Value: []string{"a", "b", "c"}},
//	    assoc.Entry[any]{Key: "numbers", Value: []int{10, 20, 30}},
//	    assoc.Entry[any]{Key: "nothing"}, // stores nil; the key is present
//	)
//
//	s.Get("x")                   // 100
//	s.GetOr("xyz", "n/a")        // "n/a"
//	s.MGet("letters", "numbers") // ordered entries
//	s.Exists("nothing")          // true
//	_ = s.Remove("letters", "x") // absent keys are ignored
//	s.Keys()                     // [nothing numbers]
//
// # Missing Keys
//
// An absent key is never an error. Get and MGet return the sentinel given to
// New; GetOr and MGetOr take a per-call sentinel instead. Lookup reports
// presence explicitly. Storing the zero value (for example nil) is different
// from not storing anything: the key stays present.
//
// # Ordering
//
// Keys, AsList and All always agree on order. By default keys are visited in
// byte-lexicographic order; WithOrdering(InsertionOrder) switches to
// first-insertion order. Slot reuse never affects the order.
//
// # Slots
//
// Each present key owns one slot in an arena. Replacing a value reuses the
// slot; removing a key frees it (the value is zeroed so it can be collected)
// and the next new key takes the lowest free slot before the arena grows.
//
// # Ownership and Lifetime
//
// A store has exactly one owner and no internal locking; callers that share
// a store across goroutines must serialize access themselves. Close is the
// deterministic destructor and refunds everything charged to a
// resource.Controller. A cleanup registered with the runtime refunds the
// budget of a store that is collected without Close, but nothing depends on
// it for correctness.
//
// # Errors
//
//   - ErrInvalidArgument: nil byte-slice key (ErrInvalidKey) or a batch with
//     mismatched lengths (*ErrBatchLength). Nothing is changed.
//   - ErrResourceExhausted: the memory budget or the slot limit is spent.
//     The store keeps its last consistent state.
//   - ErrClosed: mutation after Close.
//
// # Serialization
//
// A store cannot be persisted or sent to another process. MarshalJSON,
// MarshalBinary and GobEncode fail with ErrNotSerializable. To hand the
// contents elsewhere, materialize them with AsList; Entries encodes to an
// order-preserving JSON object.
package assoc
