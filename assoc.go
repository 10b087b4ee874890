package assoc

import (
	"iter"
	"strings"
	"time"

	"github.com/hupe1980/assoc/internal/arena"
	"github.com/hupe1980/assoc/internal/index"
	"github.com/hupe1980/assoc/resource"
)

// keyOverhead approximates the bytes an index entry costs beyond the key
// itself (string header, handle, tree or map bookkeeping).
const keyOverhead = 64

func keyCost(key string) int64 {
	return int64(len(key)) + keyOverhead
}

// Store is an associative container mapping byte-string keys to values of
// type V. See the package documentation for the ownership rules.
type Store[V any] struct {
	missing V
	index   index.Index
	ledger  *ledger[V]
	logger  *Logger
	metrics MetricsCollector
	observe bool
	closed  bool
	opts    options
}

// Stats is a snapshot of a store's size and footprint.
type Stats struct {
	// Keys is the number of present keys.
	Keys int
	// Slots is the number of slot handles issued by the arena.
	Slots int
	// FreeSlots is the number of released slots waiting for reuse.
	FreeSlots int
	// Segments is the number of allocated arena segments.
	Segments int
	// ReservedBytes is the arena memory charged for segments.
	ReservedBytes int64
	// KeyBytes is the memory charged for keys.
	KeyBytes int64
	// Reuses counts new keys that were placed in a recycled slot.
	Reuses uint64
	// Ordering is the key order of the store.
	Ordering Ordering
}

// New returns an empty store. missing is returned by Get and MGet for keys
// that are not present, unless the call supplies its own sentinel.
func New[V any](missing V, optFns ...Option) *Store[V] {
	opts := options{
		logger:   NoopLogger(),
		ordering: SortedOrder,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.logger == nil {
		opts.logger = NoopLogger()
	}

	arenaOpts := []arena.Option{
		arena.WithSegmentSize(opts.segmentSize),
		arena.WithMaxSlots(opts.maxSlots),
	}
	if opts.budget != nil {
		arenaOpts = append(arenaOpts, arena.WithMemoryAcquirer(opts.budget))
	}

	var idx index.Index
	switch opts.ordering {
	case InsertionOrder:
		idx = index.NewInsertion(opts.initialCapacity)
	default:
		opts.ordering = SortedOrder
		idx = index.NewOrdered(opts.btreeDegree)
	}

	s := &Store[V]{
		missing: missing,
		index:   idx,
		ledger: &ledger[V]{
			budget: opts.budget,
			slots:  arena.New[V](arenaOpts...),
		},
		logger:  opts.logger,
		metrics: opts.metricsCollector,
		observe: opts.metricsCollector != nil,
		opts:    opts,
	}
	s.ledger.attach(s)
	return s
}

// Missing returns the store's default sentinel.
func (s *Store[V]) Missing() V {
	return s.missing
}

func (s *Store[V]) now() time.Time {
	if !s.observe {
		return time.Time{}
	}
	return time.Now()
}

// Set stores value under key. An existing key keeps its slot and only the
// value is replaced. Storing the zero value keeps the key present.
func (s *Store[V]) Set(key string, value V) error {
	if s.closed {
		return ErrClosed
	}
	start := s.now()
	inserted, err := s.set(key, value)
	if err != nil {
		s.logger.LogRejected("set", err)
	}
	if s.observe {
		s.metrics.RecordSet(1, b2i(inserted), time.Since(start), err)
	}
	return err
}

// SetBytes is Set for a byte-slice key. The bytes are copied. A nil key is
// rejected with ErrInvalidKey; an empty non-nil slice is the empty key.
func (s *Store[V]) SetBytes(key []byte, value V) error {
	if s.closed {
		return ErrClosed
	}
	if key == nil {
		s.logger.LogRejected("set", ErrInvalidKey)
		return ErrInvalidKey
	}
	return s.Set(string(key), value)
}

func (s *Store[V]) set(key string, value V) (bool, error) {
	if h, ok := s.index.Lookup(key); ok {
		s.ledger.slots.Replace(h, value)
		return false, nil
	}

	cost := keyCost(key)
	if !s.ledger.budget.TryAcquireMemory(cost) {
		return false, exhausted(resource.ErrMemoryLimitExceeded)
	}
	h, err := s.ledger.slots.Alloc(value)
	if err != nil {
		s.ledger.budget.ReleaseMemory(cost)
		return false, translateError(err)
	}

	// Clone so a key sliced from a larger string does not pin it.
	s.index.Insert(strings.Clone(key), h)
	s.ledger.keyBytes += cost
	return true, nil
}

// MSet applies Set to each entry in order. A key repeated within the batch
// ends up with its last value.
//
// The batch is not atomic: if an entry fails with ErrResourceExhausted, the
// entries before it stay applied.
func (s *Store[V]) MSet(entries ...Entry[V]) error {
	if s.closed {
		return ErrClosed
	}
	start := s.now()

	inserted := 0
	var err error
	for i, e := range entries {
		var added bool
		added, err = s.set(e.Key, e.Value)
		if err != nil {
			err = &BatchError{Index: i, Key: e.Key, Err: err}
			break
		}
		if added {
			inserted++
		}
	}

	s.logger.LogBatchSet(len(entries), inserted, err)
	if s.observe {
		s.metrics.RecordSet(len(entries), inserted, time.Since(start), err)
	}
	return err
}

// MSetSlices stores values[i] under keys[i]. Mismatched lengths are rejected
// with *ErrBatchLength before anything is stored.
func (s *Store[V]) MSetSlices(keys []string, values []V) error {
	if s.closed {
		return ErrClosed
	}
	if len(keys) != len(values) {
		err := &ErrBatchLength{Keys: len(keys), Values: len(values)}
		s.logger.LogRejected("mset", err)
		return err
	}
	entries := make([]Entry[V], len(keys))
	for i, k := range keys {
		entries[i] = Entry[V]{Key: k, Value: values[i]}
	}
	return s.MSet(entries...)
}

func (s *Store[V]) lookup(key string) (V, bool) {
	h, ok := s.index.Lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	return s.ledger.slots.Get(h)
}

// Lookup returns the value stored under key and whether the key is present.
func (s *Store[V]) Lookup(key string) (V, bool) {
	start := s.now()
	v, ok := s.lookup(key)
	if s.observe {
		s.metrics.RecordGet(1, b2i(ok), time.Since(start))
	}
	return v, ok
}

// Get returns the value stored under key, or the store's default sentinel.
func (s *Store[V]) Get(key string) V {
	return s.GetOr(key, s.missing)
}

// GetOr returns the value stored under key, or missing.
func (s *Store[V]) GetOr(key string, missing V) V {
	v, ok := s.Lookup(key)
	if !ok {
		return missing
	}
	return v
}

// GetBytes is Get for a byte-slice key. A nil key is never present.
func (s *Store[V]) GetBytes(key []byte) V {
	if key == nil {
		return s.missing
	}
	return s.Get(string(key))
}

// MGet returns one entry per distinct requested key, in order of first
// occurrence. Keys that are not present carry the default sentinel.
// Metrics count each distinct key once.
func (s *Store[V]) MGet(keys ...string) Entries[V] {
	return s.MGetOr(s.missing, keys...)
}

// MGetOr is MGet with a per-call sentinel.
func (s *Store[V]) MGetOr(missing V, keys ...string) Entries[V] {
	start := s.now()

	var seen map[string]struct{}
	if len(keys) > 1 {
		seen = make(map[string]struct{}, len(keys))
	}

	out := make(Entries[V], 0, len(keys))
	hits := 0
	for _, k := range keys {
		if seen != nil {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
		}
		v, ok := s.lookup(k)
		if ok {
			hits++
		} else {
			v = missing
		}
		out = append(out, Entry[V]{Key: k, Value: v})
	}

	if s.observe {
		s.metrics.RecordGet(len(out), hits, time.Since(start))
	}
	return out
}

// Exists reports whether key is present. It never modifies the store.
func (s *Store[V]) Exists(key string) bool {
	_, ok := s.index.Lookup(key)
	return ok
}

// ExistsBytes is Exists for a byte-slice key. A nil key is never present.
func (s *Store[V]) ExistsBytes(key []byte) bool {
	if key == nil {
		return false
	}
	return s.Exists(string(key))
}

// Remove deletes each key and frees its slot. Keys that are not present are
// ignored, so Remove is idempotent.
func (s *Store[V]) Remove(keys ...string) error {
	if s.closed {
		return ErrClosed
	}
	start := s.now()

	removed := 0
	for _, k := range keys {
		h, ok := s.index.Delete(k)
		if !ok {
			continue
		}
		s.ledger.slots.Release(h)
		cost := keyCost(k)
		s.ledger.budget.ReleaseMemory(cost)
		s.ledger.keyBytes -= cost
		removed++
	}

	s.logger.LogRemove(len(keys), removed)
	if s.observe {
		s.metrics.RecordRemove(len(keys), removed, time.Since(start))
	}
	return nil
}

// Size returns the number of present keys.
func (s *Store[V]) Size() int {
	return s.index.Len()
}

// Keys returns every present key in the store's ordering.
func (s *Store[V]) Keys() []string {
	keys := make([]string, 0, s.index.Len())
	s.index.Ascend(func(key string, _ arena.Handle) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// AsList materializes every present entry, in the same order as Keys.
func (s *Store[V]) AsList() Entries[V] {
	out := make(Entries[V], 0, s.index.Len())
	for k, v := range s.All() {
		out = append(out, Entry[V]{Key: k, Value: v})
	}
	return out
}

// All iterates over every present entry in the same order as Keys.
// The store must not be modified during iteration.
func (s *Store[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		s.index.Ascend(func(key string, h arena.Handle) bool {
			v, _ := s.ledger.slots.Get(h)
			return yield(key, v)
		})
	}
}

// Reset removes every key and releases the arena. Handles issued before
// Reset are invalid afterwards.
func (s *Store[V]) Reset() error {
	if s.closed {
		return ErrClosed
	}
	start := s.now()

	cleared := s.index.Len()
	s.index.Clear()
	released := s.ledger.release()

	s.logger.LogReset(cleared, released)
	if s.observe {
		s.metrics.RecordReset(cleared, time.Since(start))
	}
	return nil
}

// Stats returns a snapshot of the store's size and footprint.
func (s *Store[V]) Stats() Stats {
	as := s.ledger.slots.Stats()
	return Stats{
		Keys:          s.index.Len(),
		Slots:         as.Slots,
		FreeSlots:     as.Free,
		Segments:      as.Segments,
		ReservedBytes: as.BytesReserved,
		KeyBytes:      s.ledger.keyBytes,
		Reuses:        as.Reuses,
		Ordering:      s.opts.ordering,
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
