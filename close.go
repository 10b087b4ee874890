package assoc

import (
	"runtime"
	"time"

	"github.com/hupe1980/assoc/internal/arena"
	"github.com/hupe1980/assoc/resource"
)

// ledger owns everything a store has charged to its memory budget. It holds
// no reference back to the store, so it can serve as the argument of the
// store's cleanup.
type ledger[V any] struct {
	budget   *resource.Controller
	slots    *arena.Arena[V]
	keyBytes int64
	cleanup  runtime.Cleanup
	armed    bool
}

// attach registers a cleanup that refunds the budget if s is collected
// without Close. Stores without a budget have nothing to refund.
func (l *ledger[V]) attach(s *Store[V]) {
	if l.budget == nil {
		return
	}
	l.cleanup = runtime.AddCleanup(s, func(l *ledger[V]) {
		l.release()
	}, l)
	l.armed = true
}

// release drops the arena and refunds every charged byte.
// It returns the number of bytes refunded.
func (l *ledger[V]) release() int64 {
	released := l.slots.Stats().BytesReserved + l.keyBytes
	l.slots.Reset()
	l.budget.ReleaseMemory(l.keyBytes)
	l.keyBytes = 0
	return released
}

// Close destroys the store: every slot is freed, the index is dropped and
// all memory charged to the resource controller is refunded before Close
// returns.
//
// After Close, mutations fail with ErrClosed and reads behave as on an empty
// store. Close is idempotent.
func (s *Store[V]) Close() error {
	if s == nil || s.closed {
		return nil
	}
	start := s.now()

	if s.ledger.armed {
		s.ledger.cleanup.Stop()
		s.ledger.armed = false
	}

	keys := s.index.Len()
	s.index.Clear()
	released := s.ledger.release()
	s.closed = true

	s.logger.LogClose(keys, released)
	if s.observe {
		s.metrics.RecordReset(keys, time.Since(start))
	}
	return nil
}
