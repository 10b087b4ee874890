package assoc

import (
	"log/slog"

	"github.com/hupe1980/assoc/resource"
)

// Ordering selects the order in which Keys, AsList and All visit keys.
type Ordering int

const (
	// SortedOrder visits keys in byte-lexicographic order. It is the default.
	SortedOrder Ordering = iota
	// InsertionOrder visits keys in the order they were first inserted.
	// Replacing a value keeps the key's position; removing a key and setting
	// it again moves it to the end.
	InsertionOrder
)

// String returns the name of the ordering.
func (o Ordering) String() string {
	switch o {
	case SortedOrder:
		return "sorted"
	case InsertionOrder:
		return "insertion"
	default:
		return "unknown"
	}
}

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	budget           *resource.Controller
	ordering         Ordering
	initialCapacity  int
	maxSlots         int
	segmentSize      int
	btreeDegree      int
}

// Option configures a Store.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection. Operations are only timed while a
// collector is configured.
//
// Example with BasicMetricsCollector:
//
//	metrics := &assoc.BasicMetricsCollector{}
//	s := assoc.New[any](nil, assoc.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Sets: %d, Avg latency: %dns\n", stats.SetCalls, stats.SetAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := assoc.NewJSONLogger(slog.LevelInfo)
//	s := assoc.New[any](nil, assoc.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithResourceController charges the memory of keys and slot segments to rc.
// When rc refuses a charge, the operation fails with ErrResourceExhausted.
// One controller may be shared by several stores.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.budget = rc
	}
}

// WithOrdering selects the key order of Keys, AsList and All.
func WithOrdering(ordering Ordering) Option {
	return func(o *options) {
		o.ordering = ordering
	}
}

// WithInitialCapacity presizes the index of an InsertionOrder store.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

// WithMaxSlots caps the number of slots the store may hold at once.
// Setting a new key beyond the cap fails with ErrResourceExhausted.
func WithMaxSlots(n int) Option {
	return func(o *options) {
		o.maxSlots = n
	}
}

// WithSegmentSize sets how many slots the arena allocates at a time.
// It is rounded up to a power of 2.
func WithSegmentSize(n int) Option {
	return func(o *options) {
		o.segmentSize = n
	}
}

// WithBTreeDegree sets the B-tree degree of a SortedOrder store.
func WithBTreeDegree(degree int) Option {
	return func(o *options) {
		o.btreeDegree = degree
	}
}
