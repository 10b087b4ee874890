package arena

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2"
)

// MemoryAcquirer is an interface for acquiring memory.
// *resource.Controller satisfies it.
type MemoryAcquirer interface {
	TryAcquireMemory(bytes int64) bool
	ReleaseMemory(bytes int64)
}

var (
	// ErrArenaFull is returned when no handle can be issued without exceeding the slot limit.
	ErrArenaFull = errors.New("arena: handle space exhausted")
	// ErrAllocationFailed is returned when the memory acquirer refuses a new segment.
	ErrAllocationFailed = errors.New("arena: allocation failed")
)

const (
	// DefaultSegmentSize is the default number of slots per segment.
	DefaultSegmentSize = 1024
	// MaxSegmentSize is the largest number of slots per segment.
	MaxSegmentSize = 1 << 30
	// MaxSlots is the size of the handle space. Handles are uint32 values, the
	// domain of the free-set bitmap.
	MaxSlots = math.MaxUint32
)

// Handle addresses a slot in the arena.
type Handle uint32

// Stats tracks arena usage.
//
//   - Slots: handles issued so far (high-water mark)
//   - Live: occupied slots
//   - Free: released slots awaiting reuse
//   - Segments: allocated segments
//   - BytesReserved: bytes charged for segments
//   - Allocs: cumulative Alloc calls that succeeded
//   - Reuses: Allocs served from the free set
type Stats struct {
	Slots         int
	Live          int
	Free          int
	Segments      int
	BytesReserved int64
	Allocs        uint64
	Reuses        uint64
}

type slot[V any] struct {
	value V
	used  bool
}

type segment[V any] struct {
	slots []slot[V]
}

type options struct {
	segmentSize int
	maxSlots    uint64
	acquirer    MemoryAcquirer
}

// Option is a configuration option for Arena.
type Option func(*options)

// WithSegmentSize sets the number of slots per segment.
// It is rounded up to the next power of 2. Values <= 0 select DefaultSegmentSize;
// values above MaxSegmentSize select MaxSegmentSize.
func WithSegmentSize(n int) Option {
	return func(o *options) {
		o.segmentSize = n
	}
}

// WithMaxSlots limits the number of handles the arena may issue.
// Values <= 0 or above MaxSlots select MaxSlots.
func WithMaxSlots(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSlots = uint64(n)
		}
	}
}

// WithMemoryAcquirer sets the memory acquirer for the arena.
func WithMemoryAcquirer(acquirer MemoryAcquirer) Option {
	return func(o *options) {
		o.acquirer = acquirer
	}
}

// Arena is a growable slot arena with handle reuse.
type Arena[V any] struct {
	segBits  uint
	segMask  uint64
	segSize  int
	segBytes int64
	maxSlots uint64
	acquirer MemoryAcquirer
	segments []*segment[V]
	next     uint64 // handles in [0, next) have been issued at least once
	free     *roaring.Bitmap
	live     int
	reserved int64
	allocs   uint64
	reuses   uint64
}

// New creates an empty arena. No segment is allocated until the first Alloc.
func New[V any](opts ...Option) *Arena[V] {
	o := options{
		segmentSize: DefaultSegmentSize,
		maxSlots:    MaxSlots,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.segmentSize <= 0 {
		o.segmentSize = DefaultSegmentSize
	}
	if o.segmentSize > MaxSegmentSize {
		o.segmentSize = MaxSegmentSize
	}
	if o.maxSlots == 0 || o.maxSlots > MaxSlots {
		o.maxSlots = MaxSlots
	}

	segBits := uint(bits.Len(uint(o.segmentSize - 1))) //nolint:gosec // segmentSize > 0
	segSize := 1 << segBits

	return &Arena[V]{
		segBits:  segBits,
		segMask:  uint64(segSize - 1),
		segSize:  segSize,
		segBytes: int64(segSize) * int64(unsafe.Sizeof(slot[V]{})),
		maxSlots: o.maxSlots,
		acquirer: o.acquirer,
		free:     roaring.New(),
	}
}

// Alloc stores v in a slot and returns its handle.
// The lowest free handle is reused first; otherwise the arena grows by one slot.
func (a *Arena[V]) Alloc(v V) (Handle, error) {
	if !a.free.IsEmpty() {
		h := a.free.Minimum()
		a.free.Remove(h)

		s := a.slotAt(uint64(h))
		s.value = v
		s.used = true

		a.live++
		a.allocs++
		a.reuses++
		return Handle(h), nil
	}

	if a.next >= a.maxSlots {
		return 0, ErrArenaFull
	}

	h := a.next
	if int(h>>a.segBits) == len(a.segments) {
		if err := a.grow(); err != nil {
			return 0, err
		}
	}

	s := a.slotAt(h)
	s.value = v
	s.used = true

	a.next++
	a.live++
	a.allocs++
	return Handle(h), nil //nolint:gosec // h < maxSlots <= MaxUint32
}

func (a *Arena[V]) grow() error {
	if a.acquirer != nil && !a.acquirer.TryAcquireMemory(a.segBytes) {
		return fmt.Errorf("%w: segment of %d bytes refused", ErrAllocationFailed, a.segBytes)
	}
	a.segments = append(a.segments, &segment[V]{slots: make([]slot[V], a.segSize)})
	a.reserved += a.segBytes
	return nil
}

func (a *Arena[V]) slotAt(h uint64) *slot[V] {
	return &a.segments[h>>a.segBits].slots[h&a.segMask]
}

func (a *Arena[V]) occupied(h Handle) *slot[V] {
	if uint64(h) >= a.next {
		return nil
	}
	s := a.slotAt(uint64(h))
	if !s.used {
		return nil
	}
	return s
}

// Get returns the value in the slot addressed by h.
// It reports false for free or never-issued handles.
func (a *Arena[V]) Get(h Handle) (V, bool) {
	s := a.occupied(h)
	if s == nil {
		var zero V
		return zero, false
	}
	return s.value, true
}

// Replace overwrites the value of an occupied slot in place.
// It reports false if h is not occupied.
func (a *Arena[V]) Replace(h Handle, v V) bool {
	s := a.occupied(h)
	if s == nil {
		return false
	}
	s.value = v
	return true
}

// Release frees the slot addressed by h and zeroes its value.
// Releasing a free handle is a no-op.
func (a *Arena[V]) Release(h Handle) bool {
	s := a.occupied(h)
	if s == nil {
		return false
	}
	var zero V
	s.value = zero
	s.used = false
	a.free.Add(uint32(h))
	a.live--
	return true
}

// Len returns the number of occupied slots.
func (a *Arena[V]) Len() int {
	return a.live
}

// Reset drops every segment and refunds their bytes to the acquirer.
// All handles issued before Reset are invalid afterwards.
func (a *Arena[V]) Reset() {
	if a.acquirer != nil && a.reserved > 0 {
		a.acquirer.ReleaseMemory(a.reserved)
	}
	a.segments = nil
	a.free.Clear()
	a.next = 0
	a.live = 0
	a.reserved = 0
}

// Stats returns a snapshot of arena usage.
func (a *Arena[V]) Stats() Stats {
	return Stats{
		Slots:         int(a.next), //nolint:gosec // next <= MaxUint32
		Live:          a.live,
		Free:          int(a.free.GetCardinality()), //nolint:gosec // bounded by next
		Segments:      len(a.segments),
		BytesReserved: a.reserved,
		Allocs:        a.allocs,
		Reuses:        a.reuses,
	}
}
