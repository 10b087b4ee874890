package assoc

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// promcollector package provides a Prometheus implementation.
//
// A collector may be shared by several stores, so implementations must be
// safe for concurrent use.
type MetricsCollector interface {
	// RecordSet is called after Set, SetBytes, MSet and MSetSlices.
	// count is the number of entries attempted, inserted the number of new keys.
	RecordSet(count, inserted int, duration time.Duration, err error)

	// RecordGet is called after Get, GetOr, Lookup and MGet variants.
	// requested is the number of distinct keys looked up, hits the number of
	// those that were present.
	RecordGet(requested, hits int, duration time.Duration)

	// RecordRemove is called after each Remove call.
	RecordRemove(requested, removed int, duration time.Duration)

	// RecordReset is called after Reset and Close.
	RecordReset(cleared int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSet(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordGet(int, int, time.Duration)        {}
func (NoopMetricsCollector) RecordRemove(int, int, time.Duration)     {}
func (NoopMetricsCollector) RecordReset(int, time.Duration)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SetCalls      atomic.Int64
	SetEntries    atomic.Int64
	SetInserted   atomic.Int64
	SetErrors     atomic.Int64
	SetTotalNanos atomic.Int64
	GetCalls      atomic.Int64
	GetKeys       atomic.Int64
	GetHits       atomic.Int64
	GetTotalNanos atomic.Int64
	RemoveCalls   atomic.Int64
	RemovedKeys   atomic.Int64
	ResetCalls    atomic.Int64
	ClearedKeys   atomic.Int64
}

// RecordSet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSet(count, inserted int, duration time.Duration, err error) {
	b.SetCalls.Add(1)
	b.SetEntries.Add(int64(count))
	b.SetInserted.Add(int64(inserted))
	b.SetTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SetErrors.Add(1)
	}
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(requested, hits int, duration time.Duration) {
	b.GetCalls.Add(1)
	b.GetKeys.Add(int64(requested))
	b.GetHits.Add(int64(hits))
	b.GetTotalNanos.Add(duration.Nanoseconds())
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(requested, removed int, duration time.Duration) {
	b.RemoveCalls.Add(1)
	b.RemovedKeys.Add(int64(removed))
}

// RecordReset implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReset(cleared int, duration time.Duration) {
	b.ResetCalls.Add(1)
	b.ClearedKeys.Add(int64(cleared))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SetCalls:    b.SetCalls.Load(),
		SetEntries:  b.SetEntries.Load(),
		SetInserted: b.SetInserted.Load(),
		SetErrors:   b.SetErrors.Load(),
		SetAvgNanos: avg(b.SetTotalNanos.Load(), b.SetCalls.Load()),
		GetCalls:    b.GetCalls.Load(),
		GetKeys:     b.GetKeys.Load(),
		GetHits:     b.GetHits.Load(),
		GetAvgNanos: avg(b.GetTotalNanos.Load(), b.GetCalls.Load()),
		RemoveCalls: b.RemoveCalls.Load(),
		RemovedKeys: b.RemovedKeys.Load(),
		ResetCalls:  b.ResetCalls.Load(),
		ClearedKeys: b.ClearedKeys.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SetCalls    int64
	SetEntries  int64
	SetInserted int64
	SetErrors   int64
	SetAvgNanos int64
	GetCalls    int64
	GetKeys     int64
	GetHits     int64
	GetAvgNanos int64
	RemoveCalls int64
	RemovedKeys int64
	ResetCalls  int64
	ClearedKeys int64
}
