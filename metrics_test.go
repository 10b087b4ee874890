package assoc

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	s := New[int](0, WithMetricsCollector(m), WithMaxSlots(2))

	require.NoError(t, s.Set("a", 1))
	require.NoError(t, s.Set("a", 2))
	require.NoError(t, s.MSetSlices([]string{"b", "c"}, []int{3, 4}))

	_ = s.Get("a")
	_, _ = s.Lookup("zz")
	_ = s.MGet("a", "b", "a", "zz")

	require.NoError(t, s.Remove("a", "zz"))
	require.NoError(t, s.Reset())
	require.NoError(t, s.Set("d", 5))
	require.NoError(t, s.Close())

	stats := m.GetStats()
	assert.Equal(t, int64(4), stats.SetCalls)
	assert.Equal(t, int64(5), stats.SetEntries)
	assert.Equal(t, int64(3), stats.SetInserted, "a, b and d")
	assert.Equal(t, int64(1), stats.SetErrors, "c exceeds the slot cap")

	assert.Equal(t, int64(3), stats.GetCalls)
	assert.Equal(t, int64(5), stats.GetKeys, "duplicates in MGet count once")
	assert.Equal(t, int64(3), stats.GetHits)

	assert.Equal(t, int64(1), stats.RemoveCalls)
	assert.Equal(t, int64(1), stats.RemovedKeys)

	assert.Equal(t, int64(2), stats.ResetCalls, "reset and close")
	assert.Equal(t, int64(2), stats.ClearedKeys)
}

func TestBasicMetricsCollector_MGetDuplicates(t *testing.T) {
	m := &BasicMetricsCollector{}
	s := New[int](0, WithMetricsCollector(m))
	require.NoError(t, s.Set("a", 1))

	got := s.MGet("a", "a", "a")
	require.Len(t, got, 1)

	stats := m.GetStats()
	assert.Equal(t, int64(1), stats.GetKeys)
	assert.Equal(t, int64(1), stats.GetHits)
}

func TestBasicMetricsCollector_Concurrent(t *testing.T) {
	m := &BasicMetricsCollector{}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				m.RecordSet(1, 1, time.Microsecond, nil)
				m.RecordGet(2, 1, time.Microsecond)
			}
		}()
	}
	wg.Wait()

	stats := m.GetStats()
	assert.Equal(t, int64(800), stats.SetCalls)
	assert.Equal(t, int64(1600), stats.GetKeys)
	assert.Equal(t, int64(1000), stats.SetAvgNanos)
	assert.Equal(t, int64(1000), stats.GetAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	s := New[int](0, WithMetricsCollector(NoopMetricsCollector{}))
	require.NoError(t, s.Set("a", 1))
	assert.Equal(t, 1, s.Get("a"))
	assert.True(t, s.observe)

	s = New[int](0, WithMetricsCollector(nil))
	assert.False(t, s.observe)
}
