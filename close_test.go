package assoc

import (
	"runtime"
	"testing"
	"time"

	"github.com/hupe1980/assoc/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectUntil runs the collector until cond holds or the attempts run out.
func collectUntil(cond func() bool) bool {
	for range 100 {
		if cond() {
			return true
		}
		runtime.GC()
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestStore_CleanupRefundsBudget(t *testing.T) {
	rc := resource.NewController(resource.Config{})

	func() {
		s := New[int](0, WithResourceController(rc))
		require.NoError(t, s.Set("a", 1))
		require.True(t, s.ledger.armed)
		require.Positive(t, rc.MemoryUsage())
	}()

	ok := collectUntil(func() bool { return rc.MemoryUsage() == 0 })
	assert.True(t, ok, "budget still charged with %d bytes", rc.MemoryUsage())
}

func TestStore_CloseStopsCleanup(t *testing.T) {
	rc := resource.NewController(resource.Config{})

	func() {
		s := New[int](0, WithResourceController(rc))
		require.NoError(t, s.Set("a", 1))
		require.NoError(t, s.Close())
		assert.False(t, s.ledger.armed)
	}()
	require.Zero(t, rc.MemoryUsage())

	// A second owner's charge must survive the closed store being collected.
	require.True(t, rc.TryAcquireMemory(100))
	for range 5 {
		runtime.GC()
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, int64(100), rc.MemoryUsage())
}

func TestStore_NoCleanupWithoutBudget(t *testing.T) {
	s := New[int](0)
	require.NoError(t, s.Set("a", 1))
	assert.False(t, s.ledger.armed)
	require.NoError(t, s.Close())
}
