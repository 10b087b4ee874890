// Package resource implements a memory budget that can be shared by stores.
//
// A Controller tracks bytes charged by every store attached to it and, when
// MemoryLimitBytes is set, refuses charges that would exceed the limit:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB across all attached stores
//	})
//
//	s := assoc.New[any](nil, assoc.WithResourceController(rc))
//	if err := s.Set("k", v); errors.Is(err, assoc.ErrResourceExhausted) {
//	    // the budget is spent; the store is unchanged
//	}
//
// Charges are fail-fast: TryAcquireMemory never blocks. AcquireMemory is the
// blocking variant for callers that want to wait for another owner to release.
//
// # Thread Safety
//
// Controller methods are safe for concurrent use, so one budget can govern
// stores owned by different goroutines.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops and
// every charge succeeds.
package resource
