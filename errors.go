package assoc

import (
	"errors"
	"fmt"

	"github.com/hupe1980/assoc/internal/arena"
	"github.com/hupe1980/assoc/resource"
)

var (
	// ErrInvalidArgument is returned for malformed input. The operation has no effect.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidKey is returned for a nil byte-slice key.
	ErrInvalidKey = fmt.Errorf("%w: nil key", ErrInvalidArgument)

	// ErrResourceExhausted is returned when a new key cannot be stored because
	// the memory budget or the slot handle space is spent. The store keeps its
	// last consistent state.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrClosed is returned when a mutation is attempted on a closed store.
	ErrClosed = errors.New("store closed")

	// ErrNotSerializable is returned by every attempt to serialize a store.
	// A store is bound to the process that created it; export its contents
	// with AsList instead.
	ErrNotSerializable = errors.New("store is not serializable")
)

// ErrBatchLength indicates a batch whose key and value counts differ.
//
// It unwraps to ErrInvalidArgument.
type ErrBatchLength struct {
	Keys   int
	Values int
}

func (e *ErrBatchLength) Error() string {
	return fmt.Sprintf("invalid argument: batch has %d keys but %d values", e.Keys, e.Values)
}

func (e *ErrBatchLength) Unwrap() error { return ErrInvalidArgument }

func exhausted(err error) error {
	return fmt.Errorf("%w: %w", ErrResourceExhausted, err)
}

// translateError maps failures of the arena and the memory budget to the
// public error set.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, arena.ErrArenaFull),
		errors.Is(err, arena.ErrAllocationFailed),
		errors.Is(err, resource.ErrMemoryLimitExceeded):
		return exhausted(err)
	}
	return err
}

// BatchError reports the entry at which MSet stopped. Entries before Index
// were applied.
//
// The underlying error can be accessed via errors.Unwrap.
type BatchError struct {
	Index int
	Key   string
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch entry %d (%q): %v", e.Index, e.Key, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
