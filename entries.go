package assoc

import (
	"fmt"

	"github.com/hupe1980/assoc/codec"
)

// Entry is a key and its value.
//
// Entry is both the input of MSet and the element type of materialized
// results. An Entry with no Value carries the zero value of V, which is a
// legal stored value.
type Entry[V any] struct {
	Key   string
	Value V
}

// Entries is an ordered list of entries with unique keys, as returned by
// AsList and MGet.
type Entries[V any] []Entry[V]

// Keys returns the keys in order.
func (e Entries[V]) Keys() []string {
	keys := make([]string, len(e))
	for i, en := range e {
		keys[i] = en.Key
	}
	return keys
}

// Get returns the value for key. It scans the entries, so prefer Map for
// repeated lookups.
func (e Entries[V]) Get(key string) (V, bool) {
	for _, en := range e {
		if en.Key == key {
			return en.Value, true
		}
	}
	var zero V
	return zero, false
}

// Map returns the entries as a Go map. Order is lost.
func (e Entries[V]) Map() map[string]V {
	m := make(map[string]V, len(e))
	for _, en := range e {
		m[en.Key] = en.Value
	}
	return m
}

// MarshalJSON encodes the entries as a JSON object with codec.Default,
// preserving entry order.
func (e Entries[V]) MarshalJSON() ([]byte, error) {
	return e.Encode(codec.Default)
}

// Encode writes the entries as a JSON object whose members follow entry
// order. Keys that are not valid UTF-8 are coerced by the codec and may not
// survive a round trip.
func (e Entries[V]) Encode(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}

	buf := make([]byte, 0, 2+16*len(e))
	buf = append(buf, '{')
	for i, en := range e {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, err := c.Marshal(en.Key)
		if err != nil {
			return nil, fmt.Errorf("encode key %d: %w", i, err)
		}
		v, err := c.Marshal(en.Value)
		if err != nil {
			return nil, fmt.Errorf("encode value of %q: %w", en.Key, err)
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	buf = append(buf, '}')
	return buf, nil
}
