package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Use it when output must match encoding/json byte for byte, e.g. when the
// consumer compares exported snapshots against ones produced elsewhere.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
