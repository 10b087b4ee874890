// Package codec encodes values for export.
//
// A store is never serialized as a whole. Codecs only encode the values of
// a materialized snapshot (assoc.Entries) so the contents can be handed to
// another system; the result is a one-way export, not a storage format.
package codec

// Codec encodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Name() string
}

// Default is the codec used by assoc.Entries.MarshalJSON.
var Default Codec = GoJSON{}
