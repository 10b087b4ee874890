package assoc

// A store is bound to the process that created it and has no stable
// encoding. The methods below make that explicit for the standard encoders,
// which would otherwise silently emit an empty object for the unexported
// fields. Use AsList to export the contents.

// MarshalJSON always fails with ErrNotSerializable.
func (s *Store[V]) MarshalJSON() ([]byte, error) {
	return nil, ErrNotSerializable
}

// MarshalBinary always fails with ErrNotSerializable.
func (s *Store[V]) MarshalBinary() ([]byte, error) {
	return nil, ErrNotSerializable
}

// GobEncode always fails with ErrNotSerializable.
func (s *Store[V]) GobEncode() ([]byte, error) {
	return nil, ErrNotSerializable
}
