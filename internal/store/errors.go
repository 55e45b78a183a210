package store

import "fmt"

// SerializationError indicates a record could not be encoded for storage.
// When it is returned from Save, no filesystem mutation has occurred.
type SerializationError struct {
	Node string
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("encoding record for node %q: %v", e.Node, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// DeserializationError indicates an on-disk record exists but is not valid.
// It is deliberately distinct from absence: a corrupt cache must be visible
// to the caller, not silently treated as "no credentials".
type DeserializationError struct {
	Node string
	Path string
	Err  error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("decoding record for node %q from %s: %v", e.Node, e.Path, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}
