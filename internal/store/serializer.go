package store

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Serializer converts credential records to and from their on-disk text
// encoding. Implementations must round-trip: Decode(Encode(r)) == r.
// Ext names the record file extension for the encoding, so that a cache
// directory reflects the format its records are written in.
type Serializer[T any] interface {
	Encode(record T) ([]byte, error)
	Decode(data []byte) (T, error)
	Ext() string
}

// SerializerFor returns the serializer for a configured record format,
// either "json" or "yaml".
func SerializerFor[T any](format string) (Serializer[T], error) {
	switch format {
	case "json":
		return JSON[T]{}, nil
	case "yaml":
		return YAML[T]{}, nil
	default:
		return nil, fmt.Errorf("invalid record format %q: must be either \"json\" or \"yaml\"", format)
	}
}

// JSON encodes records as pretty-printed JSON, the cache's standard on-disk
// format.
type JSON[T any] struct{}

func (JSON[T]) Encode(record T) ([]byte, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (JSON[T]) Decode(data []byte) (T, error) {
	var record T
	err := json.Unmarshal(data, &record)
	return record, err
}

func (JSON[T]) Ext() string {
	return ".json"
}

// YAML encodes records as YAML, selectable for installations that prefer it.
type YAML[T any] struct{}

func (YAML[T]) Encode(record T) ([]byte, error) {
	return yaml.Marshal(record)
}

func (YAML[T]) Decode(data []byte) (T, error) {
	var record T
	err := yaml.Unmarshal(data, &record)
	return record, err
}

func (YAML[T]) Ext() string {
	return ".yaml"
}
