package cache

import (
	"encoding/json"
	"fmt"
	"time"
)

// Codec converts values to the string form kept in the distributed store.
type Codec[V any] interface {
	Encode(value V) (string, error)
	Decode(raw string) (V, error)
}

type JSONCodec[V any] struct{}

func (JSONCodec[V]) Encode(value V) (string, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("cache: failed to encode value: %w", err)
	}
	return string(encoded), nil
}

func (JSONCodec[V]) Decode(raw string) (V, error) {
	var value V
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return value, fmt.Errorf("cache: failed to decode value: %w", err)
	}
	return value, nil
}

type StringCodec struct{}

func (StringCodec) Encode(value string) (string, error) { return value, nil }
func (StringCodec) Decode(raw string) (string, error)   { return raw, nil }

// TimeCodec stores timestamps as RFC3339 with nanoseconds in UTC.
type TimeCodec struct{}

func (TimeCodec) Encode(value time.Time) (string, error) {
	return value.UTC().Format(time.RFC3339Nano), nil
}

func (TimeCodec) Decode(raw string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("cache: failed to decode timestamp: %w", err)
	}
	return parsed, nil
}
