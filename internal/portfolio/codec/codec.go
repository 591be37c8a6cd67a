// Package codec converts portfolio collections to and from the text stored
// in the backing store.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMalformed = errors.New("malformed collection text")

// Encode serializes a collection as a JSON array. A nil collection encodes
// as an empty array.
func Encode[T any](collection []T) (string, error) {
	if collection == nil {
		collection = []T{}
	}
	b, err := json.Marshal(collection)
	if err != nil {
		return "", fmt.Errorf("encode collection: %w", err)
	}
	return string(b), nil
}

// Decode parses text produced by Encode. Anything that is not a well-formed
// JSON array of records yields ErrMalformed.
func Decode[T any](text string) ([]T, error) {
	raw := bytes.TrimSpace([]byte(text))
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: not a JSON array", ErrMalformed)
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}
