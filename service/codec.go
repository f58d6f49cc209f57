package service

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes a contribution as a JSON array.
func MarshalJSON[T any](values []T) ([]byte, error) {
	if values == nil {
		values = []T{}
	}
	return json.Marshal(values)
}

// UnmarshalFlatJSON decodes a stored value into a flat slice.
// Older producers store either a single object or an array of objects; both are accepted and
// arrays are flattened one level. JSON null yields an empty result.
func UnmarshalFlatJSON[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, NewMalformedValueError("empty value", nil)
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err == nil {
			return items, nil
		}
	}

	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return nil, NewMalformedValueError("can't decode stored value", fmt.Errorf("unmarshal %T: %w", item, err))
	}
	return []T{item}, nil
}
