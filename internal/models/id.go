package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a row identifier carried in request bodies.
// It accepts both a JSON number (2) and a numeric string ("2").
type ID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := data
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*id = 0
			return nil
		}
		raw = []byte(s)
	}

	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(v)
	return nil
}

// Int64 returns the identifier as int64.
func (id ID) Int64() int64 {
	return int64(id)
}
