package models

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// RawID holds an upstream identifier that may be sent as a JSON string or number.
type RawID string

func (id *RawID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("raw id: %w", err)
		}
		*id = RawID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("raw id: %w", err)
	}
	*id = RawID(n.String())
	return nil
}

func (id RawID) String() string {
	return string(id)
}
