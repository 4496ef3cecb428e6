package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FieldValue is a raw form value. Form controls send either strings or numbers,
// so both JSON forms are accepted; null decodes to the empty value.
type FieldValue string

// UnmarshalJSON accepts a JSON string, number or null
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FieldValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = FieldValue(n.String())
	return nil
}

// IsEmpty reports whether nothing has been entered
func (v FieldValue) IsEmpty() bool {
	return strings.TrimSpace(string(v)) == ""
}

// String returns the raw value
func (v FieldValue) String() string {
	return string(v)
}
