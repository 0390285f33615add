package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Metadata holds payment-method-specific string fields.
type Metadata map[string]string

// Value implements the driver.Valuer interface
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *Metadata) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported metadata type %T", value)
	}
	return json.Unmarshal(data, m)
}

// Has reports whether key is present with a non-empty value.
func (m Metadata) Has(key string) bool {
	return m[key] != ""
}

// Clone returns a shallow copy so records never alias caller maps.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
