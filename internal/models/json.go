package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a JSONB array of strings (tags, categories, image URLs)
type StringList []string

// Value implements the driver.Valuer interface for database writes
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface for database reads
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("failed to scan StringList: unsupported type %T", value)
	}
}

// MetricMap is a JSONB object mapping metric names to numeric values
type MetricMap map[string]float64

// Value implements the driver.Valuer interface for database writes
func (m MetricMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string]float64{})
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for database reads
func (m *MetricMap) Scan(value interface{}) error {
	if value == nil {
		*m = MetricMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("failed to scan MetricMap: unsupported type %T", value)
	}
}

// Metadata is a JSONB object with arbitrary scalar values
type Metadata map[string]interface{}

// Value implements the driver.Valuer interface for database writes
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string]interface{}{})
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for database reads
func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = Metadata{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("failed to scan Metadata: unsupported type %T", value)
	}
}
