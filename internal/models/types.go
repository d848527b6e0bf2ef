package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a jsonb-backed list of strings. Post tags are free text
// and deliberately NOT normalized into a relation; keeping them as a raw
// list is what the case-insensitive tag match operates on.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

func (StringList) GormDataType() string {
	return "jsonb"
}

// StringMap is a jsonb-backed string map (author social links).
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *StringMap) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported type for StringMap: %T", value)
	}
}

func (StringMap) GormDataType() string {
	return "jsonb"
}
