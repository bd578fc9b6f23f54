package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONValue encodes v for a jsonb column.
func JSONValue(v any) (driver.Value, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode jsonb value: %w", err)
	}

	return raw, nil
}

// ScanJSON decodes a jsonb column into dest. NULL leaves dest untouched.
func ScanJSON(src, dest any) error {
	switch value := src.(type) {
	case nil:
		return nil
	case []byte:
		if err := json.Unmarshal(value, dest); err != nil {
			return fmt.Errorf("failed to decode jsonb value: %w", err)
		}
	case string:
		if err := json.Unmarshal([]byte(value), dest); err != nil {
			return fmt.Errorf("failed to decode jsonb value: %w", err)
		}
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}

	return nil
}

// Attributes is a free-form jsonb object.
type Attributes map[string]any

func (a Attributes) Value() (driver.Value, error) {
	if a == nil {
		return JSONValue(map[string]any{})
	}

	return JSONValue(map[string]any(a))
}

func (a *Attributes) Scan(src any) error {
	return ScanJSON(src, a)
}

// Float reads a numeric attribute; json numbers decode as float64.
func (a Attributes) Float(key string) float64 {
	value, _ := a[key].(float64)

	return value
}
