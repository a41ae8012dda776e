package utils

import (
	"fmt"
	"strings"
)

// ToBool converts various types to bool.
// It handles bool, integer types (1=true), and strings ("1", "true", "yes", "on").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return fmt.Sprintf("%d", v) == "1"
	case string:
		return parseTruthy(v)
	case []byte:
		return parseTruthy(string(v))
	default:
		return false
	}
}

// OptionalBool parses s as a bool. It returns nil when s is empty or not a
// recognized value, so callers keep their default unless the flag is explicit.
func OptionalBool(s string) *bool {
	var b bool
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		b = true
	case "0", "false", "no", "off":
		b = false
	default:
		return nil
	}
	return &b
}

func parseTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
