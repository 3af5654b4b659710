package input

import (
	"fmt"
	"math"
	"time"

	"github.com/zero-day-ai/plistkit/access"
	"github.com/zero-day-ai/plistkit/coerce"
	"github.com/zero-day-ai/plistkit/plist"
)

// For returns an accessor over m. Each lookup converts the stored Go value
// with plist.FromNative; values it cannot convert read as absent. A
// time.Duration reads as a number of seconds.
//
// Example:
//
//	args := input.For(m)
//	depth := args.Int8Or("depth", 2)
func For(m map[string]any) access.Accessor[string] {
	return access.New(func(key string) (plist.Value, bool) {
		return lookup(m, key)
	})
}

func lookup(m map[string]any, key string) (plist.Value, bool) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, false
	}
	if d, ok := raw.(time.Duration); ok {
		// Keep durations readable as seconds rather than nanoseconds.
		return plist.Real(d.Seconds()), true
	}
	v, err := plist.FromNative(raw)
	if err != nil || v == nil {
		return nil, false
	}
	return v, true
}

// Dict converts m into a property-list dictionary.
func Dict(m map[string]any) (*plist.Dict, error) {
	if m == nil {
		return plist.NewDict(), nil
	}
	v, err := plist.FromNative(m)
	if err != nil {
		return nil, fmt.Errorf("failed to convert map: %w", err)
	}
	return v.(*plist.Dict), nil
}

// GetString extracts a string value from the map with a default fallback.
// Numbers and booleans are returned in their textual form.
// Returns defaultVal if the key doesn't exist, the value is nil, or has no string form.
func GetString(m map[string]any, key string, defaultVal string) string {
	return For(m).StringOr(key, defaultVal)
}

// GetInt extracts an int value from the map with type coercion and default fallback.
// Handles every Go integer and float type, bools and numeric strings. Floats
// truncate toward zero and out-of-range values saturate.
// Returns defaultVal if the key doesn't exist, the value is nil, or cannot be converted.
func GetInt(m map[string]any, key string, defaultVal int) int {
	return For(m).IntOr(key, defaultVal)
}

// GetInt64 is GetInt for int64 values.
func GetInt64(m map[string]any, key string, defaultVal int64) int64 {
	return For(m).Int64Or(key, defaultVal)
}

// GetUint extracts a uint value. Negative numbers read as 0.
func GetUint(m map[string]any, key string, defaultVal uint) uint {
	return For(m).UintOr(key, defaultVal)
}

// GetBool extracts a bool value from the map with a default fallback.
// Accepts bools, numbers (non-zero is true) and the strings yes/true/on and
// no/false/off in any case.
// Returns defaultVal if the key doesn't exist, the value is nil, or cannot be converted.
func GetBool(m map[string]any, key string, defaultVal bool) bool {
	return For(m).BoolOr(key, defaultVal)
}

// GetFloat64 extracts a float64 value from the map with type coercion and default fallback.
// Returns defaultVal if the key doesn't exist, the value is nil, or cannot be converted.
func GetFloat64(m map[string]any, key string, defaultVal float64) float64 {
	return For(m).Float64Or(key, defaultVal)
}

// GetNonNegativeFloat64 is GetFloat64 with negative stored values floored to 0.
// A negative defaultVal is returned unchanged.
func GetNonNegativeFloat64(m map[string]any, key string, defaultVal float64) float64 {
	return For(m).NonNegativeFloat64Or(key, defaultVal)
}

// GetStringSlice extracts a []string value from the map.
// Handles []string, []any and sets (converting each element to string), and single string values.
// Returns nil if the key doesn't exist, the value is nil, or cannot be converted.
func GetStringSlice(m map[string]any, key string) []string {
	if slice, ok := m[key].([]string); ok {
		return slice
	}

	v, ok := lookup(m, key)
	if !ok {
		return nil
	}

	var items []plist.Value
	switch x := v.(type) {
	case plist.String:
		return []string{string(x)}
	case *plist.Array:
		items = x.Values()
	case *plist.Set:
		items = x.Values()
	default:
		return nil
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(plist.String)
		if !ok {
			result = append(result, coerce.String(item, fmt.Sprintf("%v", plist.ToNative(item))))
			continue
		}
		result = append(result, string(s))
	}
	return result
}

// GetMap extracts a nested map[string]any from the map.
// Returns nil if the key doesn't exist, the value is nil, or not a map.
func GetMap(m map[string]any, key string) map[string]any {
	nested, ok := m[key].(map[string]any)
	if !ok {
		return nil
	}
	return nested
}

// GetTimeout extracts a duration value from the map with type coercion and default fallback.
// Handles time.Duration, numbers (interpreted as seconds), and strings parsed as
// durations like "5m" or "30s" or as a number of seconds.
// Seconds beyond the Duration range saturate at its bounds.
// Returns defaultVal if the key doesn't exist, the value is nil, or cannot be converted.
func GetTimeout(m map[string]any, key string, defaultVal time.Duration) time.Duration {
	if d, ok := m[key].(time.Duration); ok {
		return d
	}

	v, ok := lookup(m, key)
	if !ok {
		return defaultVal
	}
	switch x := v.(type) {
	case plist.String:
		if parsed, err := time.ParseDuration(string(x)); err == nil {
			return parsed
		}
	case plist.Bool:
		return defaultVal
	}

	seconds := coerce.Float64(v, math.NaN())
	if math.IsNaN(seconds) {
		return defaultVal
	}
	// Saturates at the Duration bounds instead of wrapping.
	return time.Duration(coerce.Int64(plist.Real(seconds*float64(time.Second)), 0))
}
