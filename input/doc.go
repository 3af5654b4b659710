// Package input provides type-safe helpers for extracting values from map[string]any.
//
// This package is designed to simplify working with JSON unmarshaled data or configuration
// maps where types may vary (e.g., numbers as float64, int, or string). All functions
// gracefully handle type mismatches by returning sensible defaults rather than erroring.
//
// # Key Features
//
//   - Type-safe extraction with automatic coercion
//   - Nil-safe operations (handles nil maps and values)
//   - No panics or errors - always returns defaults on mismatch
//   - Comprehensive handling of JSON unmarshaling quirks
//
// # Usage
//
// Extract values from a configuration map:
//
//	config := map[string]any{
//	    "host":    "example.com",
//	    "port":    8080,
//	    "timeout": "30s",
//	    "enabled": true,
//	    "tags":    []string{"web", "api"},
//	}
//
//	host := input.GetString(config, "host", "localhost")
//	port := input.GetInt(config, "port", 80)
//	timeout := input.GetTimeout(config, "timeout", 10*time.Second)
//	enabled := input.GetBool(config, "enabled", false)
//	tags := input.GetStringSlice(config, "tags")
//
// # Type Coercion
//
// Every lookup converts the stored value with plist.FromNative and reads it
// through the coerce package, so maps decoded from JSON or YAML follow the
// same rules as property-list containers:
//
//   - GetInt: any Go number, bools and numeric strings; out-of-range values saturate
//   - GetBool: bools, numbers, and yes/true/on or no/false/off in any case
//   - GetFloat64: any Go number and numeric strings
//   - GetStringSlice: []string, []interface{}, sets and single strings
//   - GetTimeout: time.Duration, numbers (as seconds), and duration strings like "5m"
//
// For returns the full accessor for a map when a narrower width such as
// int8 or uint16 is needed.
//
// # Design Philosophy
//
// This package follows the principle of "be liberal in what you accept" to handle
// real-world scenarios where data comes from JSON APIs, configuration files, or
// user input. Instead of strict type checking that would require error handling
// everywhere, it provides sensible defaults and automatic conversion.
//
// Code reading decoded JSON or YAML configuration can therefore take a port
// or a retry count without caring whether the decoder produced an int, an
// int64, a float64 or a json.Number.
package input
