// Package coerce turns loosely typed property-list values into precisely
// typed Go values.
//
// Every function takes the raw value (nil when absent) and a default of the
// target type, and always returns a value of that type. Wrong kinds and
// absent values are expected conditions: they yield the default, never an
// error or a panic.
//
// # Numbers
//
// Int64 and Float64 are the two cores. Integer targets narrower than 64
// bits are produced by Clamped, which saturates at the bounds of the target
// type instead of wrapping:
//
//	coerce.Int8(plist.String("200"), 0)  // 127, not -56
//	coerce.Uint8(plist.Integer(-4), 9)   // 0
//	coerce.Int16(plist.Real(-7.9), 0)    // -7 (floats truncate toward zero)
//
// Booleans count as 1 and 0. Strings are parsed as base-10 integers first
// and as floats second.
//
// # Booleans
//
// Bool accepts numbers (non-zero is true) and the case-insensitive strings
// yes/true/on and no/false/off. Anything else yields the default.
//
// # Strings
//
// String returns strings unchanged and otherwise uses the value's
// plist.Describer form (numbers, booleans, dates). Containers and data
// never produce a placeholder description; they yield the default.
//
// # Non-negative floats
//
// NonNegativeFloat64 floors a successfully coerced negative result to zero
// but hands back a negative default untouched, so callers can pass a
// negative sentinel and detect that nothing usable was stored.
//
// # Containers
//
// As narrows a value to any variant or capability interface. Set also
// accepts an array and collects its elements into a new set.
package coerce
