package coerce

import (
	"golang.org/x/exp/constraints"

	"github.com/zero-day-ai/plistkit/plist"
)

// Float64 converts v to a float64, returning def when v is absent or has
// no numeric reading.
func Float64(v plist.Value, def float64) float64 {
	if f, ok := float64Of(v); ok {
		return f
	}
	return def
}

// Float32 converts v to a float32.
func Float32(v plist.Value, def float32) float32 {
	if f, ok := float64Of(v); ok {
		return float32(f)
	}
	return def
}

// NonNegativeFloat64 is Float64 with negative results floored to zero. A
// default returned because v is absent or unreadable is passed through
// unchanged, even when it is negative.
func NonNegativeFloat64(v plist.Value, def float64) float64 {
	f, ok := float64Of(v)
	if !ok {
		return def
	}
	if f < 0 {
		return 0
	}
	return f
}

// NonNegativeFloat32 is the float32 form of NonNegativeFloat64.
func NonNegativeFloat32(v plist.Value, def float32) float32 {
	f, ok := float64Of(v)
	if !ok {
		return def
	}
	if f < 0 {
		return 0
	}
	return float32(f)
}

// NonNegative is the clamped-integer form of NonNegativeFloat64: the
// reading is clamped to T's range and then floored at zero, while an
// unused default comes back verbatim.
func NonNegative[T constraints.Signed](v plist.Value, def T) T {
	if _, ok := int64Of(v); !ok {
		return def
	}
	n := Clamped(v, def)
	if n < 0 {
		return 0
	}
	return n
}

func float64Of(v plist.Value) (float64, bool) {
	switch x := v.(type) {
	case plist.Real:
		return float64(x), true
	case plist.Integer:
		return float64(x), true
	case plist.Unsigned:
		return float64(x), true
	case plist.Bool:
		if x {
			return 1, true
		}
		return 0, true
	case plist.String:
		return parseFloat(string(x))
	}
	return 0, false
}
