package coerce

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/zero-day-ai/plistkit/plist"
)

// Int64 converts v to an int64, returning def when v is absent or has no
// numeric reading. Floats truncate toward zero and saturate at the int64
// bounds; NaN reads as 0. Unsigned values above math.MaxInt64 saturate.
func Int64(v plist.Value, def int64) int64 {
	if n, ok := int64Of(v); ok {
		return n
	}
	return def
}

// Uint64 converts v to a uint64, returning def when v is absent or has no
// numeric reading. Negative readings floor at 0 and floats above the
// uint64 range saturate.
func Uint64(v plist.Value, def uint64) uint64 {
	if n, ok := uint64Of(v); ok {
		return n
	}
	return def
}

// Clamp restricts x to [lo, hi]. The lower bound is checked first.
func Clamp(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Bounds returns the range of T expressed as int64. For uint64 and other
// 64-bit unsigned types hi is math.MaxInt64, the largest bound int64 can
// express; Clamped does not use Bounds for those types.
func Bounds[T constraints.Integer]() (lo, hi int64) {
	var zero T
	bits := unsafe.Sizeof(zero) * 8
	if isSigned[T]() {
		if bits >= 64 {
			return math.MinInt64, math.MaxInt64
		}
		return -1 << (bits - 1), 1<<(bits-1) - 1
	}
	if bits >= 64 {
		return 0, math.MaxInt64
	}
	return 0, 1<<bits - 1
}

// Clamped converts v to the integer type T, saturating at T's bounds.
// 64-bit targets skip clamping: signed ones delegate to Int64 and unsigned
// ones to Uint64.
func Clamped[T constraints.Integer](v plist.Value, def T) T {
	var zero T
	if unsafe.Sizeof(zero) >= 8 {
		if isSigned[T]() {
			return T(Int64(v, int64(def)))
		}
		return T(Uint64(v, uint64(def)))
	}
	lo, hi := Bounds[T]()
	return T(Clamp(Int64(v, int64(def)), lo, hi))
}

// Int converts v to an int.
func Int(v plist.Value, def int) int { return Clamped(v, def) }

// Int8 converts v to an int8, clamping to [-128, 127].
func Int8(v plist.Value, def int8) int8 { return Clamped(v, def) }

// Int16 converts v to an int16, clamping to its range.
func Int16(v plist.Value, def int16) int16 { return Clamped(v, def) }

// Int32 converts v to an int32, clamping to its range.
func Int32(v plist.Value, def int32) int32 { return Clamped(v, def) }

// Uint converts v to a uint.
func Uint(v plist.Value, def uint) uint { return Clamped(v, def) }

// Uint8 converts v to a uint8, clamping to [0, 255].
func Uint8(v plist.Value, def uint8) uint8 { return Clamped(v, def) }

// Uint16 converts v to a uint16, clamping to its range.
func Uint16(v plist.Value, def uint16) uint16 { return Clamped(v, def) }

// Uint32 converts v to a uint32, clamping to its range.
func Uint32(v plist.Value, def uint32) uint32 { return Clamped(v, def) }

func isSigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 < 0
}

func int64Of(v plist.Value) (int64, bool) {
	switch x := v.(type) {
	case plist.Integer:
		return int64(x), true
	case plist.Unsigned:
		if x > math.MaxInt64 {
			return math.MaxInt64, true
		}
		return int64(x), true
	case plist.Real:
		return truncInt64(float64(x)), true
	case plist.Bool:
		if x {
			return 1, true
		}
		return 0, true
	case plist.String:
		return parseInt64(string(x))
	}
	return 0, false
}

func uint64Of(v plist.Value) (uint64, bool) {
	switch x := v.(type) {
	case plist.Unsigned:
		return uint64(x), true
	case plist.Real:
		return truncUint64(float64(x)), true
	case plist.String:
		s := strings.TrimSpace(string(x))
		u, err := strconv.ParseUint(s, 10, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return u, true
		}
		if f, ok := parseFloat(s); ok {
			return truncUint64(f), true
		}
		return 0, false
	}
	n, ok := int64Of(v)
	if !ok {
		return 0, false
	}
	if n < 0 {
		return 0, true
	}
	return uint64(n), true
}

// parseInt64 reads s as a base-10 integer, falling back to a float reading
// truncated toward zero. Out-of-range text saturates.
func parseInt64(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return n, true
	}
	if f, ok := parseFloat(s); ok {
		return truncInt64(f), true
	}
	return 0, false
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return f, true
	}
	return 0, false
}

func truncInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= 0x1p63:
		return math.MaxInt64
	case f <= -0x1p63:
		return math.MinInt64
	}
	return int64(f)
}

func truncUint64(f float64) uint64 {
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= 0x1p64:
		return math.MaxUint64
	}
	return uint64(f)
}
