package access

import (
	"time"

	"github.com/zero-day-ai/plistkit/coerce"
	"github.com/zero-day-ai/plistkit/plist"
)

// Source resolves a location to a raw value. The bool is false when the
// location holds nothing.
type Source[L any] interface {
	Lookup(loc L) (plist.Value, bool)
}

// Accessor reads typed values out of a container, one location at a time.
// Each typed method comes in two forms: Int8(loc) returns the zero value
// when the location is absent or cannot be coerced, Int8Or(loc, def)
// returns def instead. No method panics or returns an error.
//
// L is the location type: int for arrays, plist.Value for dictionaries
// and string for stores.
type Accessor[L any] struct {
	lookup func(L) (plist.Value, bool)
}

// New builds an Accessor from a lookup function. A nil lookup treats every
// location as absent.
func New[L any](lookup func(L) (plist.Value, bool)) Accessor[L] {
	return Accessor[L]{lookup: lookup}
}

// Lookup implements Source.
func (a Accessor[L]) Lookup(loc L) (plist.Value, bool) {
	if a.lookup == nil {
		return nil, false
	}
	v, ok := a.lookup(loc)
	if v == nil {
		return nil, false
	}
	return v, ok
}

func (a Accessor[L]) value(loc L) plist.Value {
	v, _ := a.Lookup(loc)
	return v
}

// Has reports whether loc holds a value.
func (a Accessor[L]) Has(loc L) bool {
	_, ok := a.Lookup(loc)
	return ok
}

// Int returns the number at loc clamped to the int range, or 0.
func (a Accessor[L]) Int(loc L) int {
	return a.IntOr(loc, 0)
}

// IntOr returns the number at loc clamped to the int range, or def when
// loc is absent or not numeric.
func (a Accessor[L]) IntOr(loc L, def int) int {
	return coerce.Int(a.value(loc), def)
}

// Int8 returns the number at loc clamped to the int8 range, or 0.
func (a Accessor[L]) Int8(loc L) int8 {
	return a.Int8Or(loc, 0)
}

// Int8Or is Int8 with an explicit default.
func (a Accessor[L]) Int8Or(loc L, def int8) int8 {
	return coerce.Int8(a.value(loc), def)
}

// Int16 returns the number at loc clamped to the int16 range, or 0.
func (a Accessor[L]) Int16(loc L) int16 {
	return a.Int16Or(loc, 0)
}

// Int16Or is Int16 with an explicit default.
func (a Accessor[L]) Int16Or(loc L, def int16) int16 {
	return coerce.Int16(a.value(loc), def)
}

// Int32 returns the number at loc clamped to the int32 range, or 0.
func (a Accessor[L]) Int32(loc L) int32 {
	return a.Int32Or(loc, 0)
}

// Int32Or is Int32 with an explicit default.
func (a Accessor[L]) Int32Or(loc L, def int32) int32 {
	return coerce.Int32(a.value(loc), def)
}

// Int64 returns the number at loc clamped to the int64 range, or 0.
func (a Accessor[L]) Int64(loc L) int64 {
	return a.Int64Or(loc, 0)
}

// Int64Or is Int64 with an explicit default.
func (a Accessor[L]) Int64Or(loc L, def int64) int64 {
	return coerce.Int64(a.value(loc), def)
}

// Uint returns the number at loc clamped to the uint range, or 0. Negative
// numbers read as 0.
func (a Accessor[L]) Uint(loc L) uint {
	return a.UintOr(loc, 0)
}

// UintOr is Uint with an explicit default.
func (a Accessor[L]) UintOr(loc L, def uint) uint {
	return coerce.Uint(a.value(loc), def)
}

// Uint8 returns the number at loc clamped to the uint8 range, or 0. Negative
// numbers read as 0.
func (a Accessor[L]) Uint8(loc L) uint8 {
	return a.Uint8Or(loc, 0)
}

// Uint8Or is Uint8 with an explicit default.
func (a Accessor[L]) Uint8Or(loc L, def uint8) uint8 {
	return coerce.Uint8(a.value(loc), def)
}

// Uint16 returns the number at loc clamped to the uint16 range, or 0. Negative
// numbers read as 0.
func (a Accessor[L]) Uint16(loc L) uint16 {
	return a.Uint16Or(loc, 0)
}

// Uint16Or is Uint16 with an explicit default.
func (a Accessor[L]) Uint16Or(loc L, def uint16) uint16 {
	return coerce.Uint16(a.value(loc), def)
}

// Uint32 returns the number at loc clamped to the uint32 range, or 0. Negative
// numbers read as 0.
func (a Accessor[L]) Uint32(loc L) uint32 {
	return a.Uint32Or(loc, 0)
}

// Uint32Or is Uint32 with an explicit default.
func (a Accessor[L]) Uint32Or(loc L, def uint32) uint32 {
	return coerce.Uint32(a.value(loc), def)
}

// Uint64 returns the number at loc clamped to the uint64 range, or 0. Negative
// numbers read as 0.
func (a Accessor[L]) Uint64(loc L) uint64 {
	return a.Uint64Or(loc, 0)
}

// Uint64Or is Uint64 with an explicit default.
func (a Accessor[L]) Uint64Or(loc L, def uint64) uint64 {
	return coerce.Uint64(a.value(loc), def)
}

// Bool interprets the value at loc as a boolean. Nonzero numbers and the
// strings yes, true and on read as true.
func (a Accessor[L]) Bool(loc L) bool {
	return a.BoolOr(loc, false)
}

// BoolOr is Bool with an explicit default.
func (a Accessor[L]) BoolOr(loc L, def bool) bool {
	return coerce.Bool(a.value(loc), def)
}

// Float32 returns the number at loc as a float32, or 0.
func (a Accessor[L]) Float32(loc L) float32 {
	return a.Float32Or(loc, 0)
}

// Float32Or is Float32 with an explicit default.
func (a Accessor[L]) Float32Or(loc L, def float32) float32 {
	return coerce.Float32(a.value(loc), def)
}

// Float64 returns the number at loc as a float64, or 0.
func (a Accessor[L]) Float64(loc L) float64 {
	return a.Float64Or(loc, 0)
}

// Float64Or is Float64 with an explicit default.
func (a Accessor[L]) Float64Or(loc L, def float64) float64 {
	return coerce.Float64(a.value(loc), def)
}

// NonNegativeFloat32 is Float32 with negative numbers floored at 0.
func (a Accessor[L]) NonNegativeFloat32(loc L) float32 {
	return a.NonNegativeFloat32Or(loc, 0)
}

// NonNegativeFloat32Or floors a stored negative number at 0. A negative def
// is returned as given.
func (a Accessor[L]) NonNegativeFloat32Or(loc L, def float32) float32 {
	return coerce.NonNegativeFloat32(a.value(loc), def)
}

// NonNegativeFloat64 is Float64 with negative numbers floored at 0.
func (a Accessor[L]) NonNegativeFloat64(loc L) float64 {
	return a.NonNegativeFloat64Or(loc, 0)
}

// NonNegativeFloat64Or floors a stored negative number at 0. A negative def
// is returned as given.
func (a Accessor[L]) NonNegativeFloat64Or(loc L, def float64) float64 {
	return coerce.NonNegativeFloat64(a.value(loc), def)
}

// String returns the string at loc. Values implementing plist.Describer,
// numbers among them, read as their description.
func (a Accessor[L]) String(loc L) string {
	return a.StringOr(loc, "")
}

// StringOr is String with an explicit default.
func (a Accessor[L]) StringOr(loc L, def string) string {
	return coerce.String(a.value(loc), def)
}

// Array returns the array at loc, or nil.
func (a Accessor[L]) Array(loc L) *plist.Array {
	return a.ArrayOr(loc, nil)
}

// ArrayOr is Array with an explicit default.
func (a Accessor[L]) ArrayOr(loc L, def *plist.Array) *plist.Array {
	return coerce.Array(a.value(loc), def)
}

// Dict returns the dictionary at loc, or nil.
func (a Accessor[L]) Dict(loc L) *plist.Dict {
	return a.DictOr(loc, nil)
}

// DictOr is Dict with an explicit default.
func (a Accessor[L]) DictOr(loc L, def *plist.Dict) *plist.Dict {
	return coerce.Dict(a.value(loc), def)
}

// Set returns the set at loc, or nil. An array is collected into a new set.
func (a Accessor[L]) Set(loc L) *plist.Set {
	return a.SetOr(loc, nil)
}

// SetOr is Set with an explicit default.
func (a Accessor[L]) SetOr(loc L, def *plist.Set) *plist.Set {
	return coerce.Set(a.value(loc), def)
}

// Data returns the bytes of the data value at loc, or nil.
func (a Accessor[L]) Data(loc L) []byte {
	return a.DataOr(loc, nil)
}

// DataOr is Data with an explicit default.
func (a Accessor[L]) DataOr(loc L, def []byte) []byte {
	return coerce.Data(a.value(loc), def)
}

// Date returns the date at loc, or the zero time.
func (a Accessor[L]) Date(loc L) time.Time {
	return a.DateOr(loc, time.Time{})
}

// DateOr is Date with an explicit default.
func (a Accessor[L]) DateOr(loc L, def time.Time) time.Time {
	return coerce.Date(a.value(loc), def)
}

// Object returns the raw value at loc, or nil.
func (a Accessor[L]) Object(loc L) plist.Value { return a.value(loc) }

// ObjectOr returns the raw value at loc, or def when loc is absent.
func (a Accessor[L]) ObjectOr(loc L, def plist.Value) plist.Value {
	if v, ok := a.Lookup(loc); ok {
		return v
	}
	return def
}

// ObjectOf returns the value at loc when it satisfies K, which may be a
// concrete variant such as *plist.Dict or a capability interface such as
// plist.Describer. Otherwise it returns the zero K.
//
//	d := access.ObjectOf[*plist.Dict](prefs, "Window")
func ObjectOf[K any, L any](src Source[L], loc L) K {
	var zero K
	return ObjectOfOr(src, loc, zero)
}

// ObjectOfOr is ObjectOf with an explicit default.
func ObjectOfOr[K any, L any](src Source[L], loc L, def K) K {
	v, ok := src.Lookup(loc)
	if !ok {
		return def
	}
	return coerce.As(v, def)
}
