package plist

import (
	"math"
	"reflect"
	"strconv"
	"time"

	"golang.org/x/exp/constraints"
)

// Kind identifies the variant of a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInteger
	KindUnsigned
	KindReal
	KindString
	KindData
	KindDate
	KindArray
	KindDict
	KindSet
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindBool:     "bool",
	KindInteger:  "integer",
	KindUnsigned: "unsigned",
	KindReal:     "real",
	KindString:   "string",
	KindData:     "data",
	KindDate:     "date",
	KindArray:    "array",
	KindDict:     "dict",
	KindSet:      "set",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String. Unknown names yield KindInvalid.
func ParseKind(name string) Kind {
	for k, n := range kindNames {
		if n == name {
			return Kind(k)
		}
	}
	return KindInvalid
}

// Value is a node of a property-list tree. The set of implementations is
// closed; use a type switch over the concrete variants.
type Value interface {
	Kind() Kind
	isValue()
}

// Describer is implemented by values that have a canonical textual form.
// Numbers, booleans and dates describe themselves; containers and Data do
// not.
type Describer interface {
	Description() string
}

// Bool is a boolean value.
type Bool bool

// Integer is a signed number.
type Integer int64

// Unsigned is a non-negative number. Number only produces it for
// magnitudes above math.MaxInt64.
type Unsigned uint64

// Real is a floating point number.
type Real float64

// String is a text value.
type String string

// Data is a byte blob.
type Data []byte

// Date is a point in time.
type Date time.Time

func (Bool) Kind() Kind     { return KindBool }
func (Integer) Kind() Kind  { return KindInteger }
func (Unsigned) Kind() Kind { return KindUnsigned }
func (Real) Kind() Kind     { return KindReal }
func (String) Kind() Kind   { return KindString }
func (Data) Kind() Kind     { return KindData }
func (Date) Kind() Kind     { return KindDate }

func (Bool) isValue()     {}
func (Integer) isValue()  {}
func (Unsigned) isValue() {}
func (Real) isValue()     {}
func (String) isValue()   {}
func (Data) isValue()     {}
func (Date) isValue()     {}

func (b Bool) Description() string     { return strconv.FormatBool(bool(b)) }
func (i Integer) Description() string  { return strconv.FormatInt(int64(i), 10) }
func (u Unsigned) Description() string { return strconv.FormatUint(uint64(u), 10) }
func (r Real) Description() string     { return strconv.FormatFloat(float64(r), 'g', -1, 64) }
func (d Date) Description() string     { return time.Time(d).Format(time.RFC3339Nano) }

// Time returns the date as a time.Time.
func (d Date) Time() time.Time { return time.Time(d) }

// Numeric is the set of Go types Number accepts.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Number boxes a Go number into the matching numeric variant: Integer for
// signed values and for unsigned values that fit in an int64, Unsigned for
// larger unsigned values, Real for floats.
func Number[T Numeric](n T) Value {
	rv := reflect.ValueOf(n)
	switch {
	case rv.CanInt():
		return Integer(rv.Int())
	case rv.CanUint():
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Unsigned(u)
		}
		return Integer(int64(u))
	default:
		return Real(rv.Float())
	}
}

// IsNumber reports whether v is a Bool, Integer, Unsigned or Real.
func IsNumber(v Value) bool {
	switch v.(type) {
	case Bool, Integer, Unsigned, Real:
		return true
	}
	return false
}

// KindOf returns v.Kind(), or KindInvalid for a nil Value.
func KindOf(v Value) Kind {
	if v == nil {
		return KindInvalid
	}
	return v.Kind()
}
