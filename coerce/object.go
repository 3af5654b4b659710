package coerce

import (
	"time"

	"github.com/zero-day-ai/plistkit/plist"
)

// String returns v unchanged when it is a string, its description when it
// implements plist.Describer, and def otherwise.
func String(v plist.Value, def string) string {
	switch x := v.(type) {
	case plist.String:
		return string(x)
	case plist.Describer:
		return x.Description()
	}
	return def
}

// As returns v when it satisfies K, which may be a concrete variant such as
// *plist.Dict or a capability interface such as plist.Describer. Otherwise
// def is returned as is.
func As[K any](v plist.Value, def K) K {
	if k, ok := v.(K); ok {
		return k
	}
	return def
}

// Array returns v when it is an array.
func Array(v plist.Value, def *plist.Array) *plist.Array { return As(v, def) }

// Dict returns v when it is a dictionary.
func Dict(v plist.Value, def *plist.Dict) *plist.Dict { return As(v, def) }

// Data returns the bytes of a data value.
func Data(v plist.Value, def []byte) []byte {
	if d, ok := v.(plist.Data); ok {
		return []byte(d)
	}
	return def
}

// Date returns the time of a date value.
func Date(v plist.Value, def time.Time) time.Time {
	if d, ok := v.(plist.Date); ok {
		return d.Time()
	}
	return def
}

// Set returns v when it is a set. An array is collected into a new set,
// collapsing duplicate elements; its order is not kept.
func Set(v plist.Value, def *plist.Set) *plist.Set {
	switch x := v.(type) {
	case *plist.Set:
		return x
	case *plist.Array:
		return plist.NewSet(x.Values()...)
	}
	return def
}
