package plist

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// FromNative converts a Go value into a property-list tree. It accepts the
// shapes produced by encoding/json (including json.Number), yaml.v3
// (map[string]any and map[any]any) and hand-written literals: bool, every
// integer and float kind, string, []byte, time.Time, slices, arrays and
// maps of those, and values that already implement Value. A nil input
// yields a nil Value; nil elements inside slices and maps are dropped.
func FromNative(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case []byte:
		return Data(x), nil
	case time.Time:
		return Date(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Integer(i), nil
		}
		if u, err := strconv.ParseUint(string(x), 10, 64); err == nil {
			return Unsigned(u), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid json number %q: %w", x, err)
		}
		return Real(f), nil
	case int:
		return Number(x), nil
	case int8:
		return Number(x), nil
	case int16:
		return Number(x), nil
	case int32:
		return Number(x), nil
	case int64:
		return Number(x), nil
	case uint:
		return Number(x), nil
	case uint8:
		return Number(x), nil
	case uint16:
		return Number(x), nil
	case uint32:
		return Number(x), nil
	case uint64:
		return Number(x), nil
	case float32:
		return Number(x), nil
	case float64:
		return Number(x), nil
	case []any:
		return arrayFromNative(x)
	case []string:
		a := NewArray()
		for _, s := range x {
			a.Append(String(s))
		}
		return a, nil
	case map[string]any:
		d := NewDict()
		for k, item := range x {
			val, err := FromNative(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			d.Set(String(k), val)
		}
		return d, nil
	case map[any]any:
		d := NewDict()
		for k, item := range x {
			key, err := FromNative(k)
			if err != nil {
				return nil, fmt.Errorf("map key %v: %w", k, err)
			}
			val, err := FromNative(item)
			if err != nil {
				return nil, fmt.Errorf("key %v: %w", k, err)
			}
			d.Set(key, val)
		}
		return d, nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func arrayFromNative(items []any) (*Array, error) {
	a := NewArray()
	for i, item := range items {
		val, err := FromNative(item)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		a.Append(val)
	}
	return a, nil
}

// fromReflect handles named numeric types and typed slices and maps that
// the type switch in FromNative does not spell out.
func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Integer(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Real(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, nil
		}
		a := NewArray()
		for i := 0; i < rv.Len(); i++ {
			val, err := FromNative(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			a.Append(val)
		}
		return a, nil
	case reflect.Map:
		if rv.IsNil() {
			return nil, nil
		}
		d := NewDict()
		iter := rv.MapRange()
		for iter.Next() {
			key, err := FromNative(iter.Key().Interface())
			if err != nil {
				return nil, fmt.Errorf("map key: %w", err)
			}
			val, err := FromNative(iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("key %v: %w", iter.Key().Interface(), err)
			}
			d.Set(key, val)
		}
		return d, nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return FromNative(rv.Elem().Interface())
	}
	return nil, fmt.Errorf("unsupported type %s", rv.Type())
}

// ToNative converts a property-list tree back into plain Go values:
// bool, int64, uint64, float64, string, []byte, time.Time, []any and
// map[string]any. Dictionary keys that are not strings are rendered with
// their description or canonical form. Sets become []any sorted by their
// canonical form so the output is deterministic.
func ToNative(v Value) any {
	switch x := v.(type) {
	case nil:
		return nil
	case Bool:
		return bool(x)
	case Integer:
		return int64(x)
	case Unsigned:
		return uint64(x)
	case Real:
		return float64(x)
	case String:
		return string(x)
	case Data:
		return []byte(x)
	case Date:
		return time.Time(x)
	case *Array:
		out := make([]any, 0, x.Len())
		for _, item := range x.Values() {
			out = append(out, ToNative(item))
		}
		return out
	case *Dict:
		out := make(map[string]any, x.Len())
		x.Range(func(k, val Value) bool {
			out[nativeKey(k)] = ToNative(val)
			return true
		})
		return out
	case *Set:
		members := x.Values()
		sort.Slice(members, func(i, j int) bool {
			return canonical(members[i]) < canonical(members[j])
		})
		out := make([]any, 0, len(members))
		for _, m := range members {
			out = append(out, ToNative(m))
		}
		return out
	}
	return nil
}

func nativeKey(k Value) string {
	switch x := k.(type) {
	case String:
		return string(x)
	case Describer:
		return x.Description()
	}
	return canonical(k)
}
