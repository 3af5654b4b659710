package plist

import (
	"encoding/base64"
	"fmt"
	"math"
	"time"

	"google.golang.org/protobuf/types/known/structpb"
)

// FromStructpb converts a protobuf well-known Value into a property-list
// tree. Null becomes a nil Value. Whole numbers inside the int64 range
// become Integer since structpb carries every number as a double.
func FromStructpb(pv *structpb.Value) Value {
	if pv == nil {
		return nil
	}
	switch k := pv.GetKind().(type) {
	case *structpb.Value_BoolValue:
		return Bool(k.BoolValue)
	case *structpb.Value_NumberValue:
		f := k.NumberValue
		if f == math.Trunc(f) && f >= -0x1p63 && f < 0x1p63 {
			return Integer(int64(f))
		}
		return Real(f)
	case *structpb.Value_StringValue:
		return String(k.StringValue)
	case *structpb.Value_ListValue:
		a := NewArray()
		for _, item := range k.ListValue.GetValues() {
			a.Append(FromStructpb(item))
		}
		return a
	case *structpb.Value_StructValue:
		return FromStruct(k.StructValue)
	}
	return nil
}

// FromStruct converts a protobuf Struct into a dictionary keyed by String.
func FromStruct(st *structpb.Struct) *Dict {
	d := NewDict()
	for key, item := range st.GetFields() {
		d.Set(String(key), FromStructpb(item))
	}
	return d
}

// ToStructpb converts a property-list tree into a protobuf Value. Data is
// base64 encoded, dates are rendered in RFC 3339, sets become lists and
// dictionary keys must be strings.
func ToStructpb(v Value) (*structpb.Value, error) {
	switch x := v.(type) {
	case nil:
		return structpb.NewNullValue(), nil
	case Bool:
		return structpb.NewBoolValue(bool(x)), nil
	case Integer:
		return structpb.NewNumberValue(float64(x)), nil
	case Unsigned:
		return structpb.NewNumberValue(float64(x)), nil
	case Real:
		return structpb.NewNumberValue(float64(x)), nil
	case String:
		return structpb.NewStringValue(string(x)), nil
	case Data:
		return structpb.NewStringValue(base64.StdEncoding.EncodeToString(x)), nil
	case Date:
		return structpb.NewStringValue(time.Time(x).UTC().Format(time.RFC3339Nano)), nil
	case *Array:
		return listToStructpb(x.Values())
	case *Set:
		return listToStructpb(x.Values())
	case *Dict:
		fields := make(map[string]*structpb.Value, x.Len())
		var err error
		x.Range(func(k, val Value) bool {
			key, ok := k.(String)
			if !ok {
				err = fmt.Errorf("dictionary key of kind %s cannot become a struct field", k.Kind())
				return false
			}
			var pv *structpb.Value
			pv, err = ToStructpb(val)
			if err != nil {
				err = fmt.Errorf("field %q: %w", key, err)
				return false
			}
			fields[string(key)] = pv
			return true
		})
		if err != nil {
			return nil, err
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
	}
	return nil, fmt.Errorf("unsupported value kind %s", KindOf(v))
}

func listToStructpb(items []Value) (*structpb.Value, error) {
	values := make([]*structpb.Value, 0, len(items))
	for i, item := range items {
		pv, err := ToStructpb(item)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		values = append(values, pv)
	}
	return structpb.NewListValue(&structpb.ListValue{Values: values}), nil
}
