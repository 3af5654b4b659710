package plist

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

func TestFromNative_Scalars(t *testing.T) {
	when := time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC)
	type level int

	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, nil},
		{"bool", true, Bool(true)},
		{"string", "hi", String("hi")},
		{"bytes", []byte{0xde, 0xad}, Data{0xde, 0xad}},
		{"time", when, Date(when)},
		{"int", 12, Integer(12)},
		{"uint64 max", uint64(math.MaxUint64), Unsigned(math.MaxUint64)},
		{"float64", 1.25, Real(1.25)},
		{"json integer", json.Number("42"), Integer(42)},
		{"json huge unsigned", json.Number("18446744073709551615"), Unsigned(math.MaxUint64)},
		{"json float", json.Number("4.5"), Real(4.5)},
		{"named int", level(3), Integer(3)},
		{"already a value", Integer(9), Integer(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromNative(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromNative_Containers(t *testing.T) {
	v, err := FromNative(map[string]any{
		"name":  "widget",
		"sizes": []any{1, 2.5, nil, "three"},
		"tags":  []string{"a", "b"},
		"extra": map[any]any{1: "one"},
	})
	require.NoError(t, err)

	d, ok := v.(*Dict)
	require.True(t, ok)
	assert.Equal(t, 4, d.Len())

	sizes, ok := d.Get(String("sizes"))
	require.True(t, ok)
	assert.Equal(t, []Value{Integer(1), Real(2.5), String("three")}, sizes.(*Array).Values())

	extra, _ := d.Get(String("extra"))
	one, ok := extra.(*Dict).Get(Integer(1))
	require.True(t, ok)
	assert.Equal(t, String("one"), one)
}

func TestFromNative_TypedCollections(t *testing.T) {
	v, err := FromNative(map[string][]int{"ports": {80, 443}})
	require.NoError(t, err)

	ports, ok := v.(*Dict).Get(String("ports"))
	require.True(t, ok)
	assert.True(t, Equal(NewArray(Integer(80), Integer(443)), ports))
}

func TestFromNative_Unsupported(t *testing.T) {
	_, err := FromNative(map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestFromNative_YAMLDocument(t *testing.T) {
	doc := `
retries: 3
ratio: 0.75
verbose: yes
hosts:
  - alpha
  - beta
`
	var raw any
	require.NoError(t, yaml.Unmarshal([]byte(doc), &raw))

	v, err := FromNative(raw)
	require.NoError(t, err)

	d := v.(*Dict)
	retries, _ := d.Get(String("retries"))
	assert.Equal(t, Integer(3), retries)
	ratio, _ := d.Get(String("ratio"))
	assert.Equal(t, Real(0.75), ratio)
	hosts, _ := d.Get(String("hosts"))
	assert.Equal(t, 2, hosts.(*Array).Len())
}

func TestToNative(t *testing.T) {
	d := NewDict()
	d.Set(String("n"), Integer(1))
	d.Set(Integer(2), String("two"))
	d.Set(String("list"), NewArray(Bool(true), Data("x")))
	d.Set(String("set"), NewSet(String("b"), String("a")))

	got := ToNative(d).(map[string]any)
	assert.Equal(t, int64(1), got["n"])
	assert.Equal(t, "two", got["2"])
	assert.Equal(t, []any{true, []byte("x")}, got["list"])
	assert.Equal(t, []any{"a", "b"}, got["set"])
	assert.Nil(t, ToNative(nil))
}

func TestStructpbRoundTrip(t *testing.T) {
	st, err := structpb.NewStruct(map[string]any{
		"count":   3,
		"ratio":   0.5,
		"enabled": true,
		"name":    "scan",
		"items":   []any{"a", 1},
		"nested":  map[string]any{"deep": nil},
	})
	require.NoError(t, err)

	d := FromStruct(st)
	count, _ := d.Get(String("count"))
	assert.Equal(t, Integer(3), count)
	ratio, _ := d.Get(String("ratio"))
	assert.Equal(t, Real(0.5), ratio)
	nested, _ := d.Get(String("nested"))
	assert.Equal(t, 0, nested.(*Dict).Len(), "null fields are dropped")

	pv, err := ToStructpb(d)
	require.NoError(t, err)
	back := pv.GetStructValue().AsMap()
	assert.Equal(t, 3.0, back["count"])
	assert.Equal(t, "scan", back["name"])
	assert.Equal(t, []any{"a", 1.0}, back["items"])
}

func TestToStructpb_Encodings(t *testing.T) {
	when := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)

	pv, err := ToStructpb(Data("hi"))
	require.NoError(t, err)
	assert.Equal(t, "aGk=", pv.GetStringValue())

	pv, err = ToStructpb(Date(when))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(pv.GetStringValue(), "2024-02-03T04:05:06"))

	pv, err = ToStructpb(nil)
	require.NoError(t, err)
	_, isNull := pv.GetKind().(*structpb.Value_NullValue)
	assert.True(t, isNull)

	d := NewDict()
	d.Set(Integer(1), String("x"))
	_, err = ToStructpb(d)
	require.Error(t, err)
}
