package access

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/plistkit/plist"
	"github.com/zero-day-ai/plistkit/prefs"
)

func sampleDict() *plist.Dict {
	return plist.DictOf(map[string]plist.Value{
		"Count":    plist.Integer(42),
		"Big":      plist.Integer(100000),
		"Negative": plist.Real(-5),
		"Ratio":    plist.String("0.75"),
		"Level":    plist.String("200"),
		"Verbose":  plist.String("YES"),
		"Quiet":    plist.String("Off"),
		"Maybe":    plist.String("maybe"),
		"Name":     plist.String("primary"),
		"Hosts":    plist.NewArray(plist.String("a"), plist.String("b"), plist.String("a")),
		"Blob":     plist.Data([]byte{1, 2}),
		"When":     plist.Date(time.Unix(1700000000, 0).UTC()),
		"Nested":   plist.NewDict(),
	})
}

func TestAccessor_Integers(t *testing.T) {
	a := ForStringDict(sampleDict())

	assert.Equal(t, 42, a.Int("Count"))
	assert.Equal(t, int8(127), a.Int8("Level"))
	assert.Equal(t, int8(127), a.Int8("Big"))
	assert.Equal(t, int16(32767), a.Int16("Big"))
	assert.Equal(t, int32(100000), a.Int32("Big"))
	assert.Equal(t, int64(-5), a.Int64("Negative"))
	assert.Equal(t, uint(0), a.Uint("Negative"))
	assert.Equal(t, uint8(200), a.Uint8("Level"))
	assert.Equal(t, uint16(65535), a.Uint16("Big"))
	assert.Equal(t, uint32(42), a.Uint32("Count"))
	assert.Equal(t, uint64(42), a.Uint64("Count"))

	// Absent and uncoercible locations.
	assert.Equal(t, 0, a.Int("Missing"))
	assert.Equal(t, -1, a.IntOr("Missing", -1))
	assert.Equal(t, int8(-3), a.Int8Or("Name", -3))
	assert.Equal(t, int16(9), a.Int16Or("Hosts", 9))
	assert.Equal(t, int32(7), a.Int32Or("Missing", 7))
	assert.Equal(t, int64(math.MinInt64), a.Int64Or("Missing", math.MinInt64))
	assert.Equal(t, uint(3), a.UintOr("Missing", 3))
	assert.Equal(t, uint8(4), a.Uint8Or("Missing", 4))
	assert.Equal(t, uint16(5), a.Uint16Or("Missing", 5))
	assert.Equal(t, uint32(6), a.Uint32Or("Missing", 6))
	assert.Equal(t, uint64(math.MaxUint64), a.Uint64Or("Missing", math.MaxUint64))
}

func TestAccessor_BoolAndFloat(t *testing.T) {
	a := ForStringDict(sampleDict())

	assert.True(t, a.Bool("Verbose"))
	assert.False(t, a.BoolOr("Quiet", true))
	assert.True(t, a.BoolOr("Maybe", true))
	assert.True(t, a.Bool("Count"))
	assert.False(t, a.Bool("Missing"))

	assert.Equal(t, 0.75, a.Float64("Ratio"))
	assert.Equal(t, float32(0.75), a.Float32("Ratio"))
	assert.Equal(t, 2.5, a.Float64Or("Name", 2.5))
	assert.Equal(t, float32(1.5), a.Float32Or("Missing", 1.5))
}

func TestAccessor_NonNegative(t *testing.T) {
	a := ForStringDict(sampleDict())

	assert.Equal(t, 0.0, a.NonNegativeFloat64Or("Negative", 1))
	assert.Equal(t, -3.0, a.NonNegativeFloat64Or("Missing", -3))
	assert.Equal(t, 42.0, a.NonNegativeFloat64("Count"))
	assert.Equal(t, float32(0), a.NonNegativeFloat32Or("Negative", 1))
	assert.Equal(t, float32(-3), a.NonNegativeFloat32Or("Missing", -3))
	assert.Equal(t, float32(0), a.NonNegativeFloat32("Missing"))
}

func TestAccessor_Objects(t *testing.T) {
	a := ForStringDict(sampleDict())

	assert.Equal(t, "primary", a.String("Name"))
	assert.Equal(t, "42", a.String("Count"))
	assert.Equal(t, "none", a.StringOr("Hosts", "none"))
	assert.Equal(t, "", a.String("Missing"))

	require.NotNil(t, a.Array("Hosts"))
	assert.Equal(t, 3, a.Array("Hosts").Len())
	assert.Nil(t, a.Array("Name"))
	assert.NotNil(t, a.Dict("Nested"))
	assert.Nil(t, a.Dict("Hosts"))

	hosts := a.Set("Hosts")
	require.NotNil(t, hosts)
	assert.Equal(t, 2, hosts.Len())
	assert.True(t, hosts.Contains(plist.String("a")))

	assert.Equal(t, []byte{1, 2}, a.Data("Blob"))
	assert.Nil(t, a.Data("Name"))
	assert.Equal(t, int64(1700000000), a.Date("When").Unix())
	assert.True(t, a.Date("Name").IsZero())

	assert.Equal(t, plist.String("primary"), a.Object("Name"))
	assert.Nil(t, a.Object("Missing"))
	assert.True(t, a.Has("Name"))
	assert.False(t, a.Has("Missing"))
}

// Absent locations return the caller's default itself, not a copy.
func TestAccessor_DefaultIdentity(t *testing.T) {
	a := ForStringDict(sampleDict())

	defArray := plist.NewArray(plist.Integer(1))
	defDict := plist.NewDict()
	defSet := plist.NewSet()
	defObject := plist.String("fallback")

	for _, key := range []string{"Missing", "Name"} {
		assert.Same(t, defArray, a.ArrayOr(key, defArray), key)
		assert.Same(t, defDict, a.DictOr(key, defDict), key)
		assert.Same(t, defSet, a.SetOr(key, defSet), key)
	}
	assert.Equal(t, defObject, a.ObjectOr("Missing", defObject))

	defData := []byte{9}
	got := a.DataOr("Missing", defData)
	assert.Same(t, &defData[0], &got[0])
}

// A string where a container is expected yields the default.
func TestAccessor_TypeMismatch(t *testing.T) {
	a := ForStringDict(sampleDict())
	def := plist.NewArray()

	assert.NotPanics(t, func() {
		assert.Same(t, def, a.ArrayOr("Name", def))
		assert.Nil(t, a.Set("Name"))
	})
}

func TestObjectOf(t *testing.T) {
	a := ForStringDict(sampleDict())

	assert.NotNil(t, ObjectOf[*plist.Dict](a, "Nested"))
	assert.Nil(t, ObjectOf[*plist.Dict](a, "Name"))

	d, ok := ObjectOfOr[plist.Describer](a, "Count", nil).(plist.Integer)
	require.True(t, ok)
	assert.Equal(t, plist.Integer(42), d)
	assert.Nil(t, ObjectOf[plist.Describer](a, "Hosts"))

	def := plist.String("x")
	assert.Equal(t, def, ObjectOfOr[plist.String](a, "Missing", def))
}

func TestForArray(t *testing.T) {
	arr := plist.NewArray(plist.Integer(1), plist.String("2"), plist.Real(3.9))
	a := ForArray(arr)

	assert.Equal(t, 1, a.Int(0))
	assert.Equal(t, 2, a.Int(1))
	assert.Equal(t, 3, a.Int(2))
	assert.Equal(t, 7, a.IntOr(5, 7))
	assert.Equal(t, 7, a.IntOr(-1, 7))

	t.Run("checked element access", func(t *testing.T) {
		def := plist.String("D")
		assert.Equal(t, def, a.ObjectNoThrowOr(5, def))
		assert.Nil(t, a.ObjectNoThrow(3))
		assert.Equal(t, plist.Integer(1), a.ObjectNoThrow(0))
	})

	t.Run("raw element access panics out of range", func(t *testing.T) {
		assert.Equal(t, plist.Real(3.9), a.Object(2))
		assert.Equal(t, plist.Real(3.9), a.ObjectOr(2, plist.String("D")))
		assert.Panics(t, func() { a.ObjectOr(5, plist.String("D")) })
		assert.Panics(t, func() { a.Object(-1) })
	})

	t.Run("typed objects are bounds safe", func(t *testing.T) {
		assert.Equal(t, plist.String("2"), ObjectOf[plist.String](a, 1))
		assert.Equal(t, plist.String(""), ObjectOf[plist.String](a, 9))
	})

	t.Run("nil array reads as empty", func(t *testing.T) {
		empty := ForArray(nil)
		assert.Equal(t, 4, empty.IntOr(0, 4))
		assert.Nil(t, empty.ObjectNoThrow(0))
		assert.Panics(t, func() { empty.Object(0) })
	})
}

func TestForDict(t *testing.T) {
	d := plist.NewDict()
	d.Set(plist.Integer(1), plist.String("one"))
	d.Set(plist.String("k"), plist.Bool(true))
	a := ForDict(d)

	assert.Equal(t, "one", a.String(plist.Integer(1)))
	assert.Equal(t, "one", a.String(plist.Real(1)))
	assert.True(t, a.Bool(plist.String("k")))
	assert.Equal(t, "none", a.StringOr(plist.Integer(2), "none"))
	assert.Equal(t, "none", a.StringOr(nil, "none"))

	assert.Equal(t, 5, ForDict(nil).IntOr(plist.String("k"), 5))
}

func TestNew_NilLookup(t *testing.T) {
	a := New[string](nil)
	assert.Equal(t, 3, a.IntOr("x", 3))
	assert.False(t, a.Has("x"))
}

// failingGetter reports a backend failure for every key.
type failingGetter struct{}

func (failingGetter) Get(context.Context, string) (plist.Value, error) {
	return nil, errors.New("connection reset")
}

func TestForStore(t *testing.T) {
	ctx := context.Background()
	store := prefs.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "MaxRetries", plist.String("5")))
	require.NoError(t, store.Set(ctx, "Level", plist.Integer(300)))

	a := ForStore(ctx, store)
	assert.Equal(t, 5, a.IntOr("MaxRetries", 3))
	assert.Equal(t, int8(127), a.Int8("Level"))
	assert.Equal(t, 3, a.IntOr("Missing", 3))

	t.Run("backend errors fall back to the default", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		a := ForStoreWithLogger(ctx, failingGetter{}, logger)
		assert.Equal(t, 3, a.IntOr("MaxRetries", 3))
		assert.Contains(t, buf.String(), "component=access")
		assert.Contains(t, buf.String(), "key=MaxRetries")
	})

	t.Run("missing keys are not logged", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		a := ForStoreWithLogger(ctx, store, logger)
		assert.True(t, a.BoolOr("Missing", true))
		assert.Empty(t, buf.String())
	})

	t.Run("registered defaults", func(t *testing.T) {
		layered := prefs.WithDefaults(store, map[string]plist.Value{
			"Verbose": plist.String("on"),
		})
		assert.True(t, ForStore(ctx, layered).Bool("Verbose"))
	})

	t.Run("nil store", func(t *testing.T) {
		assert.Equal(t, 2, ForStore(ctx, nil).IntOr("x", 2))
	})
}
