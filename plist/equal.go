package plist

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// hashKey is the comparable identity of a Value. Two values are Equal
// exactly when their hash keys are ==.
type hashKey struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	s    string
}

// Equal reports whether a and b represent the same property-list value.
// Two nil values are equal. All NaN values are equal to each other so that
// NaN behaves like any other dictionary key or set member.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return keyOf(a) == keyOf(b)
}

func keyOf(v Value) hashKey {
	switch x := v.(type) {
	case Bool:
		if x {
			return hashKey{kind: KindBool, i: 1}
		}
		return hashKey{kind: KindBool}
	case Integer:
		return hashKey{kind: KindInteger, i: int64(x)}
	case Unsigned:
		if x <= math.MaxInt64 {
			return hashKey{kind: KindInteger, i: int64(x)}
		}
		return hashKey{kind: KindUnsigned, u: uint64(x)}
	case Real:
		return realKey(float64(x))
	case String:
		return hashKey{kind: KindString, s: string(x)}
	case Data:
		return hashKey{kind: KindData, s: string(x)}
	case Date:
		t := time.Time(x)
		return hashKey{kind: KindDate, i: t.Unix(), u: uint64(t.Nanosecond())}
	case *Array, *Dict, *Set:
		return hashKey{kind: v.Kind(), s: canonical(v)}
	}
	return hashKey{}
}

// realKey folds integral floats onto the integer keys so that 1.0 and 1
// collide. Every NaN maps to one key since NaN != NaN would make the key
// unreachable.
func realKey(f float64) hashKey {
	if math.IsNaN(f) {
		return hashKey{kind: KindReal, s: "NaN"}
	}
	if f == math.Trunc(f) {
		switch {
		case f >= -0x1p63 && f < 0x1p63:
			return hashKey{kind: KindInteger, i: int64(f)}
		case f >= 0x1p63 && f < 0x1p64:
			return hashKey{kind: KindUnsigned, u: uint64(f)}
		}
	}
	return hashKey{kind: KindReal, f: f}
}

// canonical renders a deterministic text form of v used to hash
// containers. Dictionary entries and set members are sorted so that order
// does not affect identity.
func canonical(v Value) string {
	var sb strings.Builder
	writeCanonical(&sb, v)
	return sb.String()
}

func writeCanonical(sb *strings.Builder, v Value) {
	switch x := v.(type) {
	case *Array:
		sb.WriteByte('[')
		for i, item := range x.Values() {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCanonical(sb, item)
		}
		sb.WriteByte(']')
	case *Dict:
		entries := make([]string, 0, x.Len())
		x.Range(func(k, val Value) bool {
			entries = append(entries, canonical(k)+"="+canonical(val))
			return true
		})
		sort.Strings(entries)
		sb.WriteByte('{')
		sb.WriteString(strings.Join(entries, ","))
		sb.WriteByte('}')
	case *Set:
		members := make([]string, 0, x.Len())
		for _, m := range x.Values() {
			members = append(members, canonical(m))
		}
		sort.Strings(members)
		sb.WriteByte('(')
		sb.WriteString(strings.Join(members, ","))
		sb.WriteByte(')')
	default:
		k := keyOf(v)
		sb.WriteString(k.kind.String())
		sb.WriteByte(':')
		switch k.kind {
		case KindString, KindData:
			sb.WriteString(strconv.Quote(k.s))
		case KindUnsigned:
			sb.WriteString(strconv.FormatUint(k.u, 10))
		case KindReal:
			if k.s != "" {
				sb.WriteString(k.s)
				break
			}
			sb.WriteString(strconv.FormatFloat(k.f, 'g', -1, 64))
		case KindDate:
			sb.WriteString(strconv.FormatInt(k.i, 10))
			sb.WriteByte('.')
			sb.WriteString(strconv.FormatUint(k.u, 10))
		default:
			sb.WriteString(strconv.FormatInt(k.i, 10))
		}
	}
}
