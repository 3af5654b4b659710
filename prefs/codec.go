package prefs

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/zero-day-ai/plistkit/plist"
)

// node is the JSON envelope a value is persisted in. The kind tag keeps
// variants that JSON cannot tell apart (integer vs real, string vs data vs
// date, array vs set) intact across a round trip.
type node struct {
	Kind  string `json:"kind"`
	Value any    `json:"value"`
}

type rawNode struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value"`
}

type entry struct {
	Key   node `json:"key"`
	Value node `json:"value"`
}

type rawEntry struct {
	Key   rawNode `json:"key"`
	Value rawNode `json:"value"`
}

// Marshal encodes v for storage in a backend.
func Marshal(v plist.Value) ([]byte, error) {
	n, err := toNode(v)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}
	return data, nil
}

// Unmarshal decodes bytes produced by Marshal.
func Unmarshal(data []byte) (plist.Value, error) {
	var n rawNode
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("failed to unmarshal value: %w", err)
	}
	return fromNode(n)
}

func toNode(v plist.Value) (node, error) {
	if v == nil {
		return node{}, fmt.Errorf("cannot encode an absent value")
	}
	n := node{Kind: v.Kind().String()}
	switch x := v.(type) {
	case plist.Bool:
		n.Value = bool(x)
	case plist.Integer:
		n.Value = int64(x)
	case plist.Unsigned:
		n.Value = strconv.FormatUint(uint64(x), 10)
	case plist.Real:
		n.Value = strconv.FormatFloat(float64(x), 'g', -1, 64)
	case plist.String:
		n.Value = string(x)
	case plist.Data:
		n.Value = []byte(x)
	case plist.Date:
		n.Value = x.Time().Format(time.RFC3339Nano)
	case *plist.Array:
		items, err := toNodes(x.Values())
		if err != nil {
			return node{}, err
		}
		n.Value = items
	case *plist.Set:
		items, err := toNodes(x.Values())
		if err != nil {
			return node{}, err
		}
		n.Value = items
	case *plist.Dict:
		entries := make([]entry, 0, x.Len())
		var err error
		x.Range(func(k, val plist.Value) bool {
			var e entry
			if e.Key, err = toNode(k); err != nil {
				return false
			}
			if e.Value, err = toNode(val); err != nil {
				return false
			}
			entries = append(entries, e)
			return true
		})
		if err != nil {
			return node{}, err
		}
		n.Value = entries
	default:
		return node{}, fmt.Errorf("cannot encode value of kind %s", v.Kind())
	}
	return n, nil
}

func toNodes(values []plist.Value) ([]node, error) {
	out := make([]node, 0, len(values))
	for _, v := range values {
		n, err := toNode(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func fromNode(n rawNode) (plist.Value, error) {
	kind := plist.ParseKind(n.Kind)
	switch kind {
	case plist.KindBool:
		var b bool
		if err := json.Unmarshal(n.Value, &b); err != nil {
			return nil, decodeErr(kind, err)
		}
		return plist.Bool(b), nil
	case plist.KindInteger:
		var i int64
		if err := json.Unmarshal(n.Value, &i); err != nil {
			return nil, decodeErr(kind, err)
		}
		return plist.Integer(i), nil
	case plist.KindUnsigned:
		s, err := decodeString(n)
		if err != nil {
			return nil, err
		}
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		return plist.Unsigned(u), nil
	case plist.KindReal:
		s, err := decodeString(n)
		if err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		return plist.Real(f), nil
	case plist.KindString:
		s, err := decodeString(n)
		if err != nil {
			return nil, err
		}
		return plist.String(s), nil
	case plist.KindData:
		var b []byte
		if err := json.Unmarshal(n.Value, &b); err != nil {
			return nil, decodeErr(kind, err)
		}
		return plist.Data(b), nil
	case plist.KindDate:
		s, err := decodeString(n)
		if err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		return plist.Date(t), nil
	case plist.KindArray, plist.KindSet:
		var items []rawNode
		if err := json.Unmarshal(n.Value, &items); err != nil {
			return nil, decodeErr(kind, err)
		}
		values := make([]plist.Value, 0, len(items))
		for _, item := range items {
			v, err := fromNode(item)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		if kind == plist.KindSet {
			return plist.NewSet(values...), nil
		}
		return plist.NewArray(values...), nil
	case plist.KindDict:
		var entries []rawEntry
		if err := json.Unmarshal(n.Value, &entries); err != nil {
			return nil, decodeErr(kind, err)
		}
		d := plist.NewDict()
		for _, e := range entries {
			k, err := fromNode(e.Key)
			if err != nil {
				return nil, err
			}
			v, err := fromNode(e.Value)
			if err != nil {
				return nil, err
			}
			d.Set(k, v)
		}
		return d, nil
	}
	return nil, fmt.Errorf("unknown value kind %q", n.Kind)
}

func decodeString(n rawNode) (string, error) {
	var s string
	if err := json.Unmarshal(n.Value, &s); err != nil {
		return "", decodeErr(plist.ParseKind(n.Kind), err)
	}
	return s, nil
}

func decodeErr(kind plist.Kind, err error) error {
	return fmt.Errorf("failed to decode %s value: %w", kind, err)
}
