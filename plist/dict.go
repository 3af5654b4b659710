package plist

// Dict is a mutable mapping with unique keys. Keys may be any Value and
// are compared with Equal. Iteration follows insertion order. The zero
// value is an empty dictionary ready to use. A nil *Dict reads as empty.
type Dict struct {
	entries map[hashKey]*dictEntry
	order   []*dictEntry
}

type dictEntry struct {
	key   Value
	value Value
}

// NewDict returns an empty dictionary.
func NewDict() *Dict {
	return &Dict{entries: make(map[hashKey]*dictEntry)}
}

// DictOf builds a dictionary from string keys.
func DictOf(m map[string]Value) *Dict {
	d := NewDict()
	for k, v := range m {
		d.Set(String(k), v)
	}
	return d
}

func (*Dict) Kind() Kind { return KindDict }
func (*Dict) isValue()   {}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.order)
}

// Get returns the value stored for key.
func (d *Dict) Get(key Value) (Value, bool) {
	if d == nil || key == nil {
		return nil, false
	}
	e, ok := d.entries[keyOf(key)]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set stores value for key, keeping the original insertion position when
// the key already exists. Setting a nil value deletes the key.
func (d *Dict) Set(key, value Value) {
	if key == nil {
		return
	}
	if value == nil {
		d.Delete(key)
		return
	}
	if d.entries == nil {
		d.entries = make(map[hashKey]*dictEntry)
	}
	hk := keyOf(key)
	if e, ok := d.entries[hk]; ok {
		e.value = value
		return
	}
	e := &dictEntry{key: key, value: value}
	d.entries[hk] = e
	d.order = append(d.order, e)
}

// Delete removes key. Missing keys are ignored.
func (d *Dict) Delete(key Value) {
	if d == nil || key == nil {
		return
	}
	hk := keyOf(key)
	e, ok := d.entries[hk]
	if !ok {
		return
	}
	delete(d.entries, hk)
	for i, o := range d.order {
		if o == e {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []Value {
	keys := make([]Value, 0, d.Len())
	if d == nil {
		return keys
	}
	for _, e := range d.order {
		keys = append(keys, e.key)
	}
	return keys
}

// Range calls fn for each entry in insertion order until fn returns false.
func (d *Dict) Range(fn func(key, value Value) bool) {
	if d == nil {
		return
	}
	for _, e := range d.order {
		if !fn(e.key, e.value) {
			return
		}
	}
}
