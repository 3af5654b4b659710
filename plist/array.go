package plist

// Array is a mutable ordered sequence of values. The zero value is an
// empty array ready to use. A nil *Array reads as empty.
type Array struct {
	items []Value
}

// NewArray returns an array holding the given values. Nil values are
// skipped.
func NewArray(values ...Value) *Array {
	a := &Array{items: make([]Value, 0, len(values))}
	for _, v := range values {
		a.Append(v)
	}
	return a
}

func (*Array) Kind() Kind { return KindArray }
func (*Array) isValue()   {}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// At returns the element at index i. Like slice indexing it panics when i
// is out of range; use Get for a checked lookup.
func (a *Array) At(i int) Value {
	return a.Values()[i]
}

// Get returns the element at index i and whether i was in range.
func (a *Array) Get(i int) (Value, bool) {
	if i < 0 || i >= a.Len() {
		return nil, false
	}
	return a.items[i], true
}

// Append adds v to the end of the array. A nil v is ignored.
func (a *Array) Append(v Value) {
	if v == nil {
		return
	}
	a.items = append(a.items, v)
}

// Insert places v at index i, shifting later elements up. It panics when
// i < 0 or i > Len. A nil v is ignored.
func (a *Array) Insert(i int, v Value) {
	if i < 0 || i > a.Len() {
		panic("plist: Array.Insert index out of range")
	}
	if v == nil {
		return
	}
	a.items = append(a.items, nil)
	copy(a.items[i+1:], a.items[i:])
	a.items[i] = v
}

// Replace overwrites the element at index i. It panics when i is out of
// range. A nil v is ignored.
func (a *Array) Replace(i int, v Value) {
	if v == nil {
		return
	}
	a.Values()[i] = v
}

// Values returns the backing slice. Callers must not modify it.
func (a *Array) Values() []Value {
	if a == nil {
		return nil
	}
	return a.items
}
