package plist

// Set is a mutable unordered collection of unique values, compared with
// Equal. The zero value is an empty set ready to use. A nil *Set reads as
// empty.
type Set struct {
	members map[hashKey]struct{}
	order   []Value
}

// NewSet returns a set holding the given values. Duplicates collapse and
// nil values are skipped.
func NewSet(values ...Value) *Set {
	s := &Set{members: make(map[hashKey]struct{}, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (*Set) Kind() Kind { return KindSet }
func (*Set) isValue()   {}

// Len returns the number of members.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Add inserts v unless an equal member is already present.
func (s *Set) Add(v Value) {
	if v == nil {
		return
	}
	if s.members == nil {
		s.members = make(map[hashKey]struct{})
	}
	hk := keyOf(v)
	if _, ok := s.members[hk]; ok {
		return
	}
	s.members[hk] = struct{}{}
	s.order = append(s.order, v)
}

// Contains reports whether an equal member is present.
func (s *Set) Contains(v Value) bool {
	if s == nil || v == nil {
		return false
	}
	_, ok := s.members[keyOf(v)]
	return ok
}

// Remove deletes the member equal to v, if any.
func (s *Set) Remove(v Value) {
	if s == nil || v == nil {
		return
	}
	hk := keyOf(v)
	if _, ok := s.members[hk]; !ok {
		return
	}
	delete(s.members, hk)
	for i, o := range s.order {
		if keyOf(o) == hk {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Values returns the members. The order is unspecified.
func (s *Set) Values() []Value {
	out := make([]Value, 0, s.Len())
	if s == nil {
		return out
	}
	return append(out, s.order...)
}
