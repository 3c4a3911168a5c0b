package common

type Set[T comparable] struct {
	vals map[T]struct{}
}

// NewSet returns a Set populated with vals.
func NewSet[T comparable](vals ...T) Set[T] {
	var s Set[T]
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

func (s *Set[T]) Add(v T) {
	if s.vals == nil {
		s.vals = map[T]struct{}{}
	}
	s.vals[v] = struct{}{}
}

func (s *Set[T]) Contains(v T) bool {
	if s.vals == nil {
		return false
	}
	_, ok := s.vals[v]
	return ok
}

func (s *Set[T]) Len() int {
	return len(s.vals)
}

func (s *Set[T]) Items() []T {
	out := make([]T, 0, len(s.vals))
	for k := range s.vals {
		out = append(out, k)
	}
	return out
}

// Equal reports whether both sets contain exactly the same values.
func (s *Set[T]) Equal(other Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for k := range s.vals {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}
