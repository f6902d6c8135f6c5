package hvector

import "iter"

// Set is an order-preserving collection of HVectors with membership
// decided by Equals (equality up to a complex scale factor). It is a
// thin data holder: linear scans are fine at the set sizes the library
// produces (exclusion lists, correspondence tuples).
type Set struct {
	items []*HVector
}

// NewSet builds a set from the given vectors, dropping duplicates and
// nil entries while preserving first-occurrence order.
func NewSet(vs ...*HVector) *Set {
	s := &Set{}
	for _, v := range vs {
		s.Add(v)
	}

	return s
}

// Add appends v unless an equal element is already present or v is nil.
// It reports whether the set grew.
func (s *Set) Add(v *HVector) bool {
	if v == nil || s.Contains(v) {
		return false
	}
	s.items = append(s.items, v)

	return true
}

// Contains reports whether an element equal to v is present. A nil set
// or nil argument contains nothing.
func (s *Set) Contains(v *HVector) bool {
	if s == nil || v == nil {
		return false
	}
	for _, item := range s.items {
		if item.Equals(v) {
			return true
		}
	}

	return false
}

// Len returns the number of elements.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// At returns the i-th element in insertion order.
func (s *Set) At(i int) *HVector { return s.items[i] }

// All iterates the elements in insertion order.
func (s *Set) All() iter.Seq[*HVector] {
	return func(yield func(*HVector) bool) {
		if s == nil {
			return
		}
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}
