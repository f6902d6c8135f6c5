package paramlist

import "iter"

// Entry is a single (optional parameter, value) pair.
type Entry[T any] struct {
	param    complex128
	hasParam bool
	value    T
}

// Value returns the stored value.
func (e Entry[T]) Value() T { return e.value }

// Param returns the generation parameter and whether one was recorded.
func (e Entry[T]) Param() (complex128, bool) { return e.param, e.hasParam }

// ParameterList pairs a generation function ƒ: complex → T with the
// ordered entries accumulated so far. The zero value is not usable;
// construct with New.
type ParameterList[T any] struct {
	gen     func(complex128) T
	entries []Entry[T]
}

// New creates an empty list backed by gen. A nil gen is allowed for
// value-only lists; AppendAt then fails with ErrNoGenerator.
func New[T any](gen func(complex128) T) *ParameterList[T] {
	return &ParameterList[T]{gen: gen}
}

// Append records a value without a parameter.
func (l *ParameterList[T]) Append(value T) {
	l.entries = append(l.entries, Entry[T]{value: value})
}

// AppendAt evaluates the generator at param, records (param, value) and
// returns the produced value.
//
// Errors:
//   - ErrNoGenerator when the list carries no generation function.
func (l *ParameterList[T]) AppendAt(param complex128) (T, error) {
	if l.gen == nil {
		var zero T

		return zero, ErrNoGenerator
	}
	value := l.gen(param)
	l.entries = append(l.entries, Entry[T]{param: param, hasParam: true, value: value})

	return value, nil
}

// Len returns the number of entries.
func (l *ParameterList[T]) Len() int { return len(l.entries) }

// Entry returns the i-th entry in insertion order.
//
// Errors:
//   - ErrOutOfRange.
func (l *ParameterList[T]) Entry(i int) (Entry[T], error) {
	if i < 0 || i >= len(l.entries) {
		return Entry[T]{}, ErrOutOfRange
	}

	return l.entries[i], nil
}

// All iterates the entries in insertion order. The sequence is finite
// and restartable; iteration has no side effects.
func (l *ParameterList[T]) All() iter.Seq2[int, Entry[T]] {
	return func(yield func(int, Entry[T]) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Chain derives a new list whose generator is g∘ƒ and whose entries are
// the images of l's entries under g, parameters preserved.
//
// Complexity: O(n).
func Chain[T, U any](l *ParameterList[T], g func(T) U) *ParameterList[U] {
	out := &ParameterList[U]{}
	if l.gen != nil {
		gen := l.gen // capture for the closure, not the list
		out.gen = func(z complex128) U { return g(gen(z)) }
	}
	out.entries = make([]Entry[U], len(l.entries))
	for i, e := range l.entries {
		out.entries[i] = Entry[U]{param: e.param, hasParam: e.hasParam, value: g(e.value)}
	}

	return out
}
