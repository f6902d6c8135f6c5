package geometry

import (
	"github.com/katalvlaran/projective/hvector"
	"github.com/katalvlaran/projective/numeric"
)

// coords1D is the coordinate count of the projective line.
const coords1D = 2

// Element1D is an element of the one-dimensional projective space: two
// homogeneous coordinates (x₀ : x₁). First coordinate zero means the
// element at infinity; otherwise x₁/x₀ is its affine coordinate.
type Element1D struct {
	vec *hvector.HVector
}

// Point1D is the point-flavored name of the same type; the projective
// line is self-dual, so there is nothing to distinguish.
type Point1D = Element1D

// Canonical elements of the projective line.
var (
	Origin1D   = mustElement1D(1, 0)
	Infinity1D = mustElement1D(0, 1)
	Unity1D    = mustElement1D(1, 1)
)

// NewElement1D constructs an element from 2 homogeneous coordinates.
//
// Errors:
//   - ErrCoordinateCount, and the hvector construction taxonomy.
func NewElement1D(coords ...complex128) (*Element1D, error) {
	v, err := vectorOf("NewElement1D", coords1D, coords)
	if err != nil {
		return nil, err
	}

	return &Element1D{vec: v}, nil
}

// NewElement1DReal constructs an element from real coordinates.
func NewElement1DReal(coords ...float64) (*Element1D, error) {
	return NewElement1D(realToComplex(coords)...)
}

// mustElement1D backs package-level constants; coordinates are known
// valid at compile time.
func mustElement1D(coords ...complex128) *Element1D {
	e, err := NewElement1D(coords...)
	if err != nil {
		panic(err)
	}

	return e
}

// Vector returns the underlying homogeneous vector.
func (e *Element1D) Vector() *hvector.HVector { return e.vec }

// Equals reports equality up to a complex scale factor.
func (e *Element1D) Equals(other *Element1D) bool {
	return other != nil && e.vec.Equals(other.vec)
}

// AtInfinity reports whether the leading coordinate vanishes.
func (e *Element1D) AtInfinity() bool {
	return numeric.IsZero(e.vec.At(0))
}

// ToAffine returns the affine coordinate x₁/x₀. The second result is
// false for the element at infinity, which has no affine coordinate.
func (e *Element1D) ToAffine() (complex128, bool) {
	if e.AtInfinity() {
		return 0, false
	}

	return e.vec.At(1) / e.vec.At(0), true
}

// IncidentElement returns the unique element incident (dual) to e,
// (−x₁ : x₀).
func (e *Element1D) IncidentElement() *Element1D {
	w, err := hvector.New(-e.vec.At(1), e.vec.At(0))
	if err != nil {
		// e is valid, so its dual is too.
		panic(err)
	}

	return &Element1D{vec: w}
}

// String renders the coordinate tuple.
func (e *Element1D) String() string { return e.vec.String() }
