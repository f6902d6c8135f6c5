package geometry

import (
	"math/cmplx"

	"github.com/katalvlaran/projective/hvector"
	"github.com/katalvlaran/projective/numeric"
)

// coords2D is the coordinate count of the projective plane.
const coords2D = 3

// Point2D is a point of the projective plane: three homogeneous
// coordinates (x₀ : x₁ : x₂). First coordinate zero means a point at
// infinity (a pure direction); otherwise (x₁/x₀, x₂/x₀) are its affine
// coordinates.
type Point2D struct {
	vec *hvector.HVector
}

// Canonical points of the projective plane.
var (
	Origin2D    = mustPoint2D(1, 0, 0)
	InfinityX2D = mustPoint2D(0, 1, 0)
	InfinityY2D = mustPoint2D(0, 0, 1)
	Unity2D     = mustPoint2D(1, 1, 1)
)

// NewPoint2D constructs a point from 3 homogeneous coordinates.
//
// Errors:
//   - ErrCoordinateCount, and the hvector construction taxonomy.
func NewPoint2D(coords ...complex128) (*Point2D, error) {
	v, err := vectorOf("NewPoint2D", coords2D, coords)
	if err != nil {
		return nil, err
	}

	return &Point2D{vec: v}, nil
}

// NewPoint2DReal constructs a point from real homogeneous coordinates.
func NewPoint2DReal(coords ...float64) (*Point2D, error) {
	return NewPoint2D(realToComplex(coords)...)
}

// NewPoint2DAffine constructs the finite point (1 : x : y).
func NewPoint2DAffine(x, y complex128) (*Point2D, error) {
	return NewPoint2D(1, x, y)
}

func mustPoint2D(coords ...complex128) *Point2D {
	p, err := NewPoint2D(coords...)
	if err != nil {
		panic(err)
	}

	return p
}

// Vector returns the underlying homogeneous vector.
func (p *Point2D) Vector() *hvector.HVector { return p.vec }

// Equals reports equality up to a complex scale factor.
func (p *Point2D) Equals(other *Point2D) bool {
	return other != nil && p.vec.Equals(other.vec)
}

// AtInfinity reports whether the leading coordinate vanishes.
func (p *Point2D) AtInfinity() bool {
	return numeric.IsZero(p.vec.At(0))
}

// ToAffine returns the affine coordinates (x₁/x₀, x₂/x₀). The second
// result is false for a point at infinity, which has none.
func (p *Point2D) ToAffine() ([]complex128, bool) {
	if p.AtInfinity() {
		return nil, false
	}

	return []complex128{p.vec.At(1) / p.vec.At(0), p.vec.At(2) / p.vec.At(0)}, true
}

// Join returns the line connecting p and q, or nil when the points
// coincide (the join is not unique).
func (p *Point2D) Join(q *Point2D) *Line2D {
	if q == nil || p.vec.Equals(q.vec) {
		return nil
	}
	v, err := hvector.New(cross3(p.vec, q.vec)...)
	if err != nil {
		// Numerically proportional despite the Equals check.
		return nil
	}

	return &Line2D{vec: v}
}

// IsOn reports whether p lies on l.
func (p *Point2D) IsOn(l *Line2D) bool {
	if l == nil {
		return false
	}
	ok, _ := p.vec.IsIncident(l.vec)

	return ok
}

// AsDirection returns the canonical representative of a point at
// infinity: coordinates divided by the first nonzero direction
// component, so any two representations of the same direction compare
// coordinatewise equal with positive leading orientation. A finite
// point has no direction; nil is returned.
func (p *Point2D) AsDirection() *Point2D {
	if !p.AtInfinity() {
		return nil
	}

	return &Point2D{vec: normalizeDirection(p.vec)}
}

// String renders the coordinate tuple.
func (p *Point2D) String() string { return p.vec.String() }

// normalizeDirection rescales an at-infinity vector by its first
// non-negligible coordinate, forcing that coordinate to exactly 1.
func normalizeDirection(v *hvector.HVector) *hvector.HVector {
	coords := v.Coordinates()
	var pivot complex128
	for _, z := range coords {
		if cmplx.Abs(z) > numeric.Epsilon {
			pivot = z

			break
		}
	}
	for i := range coords {
		coords[i] /= pivot
	}
	w, err := hvector.New(coords...)
	if err != nil {
		panic(err) // v is valid, rescaling cannot zero it
	}

	return w
}
