package geometry

import (
	"github.com/katalvlaran/projective/hvector"
)

// Line2D is a line of the projective plane in dual coordinates
// (u₀ : u₁ : u₂): the point (x₀ : x₁ : x₂) lies on it iff
// u₀x₀ + u₁x₁ + u₂x₂ = 0.
type Line2D struct {
	vec *hvector.HVector
}

// Canonical lines of the projective plane.
var (
	// LineInfinity2D carries every point at infinity: x₀ = 0.
	LineInfinity2D = mustLine2D(1, 0, 0)

	// XAxis2D is the affine x-axis: x₂ = 0.
	XAxis2D = mustLine2D(0, 0, 1)

	// YAxis2D is the affine y-axis: x₁ = 0.
	YAxis2D = mustLine2D(0, 1, 0)
)

// NewLine2D constructs a line from 3 dual homogeneous coordinates.
//
// Errors:
//   - ErrCoordinateCount, and the hvector construction taxonomy.
func NewLine2D(coords ...complex128) (*Line2D, error) {
	v, err := vectorOf("NewLine2D", coords2D, coords)
	if err != nil {
		return nil, err
	}

	return &Line2D{vec: v}, nil
}

// NewLine2DReal constructs a line from real dual coordinates.
func NewLine2DReal(coords ...float64) (*Line2D, error) {
	return NewLine2D(realToComplex(coords)...)
}

func mustLine2D(coords ...complex128) *Line2D {
	l, err := NewLine2D(coords...)
	if err != nil {
		panic(err)
	}

	return l
}

// Vector returns the underlying homogeneous vector.
func (l *Line2D) Vector() *hvector.HVector { return l.vec }

// Equals reports equality up to a complex scale factor.
func (l *Line2D) Equals(other *Line2D) bool {
	return other != nil && l.vec.Equals(other.vec)
}

// Meet returns the intersection point of l and m, or nil when the lines
// coincide (the meet is not unique).
func (l *Line2D) Meet(m *Line2D) *Point2D {
	if m == nil || l.vec.Equals(m.vec) {
		return nil
	}
	v, err := hvector.New(cross3(l.vec, m.vec)...)
	if err != nil {
		return nil
	}

	return &Point2D{vec: v}
}

// Contains reports whether p lies on l.
func (l *Line2D) Contains(p *Point2D) bool {
	return p != nil && p.IsOn(l)
}

// String renders the dual coordinate tuple.
func (l *Line2D) String() string { return l.vec.String() }
