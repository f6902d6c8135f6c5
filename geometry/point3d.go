package geometry

import (
	"github.com/katalvlaran/projective/hvector"
	"github.com/katalvlaran/projective/numeric"
)

// coords3D is the coordinate count of projective space.
const coords3D = 4

// Point3D is a point of projective space: four homogeneous coordinates
// (x₀ : x₁ : x₂ : x₃). First coordinate zero means a point at infinity;
// otherwise (x₁/x₀, x₂/x₀, x₃/x₀) are its affine coordinates.
type Point3D struct {
	vec *hvector.HVector
}

// Canonical points of projective space.
var (
	Origin3D    = mustPoint3D(1, 0, 0, 0)
	InfinityX3D = mustPoint3D(0, 1, 0, 0)
	InfinityY3D = mustPoint3D(0, 0, 1, 0)
	InfinityZ3D = mustPoint3D(0, 0, 0, 1)
	Unity3D     = mustPoint3D(1, 1, 1, 1)
)

// NewPoint3D constructs a point from 4 homogeneous coordinates.
//
// Errors:
//   - ErrCoordinateCount, and the hvector construction taxonomy.
func NewPoint3D(coords ...complex128) (*Point3D, error) {
	v, err := vectorOf("NewPoint3D", coords3D, coords)
	if err != nil {
		return nil, err
	}

	return &Point3D{vec: v}, nil
}

// NewPoint3DReal constructs a point from real homogeneous coordinates.
func NewPoint3DReal(coords ...float64) (*Point3D, error) {
	return NewPoint3D(realToComplex(coords)...)
}

// NewPoint3DAffine constructs the finite point (1 : x : y : z).
func NewPoint3DAffine(x, y, z complex128) (*Point3D, error) {
	return NewPoint3D(1, x, y, z)
}

func mustPoint3D(coords ...complex128) *Point3D {
	p, err := NewPoint3D(coords...)
	if err != nil {
		panic(err)
	}

	return p
}

// Vector returns the underlying homogeneous vector.
func (p *Point3D) Vector() *hvector.HVector { return p.vec }

// Equals reports equality up to a complex scale factor.
func (p *Point3D) Equals(other *Point3D) bool {
	return other != nil && p.vec.Equals(other.vec)
}

// AtInfinity reports whether the leading coordinate vanishes.
func (p *Point3D) AtInfinity() bool {
	return numeric.IsZero(p.vec.At(0))
}

// ToAffine returns the affine coordinates (x₁/x₀, x₂/x₀, x₃/x₀). The
// second result is false for a point at infinity.
func (p *Point3D) ToAffine() ([]complex128, bool) {
	if p.AtInfinity() {
		return nil, false
	}
	w := p.vec.At(0)

	return []complex128{p.vec.At(1) / w, p.vec.At(2) / w, p.vec.At(3) / w}, true
}

// Join returns the line connecting p and q via the Plücker product, or
// nil when the points coincide.
func (p *Point3D) Join(q *Point3D) *Line3D {
	if q == nil || p.vec.Equals(q.vec) {
		return nil
	}
	l, err := newLine3DFromPointwise(pluckerJoin(p.vec, q.vec))
	if err != nil {
		return nil
	}

	return l
}

// JoinPlane returns the plane spanned by p, q and r, or nil when the
// three points are collinear (or two coincide).
func (p *Point3D) JoinPlane(q, r *Point3D) *Plane3D {
	line := p.Join(q)
	if line == nil {
		return nil
	}

	return line.JoinPoint(r)
}

// IsOn reports whether p lies on the plane u.
func (p *Point3D) IsOn(u *Plane3D) bool {
	if u == nil {
		return false
	}
	ok, _ := p.vec.IsIncident(u.vec)

	return ok
}

// AsDirection returns the canonical representative of a point at
// infinity (coordinates divided by the first nonzero direction
// component), or nil for a finite point.
func (p *Point3D) AsDirection() *Point3D {
	if !p.AtInfinity() {
		return nil
	}

	return &Point3D{vec: normalizeDirection(p.vec)}
}

// String renders the coordinate tuple.
func (p *Point3D) String() string { return p.vec.String() }
