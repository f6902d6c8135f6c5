package geometry

import (
	"github.com/katalvlaran/projective/hvector"
)

// Plane3D is a plane of projective space in dual coordinates
// (u₀ : u₁ : u₂ : u₃): the point (x₀ : x₁ : x₂ : x₃) lies on it iff
// Σ uᵢxᵢ = 0.
type Plane3D struct {
	vec *hvector.HVector
}

// Canonical planes of projective space.
var (
	// PlaneInfinity3D carries every point at infinity: x₀ = 0.
	PlaneInfinity3D = mustPlane3D(1, 0, 0, 0)

	// PlaneXY3D is the affine z = 0 plane.
	PlaneXY3D = mustPlane3D(0, 0, 0, 1)

	// PlaneXZ3D is the affine y = 0 plane.
	PlaneXZ3D = mustPlane3D(0, 0, 1, 0)

	// PlaneYZ3D is the affine x = 0 plane.
	PlaneYZ3D = mustPlane3D(0, 1, 0, 0)
)

// NewPlane3D constructs a plane from 4 dual homogeneous coordinates.
//
// Errors:
//   - ErrCoordinateCount, and the hvector construction taxonomy.
func NewPlane3D(coords ...complex128) (*Plane3D, error) {
	v, err := vectorOf("NewPlane3D", coords3D, coords)
	if err != nil {
		return nil, err
	}

	return &Plane3D{vec: v}, nil
}

// NewPlane3DReal constructs a plane from real dual coordinates.
func NewPlane3DReal(coords ...float64) (*Plane3D, error) {
	return NewPlane3D(realToComplex(coords)...)
}

func mustPlane3D(coords ...complex128) *Plane3D {
	u, err := NewPlane3D(coords...)
	if err != nil {
		panic(err)
	}

	return u
}

// Vector returns the underlying homogeneous vector.
func (u *Plane3D) Vector() *hvector.HVector { return u.vec }

// Equals reports equality up to a complex scale factor.
func (u *Plane3D) Equals(other *Plane3D) bool {
	return other != nil && u.vec.Equals(other.vec)
}

// Meet returns the line of intersection of u and w via the dual Plücker
// product, or nil when the planes coincide.
func (u *Plane3D) Meet(w *Plane3D) *Line3D {
	if w == nil || u.vec.Equals(w.vec) {
		return nil
	}
	// The Plücker formula on plane coordinates yields the planewise line
	// coordinates; the permutation dual restores the pointwise ones.
	l, err := newLine3DFromPointwise(dualPermutation(pluckerJoin(u.vec, w.vec)))
	if err != nil {
		return nil
	}

	return l
}

// MeetPoint returns the common point of three planes, or nil when the
// planes are coaxial (or two coincide).
func (u *Plane3D) MeetPoint(w, t *Plane3D) *Point3D {
	line := u.Meet(w)
	if line == nil {
		return nil
	}

	return line.MeetPlane(t)
}

// Contains reports whether p lies on u.
func (u *Plane3D) Contains(p *Point3D) bool {
	return p != nil && p.IsOn(u)
}

// String renders the dual coordinate tuple.
func (u *Plane3D) String() string { return u.vec.String() }
