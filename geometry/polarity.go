// Package geometry - the polarity of a sphere.

package geometry

import (
	"fmt"
	"math"
)

// NewPolaritySphere constructs the polarity of the sphere with the given
// real finite center and radius: the correlation sending each point to
// its polar plane (for a point on the sphere, the tangent plane there).
// The sphere's center maps to the plane at infinity.
//
// Implementation:
//   - Stage 1: place five independent surface points — three along the
//     coordinate axes, the antipode of the first, and one oblique
//     calibration point along (1,1,1).
//   - Stage 2: pair each with its tangent plane
//     (−(n·c + r²) : n₁ : n₂ : n₃) for the outward normal n.
//   - Stage 3: solve through the five-correspondence path.
//
// Errors:
//   - ErrNilArgument, ErrCenterNotReal, ErrNonPositiveRadius.
func NewPolaritySphere(center *Point3D, radius float64) (*Correlation3D, error) {
	if center == nil {
		return nil, fmt.Errorf("NewPolaritySphere: %w", ErrNilArgument)
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf("NewPolaritySphere: radius %v: %w", radius, ErrNonPositiveRadius)
	}
	if !center.vec.IsReal() {
		return nil, fmt.Errorf("NewPolaritySphere: %w", ErrCenterNotReal)
	}
	aff, ok := center.ToAffine()
	if !ok {
		return nil, fmt.Errorf("NewPolaritySphere: center at infinity: %w", ErrCenterNotReal)
	}
	c := [3]float64{real(aff[0]), real(aff[1]), real(aff[2])}

	// Five outward normals spanning general position on the sphere.
	d := radius / math.Sqrt(3)
	normals := [5][3]float64{
		{radius, 0, 0},
		{0, radius, 0},
		{0, 0, radius},
		{-radius, 0, 0},
		{d, d, d},
	}

	points := make([]*Point3D, len(normals))
	planes := make([]*Plane3D, len(normals))
	for i, n := range normals {
		p, err := NewPoint3DReal(1, c[0]+n[0], c[1]+n[1], c[2]+n[2])
		if err != nil {
			return nil, fmt.Errorf("NewPolaritySphere: %w", err)
		}
		nc := n[0]*c[0] + n[1]*c[1] + n[2]*c[2]
		u, err := NewPlane3DReal(-(nc + radius*radius), n[0], n[1], n[2])
		if err != nil {
			return nil, fmt.Errorf("NewPolaritySphere: %w", err)
		}
		points[i], planes[i] = p, u
	}

	t, err := NewCorrelation3DFromPoints(points, planes)
	if err != nil {
		return nil, fmt.Errorf("NewPolaritySphere: %w", err)
	}

	return t, nil
}
