package geometry

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/projective/cmatrix"
	"github.com/katalvlaran/projective/hvector"
	"github.com/katalvlaran/projective/numeric"
)

// coords6D is the coordinate count of a linear complex.
const coords6D = 6

// LinearComplex is a 6-coordinate object generalizing a spatial line:
// a null polarity of projective space. It simultaneously carries a
// pointwise coordinate vector (g₀₁, g₀₂, g₀₃, g₂₃, g₃₁, g₁₂) and its
// planewise dual, each the {0↔3, 1↔4, 2↔5} permutation of the other.
//
// When the self-pairing ⟨pointwise, planewise⟩ vanishes, the complex is
// special and represents an actual spatial line (see Line3D); otherwise
// it is a non-degenerate null polarity with a well-defined pitch and
// axis (a helical screw).
type LinearComplex struct {
	point *hvector.HVector // pointwise coordinates
	plane *hvector.HVector // planewise dual

	// Memoized antisymmetric matrix representations, one per instance.
	oncePointToPlane sync.Once
	oncePlaneToPoint sync.Once
	mPointToPlane    *cmatrix.Dense
	mPlaneToPoint    *cmatrix.Dense
}

// NewLinearComplex constructs a complex from 6 pointwise coordinates.
//
// Errors:
//   - ErrCoordinateCount, and the hvector construction taxonomy.
func NewLinearComplex(coords ...complex128) (*LinearComplex, error) {
	v, err := vectorOf("NewLinearComplex", coords6D, coords)
	if err != nil {
		return nil, err
	}

	return newComplexFromVector(v), nil
}

// NewLinearComplexReal constructs a complex from real coordinates.
func NewLinearComplexReal(coords ...float64) (*LinearComplex, error) {
	return NewLinearComplex(realToComplex(coords)...)
}

// newComplexFromVector derives the planewise dual from an
// already-validated pointwise vector.
func newComplexFromVector(point *hvector.HVector) *LinearComplex {
	dual, err := hvector.New(dualPermutation(point.Coordinates())...)
	if err != nil {
		// A permutation of a valid nonzero tuple stays valid.
		panic(err)
	}

	return &LinearComplex{point: point, plane: dual}
}

// Vector returns the pointwise coordinate vector.
func (c *LinearComplex) Vector() *hvector.HVector { return c.point }

// Dual returns the planewise coordinate vector.
func (c *LinearComplex) Dual() *hvector.HVector { return c.plane }

// Equals reports equality up to a complex scale factor.
func (c *LinearComplex) Equals(other *LinearComplex) bool {
	return other != nil && c.point.Equals(other.point)
}

// SelfPairing returns the inner product of the pointwise vector with its
// planewise dual, 2(g₀₁g₂₃ + g₀₂g₃₁ + g₀₃g₁₂) — the Plücker quadric
// evaluated on the complex.
func (c *LinearComplex) SelfPairing() complex128 {
	s, err := c.point.Dot(c.plane)
	if err != nil {
		panic(err) // both vectors are 6-dimensional by construction
	}

	return s
}

// IsSpecial reports whether the self-pairing vanishes within precision:
// the complex then represents an actual spatial line.
func (c *LinearComplex) IsSpecial() bool {
	return numeric.IsZero(c.SelfPairing())
}

// antisymmetric4 assembles the 4×4 antisymmetric matrix of a
// 6-coordinate tuple g in the library's fixed ordering.
func antisymmetric4(g []complex128) *cmatrix.Dense {
	m, err := cmatrix.FromRows([][]complex128{
		{0, g[0], g[1], g[2]},
		{-g[0], 0, g[5], -g[4]},
		{-g[1], -g[5], 0, g[3]},
		{-g[2], g[4], -g[3], 0},
	})
	if err != nil {
		panic(err) // shape and finiteness hold by construction
	}

	return m
}

// MatrixPlaneToPoint returns the antisymmetric matrix of the pointwise
// coordinates: applied to a plane it yields the meet of the complex
// (or line) with that plane. Memoized per instance.
func (c *LinearComplex) MatrixPlaneToPoint() *cmatrix.Dense {
	c.oncePlaneToPoint.Do(func() {
		c.mPlaneToPoint = antisymmetric4(c.point.Coordinates())
	})

	return c.mPlaneToPoint
}

// MatrixPointToPlane returns the antisymmetric matrix of the planewise
// coordinates: applied to a point it yields the null plane of that
// point (for a line: the join of line and point). Memoized per
// instance.
func (c *LinearComplex) MatrixPointToPlane() *cmatrix.Dense {
	c.oncePointToPlane.Do(func() {
		c.mPointToPlane = antisymmetric4(c.plane.Coordinates())
	})

	return c.mPointToPlane
}

// PolarPlane returns the null plane of p under the complex: the plane
// carrying all lines of the complex through p. Returns nil when the
// pairing collapses (for a special complex: p lies on the line itself).
func (c *LinearComplex) PolarPlane(p *Point3D) *Plane3D {
	if p == nil {
		return nil
	}
	img, err := p.vec.Multiply(c.MatrixPointToPlane())
	if err != nil || img == nil {
		return nil
	}

	return &Plane3D{vec: img}
}

// PolarPoint returns the null point of the plane u: the point common to
// all lines of the complex inside u. Returns nil when the pairing
// collapses (for a special complex: u contains the line itself).
func (c *LinearComplex) PolarPoint(u *Plane3D) *Point3D {
	if u == nil {
		return nil
	}
	img, err := u.vec.Multiply(c.MatrixPlaneToPoint())
	if err != nil || img == nil {
		return nil
	}

	return &Point3D{vec: img}
}

// Pitch returns the pitch of the helical motion associated with a
// non-special complex: ⟨d,m⟩/⟨d,d⟩ for the direction triple d and
// moment triple m. The second result is false for special complexes and
// for complexes with an isotropic or vanishing direction part.
func (c *LinearComplex) Pitch() (complex128, bool) {
	if c.IsSpecial() {
		return 0, false
	}
	var dd, dm complex128
	for i := 0; i < 3; i++ {
		d := c.point.At(i)
		dd += d * d
		dm += d * c.point.At(i+3)
	}
	if numeric.IsZero(dd) {
		return 0, false
	}

	return dm / dd, true
}

// Axis returns the axis of the helical motion of a non-special complex:
// the unique line with direction d and moment m − pitch·d. The second
// result is false whenever Pitch is undefined.
func (c *LinearComplex) Axis() (*Line3D, bool) {
	pitch, ok := c.Pitch()
	if !ok {
		return nil, false
	}
	coords := make([]complex128, coords6D)
	for i := 0; i < 3; i++ {
		coords[i] = c.point.At(i)
		coords[i+3] = c.point.At(i+3) - pitch*c.point.At(i)
	}
	axis, err := newLine3DFromPointwise(coords)
	if err != nil {
		return nil, false
	}

	return axis, true
}

// String renders the pointwise coordinate tuple.
func (c *LinearComplex) String() string {
	return fmt.Sprintf("complex%s", c.point.String())
}
