package geometry

import (
	"fmt"

	"github.com/katalvlaran/projective/hvector"
)

// Line3D is a spatial line: the special case of a linear complex whose
// self-pairing vanishes (the Plücker identity
// g₀₁g₂₃ + g₀₂g₃₁ + g₀₃g₁₂ = 0). It inherits the complex's matrix
// machinery and adds line-specific meets and joins.
type Line3D struct {
	*LinearComplex
}

// Canonical lines of projective space.
var (
	XAxis3D = mustLine3D(1, 0, 0, 0, 0, 0)
	YAxis3D = mustLine3D(0, 1, 0, 0, 0, 0)
	ZAxis3D = mustLine3D(0, 0, 1, 0, 0, 0)
)

// NewLine3D constructs a line from 6 pointwise Plücker coordinates.
//
// Errors:
//   - ErrCoordinateCount, and the hvector construction taxonomy.
//   - ErrNotSpecial when the coordinates violate the Plücker identity —
//     they describe a non-degenerate complex, not a line.
func NewLine3D(coords ...complex128) (*Line3D, error) {
	v, err := vectorOf("NewLine3D", coords6D, coords)
	if err != nil {
		return nil, err
	}
	line := &Line3D{LinearComplex: newComplexFromVector(v)}
	if !line.IsSpecial() {
		return nil, fmt.Errorf("NewLine3D: self-pairing %v: %w", line.SelfPairing(), ErrNotSpecial)
	}

	return line, nil
}

// NewLine3DReal constructs a line from real Plücker coordinates.
func NewLine3DReal(coords ...float64) (*Line3D, error) {
	return NewLine3D(realToComplex(coords)...)
}

// newLine3DFromPointwise wraps an already-computed pointwise tuple
// (Plücker product output); the special check still applies.
func newLine3DFromPointwise(coords []complex128) (*Line3D, error) {
	v, err := hvector.New(coords...)
	if err != nil {
		return nil, err
	}
	line := &Line3D{LinearComplex: newComplexFromVector(v)}
	if !line.IsSpecial() {
		return nil, fmt.Errorf("line from product: %w", ErrNotSpecial)
	}

	return line, nil
}

func mustLine3D(coords ...complex128) *Line3D {
	l, err := NewLine3D(coords...)
	if err != nil {
		panic(err)
	}

	return l
}

// EqualsLine reports equality of lines up to a complex scale factor.
func (l *Line3D) EqualsLine(other *Line3D) bool {
	return other != nil && l.point.Equals(other.point)
}

// MeetPlane returns the point where l pierces the plane u, or nil when
// u contains l (no unique meet).
func (l *Line3D) MeetPlane(u *Plane3D) *Point3D {
	return l.PolarPoint(u)
}

// JoinPoint returns the plane spanned by l and the point p, or nil when
// p lies on l (no unique join).
func (l *Line3D) JoinPoint(p *Point3D) *Plane3D {
	return l.PolarPlane(p)
}

// IsIncidentPoint reports whether p lies on l.
func (l *Line3D) IsIncidentPoint(p *Point3D) bool {
	if p == nil {
		return false
	}
	img, err := p.vec.Multiply(l.MatrixPointToPlane())

	return err == nil && img == nil
}

// IsIncidentPlane reports whether the plane u contains l.
func (l *Line3D) IsIncidentPlane(u *Plane3D) bool {
	if u == nil {
		return false
	}
	img, err := u.vec.Multiply(l.MatrixPlaneToPoint())

	return err == nil && img == nil
}

// IsIncidentLine reports whether l and m are incident (coplanar,
// sharing a point): the mutual Plücker pairing ⟨l, dual(m)⟩ vanishes.
func (l *Line3D) IsIncidentLine(m *Line3D) bool {
	if m == nil {
		return false
	}
	ok, _ := l.point.IsIncident(m.plane)

	return ok
}

// MeetLine returns the common point of two incident lines.
//
// A nil point with a nil error means "no unique common point": the
// lines are skew or equal. The fallback enumeration failing on a
// supposedly incident pair is the fatal ErrCommonElement condition — a
// bug or an unmodeled numerical edge case, never silently swallowed.
func (l *Line3D) MeetLine(m *Line3D) (*Point3D, error) {
	if m == nil || l.EqualsLine(m) || !l.IsIncidentLine(m) {
		return nil, nil
	}

	// Sweep the canonical frame: the join of m with a frame point is a
	// plane through m, and its meet with l is the common point — unless
	// the frame point degenerates (lies on m, or spans a plane
	// containing l).
	for _, x := range []*Point3D{Origin3D, InfinityX3D, InfinityY3D, InfinityZ3D, Unity3D} {
		u := m.JoinPoint(x)
		if u == nil {
			continue
		}
		if pt := l.MeetPlane(u); pt != nil {
			return pt, nil
		}
	}

	return nil, fmt.Errorf("MeetLine(%s, %s): %w", l, m, ErrCommonElement)
}

// JoinLine returns the common plane of two incident lines.
//
// A nil plane with a nil error means the lines are skew or equal; a
// failed enumeration on an incident pair is ErrCommonElement.
func (l *Line3D) JoinLine(m *Line3D) (*Plane3D, error) {
	if m == nil || l.EqualsLine(m) || !l.IsIncidentLine(m) {
		return nil, nil
	}

	for _, u := range []*Plane3D{PlaneInfinity3D, PlaneYZ3D, PlaneXZ3D, PlaneXY3D} {
		x := m.MeetPlane(u)
		if x == nil {
			continue
		}
		if pl := l.JoinPoint(x); pl != nil {
			return pl, nil
		}
	}

	return nil, fmt.Errorf("JoinLine(%s, %s): %w", l, m, ErrCommonElement)
}

// String renders the Plücker coordinate tuple.
func (l *Line3D) String() string {
	return fmt.Sprintf("line%s", l.point.String())
}
