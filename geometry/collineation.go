// Package geometry - collineations of the projective spaces.
//
// A collineation is an incidence-preserving, duality-preserving map:
// points go to points, hyperplanes to hyperplanes, and a point on a
// hyperplane stays on its image. Pointwise coordinates transform by the
// matrix itself, hyperplanewise ones by its inverse-transpose.

package geometry

import (
	"fmt"
	"iter"
	"sync"

	"github.com/katalvlaran/projective/cmatrix"
)

// Collineation1D is a projectivity of the projective line.
type Collineation1D struct {
	proj projectivity
}

// NewCollineation1D constructs a collineation of the line from an
// explicit 2×2 matrix read under the declared coordinate type.
//
// Errors:
//   - ErrNilArgument, ErrMatrixShape, ErrSingularMatrix.
func NewCollineation1D(m *cmatrix.Dense, ct CoordinateType) (*Collineation1D, error) {
	p, err := newProjectivity(m, ct, coords1D)
	if err != nil {
		return nil, fmt.Errorf("NewCollineation1D: %w", err)
	}

	return &Collineation1D{proj: p}, nil
}

// NewCollineation1DFromPairs constructs the unique collineation sending
// three elements onto three elements, order-matched. Both triples must
// be pairwise distinct (general position on a line).
//
// Errors:
//   - ErrCorrespondenceCount, ErrNilArgument.
//   - hvector.ErrDependentVectors on a degenerate triple.
func NewCollineation1DFromPairs(pre, img []*Element1D) (*Collineation1D, error) {
	pv, err := vectorsOf(pre)
	if err != nil {
		return nil, fmt.Errorf("NewCollineation1DFromPairs: %w", err)
	}
	iv, err := vectorsOf(img)
	if err != nil {
		return nil, fmt.Errorf("NewCollineation1DFromPairs: %w", err)
	}
	p, err := fromCorrespondences(pv, iv, coords1D)
	if err != nil {
		return nil, fmt.Errorf("NewCollineation1DFromPairs: %w", err)
	}

	return &Collineation1D{proj: p}, nil
}

// Matrix returns a copy of the pointwise action matrix.
func (t *Collineation1D) Matrix() *cmatrix.Dense { return t.proj.Matrix() }

// Map returns the image of e, or nil when e is nil.
func (t *Collineation1D) Map(e *Element1D) *Element1D {
	if e == nil {
		return nil
	}
	img := t.proj.mapVector(e.vec, Pointwise)
	if img == nil {
		return nil
	}

	return &Element1D{vec: img}
}

// MapElements lifts Map over a lazy element sequence.
func (t *Collineation1D) MapElements(seq iter.Seq[*Element1D]) iter.Seq[*Element1D] {
	return mapSeq(seq, t.Map)
}

// Collineation2D is a projectivity of the projective plane.
type Collineation2D struct {
	proj projectivity
}

// NewCollineation2D constructs a collineation of the plane from an
// explicit 3×3 matrix read under the declared coordinate type.
//
// Errors:
//   - ErrNilArgument, ErrMatrixShape, ErrSingularMatrix.
func NewCollineation2D(m *cmatrix.Dense, ct CoordinateType) (*Collineation2D, error) {
	p, err := newProjectivity(m, ct, coords2D)
	if err != nil {
		return nil, fmt.Errorf("NewCollineation2D: %w", err)
	}

	return &Collineation2D{proj: p}, nil
}

// NewCollineation2DFromPoints constructs the unique collineation sending
// four points onto four points, order-matched. Each quadruple must be in
// general position (no three collinear).
//
// Errors:
//   - ErrCorrespondenceCount, ErrNilArgument.
//   - hvector.ErrDependentVectors on a degenerate quadruple.
func NewCollineation2DFromPoints(pre, img []*Point2D) (*Collineation2D, error) {
	pv, err := vectorsOf(pre)
	if err != nil {
		return nil, fmt.Errorf("NewCollineation2DFromPoints: %w", err)
	}
	iv, err := vectorsOf(img)
	if err != nil {
		return nil, fmt.Errorf("NewCollineation2DFromPoints: %w", err)
	}
	p, err := fromCorrespondences(pv, iv, coords2D)
	if err != nil {
		return nil, fmt.Errorf("NewCollineation2DFromPoints: %w", err)
	}

	return &Collineation2D{proj: p}, nil
}

// Matrix returns a copy of the pointwise action matrix.
func (t *Collineation2D) Matrix() *cmatrix.Dense { return t.proj.Matrix() }

// MapPoint returns the image of p, or nil when p is nil.
func (t *Collineation2D) MapPoint(p *Point2D) *Point2D {
	if p == nil {
		return nil
	}
	img := t.proj.mapVector(p.vec, Pointwise)
	if img == nil {
		return nil
	}

	return &Point2D{vec: img}
}

// MapLine returns the image of l under the dual (inverse-transpose)
// action, or nil when l is nil.
func (t *Collineation2D) MapLine(l *Line2D) *Line2D {
	if l == nil {
		return nil
	}
	img := t.proj.mapVector(l.vec, Hyperplanewise)
	if img == nil {
		return nil
	}

	return &Line2D{vec: img}
}

// MapPoints lifts MapPoint over a lazy point sequence.
func (t *Collineation2D) MapPoints(seq iter.Seq[*Point2D]) iter.Seq[*Point2D] {
	return mapSeq(seq, t.MapPoint)
}

// MapLines lifts MapLine over a lazy line sequence.
func (t *Collineation2D) MapLines(seq iter.Seq[*Line2D]) iter.Seq[*Line2D] {
	return mapSeq(seq, t.MapLine)
}

// Collineation3D is a projectivity of projective space. Beyond points
// and planes it carries an induced action on Plücker line coordinates,
// derived lazily from the point matrix.
type Collineation3D struct {
	proj projectivity

	onceLine sync.Once
	mLine    *cmatrix.Dense
}

// NewCollineation3D constructs a collineation of space from an explicit
// 4×4 matrix read under the declared coordinate type.
//
// Errors:
//   - ErrNilArgument, ErrMatrixShape, ErrSingularMatrix.
func NewCollineation3D(m *cmatrix.Dense, ct CoordinateType) (*Collineation3D, error) {
	p, err := newProjectivity(m, ct, coords3D)
	if err != nil {
		return nil, fmt.Errorf("NewCollineation3D: %w", err)
	}

	return &Collineation3D{proj: p}, nil
}

// NewCollineation3DFromPoints constructs the unique collineation sending
// five points onto five points, order-matched. Each quintuple must be in
// general position (no four coplanar).
//
// Errors:
//   - ErrCorrespondenceCount, ErrNilArgument.
//   - hvector.ErrDependentVectors on a degenerate quintuple.
func NewCollineation3DFromPoints(pre, img []*Point3D) (*Collineation3D, error) {
	pv, err := vectorsOf(pre)
	if err != nil {
		return nil, fmt.Errorf("NewCollineation3DFromPoints: %w", err)
	}
	iv, err := vectorsOf(img)
	if err != nil {
		return nil, fmt.Errorf("NewCollineation3DFromPoints: %w", err)
	}
	p, err := fromCorrespondences(pv, iv, coords3D)
	if err != nil {
		return nil, fmt.Errorf("NewCollineation3DFromPoints: %w", err)
	}

	return &Collineation3D{proj: p}, nil
}

// Matrix returns a copy of the pointwise action matrix.
func (t *Collineation3D) Matrix() *cmatrix.Dense { return t.proj.Matrix() }

// MapPoint returns the image of p, or nil when p is nil.
func (t *Collineation3D) MapPoint(p *Point3D) *Point3D {
	if p == nil {
		return nil
	}
	img := t.proj.mapVector(p.vec, Pointwise)
	if img == nil {
		return nil
	}

	return &Point3D{vec: img}
}

// MapPlane returns the image of u under the dual (inverse-transpose)
// action, or nil when u is nil.
func (t *Collineation3D) MapPlane(u *Plane3D) *Plane3D {
	if u == nil {
		return nil
	}
	img := t.proj.mapVector(u.vec, Hyperplanewise)
	if img == nil {
		return nil
	}

	return &Plane3D{vec: img}
}

// lineMatrix assembles the induced 6×6 action on pointwise Plücker
// coordinates: the Plücker product is bilinear, so the image of the
// basis line spanned by canonical points eᵢ, eⱼ is the join of the
// matrix columns i and j. Columns follow the fixed coordinate ordering
// (g₀₁, g₀₂, g₀₃, g₂₃, g₃₁, g₁₂). Memoized per instance.
func (t *Collineation3D) lineMatrix() *cmatrix.Dense {
	t.onceLine.Do(func() {
		m := t.proj.mat
		col := func(j int) []complex128 {
			c, err := m.Column(j)
			if err != nil {
				panic(err)
			}

			return c
		}
		cols := [][]complex128{col(0), col(1), col(2), col(3)}
		pairs := [coords6D][2]int{{0, 1}, {0, 2}, {0, 3}, {2, 3}, {3, 1}, {1, 2}}
		lineCols := make([][]complex128, coords6D)
		for k, ij := range pairs {
			lineCols[k] = pluckerOf(cols[ij[0]], cols[ij[1]])
		}
		lm, err := cmatrix.FromColumns(lineCols)
		if err != nil {
			panic(err) // columns of a non-singular map cannot be invalid
		}
		t.mLine = lm
	})

	return t.mLine
}

// LineMatrix returns a copy of the induced 6×6 Plücker action.
func (t *Collineation3D) LineMatrix() *cmatrix.Dense { return t.lineMatrix().Clone() }

// MapLine returns the image of l under the induced Plücker action, or
// nil when l is nil.
func (t *Collineation3D) MapLine(l *Line3D) *Line3D {
	if l == nil {
		return nil
	}
	img, err := l.point.Multiply(t.lineMatrix())
	if err != nil || img == nil {
		return nil
	}
	line, err := newLine3DFromPointwise(img.Coordinates())
	if err != nil {
		return nil
	}

	return line
}

// MapComplex returns the image of the linear complex c under the same
// induced Plücker action; a collineation carries null polarities onto
// null polarities.
func (t *Collineation3D) MapComplex(c *LinearComplex) *LinearComplex {
	if c == nil {
		return nil
	}
	img, err := c.point.Multiply(t.lineMatrix())
	if err != nil || img == nil {
		return nil
	}

	return newComplexFromVector(img)
}

// MapPoints lifts MapPoint over a lazy point sequence.
func (t *Collineation3D) MapPoints(seq iter.Seq[*Point3D]) iter.Seq[*Point3D] {
	return mapSeq(seq, t.MapPoint)
}

// MapPlanes lifts MapPlane over a lazy plane sequence.
func (t *Collineation3D) MapPlanes(seq iter.Seq[*Plane3D]) iter.Seq[*Plane3D] {
	return mapSeq(seq, t.MapPlane)
}

// MapLines lifts MapLine over a lazy line sequence.
func (t *Collineation3D) MapLines(seq iter.Seq[*Line3D]) iter.Seq[*Line3D] {
	return mapSeq(seq, t.MapLine)
}
