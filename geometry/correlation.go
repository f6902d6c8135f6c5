// Package geometry - correlations of the projective spaces.
//
// A correlation is an incidence-preserving, duality-REVERSING map:
// points go to hyperplanes and hyperplanes to points, with collinear
// points landing on coaxial hyperplanes. The matrix consumes pointwise
// coordinates and yields hyperplanewise ones; the reverse direction is
// the inverse-transpose. A correlation equal to its own reverse is a
// polarity (see NewPolaritySphere).

package geometry

import (
	"fmt"
	"iter"
	"sync"

	"github.com/katalvlaran/projective/cmatrix"
)

// Correlation2D is a correlation of the projective plane: points map to
// lines and lines to points.
type Correlation2D struct {
	proj projectivity
}

// NewCorrelation2D constructs a correlation of the plane from an
// explicit 3×3 matrix. Pointwise declares a point→line matrix,
// Hyperplanewise a line→point one.
//
// Errors:
//   - ErrNilArgument, ErrMatrixShape, ErrSingularMatrix.
func NewCorrelation2D(m *cmatrix.Dense, ct CoordinateType) (*Correlation2D, error) {
	p, err := newProjectivity(m, ct, coords2D)
	if err != nil {
		return nil, fmt.Errorf("NewCorrelation2D: %w", err)
	}

	return &Correlation2D{proj: p}, nil
}

// NewCorrelation2DFromPoints constructs the unique correlation sending
// four points onto four lines, order-matched; each family must be in
// general position.
//
// Errors:
//   - ErrCorrespondenceCount, ErrNilArgument.
//   - hvector.ErrDependentVectors on a degenerate family.
func NewCorrelation2DFromPoints(pre []*Point2D, img []*Line2D) (*Correlation2D, error) {
	pv, err := vectorsOf(pre)
	if err != nil {
		return nil, fmt.Errorf("NewCorrelation2DFromPoints: %w", err)
	}
	iv, err := vectorsOf(img)
	if err != nil {
		return nil, fmt.Errorf("NewCorrelation2DFromPoints: %w", err)
	}
	p, err := fromCorrespondences(pv, iv, coords2D)
	if err != nil {
		return nil, fmt.Errorf("NewCorrelation2DFromPoints: %w", err)
	}

	return &Correlation2D{proj: p}, nil
}

// Matrix returns a copy of the point→line matrix.
func (t *Correlation2D) Matrix() *cmatrix.Dense { return t.proj.Matrix() }

// MapPoint returns the image line of p, or nil when p is nil.
func (t *Correlation2D) MapPoint(p *Point2D) *Line2D {
	if p == nil {
		return nil
	}
	img := t.proj.mapVector(p.vec, Pointwise)
	if img == nil {
		return nil
	}

	return &Line2D{vec: img}
}

// MapLine returns the image point of l - the point common to the images
// of all points of l - or nil when l is nil.
func (t *Correlation2D) MapLine(l *Line2D) *Point2D {
	if l == nil {
		return nil
	}
	img := t.proj.mapVector(l.vec, Hyperplanewise)
	if img == nil {
		return nil
	}

	return &Point2D{vec: img}
}

// MapPoints lifts MapPoint over a lazy point sequence.
func (t *Correlation2D) MapPoints(seq iter.Seq[*Point2D]) iter.Seq[*Line2D] {
	return mapSeq(seq, t.MapPoint)
}

// MapLines lifts MapLine over a lazy line sequence.
func (t *Correlation2D) MapLines(seq iter.Seq[*Line2D]) iter.Seq[*Point2D] {
	return mapSeq(seq, t.MapLine)
}

// Correlation3D is a correlation of projective space: points map to
// planes and planes to points. Lines map to lines, but through the
// duality-reversed Plücker action.
type Correlation3D struct {
	proj projectivity

	onceLine sync.Once
	mLine    *cmatrix.Dense
}

// NewCorrelation3D constructs a correlation of space from an explicit
// 4×4 matrix. Pointwise declares a point→plane matrix, Hyperplanewise a
// plane→point one.
//
// Errors:
//   - ErrNilArgument, ErrMatrixShape, ErrSingularMatrix.
func NewCorrelation3D(m *cmatrix.Dense, ct CoordinateType) (*Correlation3D, error) {
	p, err := newProjectivity(m, ct, coords3D)
	if err != nil {
		return nil, fmt.Errorf("NewCorrelation3D: %w", err)
	}

	return &Correlation3D{proj: p}, nil
}

// NewCorrelation3DFromPoints constructs the unique correlation sending
// five points onto five planes, order-matched; each family must be in
// general position.
//
// Errors:
//   - ErrCorrespondenceCount, ErrNilArgument.
//   - hvector.ErrDependentVectors on a degenerate family.
func NewCorrelation3DFromPoints(pre []*Point3D, img []*Plane3D) (*Correlation3D, error) {
	pv, err := vectorsOf(pre)
	if err != nil {
		return nil, fmt.Errorf("NewCorrelation3DFromPoints: %w", err)
	}
	iv, err := vectorsOf(img)
	if err != nil {
		return nil, fmt.Errorf("NewCorrelation3DFromPoints: %w", err)
	}
	p, err := fromCorrespondences(pv, iv, coords3D)
	if err != nil {
		return nil, fmt.Errorf("NewCorrelation3DFromPoints: %w", err)
	}

	return &Correlation3D{proj: p}, nil
}

// Matrix returns a copy of the point→plane matrix.
func (t *Correlation3D) Matrix() *cmatrix.Dense { return t.proj.Matrix() }

// MapPoint returns the image plane of p, or nil when p is nil.
func (t *Correlation3D) MapPoint(p *Point3D) *Plane3D {
	if p == nil {
		return nil
	}
	img := t.proj.mapVector(p.vec, Pointwise)
	if img == nil {
		return nil
	}

	return &Plane3D{vec: img}
}

// MapPlane returns the image point of u, or nil when u is nil.
func (t *Correlation3D) MapPlane(u *Plane3D) *Point3D {
	if u == nil {
		return nil
	}
	img := t.proj.mapVector(u.vec, Hyperplanewise)
	if img == nil {
		return nil
	}

	return &Point3D{vec: img}
}

// lineMatrix assembles the induced 6×6 action on pointwise Plücker
// coordinates. Points of a line map to planes through the image line,
// so the image of the basis line spanned by eᵢ, eⱼ is the MEET of the
// image planes of eᵢ and eⱼ - the dual permutation of their Plücker
// product. Memoized per instance.
func (t *Correlation3D) lineMatrix() *cmatrix.Dense {
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
			lineCols[k] = dualPermutation(pluckerOf(cols[ij[0]], cols[ij[1]]))
		}
		lm, err := cmatrix.FromColumns(lineCols)
		if err != nil {
			panic(err)
		}
		t.mLine = lm
	})

	return t.mLine
}

// LineMatrix returns a copy of the induced 6×6 Plücker action.
func (t *Correlation3D) LineMatrix() *cmatrix.Dense { return t.lineMatrix().Clone() }

// MapLine returns the image line of l, or nil when l is nil.
func (t *Correlation3D) MapLine(l *Line3D) *Line3D {
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
// induced Plücker action.
func (t *Correlation3D) MapComplex(c *LinearComplex) *LinearComplex {
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
func (t *Correlation3D) MapPoints(seq iter.Seq[*Point3D]) iter.Seq[*Plane3D] {
	return mapSeq(seq, t.MapPoint)
}

// MapPlanes lifts MapPlane over a lazy plane sequence.
func (t *Correlation3D) MapPlanes(seq iter.Seq[*Plane3D]) iter.Seq[*Point3D] {
	return mapSeq(seq, t.MapPlane)
}

// MapLines lifts MapLine over a lazy line sequence.
func (t *Correlation3D) MapLines(seq iter.Seq[*Line3D]) iter.Seq[*Line3D] {
	return mapSeq(seq, t.MapLine)
}
