package geometry_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/projective/cmatrix"
	"github.com/katalvlaran/projective/geometry"
	"github.com/katalvlaran/projective/hvector"
)

// newDense builds a matrix from rows or fails the test.
func newDense(t *testing.T, rows [][]complex128) *cmatrix.Dense {
	t.Helper()
	m, err := cmatrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// translationX2D is the plane collineation (1 : x : y) → (1 : x+1 : y).
func translationX2D(t *testing.T) *cmatrix.Dense {
	t.Helper()

	return newDense(t, [][]complex128{
		{1, 0, 0},
		{1, 1, 0},
		{0, 0, 1},
	})
}

// TestNewCollineation2D_Validation covers the matrix taxonomy: nil,
// wrong shape and singular input.
func TestNewCollineation2D_Validation(t *testing.T) {
	_, err := geometry.NewCollineation2D(nil, geometry.Pointwise)
	assert.ErrorIs(t, err, geometry.ErrNilArgument)

	_, err = geometry.NewCollineation2D(newDense(t, [][]complex128{{1, 0}, {0, 1}}), geometry.Pointwise)
	assert.ErrorIs(t, err, geometry.ErrMatrixShape)

	singular := newDense(t, [][]complex128{
		{1, 2, 3},
		{2, 4, 6},
		{0, 0, 1},
	})
	_, err = geometry.NewCollineation2D(singular, geometry.Pointwise)
	assert.ErrorIs(t, err, geometry.ErrSingularMatrix)
}

// TestCollineation2D_Translation checks the pointwise and the dual
// action of an affine translation, plus incidence preservation.
func TestCollineation2D_Translation(t *testing.T) {
	tr, err := geometry.NewCollineation2D(translationX2D(t), geometry.Pointwise)
	require.NoError(t, err)

	img := tr.MapPoint(geometry.Origin2D)
	require.NotNil(t, img)
	assert.True(t, img.Equals(newP2(t, 1, 1, 0)))

	// The y-axis x = 0 translates onto x = 1.
	lImg := tr.MapLine(geometry.YAxis2D)
	require.NotNil(t, lImg)
	assert.True(t, lImg.Equals(newL2(t, -1, 1, 0)))

	// Incidence survives: a point of the y-axis lands on the image line.
	p := newP2(t, 1, 0, 5)
	require.True(t, p.IsOn(geometry.YAxis2D))
	assert.True(t, tr.MapPoint(p).IsOn(lImg))

	// Directions are untouched by a translation.
	assert.True(t, tr.MapPoint(geometry.InfinityY2D).Equals(geometry.InfinityY2D))
}

// TestCollineation2D_Hyperplanewise reads the same matrix as the line
// action: lines transform by the matrix, points by its
// inverse-transpose.
func TestCollineation2D_Hyperplanewise(t *testing.T) {
	tr, err := geometry.NewCollineation2D(translationX2D(t), geometry.Hyperplanewise)
	require.NoError(t, err)

	lImg := tr.MapLine(newL2(t, 1, 0, 0))
	require.NotNil(t, lImg)
	assert.True(t, lImg.Equals(newL2(t, 1, 1, 0)))

	pImg := tr.MapPoint(newP2(t, 1, 1, 0))
	require.NotNil(t, pImg)
	assert.True(t, pImg.Equals(geometry.InfinityX2D))
}

// TestNewCollineation2DFromPoints solves the translation from four
// correspondences and checks it extends to an unrelated point.
func TestNewCollineation2DFromPoints(t *testing.T) {
	pre := []*geometry.Point2D{geometry.Unity2D, geometry.Origin2D, geometry.InfinityX2D, geometry.InfinityY2D}
	img := []*geometry.Point2D{newP2(t, 1, 2, 1), newP2(t, 1, 1, 0), geometry.InfinityX2D, geometry.InfinityY2D}

	tr, err := geometry.NewCollineation2DFromPoints(pre, img)
	require.NoError(t, err)

	for i := range pre {
		assert.True(t, tr.MapPoint(pre[i]).Equals(img[i]), "correspondence %d", i)
	}
	assert.True(t, tr.MapPoint(newP2(t, 1, 5, 7)).Equals(newP2(t, 1, 6, 7)))
}

// TestNewCollineation2DFromPoints_Degenerate covers the correspondence
// taxonomy: wrong pair count and a collinear triple.
func TestNewCollineation2DFromPoints_Degenerate(t *testing.T) {
	short := []*geometry.Point2D{geometry.Unity2D, geometry.Origin2D, geometry.InfinityX2D}
	_, err := geometry.NewCollineation2DFromPoints(short, short)
	assert.ErrorIs(t, err, geometry.ErrCorrespondenceCount)

	collinear := []*geometry.Point2D{geometry.Unity2D, geometry.Origin2D, geometry.InfinityX2D, newP2(t, 1, 2, 0)}
	_, err = geometry.NewCollineation2DFromPoints(collinear, collinear)
	assert.ErrorIs(t, err, hvector.ErrDependentVectors)

	withNil := []*geometry.Point2D{geometry.Unity2D, geometry.Origin2D, geometry.InfinityX2D, nil}
	_, err = geometry.NewCollineation2DFromPoints(withNil, withNil)
	assert.ErrorIs(t, err, geometry.ErrNilArgument)
}

// TestCollineation1D_Inversion solves z → 1/z from three pairs and
// cross-checks against the explicit coordinate swap matrix.
func TestCollineation1D_Inversion(t *testing.T) {
	swap, err := geometry.NewCollineation1D(newDense(t, [][]complex128{{0, 1}, {1, 0}}), geometry.Pointwise)
	require.NoError(t, err)

	pre := []*geometry.Element1D{geometry.Unity1D, geometry.Origin1D, geometry.Infinity1D}
	img := []*geometry.Element1D{geometry.Unity1D, geometry.Infinity1D, geometry.Origin1D}
	inv, err := geometry.NewCollineation1DFromPairs(pre, img)
	require.NoError(t, err)

	e, err := geometry.NewElement1DReal(1, 2)
	require.NoError(t, err)
	want, err := geometry.NewElement1DReal(2, 1)
	require.NoError(t, err)

	assert.True(t, swap.Map(e).Equals(want))
	assert.True(t, inv.Map(e).Equals(want))
}

// TestCollineation3D_LineAction verifies the induced Plücker action
// against the pointwise one: the image of a join is the join of the
// images, and invariant lines stay put.
func TestCollineation3D_LineAction(t *testing.T) {
	m := newDense(t, [][]complex128{
		{1, 0, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
	tr, err := geometry.NewCollineation3D(m, geometry.Pointwise)
	require.NoError(t, err)

	// The x-axis is invariant under a translation along x.
	assert.True(t, tr.MapLine(geometry.XAxis3D).EqualsLine(geometry.XAxis3D))

	p, q := newP3(t, 1, 0, 1, 2), newP3(t, 1, 1, 1, 1)
	l := p.Join(q)
	require.NotNil(t, l)
	assert.True(t, tr.MapLine(l).EqualsLine(tr.MapPoint(p).Join(tr.MapPoint(q))))

	// Plane incidence survives the dual action.
	u := geometry.PlaneYZ3D
	x := newP3(t, 1, 0, 3, 4)
	require.True(t, x.IsOn(u))
	assert.True(t, tr.MapPoint(x).IsOn(tr.MapPlane(u)))
}

// TestCollineation3D_MapComplex carries a non-special complex through
// the Plücker action without losing its self-pairing class.
func TestCollineation3D_MapComplex(t *testing.T) {
	m := newDense(t, [][]complex128{
		{1, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 3, 0},
		{0, 0, 0, 4},
	})
	tr, err := geometry.NewCollineation3D(m, geometry.Pointwise)
	require.NoError(t, err)

	c, err := geometry.NewLinearComplexReal(1, 0, 0, 1, 0, 0)
	require.NoError(t, err)
	require.False(t, c.IsSpecial())

	img := tr.MapComplex(c)
	require.NotNil(t, img)
	assert.False(t, img.IsSpecial())

	special := tr.MapComplex(geometry.XAxis3D.LinearComplex)
	require.NotNil(t, special)
	assert.True(t, special.IsSpecial())
}

// TestNewCollineation3DFromPoints solves a spatial translation from
// five correspondences.
func TestNewCollineation3DFromPoints(t *testing.T) {
	pre := []*geometry.Point3D{geometry.Unity3D, geometry.Origin3D, geometry.InfinityX3D, geometry.InfinityY3D, geometry.InfinityZ3D}
	img := []*geometry.Point3D{newP3(t, 1, 2, 1, 1), newP3(t, 1, 1, 0, 0), geometry.InfinityX3D, geometry.InfinityY3D, geometry.InfinityZ3D}

	tr, err := geometry.NewCollineation3DFromPoints(pre, img)
	require.NoError(t, err)
	assert.True(t, tr.MapPoint(newP3(t, 1, 0, 5, 7)).Equals(newP3(t, 1, 1, 5, 7)))
}

// TestCollineation2D_MapPoints_Iterator checks the sequence adapter:
// lazy, order-preserving and restartable.
func TestCollineation2D_MapPoints_Iterator(t *testing.T) {
	tr, err := geometry.NewCollineation2D(translationX2D(t), geometry.Pointwise)
	require.NoError(t, err)

	src := []*geometry.Point2D{geometry.Origin2D, newP2(t, 1, 1, 1), newP2(t, 1, 2, 3)}
	seq := tr.MapPoints(func(yield func(*geometry.Point2D) bool) {
		for _, p := range src {
			if !yield(p) {
				return
			}
		}
	})

	want := []*geometry.Point2D{newP2(t, 1, 1, 0), newP2(t, 1, 2, 1), newP2(t, 1, 3, 3)}
	for pass := 0; pass < 2; pass++ {
		got := slices.Collect(seq)
		require.Len(t, got, len(want))
		for i := range want {
			assert.True(t, got[i].Equals(want[i]), "pass %d element %d", pass, i)
		}
	}
}
