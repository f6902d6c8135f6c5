package hvector_test

import (
	"testing"

	"github.com/katalvlaran/projective/hvector"
	"github.com/katalvlaran/projective/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCanonicalTransformation_Identity: the canonical frame maps onto
// itself through the identity matrix (column scales resolve to 1).
func TestCanonicalTransformation_Identity(t *testing.T) {
	vs := []*hvector.HVector{
		mustNew(t, 1, 1, 1), // unit image
		mustNew(t, 1, 0, 0),
		mustNew(t, 0, 1, 0),
		mustNew(t, 0, 0, 1),
	}

	m, err := hvector.CanonicalTransformation(vs)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			got, aerr := m.At(i, j)
			require.NoError(t, aerr)
			want := complex128(0)
			if i == j {
				want = 1
			}
			assert.True(t, numeric.EqualScalar(got, want), "(%d,%d): got %v", i, j, got)
		}
	}
}

// TestCanonicalTransformation_MapsFrame: the resulting matrix sends each
// basis vector onto (a multiple of) its prescribed image and the unit
// vector exactly onto vs[0].
func TestCanonicalTransformation_MapsFrame(t *testing.T) {
	vs := []*hvector.HVector{
		mustNew(t, 2, 1, 1),
		mustNew(t, 1, 1, 0),
		mustNew(t, 0, 1, 1),
		mustNew(t, 1, 0, 1),
	}

	m, err := hvector.CanonicalTransformation(vs)
	require.NoError(t, err)

	unit := mustNew(t, 1, 1, 1)
	img, err := unit.Multiply(m)
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.True(t, img.Equals(vs[0]), "unit vector must land on vs[0]")

	basis := []*hvector.HVector{
		mustNew(t, 1, 0, 0),
		mustNew(t, 0, 1, 0),
		mustNew(t, 0, 0, 1),
	}
	for i, e := range basis {
		img, err = e.Multiply(m)
		require.NoError(t, err)
		require.NotNil(t, img)
		assert.True(t, img.Equals(vs[i+1]), "basis vector %d must land on vs[%d]", i, i+1)
	}
}

// TestCanonicalTransformation_Degenerate rejects rank-deficient input.
func TestCanonicalTransformation_Degenerate(t *testing.T) {
	// Third and fourth vectors are proportional: basis is singular.
	vs := []*hvector.HVector{
		mustNew(t, 1, 1, 1),
		mustNew(t, 1, 0, 0),
		mustNew(t, 0, 1, 0),
		mustNew(t, 0, 2, 0),
	}
	_, err := hvector.CanonicalTransformation(vs)
	assert.ErrorIs(t, err, hvector.ErrDependentVectors)

	// Unit image inside a basis hyperplane: coefficient collapses.
	vs = []*hvector.HVector{
		mustNew(t, 1, 1, 0), // lies in span{e1, e2}
		mustNew(t, 1, 0, 0),
		mustNew(t, 0, 1, 0),
		mustNew(t, 0, 0, 1),
	}
	_, err = hvector.CanonicalTransformation(vs)
	assert.ErrorIs(t, err, hvector.ErrDependentVectors)

	// Wrong count.
	_, err = hvector.CanonicalTransformation(vs[:3])
	assert.ErrorIs(t, err, hvector.ErrDimensionMismatch)
}

// TestCrossRatio_Harmonic: on the projective line with origin (1,0),
// infinity (0,1) and unity (1,1), the harmonic conjugate (1,−1) has
// cross ratio −1.
func TestCrossRatio_Harmonic(t *testing.T) {
	origin := mustNew(t, 1, 0)
	infinity := mustNew(t, 0, 1)
	unity := mustNew(t, 1, 1)
	harmonic := mustNew(t, 1, -1)

	cr, err := hvector.CrossRatio(origin, infinity, unity, harmonic)
	require.NoError(t, err)
	assert.True(t, numeric.EqualScalar(cr, -1), "harmonic quadruple must give −1, got %v", cr)
}

// TestCrossRatio_AffineParameter: with the standard basis the cross
// ratio of (1,d) is d, scale-invariantly.
func TestCrossRatio_AffineParameter(t *testing.T) {
	origin := mustNew(t, 1, 0)
	infinity := mustNew(t, 0, 1)
	unity := mustNew(t, 3, 3) // a scaled unity representative

	d := mustNew(t, 2, 5)
	cr, err := hvector.CrossRatio(origin, infinity, unity, d)
	require.NoError(t, err)
	assert.True(t, numeric.EqualScalar(cr, 2.5), "cross ratio must be the affine parameter 5/2, got %v", cr)
}

// TestCrossRatio_Collinear3D: four collinear points of 3-space carry a
// well-defined cross ratio; a point off the pencil is rejected.
func TestCrossRatio_Collinear3D(t *testing.T) {
	a := mustNew(t, 1, 0, 0, 0)
	b := mustNew(t, 0, 1, 1, 2)
	c := mustNew(t, 1, 1, 1, 2)        // a + b
	d := mustNew(t, 1, -1, -1, -2)     // a − b, harmonic to c
	off := mustNew(t, 1, 1, 0, 0)      // outside span{a, b}

	cr, err := hvector.CrossRatio(a, b, c, d)
	require.NoError(t, err)
	assert.True(t, numeric.EqualScalar(cr, -1), "got %v", cr)

	_, err = hvector.CrossRatio(a, b, c, off)
	assert.ErrorIs(t, err, hvector.ErrNotCollinear)
}

// TestCrossRatio_DegenerateBasis rejects coinciding basis elements.
func TestCrossRatio_DegenerateBasis(t *testing.T) {
	a := mustNew(t, 1, 0)
	c := mustNew(t, 1, 1)

	_, err := hvector.CrossRatio(a, mustNew(t, 2, 0), c, c)
	assert.ErrorIs(t, err, hvector.ErrDegenerateBasis, "infinity equal to origin (up to scale) is degenerate")
}

// TestDecompose_Basis verifies coefficients and the span check.
func TestDecompose_Basis(t *testing.T) {
	u := mustNew(t, 1, 0, 2)
	w := mustNew(t, 0, 1, -1)
	target := mustNew(t, 3, -2, 8) // 3u − 2w

	alpha, beta, err := hvector.Decompose(target, u, w)
	require.NoError(t, err)
	assert.True(t, numeric.EqualScalar(alpha, 3), "alpha = %v", alpha)
	assert.True(t, numeric.EqualScalar(beta, -2), "beta = %v", beta)

	_, _, err = hvector.Decompose(mustNew(t, 1, 1, 1), u, w)
	assert.ErrorIs(t, err, hvector.ErrNotCollinear)

	_, _, err = hvector.Decompose(target, u, mustNew(t, 2, 0, 4))
	assert.ErrorIs(t, err, hvector.ErrDegenerateBasis)
}
