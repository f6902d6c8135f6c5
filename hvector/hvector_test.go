package hvector_test

import (
	"testing"

	"github.com/katalvlaran/projective/cmatrix"
	"github.com/katalvlaran/projective/hvector"
	"github.com/katalvlaran/projective/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustNew is a test helper for valid constructions.
func mustNew(t *testing.T, coords ...complex128) *hvector.HVector {
	t.Helper()
	v, err := hvector.New(coords...)
	require.NoError(t, err)

	return v
}

// TestNew_Validation covers the invalid-construction taxonomy.
func TestNew_Validation(t *testing.T) {
	_, err := hvector.New(1)
	assert.ErrorIs(t, err, hvector.ErrTooFewCoordinates, "one coordinate is not projective")

	_, err = hvector.New(0, 0, 0)
	assert.ErrorIs(t, err, hvector.ErrZeroVector, "the zero tuple represents nothing")

	nan := complex(0/nonConst(), 0)
	_, err = hvector.New(1, nan)
	assert.ErrorIs(t, err, hvector.ErrNaNInf, "NaN coordinates must be rejected")
}

// TestEquals_ScaleInvariance verifies v.Equals(k·v) for complex k ≠ 0.
func TestEquals_ScaleInvariance(t *testing.T) {
	v := mustNew(t, 1, complex(3, 0), complex(2.5, 0))

	for _, k := range []complex128{2, -0.5, 1i, complex(2, -3)} {
		scaled := mustNew(t, k*1, k*3, k*2.5)
		assert.True(t, v.Equals(scaled), "v must equal %v·v", k)
		assert.True(t, scaled.Equals(v), "equality is symmetric")
	}

	other := mustNew(t, 1, 3, 2)
	assert.False(t, v.Equals(other), "distinct rays must not compare equal")
	assert.False(t, v.Equals(nil), "nil compares unequal, not fatal")
}

// TestCoercion_RealRepresentative checks that a purely imaginary
// multiple of a real vector is stored as its real representative.
func TestCoercion_RealRepresentative(t *testing.T) {
	v := mustNew(t, 2i, 4i)
	assert.True(t, v.IsReal(), "imaginary ray must coerce onto its real representative")
	assert.True(t, v.Equals(mustNew(t, 1, 2)), "the ray is unchanged by coercion")
}

// TestCoercion_Idempotence: coercing a coerced tuple is a no-op.
func TestCoercion_Idempotence(t *testing.T) {
	raw := []complex128{complex(37, 0), complex(-12, 5), complex(0.2501, 0)}
	once := hvector.CoerceHomogeneousCoordinates(append([]complex128(nil), raw...))
	twice := hvector.CoerceHomogeneousCoordinates(append([]complex128(nil), once...))
	assert.Equal(t, once, twice, "coercion must be idempotent")
}

// TestCoercion_MagnitudeBound: oversized vectors are rescaled under the
// magnitude policy.
func TestCoercion_MagnitudeBound(t *testing.T) {
	v := mustNew(t, 30, 60, 90)
	for i := 0; i < v.Dim(); i++ {
		assert.LessOrEqual(t, real(v.At(i)), numeric.MaxHomogeneousValue,
			"coordinate %d must respect the magnitude bound", i)
	}
	assert.True(t, v.Equals(mustNew(t, 1, 2, 3)), "rescaling preserves the ray")
}

// TestIsIncident_DotProduct checks the incidence pairing.
func TestIsIncident_DotProduct(t *testing.T) {
	point := mustNew(t, 1, 3, 2.5)
	line := mustNew(t, 0, -2.5, 3) // 0·1 + (−2.5)·3 + 3·2.5 = 0

	ok, err := point.IsIncident(line)
	require.NoError(t, err)
	assert.True(t, ok, "dot product vanishes, the pair is incident")

	off := mustNew(t, 1, 1, 0)
	ok, err = off.IsIncident(line)
	require.NoError(t, err)
	assert.False(t, ok, "dot product −2.5 is far from zero")

	_, err = point.IsIncident(mustNew(t, 1, 2))
	assert.ErrorIs(t, err, hvector.ErrDimensionMismatch)
}

// TestMultiply_IdentityAndDegenerate covers the image computation and
// the nil-result contract for collapsing images.
func TestMultiply_IdentityAndDegenerate(t *testing.T) {
	v := mustNew(t, 1, 2, 3)

	id, err := cmatrix.Identity(3)
	require.NoError(t, err)
	img, err := v.Multiply(id)
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.True(t, v.Equals(img), "identity must fix every ray")

	// A rank-1 projector annihilates its kernel: nil result, nil error.
	proj, err := cmatrix.FromRows([][]complex128{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	kernel := mustNew(t, 0, 1, -1)
	img, err = kernel.Multiply(proj)
	require.NoError(t, err, "a degenerate image is not an error")
	assert.Nil(t, img, "a collapsed image must be reported as nil")

	_, err = v.Multiply(nil)
	assert.ErrorIs(t, err, hvector.ErrDimensionMismatch)
}

// nonConst defeats constant folding for NaN construction.
func nonConst() float64 { return 0 }
