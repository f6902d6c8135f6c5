package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/projective/geometry"
)

// TestNewLine3D_NotSpecial rejects a coordinate tuple violating the
// Plücker identity: it names a non-degenerate complex, not a line.
func TestNewLine3D_NotSpecial(t *testing.T) {
	_, err := geometry.NewLine3DReal(1, 0, 0, 1, 0, 0)
	assert.ErrorIs(t, err, geometry.ErrNotSpecial)

	c, err := geometry.NewLinearComplexReal(1, 0, 0, 1, 0, 0)
	require.NoError(t, err)
	assert.False(t, c.IsSpecial())
}

// TestLinearComplex_SelfPairing pins the quadric form against the
// fixed coordinate ordering: 2(g₀₁g₂₃ + g₀₂g₃₁ + g₀₃g₁₂).
func TestLinearComplex_SelfPairing(t *testing.T) {
	c, err := geometry.NewLinearComplexReal(1, 2, 3, 4, 5, 6)
	require.NoError(t, err)
	assert.InDelta(t, 2*(1*4+2*5+3*6), real(c.SelfPairing()), 1e-12)

	l := geometry.XAxis3D
	assert.True(t, l.IsSpecial())
}

// TestLinearComplex_PitchAxis exercises the screw decomposition: a
// complex with direction along x and moment p·x has pitch p and the
// x-axis as its axis.
func TestLinearComplex_PitchAxis(t *testing.T) {
	c, err := geometry.NewLinearComplexReal(1, 0, 0, 2, 0, 0)
	require.NoError(t, err)

	pitch, ok := c.Pitch()
	require.True(t, ok)
	assert.InDelta(t, 2, real(pitch), 1e-12)

	axis, ok := c.Axis()
	require.True(t, ok)
	assert.True(t, axis.EqualsLine(geometry.XAxis3D))
}

// TestLinearComplex_Pitch_Undefined covers the two undefined cases: a
// special complex, and a vanishing direction part.
func TestLinearComplex_Pitch_Undefined(t *testing.T) {
	_, ok := geometry.XAxis3D.Pitch()
	assert.False(t, ok)

	// Isotropic direction (1, i, 0): non-special, yet ⟨d,d⟩ = 0.
	c, err := geometry.NewLinearComplex(1, complex(0, 1), 0, 1, 0, 0)
	require.NoError(t, err)
	require.False(t, c.IsSpecial())
	_, ok = c.Pitch()
	assert.False(t, ok)
}

// TestLinearComplex_Polarity runs the null polarity of a line: the
// polar plane of an off-line point spans line and point, the polar
// point of a transversal plane is the piercing point, and incident
// configurations collapse onto nil.
func TestLinearComplex_Polarity(t *testing.T) {
	l := geometry.XAxis3D

	u := l.PolarPlane(newP3(t, 1, 0, 1, 0))
	require.NotNil(t, u)
	assert.True(t, u.Equals(geometry.PlaneXY3D))

	p := l.PolarPoint(newU3(t, -1, 1, 0, 0))
	require.NotNil(t, p)
	assert.True(t, p.Equals(newP3(t, 1, 1, 0, 0)))

	// A point of the line has every line plane as null plane: nil.
	assert.Nil(t, l.PolarPlane(geometry.Origin3D))
	assert.Nil(t, l.PolarPoint(geometry.PlaneXY3D))
}

// TestLinearComplex_Equals_ScaleInvariance documents scale-invariant
// equality of complexes.
func TestLinearComplex_Equals_ScaleInvariance(t *testing.T) {
	a, err := geometry.NewLinearComplexReal(1, 2, 3, 4, 5, 6)
	require.NoError(t, err)
	b, err := geometry.NewLinearComplex(-2, -4, -6, -8, -10, -12)
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(nil))
}

// TestLinearComplex_Dual pins the planewise permutation {0↔3,1↔4,2↔5}.
func TestLinearComplex_Dual(t *testing.T) {
	c, err := geometry.NewLinearComplexReal(1, 2, 3, 4, 5, 6)
	require.NoError(t, err)

	d := c.Dual()
	for i, want := range []float64{4, 5, 6, 1, 2, 3} {
		assert.InDelta(t, want, real(d.At(i)), 1e-12)
	}
}
