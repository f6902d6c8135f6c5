package hvector_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/projective/hvector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seeded returns a deterministic source for reproducible sampling tests.
func seeded(a, b uint64) *rand.Rand {
	return rand.New(rand.NewPCG(a, b))
}

// TestRandomIncident_Dimension2 verifies the unique closed form (−v₁, v₀).
func TestRandomIncident_Dimension2(t *testing.T) {
	v := mustNew(t, 2, 5)

	w, err := v.RandomIncident(hvector.WithRand(seeded(1, 1)))
	require.NoError(t, err)
	assert.True(t, w.Equals(mustNew(t, -5, 2)), "dimension 2 has exactly one incident element")

	// Excluding the unique element must exhaust sampling.
	_, err = v.RandomIncident(hvector.WithRand(seeded(1, 1)), hvector.WithExclude(hvector.NewSet(w)))
	assert.ErrorIs(t, err, hvector.ErrSamplingExhausted)
}

// TestRandomIncident_General samples incident elements and checks the
// incidence equation plus exclusion behavior.
func TestRandomIncident_General(t *testing.T) {
	v := mustNew(t, 1, 3, 2.5)
	rng := seeded(7, 9)

	seen := hvector.NewSet()
	for i := 0; i < 20; i++ {
		w, err := v.RandomIncident(hvector.WithRand(rng), hvector.WithExclude(seen))
		require.NoError(t, err, "sampling attempt %d", i)

		ok, err := w.IsIncident(v)
		require.NoError(t, err)
		assert.True(t, ok, "sampled element must satisfy w·v = 0")

		assert.False(t, seen.Contains(w), "exclusion set must be honored")
		seen.Add(w)
	}
}

// TestRandomIncident_SingleNonzero covers the structured special case:
// with v = (0, 0, 5, 0) any incident element vanishes at index 2.
func TestRandomIncident_SingleNonzero(t *testing.T) {
	v := mustNew(t, 0, 0, 5, 0)

	w, err := v.RandomIncident(hvector.WithRand(seeded(3, 4)))
	require.NoError(t, err)

	ok, err := w.IsIncident(v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, w.At(2) == 0, "the constrained coordinate must vanish")
}

// TestRandomIncident_RealOption forces real coefficients.
func TestRandomIncident_RealOption(t *testing.T) {
	v := mustNew(t, 1, 3, 2.5)
	rng := seeded(11, 13)

	for i := 0; i < 10; i++ {
		w, err := v.RandomIncident(hvector.WithRand(rng), hvector.WithReal())
		require.NoError(t, err)
		assert.True(t, w.IsReal(), "WithReal must yield real representatives")

		ok, err := w.IsIncident(v)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

// TestRandomIncident_RealAgainstComplex solves the two-constraint case:
// a real element incident with a genuinely complex vector.
func TestRandomIncident_RealAgainstComplex(t *testing.T) {
	v := mustNew(t, complex(1, 1), complex(2, -1), 1, 0)
	rng := seeded(17, 19)

	w, err := v.RandomIncident(hvector.WithRand(rng), hvector.WithReal())
	require.NoError(t, err)
	assert.True(t, w.IsReal())

	ok, err := w.IsIncident(v)
	require.NoError(t, err)
	assert.True(t, ok, "real element must annihilate both the real and imaginary constraints")
}

// TestRandom_Dimension samples free vectors with exclusions.
func TestRandom_Dimension(t *testing.T) {
	rng := seeded(23, 29)

	v, err := hvector.Random(4, hvector.WithRand(rng), hvector.WithReal())
	require.NoError(t, err)
	assert.Equal(t, 4, v.Dim())
	assert.True(t, v.IsReal())

	_, err = hvector.Random(1)
	assert.ErrorIs(t, err, hvector.ErrTooFewCoordinates)
}

// TestSet_MembershipUpToScale verifies Equals-based membership.
func TestSet_MembershipUpToScale(t *testing.T) {
	s := hvector.NewSet(mustNew(t, 1, 2, 3))

	assert.True(t, s.Contains(mustNew(t, 2, 4, 6)), "membership is up to scale")
	assert.False(t, s.Add(mustNew(t, -1, -2, -3)), "scalar multiples do not grow the set")
	assert.True(t, s.Add(mustNew(t, 1, 0, 0)))
	assert.Equal(t, 2, s.Len())

	count := 0
	for range s.All() {
		count++
	}
	assert.Equal(t, 2, count, "iteration covers insertion order")
}
