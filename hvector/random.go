// Package hvector - random incident sampling.
//
// Purpose:
//   - Produce small-integer-coefficient vectors w with w·v = 0: elements
//     incident/dual to a given vector, used both for building projective
//     transformations from sampled correspondences and for generic
//     sampling of incident configurations.
//
// Design goals:
//   - Deterministic behavior under an injected source: no global state.
//     Without WithRand, every call seeds an independent PCG source, so
//     results carry no cross-call ordering guarantee — callers needing
//     determinism inject their own *rand.Rand.
//   - Bounded work: a fixed attempt budget turns an over-constrained
//     exclusion set into ErrSamplingExhausted instead of a spin.

package hvector

import (
	"fmt"
	"math/cmplx"
	"math/rand/v2"

	"github.com/katalvlaran/projective/numeric"
)

// Sampling policy defaults (single source of truth).
const (
	// DefaultCoefficientSpan bounds the initial random integer
	// coefficients to [-span, span]; the span grows by one per retry so
	// collisions with an exclusion set resolve quickly.
	DefaultCoefficientSpan = 3

	// maxSamplingAttempts caps the retry loop before the
	// algorithm-failure sentinel fires.
	maxSamplingAttempts = 64
)

// incidentOptions carries the gathered sampling configuration.
type incidentOptions struct {
	rng      *rand.Rand
	realOnly bool
	exclude  *Set
}

// IncidentOption configures RandomIncident and the Random constructor.
type IncidentOption func(*incidentOptions)

// WithRand injects the randomness source. Passing nil panics: a nil
// source is a programmer error, not a runtime condition.
func WithRand(r *rand.Rand) IncidentOption {
	if r == nil {
		panic("hvector: WithRand(nil)")
	}

	return func(o *incidentOptions) { o.rng = r }
}

// WithReal constrains sampling to real coefficients.
func WithReal() IncidentOption {
	return func(o *incidentOptions) { o.realOnly = true }
}

// WithExclude rejects candidates equal (up to scale) to any member of s.
func WithExclude(s *Set) IncidentOption {
	return func(o *incidentOptions) { o.exclude = s }
}

// gatherIncidentOptions applies opts over defaults. A fresh
// independently-seeded source is created when none was injected.
func gatherIncidentOptions(opts []IncidentOption) incidentOptions {
	var o incidentOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return o
}

// randomInt draws an integer from [-span, span].
func randomInt(rng *rand.Rand, span int) float64 {
	return float64(rng.IntN(2*span+1) - span)
}

// randomCoefficient draws a small integer coefficient, complex-valued
// unless realOnly is set.
func randomCoefficient(rng *rand.Rand, realOnly bool, span int) complex128 {
	if realOnly {
		return complex(randomInt(rng, span), 0)
	}

	return complex(randomInt(rng, span), randomInt(rng, span))
}

// Random samples a fresh HVector of the given dimension with small
// integer coefficients, honoring WithReal and WithExclude. It shares the
// retry policy of RandomIncident.
//
// Errors:
//   - ErrTooFewCoordinates for dim < 2.
//   - ErrSamplingExhausted when the attempt budget runs out.
func Random(dim int, opts ...IncidentOption) (*HVector, error) {
	if dim < 2 {
		return nil, fmt.Errorf("Random(%d): %w", dim, ErrTooFewCoordinates)
	}
	o := gatherIncidentOptions(opts)

	for attempt := 0; attempt < maxSamplingAttempts; attempt++ {
		span := DefaultCoefficientSpan + attempt
		coords := make([]complex128, dim)
		for i := range coords {
			coords[i] = randomCoefficient(o.rng, o.realOnly, span)
		}
		cand, err := New(coords...)
		if err != nil {
			continue // all-zero draw
		}
		if o.exclude.Contains(cand) {
			continue
		}

		return cand, nil
	}

	return nil, fmt.Errorf("Random(%d): %w", dim, ErrSamplingExhausted)
}

// RandomIncident samples an element w with w·v = 0.
//
// Implementation:
//   - Dimension 2: the incident element is unique, (−v₁, v₀); an
//     exclusion hit is therefore fatal.
//   - Exactly one nonzero coordinate k: w must vanish at k; the
//     remaining coordinates are free small integers.
//   - General case: random small-integer coefficients for all but one
//     coordinate, the last solved from the incidence equation; retries
//     use an incremented coefficient span. Under WithReal against a
//     genuinely complex vector, two free coordinates are solved from the
//     real and imaginary incidence constraints simultaneously.
//
// Errors:
//   - ErrSamplingExhausted when no admissible candidate appears within
//     the attempt budget (algorithm-failure taxonomy).
//
// Complexity: O(attempts · n²) with n ≤ 6.
func (v *HVector) RandomIncident(opts ...IncidentOption) (*HVector, error) {
	o := gatherIncidentOptions(opts)
	n := len(v.coords)

	// Unique element in a 2-dimensional coordinate space.
	if n == 2 {
		w, err := New(-v.coords[1], v.coords[0])
		if err != nil {
			return nil, fmt.Errorf("RandomIncident: %w", err)
		}
		if o.exclude.Contains(w) {
			return nil, fmt.Errorf("RandomIncident: unique incident element excluded: %w", ErrSamplingExhausted)
		}

		return w, nil
	}

	// Locate nonzero coordinates of the (coerced) receiver.
	var nonzero []int
	for i, z := range v.coords {
		if !numeric.IsZero(z) {
			nonzero = append(nonzero, i)
		}
	}

	// Single nonzero coordinate: w is free everywhere except at k.
	if len(nonzero) == 1 {
		k := nonzero[0]
		for attempt := 0; attempt < maxSamplingAttempts; attempt++ {
			span := DefaultCoefficientSpan + attempt
			w := make([]complex128, n)
			for i := range w {
				if i == k {
					continue
				}
				w[i] = randomCoefficient(o.rng, o.realOnly, span)
			}
			cand, err := New(w...)
			if err != nil {
				continue
			}
			if o.exclude.Contains(cand) {
				continue
			}

			return cand, nil
		}

		return nil, fmt.Errorf("RandomIncident: %w", ErrSamplingExhausted)
	}

	if o.realOnly && !v.IsReal() {
		return v.randomIncidentRealPair(o)
	}

	// General case: solve the coordinate with the largest magnitude.
	solve := nonzero[0]
	for _, i := range nonzero[1:] {
		if cmplx.Abs(v.coords[i]) > cmplx.Abs(v.coords[solve]) {
			solve = i
		}
	}
	for attempt := 0; attempt < maxSamplingAttempts; attempt++ {
		span := DefaultCoefficientSpan + attempt
		w := make([]complex128, n)
		var sum complex128
		for i := range w {
			if i == solve {
				continue
			}
			w[i] = randomCoefficient(o.rng, o.realOnly, span)
			sum += w[i] * v.coords[i]
		}
		w[solve] = -sum / v.coords[solve]
		cand, err := New(w...)
		if err != nil {
			continue // collapsed to zero
		}
		if o.exclude.Contains(cand) {
			continue
		}
		if ok, _ := cand.IsIncident(v); !ok {
			continue // coercion noise pushed the candidate off the pencil
		}

		return cand, nil
	}

	return nil, fmt.Errorf("RandomIncident: %w", ErrSamplingExhausted)
}

// randomIncidentRealPair solves the real-coefficient case against a
// genuinely complex receiver: a real w must satisfy both w·Re(v) = 0 and
// w·Im(v) = 0, so two coordinates are solved from a 2×2 system while the
// rest stay free.
func (v *HVector) randomIncidentRealPair(o incidentOptions) (*HVector, error) {
	n := len(v.coords)
	re := make([]float64, n)
	im := make([]float64, n)
	for i, z := range v.coords {
		re[i], im[i] = real(z), imag(z)
	}

	// Pick the coordinate pair with the most robust 2×2 minor.
	pa, pb, best := -1, -1, 0.0
	var minor float64
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if minor = re[a]*im[b] - re[b]*im[a]; abs(minor) > best {
				pa, pb, best = a, b, abs(minor)
			}
		}
	}
	if numeric.IsZeroReal(best) {
		// Im(v) is proportional to Re(v): both constraints collapse into
		// one. Sample against whichever part vector is non-negligible.
		part := re
		if isZeroReals(re) {
			part = im
		}

		return randomIncidentSingleReal(part, o)
	}

	det := re[pa]*im[pb] - re[pb]*im[pa]
	for attempt := 0; attempt < maxSamplingAttempts; attempt++ {
		span := DefaultCoefficientSpan + attempt
		w := make([]float64, n)
		var sumRe, sumIm float64
		for i := range w {
			if i == pa || i == pb {
				continue
			}
			w[i] = randomInt(o.rng, span)
			sumRe += w[i] * re[i]
			sumIm += w[i] * im[i]
		}
		// Cramer on [re[pa] re[pb]; im[pa] im[pb]]·(w[pa], w[pb]) = −(sumRe, sumIm).
		w[pa] = (-sumRe*im[pb] + sumIm*re[pb]) / det
		w[pb] = (-sumIm*re[pa] + sumRe*im[pa]) / det

		coords := make([]complex128, n)
		for i, x := range w {
			coords[i] = complex(x, 0)
		}
		cand, err := New(coords...)
		if err != nil {
			continue
		}
		if o.exclude.Contains(cand) {
			continue
		}
		if ok, _ := cand.IsIncident(v); !ok {
			continue
		}

		return cand, nil
	}

	return nil, fmt.Errorf("RandomIncident: %w", ErrSamplingExhausted)
}

// randomIncidentSingleReal samples a real vector w with w·part = 0 for a
// single real constraint vector, solving the largest-magnitude
// coordinate.
func randomIncidentSingleReal(part []float64, o incidentOptions) (*HVector, error) {
	n := len(part)
	solve := 0
	for i := 1; i < n; i++ {
		if abs(part[i]) > abs(part[solve]) {
			solve = i
		}
	}
	if numeric.IsZeroReal(part[solve]) {
		return nil, fmt.Errorf("RandomIncident: real constraint is rank-deficient: %w", ErrSamplingExhausted)
	}

	for attempt := 0; attempt < maxSamplingAttempts; attempt++ {
		span := DefaultCoefficientSpan + attempt
		coords := make([]complex128, n)
		var sum float64
		for i := range coords {
			if i == solve {
				continue
			}
			x := randomInt(o.rng, span)
			coords[i] = complex(x, 0)
			sum += x * part[i]
		}
		coords[solve] = complex(-sum/part[solve], 0)
		cand, err := New(coords...)
		if err != nil {
			continue
		}
		if o.exclude.Contains(cand) {
			continue
		}

		return cand, nil
	}

	return nil, fmt.Errorf("RandomIncident: %w", ErrSamplingExhausted)
}

// isZeroReals reports whether every component of xs is negligible.
func isZeroReals(xs []float64) bool {
	for _, x := range xs {
		if !numeric.IsZeroReal(x) {
			return false
		}
	}

	return true
}

// abs avoids importing math for a single float64 helper here.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
