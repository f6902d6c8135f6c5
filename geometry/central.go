// Package geometry - central collineations of the projective plane.
//
// A central collineation fixes every point of an axis line and every
// line through a center point. With the center off the axis it is a
// homology; with the center on the axis, an elation. Both constructors
// reduce to the four-correspondence path: two sampled axis points stay
// fixed, and two off-axis pairs pin down the action.

package geometry

import (
	"fmt"

	"github.com/katalvlaran/projective/hvector"
	"github.com/katalvlaran/projective/numeric"
)

// centralAttempts caps the configuration resampling loop of the central
// collineation constructors; each retry redraws the sampled points.
const centralAttempts = 16

// NewCentralCollineation constructs the homology with the given center,
// axis and characteristic factor: every point x off center and axis
// maps along the line center∨x so that the cross ratio
// (center, axisTrace; x, x') equals the factor. Randomness options
// configure the internal axis-point sampling (inject a source for
// determinism).
//
// The factor-based parametrization requires a proper homology; an
// elation (center on axis) has no characteristic cross ratio and is
// only reachable through NewCentralCollineationPair.
//
// Errors:
//   - ErrNilArgument, ErrZeroFactor, ErrCenterOnAxis.
//   - hvector.ErrSamplingExhausted when no admissible configuration
//     appears within the attempt budget.
func NewCentralCollineation(center *Point2D, axis *Line2D, factor complex128, opts ...hvector.IncidentOption) (*Collineation2D, error) {
	if center == nil || axis == nil {
		return nil, fmt.Errorf("NewCentralCollineation: %w", ErrNilArgument)
	}
	if numeric.IsZero(factor) {
		return nil, fmt.Errorf("NewCentralCollineation: %w", ErrZeroFactor)
	}
	if center.IsOn(axis) {
		return nil, fmt.Errorf("NewCentralCollineation: %w", ErrCenterOnAxis)
	}

	var lastErr error
	for attempt := 0; attempt < centralAttempts; attempt++ {
		a1, a2, err := sampleAxisPair(axis, nil, opts)
		if err != nil {
			return nil, fmt.Errorf("NewCentralCollineation: %w", err)
		}

		// A third axis point anchors the moving line center∨q; the moving
		// point p lives on it, strictly between the fixed ingredients.
		q, err := sampleAxisPoint(axis, hvector.NewSet(a1.vec, a2.vec), opts)
		if err != nil {
			return nil, fmt.Errorf("NewCentralCollineation: %w", err)
		}
		p, err := samplePointOnLine(center.Join(q), hvector.NewSet(center.vec, q.vec), opts)
		if err != nil {
			return nil, fmt.Errorf("NewCentralCollineation: %w", err)
		}

		// p = c·center + s·q with both weights alive; scaling the axis
		// weight by the factor realizes the characteristic cross ratio.
		c, s, err := hvector.Decompose(p.vec, center.vec, q.vec)
		if err != nil || numeric.IsZero(c) || numeric.IsZero(s) {
			lastErr = fmt.Errorf("NewCentralCollineation: %w", hvector.ErrSamplingExhausted)

			continue
		}
		coords := make([]complex128, coords2D)
		for i := 0; i < coords2D; i++ {
			coords[i] = c*center.vec.At(i) + factor*s*q.vec.At(i)
		}
		pImg, err := NewPoint2D(coords...)
		if err != nil {
			lastErr = fmt.Errorf("NewCentralCollineation: %w", err)

			continue
		}

		t, err := NewCollineation2DFromPoints(
			[]*Point2D{center, a1, a2, p},
			[]*Point2D{center, a1, a2, pImg},
		)
		if err != nil {
			lastErr = err

			continue // degenerate draw, redraw the configuration
		}

		return t, nil
	}

	return nil, lastErr
}

// NewCentralCollineationPair constructs the central collineation with
// the given center and axis sending p onto pImage. Unlike the
// factor-based constructor it also covers elations (center on axis).
// Randomness options configure the internal sampling.
//
// Errors:
//   - ErrNilArgument.
//   - ErrPointOnAxis when p or pImage lies on the axis (such a point is
//     already fixed and cannot define the action).
//   - ErrPairNotPerspective when center, p and pImage are not collinear,
//     or p coincides with the center.
//   - hvector.ErrSamplingExhausted on an exhausted attempt budget.
func NewCentralCollineationPair(center *Point2D, axis *Line2D, p, pImage *Point2D, opts ...hvector.IncidentOption) (*Collineation2D, error) {
	if center == nil || axis == nil || p == nil || pImage == nil {
		return nil, fmt.Errorf("NewCentralCollineationPair: %w", ErrNilArgument)
	}
	if p.IsOn(axis) || pImage.IsOn(axis) {
		return nil, fmt.Errorf("NewCentralCollineationPair: %w", ErrPointOnAxis)
	}
	if p.Equals(center) || pImage.Equals(center) {
		return nil, fmt.Errorf("NewCentralCollineationPair: defining point coincides with center: %w", ErrPairNotPerspective)
	}
	ray := center.Join(p)
	if ray == nil || !pImage.IsOn(ray) {
		return nil, fmt.Errorf("NewCentralCollineationPair: %w", ErrPairNotPerspective)
	}

	var lastErr error
	for attempt := 0; attempt < centralAttempts; attempt++ {
		a1, a2, err := sampleAxisPair(axis, ray, opts)
		if err != nil {
			return nil, fmt.Errorf("NewCentralCollineationPair: %w", err)
		}

		// A second moving point x off the ray: its image follows from the
		// incidence construction — the line x∨p crosses the axis in a
		// fixed point r, so x' is where r∨p' meets the ray center∨x.
		x, err := sampleOffAxisPoint(axis, ray, center, opts)
		if err != nil {
			return nil, fmt.Errorf("NewCentralCollineationPair: %w", err)
		}
		join := x.Join(p)
		if join == nil {
			lastErr = fmt.Errorf("NewCentralCollineationPair: %w", hvector.ErrSamplingExhausted)

			continue
		}
		r := join.Meet(axis)
		if r == nil {
			lastErr = fmt.Errorf("NewCentralCollineationPair: %w", hvector.ErrSamplingExhausted)

			continue
		}
		back := r.Join(pImage)
		through := center.Join(x)
		if back == nil || through == nil {
			lastErr = fmt.Errorf("NewCentralCollineationPair: %w", hvector.ErrSamplingExhausted)

			continue
		}
		xImg := back.Meet(through)
		if xImg == nil {
			lastErr = fmt.Errorf("NewCentralCollineationPair: %w", hvector.ErrSamplingExhausted)

			continue
		}

		t, err := NewCollineation2DFromPoints(
			[]*Point2D{a1, a2, p, x},
			[]*Point2D{a1, a2, pImage, xImg},
		)
		if err != nil {
			lastErr = err

			continue
		}

		return t, nil
	}

	return nil, lastErr
}

// sampleAxisPoint draws a point on the axis outside the exclusion set.
func sampleAxisPoint(axis *Line2D, exclude *hvector.Set, opts []hvector.IncidentOption) (*Point2D, error) {
	local := append(append([]hvector.IncidentOption{}, opts...), hvector.WithExclude(exclude))
	v, err := axis.vec.RandomIncident(local...)
	if err != nil {
		return nil, err
	}

	return &Point2D{vec: v}, nil
}

// sampleAxisPair draws two distinct axis points, both clear of the
// optional forbidden line's axis trace.
func sampleAxisPair(axis *Line2D, forbidden *Line2D, opts []hvector.IncidentOption) (*Point2D, *Point2D, error) {
	exclude := hvector.NewSet()
	if forbidden != nil {
		if trace := forbidden.Meet(axis); trace != nil {
			exclude.Add(trace.vec)
		}
	}
	a1, err := sampleAxisPoint(axis, exclude, opts)
	if err != nil {
		return nil, nil, err
	}
	exclude.Add(a1.vec)
	a2, err := sampleAxisPoint(axis, exclude, opts)
	if err != nil {
		return nil, nil, err
	}

	return a1, a2, nil
}

// samplePointOnLine draws a point on the given line outside the
// exclusion set.
func samplePointOnLine(line *Line2D, exclude *hvector.Set, opts []hvector.IncidentOption) (*Point2D, error) {
	if line == nil {
		return nil, fmt.Errorf("samplePointOnLine: %w", ErrNilArgument)
	}
	local := append(append([]hvector.IncidentOption{}, opts...), hvector.WithExclude(exclude))
	v, err := line.vec.RandomIncident(local...)
	if err != nil {
		return nil, err
	}

	return &Point2D{vec: v}, nil
}

// sampleOffAxisPoint draws a generic point avoiding the axis, the given
// line and the given point, by rejection.
func sampleOffAxisPoint(axis, avoidLine *Line2D, avoidPoint *Point2D, opts []hvector.IncidentOption) (*Point2D, error) {
	var lastErr error
	for attempt := 0; attempt < centralAttempts; attempt++ {
		v, err := hvector.Random(coords2D, opts...)
		if err != nil {
			return nil, err
		}
		cand := &Point2D{vec: v}
		if cand.IsOn(axis) || cand.IsOn(avoidLine) || cand.Equals(avoidPoint) {
			lastErr = fmt.Errorf("sampleOffAxisPoint: %w", hvector.ErrSamplingExhausted)

			continue
		}

		return cand, nil
	}

	return nil, lastErr
}
