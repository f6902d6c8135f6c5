package hvector

import "errors"

var (
	// ErrTooFewCoordinates indicates a construction attempt with fewer
	// than 2 coordinates — no projective space lives below dimension 1.
	ErrTooFewCoordinates = errors.New("hvector: at least 2 coordinates required")

	// ErrZeroVector indicates that all coordinates are negligible; the
	// zero tuple represents no projective element.
	ErrZeroVector = errors.New("hvector: coordinates must not all be zero")

	// ErrNaNInf signals a NaN or ±Inf coordinate at ingestion.
	ErrNaNInf = errors.New("hvector: NaN or Inf coordinate")

	// ErrDimensionMismatch indicates operands of differing dimension.
	ErrDimensionMismatch = errors.New("hvector: dimension mismatch")

	// ErrDegenerateBasis indicates that two elements meant to span a
	// pencil (or a two-term decomposition basis) coincide.
	ErrDegenerateBasis = errors.New("hvector: degenerate basis elements")

	// ErrNotCollinear indicates a cross-ratio argument outside the pencil
	// spanned by the first two elements.
	ErrNotCollinear = errors.New("hvector: elements are not collinear")

	// ErrDependentVectors indicates a linearly dependent subset where the
	// canonical transformation requires full rank.
	ErrDependentVectors = errors.New("hvector: linearly dependent vectors")

	// ErrSamplingExhausted is the algorithm-failure condition of random
	// incident sampling: no admissible element was found within the
	// attempt budget. It signals an unmodeled numerical edge case or an
	// over-constrained exclusion set, never a routine outcome.
	ErrSamplingExhausted = errors.New("hvector: incident sampling exhausted attempts")
)
