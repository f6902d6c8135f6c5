// Package geometry: sentinel error set.
// Construction errors fire at the boundary and are never recovered
// internally; algorithm-failure sentinels signal a bug or an unmodeled
// numerical edge case, never a routine outcome. Degenerate geometric
// results are nil returns, not errors.

package geometry

import "errors"

var (
	// ErrCoordinateCount indicates an entity construction with the wrong
	// number of coordinates for its type.
	ErrCoordinateCount = errors.New("geometry: wrong coordinate count")

	// ErrSingularMatrix indicates a transformation constructor received a
	// matrix whose determinant vanishes within precision.
	ErrSingularMatrix = errors.New("geometry: singular transformation matrix")

	// ErrMatrixShape indicates a transformation matrix of the wrong size.
	ErrMatrixShape = errors.New("geometry: wrong matrix shape")

	// ErrCorrespondenceCount indicates a correspondence constructor
	// received a number of pairs other than N+2.
	ErrCorrespondenceCount = errors.New("geometry: wrong number of correspondences")

	// ErrNilArgument indicates a nil entity where a value is required.
	ErrNilArgument = errors.New("geometry: nil argument")

	// ErrNotSpecial indicates 6 coordinates violating the Plücker
	// identity where an actual line (special complex) is required.
	ErrNotSpecial = errors.New("geometry: complex is not special (no such line)")

	// ErrZeroFactor indicates a central collineation factor that is
	// numerically zero — the map would collapse onto the axis.
	ErrZeroFactor = errors.New("geometry: central collineation factor is zero")

	// ErrCenterOnAxis indicates a factor-based central collineation with
	// its center incident to the axis; the defining cross ratio
	// degenerates there (use the pair-based constructor for elations).
	ErrCenterOnAxis = errors.New("geometry: center lies on the axis")

	// ErrPointOnAxis indicates an auxiliary correspondence point placed
	// on the axis or coinciding with the center in a disallowed way.
	ErrPointOnAxis = errors.New("geometry: point coincides with center or axis")

	// ErrPairNotPerspective indicates a point pair that is not collinear
	// with the center, so no central collineation can relate it.
	ErrPairNotPerspective = errors.New("geometry: pair is not perspective from the center")

	// ErrCenterNotReal indicates a sphere polarity request with a
	// non-real or infinite center.
	ErrCenterNotReal = errors.New("geometry: sphere center must be real and finite")

	// ErrNonPositiveRadius indicates a sphere polarity request with a
	// radius ≤ 0 (within precision).
	ErrNonPositiveRadius = errors.New("geometry: sphere radius must be positive")

	// ErrCommonElement is the algorithm-failure condition of the
	// incident-line meet/join: the fallback enumeration over the
	// canonical frame found no common element for a supposedly incident
	// pair. It signals a bug or an unmodeled numerical edge case.
	ErrCommonElement = errors.New("geometry: common element enumeration failed")
)
