package geometry

import (
	"fmt"

	"github.com/katalvlaran/projective/hvector"
)

// Entity is the common capability of every projective element: access
// to its underlying homogeneous coordinate vector. Concrete types add
// their own meet/join signatures and dual-vector bookkeeping.
type Entity interface {
	Vector() *hvector.HVector
}

// CrossRatio returns the cross ratio of four elements of a pencil (four
// collinear points, four concurrent lines, four coaxial planes…), with
// a as origin, b as infinity and c as unity. All four must be of the
// same concrete kind; the pencil-membership check itself runs on the
// coordinate vectors.
//
// Errors: as hvector.CrossRatio.
func CrossRatio(a, b, c, d Entity) (complex128, error) {
	if a == nil || b == nil || c == nil || d == nil {
		return 0, fmt.Errorf("CrossRatio: %w", ErrNilArgument)
	}

	return hvector.CrossRatio(a.Vector(), b.Vector(), c.Vector(), d.Vector())
}

// vectorOf lifts raw coordinates into an HVector, translating the
// count/zero/finite taxonomy into this package's construction errors.
func vectorOf(kind string, want int, coords []complex128) (*hvector.HVector, error) {
	if len(coords) != want {
		return nil, fmt.Errorf("%s: %d coordinates: %w", kind, len(coords), ErrCoordinateCount)
	}
	v, err := hvector.New(coords...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	return v, nil
}

// realToComplex widens a real coordinate tuple.
func realToComplex(coords []float64) []complex128 {
	out := make([]complex128, len(coords))
	for i, x := range coords {
		out[i] = complex(x, 0)
	}

	return out
}
