// Package geometry - shared machinery of collineations and correlations.
//
// Purpose:
//   - Validate and normalize transformation matrices (coercion, size,
//     non-singularity) and derive the dual (inverse-transpose) action.
//   - Build the matrix pair from N+2 correspondences through the
//     canonical transformation: with A = canonical→preimages and
//     B = canonical→images, the map is B·A⁻¹.

package geometry

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/projective/cmatrix"
	"github.com/katalvlaran/projective/hvector"
)

// CoordinateType declares how an explicit matrix is to be read.
type CoordinateType int

const (
	// Pointwise (covariant): the matrix acts on point coordinates.
	Pointwise CoordinateType = iota

	// Hyperplanewise (contravariant): the matrix acts on hyperplane
	// coordinates; the pointwise action is its inverse-transpose.
	Hyperplanewise
)

// projectivity is the immutable matrix pair shared by every mapping
// type: the pointwise action and its dual.
type projectivity struct {
	mat  *cmatrix.Dense // action on pointwise (covariant) vectors
	dual *cmatrix.Dense // action on planewise (contravariant) vectors
}

// coerceMatrix applies homogeneous coercion to the matrix as a whole —
// a transformation matrix is defined up to a global scalar, exactly
// like a coordinate vector.
func coerceMatrix(m *cmatrix.Dense) *cmatrix.Dense {
	n, c := m.Rows(), m.Cols()
	flat := make([]complex128, 0, n*c)
	for i := 0; i < n; i++ {
		for j := 0; j < c; j++ {
			v, _ := m.At(i, j)
			flat = append(flat, v)
		}
	}
	hvector.CoerceHomogeneousCoordinates(flat)
	out, err := cmatrix.NewDense(n, c)
	if err != nil {
		panic(err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < c; j++ {
			if err = out.Set(i, j, flat[i*c+j]); err != nil {
				panic(err)
			}
		}
	}

	return out
}

// newProjectivity validates m as an n×n non-singular matrix read under
// the declared coordinate type and derives the dual action.
//
// Errors:
//   - ErrNilArgument, ErrMatrixShape, ErrSingularMatrix.
func newProjectivity(m *cmatrix.Dense, ct CoordinateType, n int) (projectivity, error) {
	if m == nil {
		return projectivity{}, fmt.Errorf("newProjectivity: %w", ErrNilArgument)
	}
	if m.Rows() != n || m.Cols() != n {
		return projectivity{}, fmt.Errorf("newProjectivity: %dx%d for size %d: %w", m.Rows(), m.Cols(), n, ErrMatrixShape)
	}

	coerced := coerceMatrix(m)
	inv, err := coerced.Inverse()
	if err != nil {
		return projectivity{}, fmt.Errorf("newProjectivity: %w", ErrSingularMatrix)
	}
	if ct == Hyperplanewise {
		// The declared matrix is the contravariant action.
		return projectivity{mat: inv.Transpose(), dual: coerced}, nil
	}

	return projectivity{mat: coerced, dual: inv.Transpose()}, nil
}

// fromCorrespondences solves the matrix pair sending each preimage onto
// its image; both slices hold N+2 vectors of dimension N+1 in matching
// order.
//
// Errors:
//   - ErrCorrespondenceCount on a count disagreement.
//   - hvector.ErrDependentVectors when either family is rank-deficient.
func fromCorrespondences(pre, img []*hvector.HVector, n int) (projectivity, error) {
	if len(pre) != n+1 || len(img) != n+1 {
		return projectivity{}, fmt.Errorf("fromCorrespondences: %d→%d pairs for size %d: %w", len(pre), len(img), n, ErrCorrespondenceCount)
	}
	a, err := hvector.CanonicalTransformation(pre)
	if err != nil {
		return projectivity{}, fmt.Errorf("fromCorrespondences: preimages: %w", err)
	}
	b, err := hvector.CanonicalTransformation(img)
	if err != nil {
		return projectivity{}, fmt.Errorf("fromCorrespondences: images: %w", err)
	}
	aInv, err := a.Inverse()
	if err != nil {
		// Canonical transformations are non-singular by construction.
		return projectivity{}, fmt.Errorf("fromCorrespondences: %w", ErrSingularMatrix)
	}
	m, err := b.Mul(aInv)
	if err != nil {
		return projectivity{}, fmt.Errorf("fromCorrespondences: %w", err)
	}

	return newProjectivity(m, Pointwise, n)
}

// mapVector applies the pointwise (or dual) action, collapsing every
// failure mode onto nil: the mapping has no unique image there.
func (p projectivity) mapVector(v *hvector.HVector, ct CoordinateType) *hvector.HVector {
	m := p.mat
	if ct == Hyperplanewise {
		m = p.dual
	}
	img, err := v.Multiply(m)
	if err != nil || img == nil {
		return nil
	}

	return img
}

// Matrix returns a copy of the pointwise action matrix.
func (p projectivity) Matrix() *cmatrix.Dense { return p.mat.Clone() }

// DualMatrix returns a copy of the contravariant action matrix.
func (p projectivity) DualMatrix() *cmatrix.Dense { return p.dual.Clone() }

// mapSeq lifts an element mapping over a lazy sequence: finite,
// restartable, one map per input element, no side effects.
func mapSeq[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// vectorsOf projects a correspondence slice onto the underlying
// homogeneous vectors, rejecting nils.
func vectorsOf[E Entity](entities []E) ([]*hvector.HVector, error) {
	out := make([]*hvector.HVector, len(entities))
	for i, e := range entities {
		v := e.Vector()
		if v == nil {
			return nil, fmt.Errorf("correspondence %d: %w", i, ErrNilArgument)
		}
		out[i] = v
	}

	return out, nil
}
