// Package cmplx128: sentinel error set.
// All algorithms return these sentinels (possibly wrapped with context via
// fmt.Errorf("...: %w", ErrX)); tests and callers match them with errors.Is.

package cmplx128

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are non-positive,
	// or when a backing slice does not match rows*cols.
	ErrBadShape = errors.New("cmplx128: invalid shape")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Add with different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("cmplx128: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// was rectangular (LU, Inverse, Solve).
	ErrNonSquare = errors.New("cmplx128: matrix is not square")

	// ErrSingular is returned when every pivot candidate in a column is zero
	// during LU factorization, i.e. the matrix is not invertible.
	ErrSingular = errors.New("cmplx128: singular matrix")

	// ErrBadIndexSet indicates that a row/column index set passed to Take
	// is empty or references an index outside the matrix.
	ErrBadIndexSet = errors.New("cmplx128: invalid index set")
)
