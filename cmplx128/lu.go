package cmplx128

import (
	"fmt"
	"math/cmplx"
)

// lu holds an in-place LU factorization PA = LU with partial pivoting.
// lu.m stores L below the diagonal (unit diagonal implied) and U on and above
// it; perm records the row permutation applied during pivoting.
type lu struct {
	m    *Dense
	perm []int
}

// factorize computes the pivoted LU decomposition of a square matrix.
// Stage 1 (Validate): require a square input.
// Stage 2 (Execute): Doolittle elimination, selecting the largest-magnitude
// pivot in each column for numeric stability.
// Stage 3 (Finalize): return the packed factors or ErrSingular when a column
// has no usable pivot.
// Complexity: O(n³) time, O(n²) memory for the factor copy.
func factorize(a *Dense) (*lu, error) {
	if a.r != a.c {
		return nil, fmt.Errorf("LU: %dx%d: %w", a.r, a.c, ErrNonSquare)
	}

	n := a.r
	f := &lu{m: a.Clone(), perm: make([]int, n)}
	for i := range f.perm {
		f.perm[i] = i
	}

	var col, row, k int
	for col = 0; col < n; col++ {
		// Select the pivot row by maximum magnitude in this column.
		pivot := col
		max := cmplx.Abs(f.m.data[col*n+col])
		for row = col + 1; row < n; row++ {
			if v := cmplx.Abs(f.m.data[row*n+col]); v > max {
				max, pivot = v, row
			}
		}
		if max == 0 {
			return nil, fmt.Errorf("LU: zero pivot in column %d: %w", col, ErrSingular)
		}
		if pivot != col {
			f.swapRows(col, pivot)
		}

		// Eliminate below the pivot, storing multipliers in place.
		pv := f.m.data[col*n+col]
		for row = col + 1; row < n; row++ {
			mult := f.m.data[row*n+col] / pv
			f.m.data[row*n+col] = mult
			if mult == 0 {
				continue
			}
			for k = col + 1; k < n; k++ {
				f.m.data[row*n+k] -= mult * f.m.data[col*n+k]
			}
		}
	}

	return f, nil
}

func (f *lu) swapRows(i, j int) {
	n := f.m.c
	for k := 0; k < n; k++ {
		f.m.data[i*n+k], f.m.data[j*n+k] = f.m.data[j*n+k], f.m.data[i*n+k]
	}
	f.perm[i], f.perm[j] = f.perm[j], f.perm[i]
}

// solveVec solves A·x = b for a single right-hand side using the factors.
func (f *lu) solveVec(b []complex128) []complex128 {
	n := f.m.r
	x := make([]complex128, n)

	// Forward substitution on the permuted RHS: L·y = P·b.
	for i := 0; i < n; i++ {
		sum := b[f.perm[i]]
		for j := 0; j < i; j++ {
			sum -= f.m.data[i*n+j] * x[j]
		}
		x[i] = sum
	}

	// Backward substitution: U·x = y.
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for j := i + 1; j < n; j++ {
			sum -= f.m.data[i*n+j] * x[j]
		}
		x[i] = sum / f.m.data[i*n+i]
	}

	return x
}

// Solve returns x such that a·x = b, where b may carry multiple right-hand
// sides as columns. Returns ErrNonSquare, ErrDimensionMismatch or ErrSingular.
func Solve(a, b *Dense) (*Dense, error) {
	if a.r != b.r {
		return nil, fmt.Errorf("Solve: %dx%d vs rhs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	f, err := factorize(a)
	if err != nil {
		return nil, err
	}

	n, m := a.r, b.c
	out := &Dense{r: n, c: m, data: make([]complex128, n*m)}
	rhs := make([]complex128, n)
	for col := 0; col < m; col++ {
		for i := 0; i < n; i++ {
			rhs[i] = b.data[i*m+col]
		}
		x := f.solveVec(rhs)
		for i := 0; i < n; i++ {
			out.data[i*m+col] = x[i]
		}
	}

	return out, nil
}

// SolveVec solves a·x = b for a single right-hand side vector.
func SolveVec(a *Dense, b []complex128) ([]complex128, error) {
	if len(b) != a.r {
		return nil, fmt.Errorf("SolveVec: %dx%d vs rhs %d: %w", a.r, a.c, len(b), ErrDimensionMismatch)
	}
	f, err := factorize(a)
	if err != nil {
		return nil, err
	}

	return f.solveVec(b), nil
}

// Inverse returns a⁻¹ by solving against the identity.
// Returns ErrNonSquare or ErrSingular.
func Inverse(a *Dense) (*Dense, error) {
	if a.r != a.c {
		return nil, fmt.Errorf("Inverse: %dx%d: %w", a.r, a.c, ErrNonSquare)
	}

	return Solve(a, Identity(a.r))
}
