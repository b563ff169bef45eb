package kron

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ohline/cmplx128"
)

var (
	// ErrEmptyKeep indicates that the keep index set is empty; a reduction
	// that observes nothing is meaningless.
	ErrEmptyKeep = errors.New("kron: keep index set is empty")

	// ErrIndexOutOfRange indicates a keep/eliminate index outside the matrix.
	ErrIndexOutOfRange = errors.New("kron: partition index out of range")

	// ErrOverlap indicates that the keep and eliminate sets intersect.
	ErrOverlap = errors.New("kron: keep and eliminate sets overlap")

	// ErrDuplicateIndex indicates that an index appears twice within the
	// same set.
	ErrDuplicateIndex = errors.New("kron: duplicate index within a set")

	// ErrSingularBlock is returned when the eliminate-block M_bb (or, for
	// elastance reduction, the eliminated result) is not invertible.
	ErrSingularBlock = errors.New("kron: singular eliminate block")
)

// validate checks a keep/eliminate partition against an n×n matrix.
func validate(n int, keep, elim []int) error {
	if len(keep) == 0 {
		return ErrEmptyKeep
	}
	seen := make(map[int]int, len(keep)+len(elim))
	for set, indices := range [][]int{keep, elim} {
		for _, i := range indices {
			if i < 0 || i >= n {
				return fmt.Errorf("index %d of %d: %w", i, n, ErrIndexOutOfRange)
			}
			if prev, ok := seen[i]; ok {
				if prev == set {
					return fmt.Errorf("index %d: %w", i, ErrDuplicateIndex)
				}
				return fmt.Errorf("index %d: %w", i, ErrOverlap)
			}
			seen[i] = set
		}
	}

	return nil
}

// Reduce eliminates the elim indices from a complex matrix with impedance
// semantics: the result of the block elimination is the reduced matrix.
// Indices absent from both sets (e.g. a pipeline row when reducing an
// overhead line to its phase conductors) are simply dropped.
//
// With an empty eliminate set the kept block is returned unchanged.
// Complexity: O(n³) dominated by the M_bb factorization.
func Reduce(m *cmplx128.Dense, keep, elim []int) (*cmplx128.Dense, error) {
	if err := validate(m.Rows(), keep, elim); err != nil {
		return nil, err
	}

	aa, err := m.Take(keep, keep)
	if err != nil {
		return nil, err
	}
	if len(elim) == 0 {
		return aa, nil
	}

	ab, err := m.Take(keep, elim)
	if err != nil {
		return nil, err
	}
	ba, err := m.Take(elim, keep)
	if err != nil {
		return nil, err
	}
	bb, err := m.Take(elim, elim)
	if err != nil {
		return nil, err
	}

	// X = M_bb⁻¹ · M_ba via a single solve, then M_aa − M_ab·X.
	x, err := cmplx128.Solve(bb, ba)
	if err != nil {
		if errors.Is(err, cmplx128.ErrSingular) {
			return nil, fmt.Errorf("%w: %w", ErrSingularBlock, err)
		}

		return nil, err
	}
	corr, err := cmplx128.Mul(ab, x)
	if err != nil {
		return nil, err
	}

	return cmplx128.Sub(aa, corr)
}

// ReduceReal is Reduce for real matrices, backed by gonum.
func ReduceReal(m *mat.Dense, keep, elim []int) (*mat.Dense, error) {
	r, _ := m.Dims()
	if err := validate(r, keep, elim); err != nil {
		return nil, err
	}

	aa := take(m, keep, keep)
	if len(elim) == 0 {
		return aa, nil
	}
	ab := take(m, keep, elim)
	ba := take(m, elim, keep)
	bb := take(m, elim, elim)

	var x mat.Dense
	if err := x.Solve(bb, ba); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularBlock, err)
	}
	var corr mat.Dense
	corr.Mul(ab, &x)
	aa.Sub(aa, &corr)

	return aa, nil
}

// ReduceElastance eliminates the elim indices from a potential-coefficient
// (elastance) matrix and returns the reduced CAPACITANCE matrix
// C' = (P_aa − P_ab·P_bb⁻¹·P_ba)⁻¹. The final inversion is what
// distinguishes elastance from impedance semantics.
func ReduceElastance(p *mat.Dense, keep, elim []int) (*mat.Dense, error) {
	red, err := ReduceReal(p, keep, elim)
	if err != nil {
		return nil, err
	}

	var c mat.Dense
	if err := c.Inverse(red); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularBlock, err)
	}

	return &c, nil
}

// take copies m[rows, cols] into a fresh gonum Dense.
func take(m *mat.Dense, rows, cols []int) *mat.Dense {
	out := mat.NewDense(len(rows), len(cols), nil)
	for oi, i := range rows {
		for oj, j := range cols {
			out.Set(oi, oj, m.At(i, j))
		}
	}

	return out
}
