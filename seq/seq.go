package seq

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ohline/cmplx128"
)

// Sequence index constants for the fixed [positive, negative, zero] ordering
// of every matrix produced by Transform.
const (
	Positive = 0
	Negative = 1
	Zero     = 2
)

// ErrNotThreePhase is returned when a balancing or transform input is not 3×3.
var ErrNotThreePhase = errors.New("seq: matrix is not 3x3")

// A is the Fortescue rotation operator e^(j2π/3).
var A = cmplx.Exp(complex(0, 2*math.Pi/3))

// H maps sequence quantities in [positive, negative, zero] order to phase
// quantities; HInv is its exact analytic inverse (1/3 of the conjugate
// pattern). Both are fixed constants, independent of system geometry.
var (
	H    = mustDense3(1, 1, 1, A*A, A, 1, A, A*A, 1)
	HInv = mustDense3(
		1.0/3, A/3, A*A/3,
		1.0/3, A*A/3, A/3,
		1.0/3, 1.0/3, 1.0/3,
	)
)

func mustDense3(v ...complex128) *cmplx128.Dense {
	m, err := cmplx128.NewDenseData(3, 3, v)
	if err != nil {
		panic(err)
	}

	return m
}

// Balance applies the perfect-transposition assumption to a reduced 3×3
// phase matrix: the output carries the mean diagonal entry on its diagonal
// and the mean of the three distinct upper-triangle entries elsewhere.
func Balance(m *cmplx128.Dense) (*cmplx128.Dense, error) {
	if m.Rows() != 3 || m.Cols() != 3 {
		return nil, fmt.Errorf("Balance: %dx%d: %w", m.Rows(), m.Cols(), ErrNotThreePhase)
	}

	self := (m.At(0, 0) + m.At(1, 1) + m.At(2, 2)) / 3
	mutual := (m.At(0, 1) + m.At(0, 2) + m.At(1, 2)) / 3

	out, err := cmplx128.NewDense(3, 3)
	if err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				out.Set(i, j, self)
			} else {
				out.Set(i, j, mutual)
			}
		}
	}

	return out, nil
}

// BalanceReal is Balance for real matrices (balanced susceptance B = ω·C in
// Maxwell form; the off-diagonal mean stays negative, as Maxwell mutuals are).
func BalanceReal(m *mat.Dense) (*mat.Dense, error) {
	r, c := m.Dims()
	if r != 3 || c != 3 {
		return nil, fmt.Errorf("BalanceReal: %dx%d: %w", r, c, ErrNotThreePhase)
	}

	self := (m.At(0, 0) + m.At(1, 1) + m.At(2, 2)) / 3
	mutual := (m.At(0, 1) + m.At(0, 2) + m.At(1, 2)) / 3

	out := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				out.Set(i, j, self)
			} else {
				out.Set(i, j, mutual)
			}
		}
	}

	return out, nil
}

// Transform maps a 3×3 phase matrix into sequence components:
// M_seq = H⁻¹ · M · H, ordered [positive, negative, zero].
func Transform(m *cmplx128.Dense) (*cmplx128.Dense, error) {
	if m.Rows() != 3 || m.Cols() != 3 {
		return nil, fmt.Errorf("Transform: %dx%d: %w", m.Rows(), m.Cols(), ErrNotThreePhase)
	}

	mh, err := cmplx128.Mul(m, H)
	if err != nil {
		return nil, err
	}

	return cmplx128.Mul(HInv, mh)
}

// Untransform is the inverse mapping, M = H · M_seq · H⁻¹, closing the
// round trip phase → sequence → phase.
func Untransform(m *cmplx128.Dense) (*cmplx128.Dense, error) {
	if m.Rows() != 3 || m.Cols() != 3 {
		return nil, fmt.Errorf("Untransform: %dx%d: %w", m.Rows(), m.Cols(), ErrNotThreePhase)
	}

	mh, err := cmplx128.Mul(m, HInv)
	if err != nil {
		return nil, err
	}

	return cmplx128.Mul(H, mh)
}
