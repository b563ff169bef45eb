package cmplx128_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohline/cmplx128"
)

// TestNewDense_BadShape verifies that non-positive dimensions are rejected.
func TestNewDense_BadShape(t *testing.T) {
	_, err := cmplx128.NewDense(0, 3)
	assert.ErrorIs(t, err, cmplx128.ErrBadShape, "zero rows must error")

	_, err = cmplx128.NewDense(3, -1)
	assert.ErrorIs(t, err, cmplx128.ErrBadShape, "negative cols must error")
}

// TestNewDenseData_LengthMismatch verifies backing-slice length validation.
func TestNewDenseData_LengthMismatch(t *testing.T) {
	_, err := cmplx128.NewDenseData(2, 2, make([]complex128, 3))
	assert.ErrorIs(t, err, cmplx128.ErrBadShape, "3 elements cannot back a 2x2 matrix")
}

// TestDense_SetAtClone exercises element access and deep-copy semantics.
func TestDense_SetAtClone(t *testing.T) {
	m, err := cmplx128.NewDense(2, 3)
	require.NoError(t, err)

	m.Set(1, 2, 3+4i)
	assert.Equal(t, 3+4i, m.At(1, 2), "Set/At round-trip")
	assert.Equal(t, 0+0i, m.At(0, 0), "unset elements stay zero")

	cp := m.Clone()
	cp.Set(1, 2, 9i)
	assert.Equal(t, 3+4i, m.At(1, 2), "Clone must not alias the original")
}

// TestDense_IndexPanics verifies that out-of-range access panics (programmer error).
func TestDense_IndexPanics(t *testing.T) {
	m, err := cmplx128.NewDense(2, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { m.At(2, 0) }, "row past end must panic")
	assert.Panics(t, func() { m.Set(0, -1, 1) }, "negative col must panic")
}

// TestDense_Symmetric checks the tolerance-based symmetry predicate.
func TestDense_Symmetric(t *testing.T) {
	m, err := cmplx128.NewDenseData(2, 2, []complex128{1, 2 + 1i, 2 + 1i, 3})
	require.NoError(t, err)
	assert.True(t, m.Symmetric(1e-12), "symmetric matrix")

	m.Set(0, 1, 2+1.1i)
	assert.False(t, m.Symmetric(1e-12), "asymmetric beyond eps")
	assert.True(t, m.Symmetric(0.2), "asymmetric within loose eps")

	rect, err := cmplx128.NewDense(2, 3)
	require.NoError(t, err)
	assert.False(t, rect.Symmetric(1), "rectangular matrix is never symmetric")
}

// TestDense_Take extracts a block by index sets and validates bounds.
func TestDense_Take(t *testing.T) {
	m, err := cmplx128.NewDenseData(3, 3, []complex128{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	require.NoError(t, err)

	sub, err := m.Take([]int{0, 2}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Rows())
	assert.Equal(t, 1, sub.Cols())
	assert.Equal(t, 2+0i, sub.At(0, 0))
	assert.Equal(t, 8+0i, sub.At(1, 0))

	_, err = m.Take(nil, []int{0})
	assert.ErrorIs(t, err, cmplx128.ErrBadIndexSet, "empty row set must error")

	_, err = m.Take([]int{3}, []int{0})
	assert.ErrorIs(t, err, cmplx128.ErrBadIndexSet, "out-of-range row must error")
}

// TestDense_CDenseRoundTrip verifies gonum interop preserves every element.
func TestDense_CDenseRoundTrip(t *testing.T) {
	m, err := cmplx128.NewDenseData(2, 2, []complex128{1 + 2i, 3, -4i, 5 - 6i})
	require.NoError(t, err)

	back := cmplx128.FromCDense(m.ToCDense())
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, m.At(i, j), back.At(i, j), "element (%d,%d)", i, j)
		}
	}
}
