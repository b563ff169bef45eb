package cmplx128

import "fmt"

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Operands are not mutated; a fresh Dense is allocated.
func addSub(a, b *Dense, sign complex128, op string) (*Dense, error) {
	if a.r != b.r || a.c != b.c {
		return nil, fmt.Errorf("%s: %dx%d vs %dx%d: %w", op, a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	out := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + sign*b.data[i]
	}

	return out, nil
}

// Add returns a + b. Shapes must match.
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, 1, "Add") }

// Sub returns a - b. Shapes must match.
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, "Sub") }

// Mul returns the matrix product a·b.
// Returns ErrDimensionMismatch when a.Cols != b.Rows.
// Complexity: O(a.r * a.c * b.c) with a fixed i→k→j loop order.
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	out := &Dense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	var i, j, k int
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				out.data[i*out.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// MulVec returns the matrix-vector product a·x.
// Returns ErrDimensionMismatch when len(x) != a.Cols.
func MulVec(a *Dense, x []complex128) ([]complex128, error) {
	if len(x) != a.c {
		return nil, fmt.Errorf("MulVec: %dx%d by vector %d: %w", a.r, a.c, len(x), ErrDimensionMismatch)
	}

	out := make([]complex128, a.r)
	for i := 0; i < a.r; i++ {
		var sum complex128
		for j := 0; j < a.c; j++ {
			sum += a.data[i*a.c+j] * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Scale returns s·a as a new matrix.
func Scale(s complex128, a *Dense) *Dense {
	out := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	for i := range a.data {
		out.data[i] = s * a.data[i]
	}

	return out
}

// Transpose returns the plain (non-conjugated) transpose of a.
func Transpose(a *Dense) *Dense {
	out := &Dense{r: a.c, c: a.r, data: make([]complex128, len(a.data))}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[j*out.c+i] = a.data[i*a.c+j]
		}
	}

	return out
}
