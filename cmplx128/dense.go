package cmplx128

import (
	"fmt"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Dense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrBadShape when rows or cols are non-positive.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewDenseData creates an r×c Dense matrix adopting the given backing slice.
// The slice is used directly, not copied; len(data) must equal rows*cols.
func NewDenseData(rows, cols int, data []complex128) (*Dense, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseData(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Identity returns the n×n identity matrix. Panics on n <= 0 (programmer error).
func Identity(n int) *Dense {
	m, err := NewDense(n, n)
	if err != nil {
		panic(err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// At retrieves the element at (row, col).
// Index misuse is a programmer error and panics, matching gonum/mat indexers.
func (m *Dense) At(row, col int) complex128 {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		panic(fmt.Sprintf("cmplx128: At(%d,%d) out of range for %dx%d matrix", row, col, m.r, m.c))
	}

	return m.data[row*m.c+col]
}

// Set assigns value v at (row, col). Panics when the index is out of range.
func (m *Dense) Set(row, col int, v complex128) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		panic(fmt.Sprintf("cmplx128: Set(%d,%d) out of range for %dx%d matrix", row, col, m.r, m.c))
	}
	m.data[row*m.c+col] = v
}

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Symmetric reports whether the matrix is square and equal to its (plain,
// non-conjugated) transpose within eps on both real and imaginary parts.
// Impedance and potential-coefficient matrices are symmetric in this sense.
func (m *Dense) Symmetric(eps float64) bool {
	if m.r != m.c {
		return false
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			if cmplx.Abs(m.data[i*m.c+j]-m.data[j*m.c+i]) > eps {
				return false
			}
		}
	}

	return true
}

// Take extracts the submatrix m[rows, cols] in the order the index sets list
// them. Both sets must be non-empty and in range; duplicates are permitted
// (block views repeat no indices in practice, but the kernel does not care).
func (m *Dense) Take(rows, cols []int) (*Dense, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return nil, fmt.Errorf("Take: empty index set: %w", ErrBadIndexSet)
	}
	for _, i := range rows {
		if i < 0 || i >= m.r {
			return nil, fmt.Errorf("Take: row %d of %dx%d: %w", i, m.r, m.c, ErrBadIndexSet)
		}
	}
	for _, j := range cols {
		if j < 0 || j >= m.c {
			return nil, fmt.Errorf("Take: col %d of %dx%d: %w", j, m.r, m.c, ErrBadIndexSet)
		}
	}

	out := &Dense{r: len(rows), c: len(cols), data: make([]complex128, len(rows)*len(cols))}
	for oi, i := range rows {
		for oj, j := range cols {
			out.data[oi*out.c+oj] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// ToCDense copies the matrix into a gonum mat.CDense for interop with code
// that already consumes gonum complex matrices.
func (m *Dense) ToCDense() *mat.CDense {
	out := mat.NewCDense(m.r, m.c, nil)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.Set(i, j, m.data[i*m.c+j])
		}
	}

	return out
}

// FromCDense copies a gonum mat.CDense into a Dense.
func FromCDense(c *mat.CDense) *Dense {
	r, cc := c.Dims()
	out := &Dense{r: r, c: cc, data: make([]complex128, r*cc)}
	for i := 0; i < r; i++ {
		for j := 0; j < cc; j++ {
			out.data[i*cc+j] = c.At(i, j)
		}
	}

	return out
}

// FromReal promotes a real gonum matrix into a complex Dense with zero
// imaginary parts. Used to push real potential/susceptance matrices through
// complex transforms.
func FromReal(d mat.Matrix) *Dense {
	r, c := d.Dims()
	out := &Dense{r: r, c: c, data: make([]complex128, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = complex(d.At(i, j), 0)
		}
	}

	return out
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString("[")
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
