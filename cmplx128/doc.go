// Package cmplx128 provides dense complex128 linear algebra primitives for
// AC circuit and electromagnetic coupling computations.
//
// 🚀 What is cmplx128?
//
//	A small, deterministic complex matrix kernel covering exactly what
//	phasor-domain network analysis needs:
//	  • Dense — row-major complex128 matrix with bounds-checked access
//	  • Add / Sub / Mul / Scale / MulVec element and product kernels
//	  • LU decomposition with partial pivoting, Solve and Inverse
//	  • Take — submatrix extraction by arbitrary index sets
//	  • Symmetric — symmetry check under a numeric tolerance
//
// ✨ Why a dedicated kernel?
//
//	Series impedance matrices are complex-valued end to end.  gonum's mat
//	package carries complex storage (mat.CDense) but no complex solve or
//	inversion, so the factorization lives here; CDense interop is provided
//	for callers that already speak gonum.
//
// ⚙️ Usage:
//
//	z, _ := cmplx128.NewDense(3, 3)
//	z.Set(0, 0, complex(0.08, 0.72))
//	...
//	inv, err := cmplx128.Inverse(z) // ErrSingular on degenerate input
//
// All kernels are pure: operands are never mutated, results are freshly
// allocated. Errors are package sentinels matched with errors.Is.
package cmplx128
