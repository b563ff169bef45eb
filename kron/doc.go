// Package kron implements block (Kron) elimination of non-observed conductors
// from network matrices.
//
// 🚀 What is Kron reduction?
//
//	Given a full matrix M partitioned by "keep" and "eliminate" index sets
//	into blocks M_aa, M_ab, M_ba, M_bb, the elimination
//
//	    M' = M_aa − M_ab · M_bb⁻¹ · M_ba
//
//	removes the eliminated variables (typically continuously grounded earth
//	wires) while preserving their aggregate electrical effect on the rest.
//
// Two physical semantics share that algebra, and the distinction is
// load-bearing:
//
//   - Impedance matrices: the eliminated block result IS the reduced matrix
//     (Reduce, ReduceReal).
//   - Potential-coefficient matrices: P is an elastance (inverse-capacitance)
//     quantity. The elimination is applied to P itself and the reduced
//     CAPACITANCE is the inverse of that result:
//     C' = (P_aa − P_ab·P_bb⁻¹·P_ba)⁻¹  (ReduceElastance).
//
// Treating P like an impedance matrix, skipping the final inversion, is
// physically wrong and is exactly the mistake this package's split API
// prevents.
//
// An empty eliminate set returns the kept block unchanged; a singular M_bb
// surfaces as an error (cmplx128.ErrSingular or ErrSingularBlock).
package kron
