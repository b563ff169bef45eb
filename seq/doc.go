// Package seq balances three-phase matrices under the perfect-transposition
// assumption and maps them into symmetrical (Fortescue) sequence components.
//
// Balancing replaces a reduced 3×3 phase matrix with one self value (mean of
// the diagonal) and one mutual value (mean of the three distinct off-diagonal
// entries). For susceptance the averaging is applied to B = ω·C in Maxwell
// form, not to a nodal admittance form. Averaging at the wrong stage yields
// a physically different balanced susceptance, so the package exposes the
// Maxwell-form entry point only.
//
// The sequence transform uses the fixed rotation operator a = e^(j2π/3) and
// the operator matrix H with rows [1,1,1], [a²,a,1], [a,a²,1], producing
// sequence matrices in [positive, negative, zero] order via H⁻¹·M·H.
// H and H⁻¹ are geometry-independent constants.
package seq
