// Package telegraph solves the longitudinal voltage and current profile of
// a pipeline section exposed to a uniform induced EMF, using the
// transmission line (telegrapher's) equations.
//
//   - 📈 Profile samples voltage and current along the section for open or
//     grounded terminations. Open ends give the parabolic worst-case
//     build-up; grounded ends follow the sinh distribution.
//   - 🔋 EquivalentVoltage collapses a section to a single source for
//     circuit-level studies, with the sinh(γL)/γL long-line correction.
//
// Distances are km, voltages V, currents A.
package telegraph
