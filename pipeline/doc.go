// Package pipeline derives the per-km electrical parameters of a buried,
// coated steel pipeline.
//
// Two entry points cover the two ways studies specify a pipeline:
//
//   - 🧱 Compute builds the series impedance and shunt admittance from the
//     physical description: steel geometry and material for the internal
//     impedance with skin effect, Carson's earth return for the external
//     part, and the coating for conductance and capacitance to remote earth.
//   - 📋 Calibrated accepts a published impedance/admittance pair directly,
//     for reproducing studies that tabulate measured values.
//
// Both paths end in Derive, which closes the set with the propagation
// constant γ = √(z·y) and the characteristic impedance Zc = √(z/y).
package pipeline
