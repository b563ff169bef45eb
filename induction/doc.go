// Package induction computes the electromotive force a power line impresses
// on a nearby buried pipeline, per km of parallel exposure.
//
//   - 🔌 EMF evaluates steady-state inductive coupling: earth-wire currents
//     induced by the phase currents are solved first, then the pipeline row
//     of the impedance matrix sums both contributions.
//   - ⚡ ScreeningFactor quantifies how much the earth wires shield the
//     pipeline during a single-phase-to-earth fault; without earth wires it
//     is exactly one.
//   - 💥 FaultEMF applies the screening factor to a fault current on a
//     named phase.
//
// All inputs are phasors at the system frequency; results are V/km.
package induction
