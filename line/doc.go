// Package line models a multi-conductor overhead transmission corridor and
// derives its electrical matrices at power frequency.
//
// A System is an immutable set of conductors (phases, earth wires and an
// optional buried pipeline) over a homogeneous earth. From the geometry it
// derives, lazily and exactly once:
//
//   - 📐 Series impedance Z (Ω/km) with Carson earth-return correction.
//   - ⚡ Potential coefficients P (km/µF) by the method of images, and the
//     Maxwell capacitance matrix C = P⁻¹ (µF/km).
//   - ✂️ Kron-reduced phase matrices: earth wires eliminated, pipeline rows
//     dropped. Impedance reduces directly; capacitance reduces through the
//     elastance (potential) domain and is inverted afterwards.
//   - 🔄 Transposition-balanced matrices and their Fortescue sequence form
//     ordered [positive, negative, zero].
//
// Self terms use the geometric mean radius; potential self terms use the
// physical radius. Distances are metres, heights are metres above ground
// (negative for buried conductors), and per-length results are per km.
//
// Construct a System with NewSystem; all accessors are safe for concurrent
// use.
package line
