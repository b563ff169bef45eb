// Package study orchestrates a full interference study from JSON input
// files to per-section results.
//
//   - 🗂️ Config loaders read the tower geometry, conductor catalogue,
//     pipeline construction, route trajectories and operating currents.
//     Current phasors accept engineering notation like "2000+0j" or
//     "(-1000-1732.05j)".
//   - 🧮 Sweep walks the sectionized route, rebuilds the corridor model at
//     each section's mean separation and accumulates the induced voltage
//     per section and in vector total.
//   - 🚦 Result grades the total against the usual 50 V and 100 V
//     interference thresholds.
package study
