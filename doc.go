// Package ohline computes AC interference between overhead power lines and
// buried pipelines, from tower geometry to the voltage a pipeline picks up.
//
// 🚀 What is ohline?
//
//	An engineering library that brings together:
//		• Carson series impedance & method-of-images potential matrices
//		• Kron reduction with the proper impedance vs. elastance semantics
//		• Transposition balancing & Fortescue sequence transformation
//		• Steady-state and fault EMF on a pipeline, with earth-wire screening
//		• Pipeline electrical parameters from construction data or published values
//		• Telegrapher's-equation voltage profiles along exposure sections
//		• Route sectionizing & full study orchestration from JSON inputs
//
// ✨ Why choose ohline?
//
//   - Reference-grade numbers – pinned against worked textbook examples
//   - Explicit errors – every degenerate input has a named sentinel
//   - Concurrency-safe – corridor models memoize their derived matrices
//
// Under the hood, everything is organized by concern:
//
//	cmplx128/  — dense complex matrices with LU solve & inverse
//	kron/      — matrix reduction for grounded and dropped conductors
//	seq/       — transposition balancing & symmetrical components
//	line/      — the multi-conductor corridor model
//	induction/ — steady-state and fault coupling onto the pipeline
//	pipeline/  — buried pipeline series impedance & shunt admittance
//	telegraph/ — longitudinal voltage & current profiles
//	route/     — trajectory sectionizing
//	study/     — JSON inputs & section sweep
//	report/    — result tables & profile plots
//	cmd/ohline — the study runner
//
// Quick ASCII picture:
//
//	  R────Y────B      ← phase conductors
//	       │E          ← earth wire
//	═══════╪══════════ ← ground
//	              ●PL  ← buried pipeline
//
// Start with line.NewSystem, or run cmd/ohline against the JSON inputs.
//
//	go get github.com/katalvlaran/ohline
package ohline
