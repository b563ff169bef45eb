package induction

import (
	"fmt"

	"github.com/katalvlaran/ohline/cmplx128"
	"github.com/katalvlaran/ohline/line"
)

// ScreeningFactor returns the earth-wire screening factor seen by the
// pipeline for a single-phase-to-earth fault on the named phase:
//
//	k = (Z_pf − Z_pe·Z_ee⁻¹·Z_ef) / Z_pf
//
// where p is the pipeline, f the faulted phase and e the earth wires.
// A system without earth wires screens nothing and k is exactly 1.
func ScreeningFactor(sys *line.System, phase string) (complex128, error) {
	p, f, err := pipelineAndPhase(sys, phase)
	if err != nil {
		return 0, err
	}
	earth := sys.EarthIndices()
	if len(earth) == 0 {
		return 1, nil
	}

	z, err := sys.Impedance()
	if err != nil {
		return 0, err
	}
	zee, err := z.Take(earth, earth)
	if err != nil {
		return 0, err
	}
	zef, err := z.Take(earth, []int{f})
	if err != nil {
		return 0, err
	}
	x, err := cmplx128.Solve(zee, zef)
	if err != nil {
		return 0, fmt.Errorf("earth-wire screening: %w", err)
	}

	var corr complex128
	for i := range earth {
		corr += z.At(p, earth[i]) * x.At(i, 0)
	}
	zpf := z.At(p, f)
	return (zpf - corr) / zpf, nil
}

// FaultEMF returns the electromotive force in V/km impressed on the
// pipeline by a fault current flowing in the named phase and returning
// through the earth, screened by the earth wires:
//
//	EMF = −Z_pf · k · I_fault
func FaultEMF(sys *line.System, phase string, current complex128) (complex128, error) {
	p, f, err := pipelineAndPhase(sys, phase)
	if err != nil {
		return 0, err
	}
	k, err := ScreeningFactor(sys, phase)
	if err != nil {
		return 0, err
	}
	z, err := sys.Impedance()
	if err != nil {
		return 0, err
	}
	return -z.At(p, f) * k * current, nil
}

// pipelineAndPhase resolves the pipeline row and the row of the named phase.
func pipelineAndPhase(sys *line.System, phase string) (p, f int, err error) {
	pipes := sys.PipelineIndices()
	if len(pipes) == 0 {
		return 0, 0, ErrNoPipeline
	}
	f, err = sys.Index(phase)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownPhase, phase)
	}
	if sys.Conductors()[f].Role != line.RolePhase {
		return 0, 0, fmt.Errorf("%w: %q is a %s conductor", ErrUnknownPhase, phase, sys.Conductors()[f].Role)
	}
	return pipes[0], f, nil
}
