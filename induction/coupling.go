package induction

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ohline/cmplx128"
	"github.com/katalvlaran/ohline/line"
)

var (
	// ErrNoPipeline is returned when the system carries no pipeline conductor.
	ErrNoPipeline = errors.New("induction: system has no pipeline conductor")
	// ErrUnknownPhase is returned when a label does not name a phase conductor.
	ErrUnknownPhase = errors.New("induction: label is not a phase conductor")
	// ErrMissingCurrent is returned when a phase conductor has no current assigned.
	ErrMissingCurrent = errors.New("induction: missing phase current")
)

// Currents assigns a current phasor in amperes to each phase label.
type Currents map[string]complex128

// EarthCurrents returns the currents induced in the earth wires by the given
// phase currents, in system earth-wire order. Earth wires are grounded at
// both ends, so the loop equation Z_ee·I_e + Z_ep·I_p = 0 fixes them.
func EarthCurrents(sys *line.System, currents Currents) ([]complex128, error) {
	z, err := sys.Impedance()
	if err != nil {
		return nil, err
	}
	ip, err := phaseVector(sys, currents)
	if err != nil {
		return nil, err
	}
	return earthCurrents(sys, z, ip)
}

// EMF returns the steady-state longitudinal electromotive force in V/km
// impressed on the pipeline by the phase currents, with the shielding
// contribution of the induced earth-wire currents included.
func EMF(sys *line.System, currents Currents) (complex128, error) {
	pipes := sys.PipelineIndices()
	if len(pipes) == 0 {
		return 0, ErrNoPipeline
	}
	p := pipes[0]

	z, err := sys.Impedance()
	if err != nil {
		return 0, err
	}
	ip, err := phaseVector(sys, currents)
	if err != nil {
		return 0, err
	}
	ie, err := earthCurrents(sys, z, ip)
	if err != nil {
		return 0, err
	}

	var emf complex128
	for i, row := range sys.PhaseIndices() {
		emf += z.At(p, row) * ip[i]
	}
	for i, row := range sys.EarthIndices() {
		emf += z.At(p, row) * ie[i]
	}
	return emf, nil
}

// phaseVector collects the phase currents in system phase order.
func phaseVector(sys *line.System, currents Currents) ([]complex128, error) {
	conds := sys.Conductors()
	phases := sys.PhaseIndices()
	ip := make([]complex128, len(phases))
	for i, row := range phases {
		c, ok := currents[conds[row].Label]
		if !ok {
			return nil, fmt.Errorf("%w: phase %q", ErrMissingCurrent, conds[row].Label)
		}
		ip[i] = c
	}
	return ip, nil
}

func earthCurrents(sys *line.System, z *cmplx128.Dense, ip []complex128) ([]complex128, error) {
	earth := sys.EarthIndices()
	if len(earth) == 0 {
		return nil, nil
	}
	zee, err := z.Take(earth, earth)
	if err != nil {
		return nil, err
	}
	zep, err := z.Take(earth, sys.PhaseIndices())
	if err != nil {
		return nil, err
	}
	rhs, err := cmplx128.MulVec(zep, ip)
	if err != nil {
		return nil, err
	}
	ie, err := cmplx128.SolveVec(zee, rhs)
	if err != nil {
		return nil, fmt.Errorf("earth-wire loop equation: %w", err)
	}
	for i := range ie {
		ie[i] = -ie[i]
	}
	return ie, nil
}
