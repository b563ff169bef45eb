package line

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ohline/cmplx128"
	"github.com/katalvlaran/ohline/kron"
	"github.com/katalvlaran/ohline/seq"
)

// ReducedImpedance returns the phase-level series impedance in Ω/km with
// earth wires Kron-eliminated. Pipeline rows, when present, are simply
// dropped: the pipeline is a study victim, not part of the line proper.
func (s *System) ReducedImpedance() (*cmplx128.Dense, error) {
	return s.reduced.get(func() (*cmplx128.Dense, error) {
		z, err := s.Impedance()
		if err != nil {
			return nil, err
		}
		red, err := kron.Reduce(z, s.phaseIdx, s.earthIdx)
		if err != nil {
			return nil, fmt.Errorf("reduce impedance: %w", err)
		}
		return red, nil
	})
}

// ReducedCapacitance returns the phase-level capacitance matrix in µF/km.
// Capacitance does not reduce directly: the elimination happens on the
// potential coefficients and the reduced block is inverted afterwards.
func (s *System) ReducedCapacitance() (*mat.Dense, error) {
	return s.reducedCap.get(func() (*mat.Dense, error) {
		p, err := s.Potential()
		if err != nil {
			return nil, err
		}
		red, err := kron.ReduceElastance(p, s.phaseIdx, s.earthIdx)
		if err != nil {
			return nil, fmt.Errorf("reduce potential: %w", err)
		}
		return red, nil
	})
}

// BalancedImpedance returns the reduced impedance averaged as if the line
// were ideally transposed: one common self term, one common mutual term.
// The system must carry exactly three phase conductors.
func (s *System) BalancedImpedance() (*cmplx128.Dense, error) {
	return s.balanced.get(func() (*cmplx128.Dense, error) {
		if len(s.phaseIdx) != 3 {
			return nil, fmt.Errorf("%w: got %d", ErrNotThreePhase, len(s.phaseIdx))
		}
		red, err := s.ReducedImpedance()
		if err != nil {
			return nil, err
		}
		return seq.Balance(red)
	})
}

// BalancedSusceptance returns the transposition-balanced shunt susceptance
// matrix B = ω·C in µS/km, averaged in Maxwell form so that the mutual
// terms keep their negative sign.
func (s *System) BalancedSusceptance() (*mat.Dense, error) {
	return s.balancedSusc.get(func() (*mat.Dense, error) {
		if len(s.phaseIdx) != 3 {
			return nil, fmt.Errorf("%w: got %d", ErrNotThreePhase, len(s.phaseIdx))
		}
		c, err := s.ReducedCapacitance()
		if err != nil {
			return nil, err
		}
		var b mat.Dense
		b.Scale(s.Omega(), c)
		return seq.BalanceReal(&b)
	})
}

// SequenceImpedance returns the Fortescue transform of the balanced
// impedance, a diagonal matrix ordered [positive, negative, zero].
func (s *System) SequenceImpedance() (*cmplx128.Dense, error) {
	return s.sequence.get(func() (*cmplx128.Dense, error) {
		bal, err := s.BalancedImpedance()
		if err != nil {
			return nil, err
		}
		return seq.Transform(bal)
	})
}

// SequenceSusceptance returns the Fortescue transform of the balanced
// susceptance in µS/km, ordered [positive, negative, zero].
func (s *System) SequenceSusceptance() (*cmplx128.Dense, error) {
	return s.seqSuscept.get(func() (*cmplx128.Dense, error) {
		bal, err := s.BalancedSusceptance()
		if err != nil {
			return nil, err
		}
		return seq.Transform(cmplx128.FromReal(bal))
	})
}
