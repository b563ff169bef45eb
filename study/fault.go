package study

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/ohline/induction"
	"github.com/katalvlaran/ohline/line"
)

// Touch voltage thresholds and the grounded-pipeline transfer estimate.
const (
	safeTouchVoltage      = 50.0  // V
	dangerousTouchVoltage = 100.0 // V
	touchTransferFactor   = 0.1
)

// FaultScenario describes one single-phase-to-earth fault case.
//
// SectionLength and GroundingResistance treat zero as "unset": a zero (or
// omitted) value selects the customary default at evaluation time, since a
// zero-length section and a perfectly grounded pipeline are both
// meaningless inputs. The same holds for an empty FaultedPhase.
type FaultScenario struct {
	Description         string  `json:"description"`
	FaultedPhase        string  `json:"faulted_phase_label"`
	FaultCurrent        Phasor  `json:"fault_current"`
	FaultDuration       float64 `json:"fault_duration"`       // s
	DistanceToFault     float64 `json:"distance_to_fault"`    // km
	SectionLength       float64 `json:"section_length"`       // km, 0 = default
	GroundingResistance float64 `json:"grounding_resistance"` // Ω, 0 = default
}

// FaultResult is the outcome of one fault scenario.
type FaultResult struct {
	Scenario FaultScenario
	// EMF is the screened per-km electromotive force, V/km.
	EMF complex128
	// Voltage is the EMF integrated over the section length, V.
	Voltage complex128
	// TouchVoltage estimates the voltage a person could bridge, V.
	TouchVoltage float64
	// Risk grades the touch voltage: LOW, MODERATE or HIGH.
	Risk string
}

// LoadFaultScenarios reads a JSON array of fault scenarios.
func LoadFaultScenarios(path string) ([]FaultScenario, error) {
	var out []FaultScenario
	return out, loadJSON(path, &out)
}

// withDefaults fills the customary scenario defaults: phase R, a 1 km
// section and 10 Ω pipeline grounding.
func (s FaultScenario) withDefaults() FaultScenario {
	if s.FaultedPhase == "" {
		s.FaultedPhase = "R"
	}
	if s.SectionLength == 0 {
		s.SectionLength = 1
	}
	if s.GroundingResistance == 0 {
		s.GroundingResistance = 10
	}
	return s
}

// EvaluateFaults runs every scenario against the corridor model: screened
// fault EMF, section voltage and the touch-voltage grading. A well-grounded
// pipeline transfers roughly a tenth of the induced voltage to touch.
func EvaluateFaults(sys *line.System, scenarios []FaultScenario) ([]FaultResult, error) {
	out := make([]FaultResult, 0, len(scenarios))
	for i, raw := range scenarios {
		sc := raw.withDefaults()
		emf, err := induction.FaultEMF(sys, sc.FaultedPhase, complex128(sc.FaultCurrent))
		if err != nil {
			return nil, fmt.Errorf("scenario %d (%s): %w", i+1, sc.Description, err)
		}
		voltage := emf * complex(sc.SectionLength, 0)
		touch := cmplx.Abs(voltage) * touchTransferFactor
		out = append(out, FaultResult{
			Scenario:     sc,
			EMF:          emf,
			Voltage:      voltage,
			TouchVoltage: touch,
			Risk:         gradeTouchVoltage(touch),
		})
	}
	return out, nil
}

func gradeTouchVoltage(v float64) string {
	switch {
	case v > dangerousTouchVoltage:
		return "HIGH"
	case v > safeTouchVoltage:
		return "MODERATE"
	default:
		return "LOW"
	}
}
