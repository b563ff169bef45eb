package study

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/ohline/induction"
	"github.com/katalvlaran/ohline/line"
	"github.com/katalvlaran/ohline/route"
)

// PipelineLabel is the conductor label the sweep assigns to the pipeline.
const PipelineLabel = "Pipeline"

// SectionResult is the coupling outcome for one exposure section.
type SectionResult struct {
	Length     float64    // m
	Separation float64    // m
	EMF        complex128 // V/km
	Voltage    complex128 // EMF · length, V
}

// Result is the outcome of a full route sweep.
type Result struct {
	Sections []SectionResult
	// Total is the vector sum of the section voltages in V.
	Total complex128
}

// TotalLength returns the swept pipeline length in metres.
func (r *Result) TotalLength() float64 {
	var sum float64
	for _, s := range r.Sections {
		sum += s.Length
	}
	return sum
}

// MaxEMF returns the largest section EMF magnitude in V/km.
func (r *Result) MaxEMF() float64 {
	var max float64
	for _, s := range r.Sections {
		if v := cmplx.Abs(s.EMF); v > max {
			max = v
		}
	}
	return max
}

// MeanEMF returns the mean section EMF magnitude in V/km.
func (r *Result) MeanEMF() float64 {
	if len(r.Sections) == 0 {
		return 0
	}
	var sum float64
	for _, s := range r.Sections {
		sum += cmplx.Abs(s.EMF)
	}
	return sum / float64(len(r.Sections))
}

// Assessment grades the total induced voltage against the customary
// 50 V and 100 V interference thresholds.
func (r *Result) Assessment() string {
	switch v := cmplx.Abs(r.Total); {
	case v > 100:
		return "HIGH - mitigation measures required"
	case v > 50:
		return "MODERATE - monitor and assess"
	default:
		return "LOW - within acceptable limits"
	}
}

// Sweep evaluates the steady-state coupling section by section: the
// corridor model is rebuilt with the pipeline at each section's mean
// separation and the per-km EMF scaled by the section length.
func Sweep(lineCfg LineConfig, pipeCfg PipelineConfig, currents Currents, sections []route.Section) (*Result, error) {
	base, err := lineCfg.Conductors()
	if err != nil {
		return nil, err
	}
	phaseCurrents, err := lineCfg.PhaseCurrents(currents)
	if err != nil {
		return nil, err
	}

	res := &Result{Sections: make([]SectionResult, 0, len(sections))}
	for i, sec := range sections {
		pl, err := pipeCfg.Conductor(PipelineLabel, sec.Separation)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i+1, err)
		}
		sys, err := line.NewSystem(append(append([]line.Conductor(nil), base...), pl), lineCfg.Params())
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i+1, err)
		}
		emf, err := induction.EMF(sys, phaseCurrents)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i+1, err)
		}

		voltage := emf * complex(sec.Length/1000, 0)
		res.Sections = append(res.Sections, SectionResult{
			Length:     sec.Length,
			Separation: sec.Separation,
			EMF:        emf,
			Voltage:    voltage,
		})
		res.Total += voltage
	}
	return res, nil
}
