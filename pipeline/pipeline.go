package pipeline

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/ohline/line"
)

const (
	mu0  = 4e-7 * math.Pi   // vacuum permeability, H/m
	eps0 = 8.8541878128e-12 // vacuum permittivity, F/m
)

var (
	// ErrBadGeometry rejects non-positive pipe or coating dimensions.
	ErrBadGeometry = errors.New("pipeline: invalid geometry")
	// ErrBadMaterial rejects non-positive material constants.
	ErrBadMaterial = errors.New("pipeline: invalid material constant")
	// ErrZeroAdmittance is returned when the shunt admittance vanishes and
	// the characteristic impedance is undefined.
	ErrZeroAdmittance = errors.New("pipeline: shunt admittance is zero")
)

// Coating describes the insulating wrap between steel and soil.
type Coating struct {
	Thickness       float64 // m
	Resistivity     float64 // Ω·m
	RelPermittivity float64
}

// Physical describes a coated steel pipeline by construction data.
type Physical struct {
	OuterDiameter    float64 // m
	WallThickness    float64 // m
	SteelResistivity float64 // Ω·m
	RelPermeability  float64
	Coating          Coating
}

// Parameters is the closed per-km electrical description of the pipeline.
type Parameters struct {
	Z     complex128 // series impedance, Ω/km
	Y     complex128 // shunt admittance, S/km
	Gamma complex128 // propagation constant, 1/km
	Zc    complex128 // characteristic impedance, Ω
}

func (p Physical) validate() error {
	switch {
	case p.OuterDiameter <= 0:
		return fmt.Errorf("%w: outer diameter %g m", ErrBadGeometry, p.OuterDiameter)
	case p.WallThickness <= 0 || 2*p.WallThickness >= p.OuterDiameter:
		return fmt.Errorf("%w: wall thickness %g m", ErrBadGeometry, p.WallThickness)
	case p.Coating.Thickness <= 0:
		return fmt.Errorf("%w: coating thickness %g m", ErrBadGeometry, p.Coating.Thickness)
	case p.SteelResistivity <= 0:
		return fmt.Errorf("%w: steel resistivity %g Ω·m", ErrBadMaterial, p.SteelResistivity)
	case p.RelPermeability <= 0:
		return fmt.Errorf("%w: relative permeability %g", ErrBadMaterial, p.RelPermeability)
	case p.Coating.Resistivity <= 0:
		return fmt.Errorf("%w: coating resistivity %g Ω·m", ErrBadMaterial, p.Coating.Resistivity)
	case p.Coating.RelPermittivity <= 0:
		return fmt.Errorf("%w: coating permittivity %g", ErrBadMaterial, p.Coating.RelPermittivity)
	}
	return nil
}

// Compute derives the per-km parameters from the physical description at
// the ambient frequency and earth resistivity.
//
// The series impedance sums the internal impedance of the steel wall with
// skin effect, k·ρ/(2π·r·t), and the Carson external term with the outer
// radius as equivalent radius. The shunt admittance is the leakage
// conductance and capacitance of the coating to remote earth.
func Compute(p Physical, env line.Params) (Parameters, error) {
	if err := p.validate(); err != nil {
		return Parameters{}, err
	}
	if env.Frequency <= 0 {
		return Parameters{}, line.ErrNonPositiveFrequency
	}
	if env.Resistivity <= 0 {
		return Parameters{}, line.ErrNonPositiveResistivity
	}

	omega := 2 * math.Pi * env.Frequency
	r := p.OuterDiameter / 2

	// Internal impedance of the steel wall, skin depth well below thickness.
	k := cmplx.Sqrt(complex(0, omega*p.RelPermeability*mu0/p.SteelResistivity))
	zInt := k * complex(p.SteelResistivity/(2*math.Pi*r*p.WallThickness)*1e3, 0)

	// External Carson term with earth return.
	derc := line.CarsonDepth(env.Resistivity, env.Frequency)
	rEarth := math.Pi * math.Pi * env.Frequency * 1e-4
	x := omega * mu0 / (2 * math.Pi) * 1e3
	z := zInt + complex(rEarth, x*math.Log(derc/r))

	// Coating leakage and capacitance per km of pipe surface.
	g := 2 * math.Pi * r / (p.Coating.Resistivity * p.Coating.Thickness) * 1e3
	b := omega * 2 * math.Pi * r * p.Coating.RelPermittivity * eps0 / p.Coating.Thickness * 1e3

	return Derive(z, complex(g, b))
}

// Calibrated closes the parameter set around a published impedance and
// admittance pair, bypassing the physical model.
func Calibrated(z, y complex128) (Parameters, error) {
	return Derive(z, y)
}

// Derive completes Parameters from a series impedance in Ω/km and a shunt
// admittance in S/km.
func Derive(z, y complex128) (Parameters, error) {
	if y == 0 {
		return Parameters{}, ErrZeroAdmittance
	}
	return Parameters{
		Z:     z,
		Y:     y,
		Gamma: cmplx.Sqrt(z * y),
		Zc:    cmplx.Sqrt(z / y),
	}, nil
}

// Conductor places the pipeline in a corridor model. The equivalent radius
// and GMR are the outer radius; the AC resistance follows from the steel
// annulus cross-section.
func (p Physical) Conductor(label string, x, depth float64) (line.Conductor, error) {
	if err := p.validate(); err != nil {
		return line.Conductor{}, err
	}
	if depth <= 0 {
		return line.Conductor{}, fmt.Errorf("%w: burial depth %g m", ErrBadGeometry, depth)
	}
	ro := p.OuterDiameter / 2
	ri := ro - p.WallThickness
	rac := p.SteelResistivity / (math.Pi * (ro*ro - ri*ri)) * 1e3
	return line.Conductor{
		Label:  label,
		Role:   line.RolePipeline,
		X:      x,
		Y:      -depth,
		GMR:    ro,
		Radius: ro,
		RAC:    rac,
	}, nil
}
