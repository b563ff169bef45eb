package study

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/ohline/line"
	"github.com/katalvlaran/ohline/pipeline"
	"github.com/katalvlaran/ohline/route"
)

var (
	// ErrUnknownConductorType is returned when tower geometry references a
	// type missing from the conductor catalogue.
	ErrUnknownConductorType = errors.New("study: unknown conductor type")
	// ErrBadPhasor is returned for current strings that do not parse.
	ErrBadPhasor = errors.New("study: invalid phasor")
	// ErrMissingCircuit is returned when the current table lacks a circuit
	// or phase the tower geometry references.
	ErrMissingCircuit = errors.New("study: no current for circuit")
)

// Phasor is a complex current that unmarshals from engineering notation,
// with either i or j as the imaginary unit and optional parentheses.
type Phasor complex128

// UnmarshalJSON implements json.Unmarshaler.
func (p *Phasor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrBadPhasor, data)
	}
	c, err := strconv.ParseComplex(strings.ReplaceAll(s, "j", "i"), 128)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadPhasor, s)
	}
	*p = Phasor(c)
	return nil
}

// SystemParameters is the ambient block of a line configuration.
type SystemParameters struct {
	Frequency        float64 `json:"frequency"`
	EarthResistivity float64 `json:"earth_resistivity"`
}

// ConductorType is one entry of the conductor catalogue. GMRImpedance feeds
// the series impedance, GMRPotential the potential coefficients.
type ConductorType struct {
	GMRImpedance float64 `json:"gmr_impedance"`
	GMRPotential float64 `json:"gmr_potential"`
	RAC          float64 `json:"r_ac"`
}

// TowerPosition places one conductor on the tower. A null circuit marks an
// earth wire.
type TowerPosition struct {
	ConductorID string  `json:"conductor_id"`
	Type        string  `json:"type"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	CircuitID   string  `json:"circuit_id"`
	Phase       string  `json:"phase"`
}

// LineConfig mirrors the overhead line JSON input.
type LineConfig struct {
	Name             string                   `json:"name"`
	SystemParameters SystemParameters         `json:"system_parameters"`
	ConductorTypes   map[string]ConductorType `json:"conductor_types"`
	TowerGeometry    []TowerPosition          `json:"tower_geometry"`
}

// Params returns the ambient parameters of the line.
func (c LineConfig) Params() line.Params {
	return line.Params{
		Frequency:   c.SystemParameters.Frequency,
		Resistivity: c.SystemParameters.EarthResistivity,
	}
}

// Conductors resolves the tower geometry against the conductor catalogue.
func (c LineConfig) Conductors() ([]line.Conductor, error) {
	out := make([]line.Conductor, 0, len(c.TowerGeometry))
	for _, g := range c.TowerGeometry {
		props, ok := c.ConductorTypes[g.Type]
		if !ok {
			return nil, fmt.Errorf("%w: %q for conductor %q", ErrUnknownConductorType, g.Type, g.ConductorID)
		}
		role := line.RolePhase
		if g.CircuitID == "" {
			role = line.RoleEarth
		}
		out = append(out, line.Conductor{
			Label:   g.ConductorID,
			Role:    role,
			X:       g.X,
			Y:       g.Y,
			GMR:     props.GMRImpedance,
			Radius:  props.GMRPotential,
			RAC:     props.RAC,
			Circuit: g.CircuitID,
			Phase:   g.Phase,
		})
	}
	return out, nil
}

// PhysicalProperties mirrors the pipeline construction block.
type PhysicalProperties struct {
	OuterDiameterM       float64 `json:"outer_diameter_m"`
	SteelThicknessM      float64 `json:"steel_thickness_m"`
	SteelRelPermeability float64 `json:"steel_rel_permeability"`
	SteelResistivityOhmm float64 `json:"steel_resistivity_ohmm"`
}

// CoatingProperties mirrors the coating block.
type CoatingProperties struct {
	Type            string  `json:"type"`
	ThicknessM      float64 `json:"thickness_m"`
	ResistivityOhmm float64 `json:"resistivity_ohmm"`
	RelPermittivity float64 `json:"rel_permittivity"`
}

// Position places the pipeline relative to the line centre.
type Position struct {
	XSeparationM float64 `json:"x_separation_m"`
	BurialDepthM float64 `json:"burial_depth_m"`
}

// PipelineConfig mirrors the pipeline JSON input.
type PipelineConfig struct {
	Name               string             `json:"name"`
	PhysicalProperties PhysicalProperties `json:"physical_properties"`
	CoatingProperties  CoatingProperties  `json:"coating_properties"`
	Position           Position           `json:"position"`
}

// Physical converts the configuration to the pipeline model input.
func (c PipelineConfig) Physical() pipeline.Physical {
	return pipeline.Physical{
		OuterDiameter:    c.PhysicalProperties.OuterDiameterM,
		WallThickness:    c.PhysicalProperties.SteelThicknessM,
		SteelResistivity: c.PhysicalProperties.SteelResistivityOhmm,
		RelPermeability:  c.PhysicalProperties.SteelRelPermeability,
		Coating: pipeline.Coating{
			Thickness:       c.CoatingProperties.ThicknessM,
			Resistivity:     c.CoatingProperties.ResistivityOhmm,
			RelPermittivity: c.CoatingProperties.RelPermittivity,
		},
	}
}

// Conductor places the pipeline at the given horizontal separation in metres.
func (c PipelineConfig) Conductor(label string, separation float64) (line.Conductor, error) {
	return c.Physical().Conductor(label, separation, c.Position.BurialDepthM)
}

// Trajectory mirrors a surveyed route JSON input.
type Trajectory struct {
	Name         string       `json:"name"`
	CoordinatesM [][3]float64 `json:"coordinates_m"`
}

// Points converts the raw coordinate rows to route points.
func (t Trajectory) Points() []route.Point {
	out := make([]route.Point, len(t.CoordinatesM))
	for i, c := range t.CoordinatesM {
		out[i] = route.Point{X: c[0], Y: c[1], Z: c[2]}
	}
	return out
}

// Currents maps circuit → phase → operating current.
type Currents map[string]map[string]Phasor

// PhaseCurrents flattens the circuit table onto conductor labels for the
// given tower geometry.
func (c LineConfig) PhaseCurrents(currents Currents) (map[string]complex128, error) {
	out := make(map[string]complex128)
	for _, g := range c.TowerGeometry {
		if g.CircuitID == "" {
			continue
		}
		circuit, ok := currents[g.CircuitID]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingCircuit, g.CircuitID)
		}
		i, ok := circuit[g.Phase]
		if !ok {
			return nil, fmt.Errorf("%w: %q phase %q", ErrMissingCircuit, g.CircuitID, g.Phase)
		}
		out[g.ConductorID] = complex128(i)
	}
	return out, nil
}

// LoadLineConfig reads an overhead line configuration file.
func LoadLineConfig(path string) (LineConfig, error) {
	var c LineConfig
	return c, loadJSON(path, &c)
}

// LoadPipelineConfig reads a pipeline configuration file.
func LoadPipelineConfig(path string) (PipelineConfig, error) {
	var c PipelineConfig
	return c, loadJSON(path, &c)
}

// LoadTrajectory reads a surveyed route file.
func LoadTrajectory(path string) (Trajectory, error) {
	var t Trajectory
	return t, loadJSON(path, &t)
}

// LoadCurrents reads the operating current table. A top-level "description"
// entry is informational and skipped.
func LoadCurrents(path string) (Currents, error) {
	var raw map[string]json.RawMessage
	if err := loadJSON(path, &raw); err != nil {
		return nil, err
	}
	out := make(Currents, len(raw))
	for circuit, msg := range raw {
		if circuit == "description" {
			continue
		}
		var phases map[string]Phasor
		if err := json.Unmarshal(msg, &phases); err != nil {
			return nil, fmt.Errorf("circuit %q: %w", circuit, err)
		}
		out[circuit] = phases
	}
	return out, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
