package line

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ohline/cmplx128"
)

// Physical constants in SI units.
const (
	mu0  = 4e-7 * math.Pi      // vacuum permeability, H/m
	eps0 = 8.8541878128e-12    // vacuum permittivity, F/m
)

// Params carries the ambient electrical parameters of the corridor.
type Params struct {
	// Frequency is the power frequency in Hz.
	Frequency float64
	// Resistivity is the homogeneous earth resistivity in Ω·m.
	Resistivity float64
}

// DefaultParams returns 50 Hz over 100 Ω·m earth.
func DefaultParams() Params {
	return Params{Frequency: 50, Resistivity: 100}
}

// System is an immutable conductor arrangement with cached derived matrices.
// All methods are safe for concurrent use.
type System struct {
	conductors  []Conductor
	frequency   float64
	resistivity float64

	byLabel  map[string]int
	phaseIdx []int
	earthIdx []int
	pipeIdx  []int

	dist  *mat.Dense // conductor-to-conductor distances, m
	image *mat.Dense // conductor-to-image distances, m

	impedance    lazyComplex
	reduced      lazyComplex
	balanced     lazyComplex
	sequence     lazyComplex
	seqSuscept   lazyComplex
	potential    lazyReal
	capacitance  lazyReal
	reducedCap   lazyReal
	balancedSusc lazyReal
}

type lazyComplex struct {
	once sync.Once
	m    *cmplx128.Dense
	err  error
}

func (l *lazyComplex) get(build func() (*cmplx128.Dense, error)) (*cmplx128.Dense, error) {
	l.once.Do(func() { l.m, l.err = build() })
	if l.err != nil {
		return nil, l.err
	}
	return l.m.Clone(), nil
}

type lazyReal struct {
	once sync.Once
	m    *mat.Dense
	err  error
}

func (l *lazyReal) get(build func() (*mat.Dense, error)) (*mat.Dense, error) {
	l.once.Do(func() { l.m, l.err = build() })
	if l.err != nil {
		return nil, l.err
	}
	return mat.DenseCopyOf(l.m), nil
}

// NewSystem validates the conductor set and precomputes the distance
// geometry. Conductors are kept in the given order; that order fixes the
// row and column assignment of every derived matrix.
func NewSystem(conductors []Conductor, p Params) (*System, error) {
	if len(conductors) == 0 {
		return nil, ErrNoConductors
	}
	if p.Frequency <= 0 {
		return nil, fmt.Errorf("%w: got %g Hz", ErrNonPositiveFrequency, p.Frequency)
	}
	if p.Resistivity <= 0 {
		return nil, fmt.Errorf("%w: got %g Ω·m", ErrNonPositiveResistivity, p.Resistivity)
	}

	s := &System{
		conductors:  append([]Conductor(nil), conductors...),
		frequency:   p.Frequency,
		resistivity: p.Resistivity,
		byLabel:     make(map[string]int, len(conductors)),
	}
	for i, c := range s.conductors {
		if err := validateConductor(c); err != nil {
			return nil, fmt.Errorf("conductor %d (%q): %w", i, c.Label, err)
		}
		if _, dup := s.byLabel[c.Label]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, c.Label)
		}
		s.byLabel[c.Label] = i
		switch c.Role {
		case RolePhase:
			s.phaseIdx = append(s.phaseIdx, i)
		case RoleEarth:
			s.earthIdx = append(s.earthIdx, i)
		case RolePipeline:
			s.pipeIdx = append(s.pipeIdx, i)
		}
	}

	s.buildGeometry()
	return s, nil
}

func validateConductor(c Conductor) error {
	switch {
	case c.Label == "":
		return fmt.Errorf("%w: empty label", ErrBadConductor)
	case c.Role != RolePhase && c.Role != RoleEarth && c.Role != RolePipeline:
		return fmt.Errorf("%w: unknown role %d", ErrBadConductor, c.Role)
	case c.GMR <= 0:
		return fmt.Errorf("%w: GMR must be positive, got %g m", ErrBadConductor, c.GMR)
	case c.Radius <= 0:
		return fmt.Errorf("%w: radius must be positive, got %g m", ErrBadConductor, c.Radius)
	case c.RAC < 0:
		return fmt.Errorf("%w: AC resistance must not be negative, got %g Ω/km", ErrBadConductor, c.RAC)
	case c.Y == 0:
		return fmt.Errorf("%w: conductor may not sit at ground level", ErrBadConductor)
	}
	return nil
}

// buildGeometry fills the direct and image distance matrices. The image of a
// conductor at height y sits at −y, so the self image distance is 2|y|.
func (s *System) buildGeometry() {
	n := len(s.conductors)
	s.dist = mat.NewDense(n, n, nil)
	s.image = mat.NewDense(n, n, nil)
	for i, a := range s.conductors {
		s.image.Set(i, i, 2*math.Abs(a.Y))
		for j := i + 1; j < n; j++ {
			b := s.conductors[j]
			dx := a.X - b.X
			d := math.Hypot(dx, a.Y-b.Y)
			di := math.Hypot(dx, a.Y+b.Y)
			s.dist.Set(i, j, d)
			s.dist.Set(j, i, d)
			s.image.Set(i, j, di)
			s.image.Set(j, i, di)
		}
	}
}

// Conductors returns a copy of the conductor set in matrix order.
func (s *System) Conductors() []Conductor {
	return append([]Conductor(nil), s.conductors...)
}

// Frequency returns the power frequency in Hz.
func (s *System) Frequency() float64 { return s.frequency }

// Resistivity returns the earth resistivity in Ω·m.
func (s *System) Resistivity() float64 { return s.resistivity }

// Omega returns the angular frequency in rad/s.
func (s *System) Omega() float64 { return 2 * math.Pi * s.frequency }

// Index returns the matrix row of the conductor with the given label.
func (s *System) Index(label string) (int, error) {
	i, ok := s.byLabel[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return i, nil
}

// PhaseIndices returns the matrix rows of the phase conductors.
func (s *System) PhaseIndices() []int { return append([]int(nil), s.phaseIdx...) }

// EarthIndices returns the matrix rows of the earth wires.
func (s *System) EarthIndices() []int { return append([]int(nil), s.earthIdx...) }

// PipelineIndices returns the matrix rows of the pipeline conductors.
func (s *System) PipelineIndices() []int { return append([]int(nil), s.pipeIdx...) }
