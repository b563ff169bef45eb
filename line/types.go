package line

import "errors"

// Role classifies a conductor within the corridor.
type Role int

const (
	// RolePhase carries load current and participates in sequence analysis.
	RolePhase Role = iota
	// RoleEarth is a grounded shield wire, eliminated by Kron reduction.
	RoleEarth
	// RolePipeline is the buried victim conductor of the coupling study.
	RolePipeline
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RolePhase:
		return "phase"
	case RoleEarth:
		return "earth"
	case RolePipeline:
		return "pipeline"
	default:
		return "unknown"
	}
}

// Conductor describes one conductor of the corridor.
//
// X and Y are the horizontal and vertical coordinates in metres; Y is
// measured from ground level and is negative for buried conductors.
// GMR is the geometric mean radius in metres, used for self impedance.
// Radius is the physical outer radius in metres, used for self potential.
// RAC is the AC resistance in Ω/km.
type Conductor struct {
	Label  string
	Role   Role
	X, Y   float64
	GMR    float64
	Radius float64
	RAC    float64

	// Circuit and Phase carry the electrical assignment from the survey
	// data. They do not enter the matrix computations.
	Circuit string
	Phase   string
}

var (
	// ErrNoConductors is returned when a System is built with no conductors.
	ErrNoConductors = errors.New("line: system needs at least one conductor")
	// ErrBadConductor is returned when a conductor fails validation.
	ErrBadConductor = errors.New("line: invalid conductor")
	// ErrDuplicateLabel is returned when two conductors share a label.
	ErrDuplicateLabel = errors.New("line: duplicate conductor label")
	// ErrUnknownLabel is returned by lookups for labels not in the system.
	ErrUnknownLabel = errors.New("line: unknown conductor label")
	// ErrNonPositiveFrequency rejects frequencies ≤ 0 Hz.
	ErrNonPositiveFrequency = errors.New("line: frequency must be positive")
	// ErrNonPositiveResistivity rejects earth resistivities ≤ 0 Ω·m.
	ErrNonPositiveResistivity = errors.New("line: earth resistivity must be positive")
	// ErrNotThreePhase is returned by balanced and sequence accessors when
	// the system does not carry exactly three phase conductors.
	ErrNotThreePhase = errors.New("line: system does not have exactly three phase conductors")
	// ErrSingularMatrix wraps inversion failures in derived matrices.
	ErrSingularMatrix = errors.New("line: singular matrix")
)
