package telegraph

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/ohline/pipeline"
)

// Boundary selects the termination of both section ends.
type Boundary int

const (
	// Open leaves both ends floating, the worst case for touch voltage.
	Open Boundary = iota
	// Grounded bonds both ends to remote earth.
	Grounded
)

// String implements fmt.Stringer.
func (b Boundary) String() string {
	switch b {
	case Open:
		return "open"
	case Grounded:
		return "grounded"
	default:
		return "unknown"
	}
}

var (
	// ErrBadLength rejects non-positive section lengths.
	ErrBadLength = errors.New("telegraph: section length must be positive")
	// ErrBadSamples rejects profiles with fewer than two sample points.
	ErrBadSamples = errors.New("telegraph: need at least two sample points")
	// ErrBadBoundary is returned for an unknown termination.
	ErrBadBoundary = errors.New("telegraph: unknown boundary condition")
	// ErrBadParameters is returned when the pipeline parameters cannot
	// support the requested solution.
	ErrBadParameters = errors.New("telegraph: degenerate pipeline parameters")
)

// Options tunes the profile sampling.
type Options struct {
	// Samples is the number of equidistant points, section ends included.
	Samples int
}

// DefaultOptions samples 101 points, a 1% grid of the section length.
func DefaultOptions() Options {
	return Options{Samples: 101}
}

// Sample is one point of the longitudinal profile.
type Sample struct {
	Distance float64    // km from the section start
	Voltage  complex128 // pipeline-to-earth voltage, V
	Current  complex128 // longitudinal pipeline current, A
}

// Profile returns the voltage and current along a section of the given
// length under a uniform induced EMF (V/km).
//
// Open ends carry no current and the voltage builds up parabolically,
// e·x·(L−x)/L, vanishing at both ends and peaking mid-section. Grounded
// ends follow the distributed-source solution
//
//	V(x) = e/(γ·z) · sinh(γx)·sinh(γ(L−x))/sinh(γL),  I(x) = V(x)/Zc.
func Profile(par pipeline.Parameters, emf complex128, length float64, b Boundary, opts Options) ([]Sample, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: got %g km", ErrBadLength, length)
	}
	if opts.Samples < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSamples, opts.Samples)
	}

	out := make([]Sample, opts.Samples)
	step := length / float64(opts.Samples-1)
	switch b {
	case Open:
		for i := range out {
			x := float64(i) * step
			out[i] = Sample{
				Distance: x,
				Voltage:  emf * complex(x*(length-x)/length, 0),
			}
		}
	case Grounded:
		if par.Gamma == 0 || par.Z == 0 || par.Zc == 0 {
			return nil, ErrBadParameters
		}
		gl := par.Gamma * complex(length, 0)
		scale := emf / (par.Gamma * par.Z) / cmplx.Sinh(gl)
		for i := range out {
			x := float64(i) * step
			gx := par.Gamma * complex(x, 0)
			v := scale * cmplx.Sinh(gx) * cmplx.Sinh(gl-gx)
			out[i] = Sample{Distance: x, Voltage: v, Current: v / par.Zc}
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadBoundary, b)
	}
	return out, nil
}

// MaxVoltage returns the largest voltage magnitude of a profile.
func MaxVoltage(profile []Sample) float64 {
	var max float64
	for _, s := range profile {
		if v := cmplx.Abs(s.Voltage); v > max {
			max = v
		}
	}
	return max
}

// EquivalentVoltage collapses the section to a single series source e·L.
// Sections of 1 km or more get the long-line correction sinh(γL)/γL;
// a vanishing γL leaves the factor at exactly one.
func EquivalentVoltage(par pipeline.Parameters, emf complex128, length float64) (complex128, error) {
	if length <= 0 {
		return 0, fmt.Errorf("%w: got %g km", ErrBadLength, length)
	}
	total := emf * complex(length, 0)
	if length < 1 {
		return total, nil
	}
	gl := par.Gamma * complex(length, 0)
	if cmplx.Abs(gl) <= 1e-6 {
		return total, nil
	}
	return total * cmplx.Sinh(gl) / gl, nil
}
