package route

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShortTrajectory is returned for trajectories with fewer than two points.
	ErrShortTrajectory = errors.New("route: trajectory needs at least two points")
	// ErrBadStep rejects non-positive walking steps.
	ErrBadStep = errors.New("route: step length must be positive")
	// ErrDegenerateTrajectory is returned when every pipeline segment has
	// zero length, so no section can be walked.
	ErrDegenerateTrajectory = errors.New("route: trajectory has no segment of positive length")
)

// Point is a surveyed trajectory vertex in metres.
type Point struct {
	X, Y, Z float64
}

// Sub returns the vector p−q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Dot returns the scalar product with q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Norm returns the Euclidean length of p as a vector.
func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// scale returns t·p.
func (p Point) scale(t float64) Point {
	return Point{t * p.X, t * p.Y, t * p.Z}
}

// add returns p+q.
func (p Point) add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Section is one parallel-exposure stretch of the pipeline.
type Section struct {
	// Length is the pipeline segment length in metres.
	Length float64
	// Separation is the mean horizontal separation to the line in metres.
	Separation float64
}

// DefaultStep is the walking granularity along the pipeline in metres.
const DefaultStep = 10.0

// Sectionize maps every pipeline segment to a Section carrying its length
// and the mean shortest distance to the overhead line, sampled every step
// metres along the segment. A step of 0 selects DefaultStep.
func Sectionize(ohl, pipe []Point, step float64) ([]Section, error) {
	if len(ohl) < 2 {
		return nil, fmt.Errorf("%w: overhead line has %d", ErrShortTrajectory, len(ohl))
	}
	if len(pipe) < 2 {
		return nil, fmt.Errorf("%w: pipeline has %d", ErrShortTrajectory, len(pipe))
	}
	if step == 0 {
		step = DefaultStep
	}
	if step < 0 {
		return nil, fmt.Errorf("%w: got %g m", ErrBadStep, step)
	}

	sections := make([]Section, 0, len(pipe)-1)
	for s := 0; s < len(pipe)-1; s++ {
		start, end := pipe[s], pipe[s+1]
		vec := end.Sub(start)
		length := vec.Norm()
		if length == 0 {
			// Duplicate survey vertex, nothing to walk.
			continue
		}

		// At least one step even for segments shorter than the grid.
		steps := int(length / step)
		if steps == 0 {
			steps = 1
		}

		var sum float64
		for i := 0; i <= steps; i++ {
			var p Point
			if i == steps {
				p = end
			} else {
				p = start.add(vec.scale(float64(i) * step / length))
			}
			sum += distanceToPolyline(p, ohl)
		}
		sections = append(sections, Section{
			Length:     length,
			Separation: sum / float64(steps+1),
		})
	}
	if len(sections) == 0 {
		return nil, ErrDegenerateTrajectory
	}
	return sections, nil
}

// distanceToPolyline returns the shortest distance from p to any segment of
// the polyline.
func distanceToPolyline(p Point, line []Point) float64 {
	min := math.Inf(1)
	for i := 0; i < len(line)-1; i++ {
		if d := distanceToSegment(p, line[i], line[i+1]); d < min {
			min = d
		}
	}
	return min
}

// distanceToSegment projects p onto the segment [a,b], clamped to its ends.
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return ap.Norm()
	}
	t := ap.Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Sub(a.add(ab.scale(t))).Norm()
}

// TotalLength sums the section lengths in metres.
func TotalLength(sections []Section) float64 {
	var sum float64
	for _, s := range sections {
		sum += s.Length
	}
	return sum
}
