package line

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Potential returns the Maxwell potential coefficient matrix in km/µF,
// built by the method of images over a perfectly conducting ground plane.
//
// Self terms:    P_ii = k_P·ln(2|y_i| / radius_i)
// Mutual terms:  P_ij = k_P·ln(D_ij / d_ij)
// with k_P = 10⁻⁹/(2π·ε0) km/µF, d the direct and D the image distance.
func (s *System) Potential() (*mat.Dense, error) {
	return s.potential.get(s.buildPotential)
}

func (s *System) buildPotential() (*mat.Dense, error) {
	n := len(s.conductors)
	kp := 1 / (2 * math.Pi * eps0) * 1e-9

	p := mat.NewDense(n, n, nil)
	for i, c := range s.conductors {
		p.Set(i, i, kp*math.Log(s.image.At(i, i)/c.Radius))
		for j := i + 1; j < n; j++ {
			pm := kp * math.Log(s.image.At(i, j)/s.dist.At(i, j))
			p.Set(i, j, pm)
			p.Set(j, i, pm)
		}
	}
	return p, nil
}

// Capacitance returns the full Maxwell capacitance matrix C = P⁻¹ in µF/km.
// Diagonal entries are positive, mutual entries negative.
func (s *System) Capacitance() (*mat.Dense, error) {
	return s.capacitance.get(s.buildCapacitance)
}

func (s *System) buildCapacitance() (*mat.Dense, error) {
	p, err := s.Potential()
	if err != nil {
		return nil, err
	}
	var c mat.Dense
	if err := c.Inverse(p); err != nil {
		return nil, fmt.Errorf("%w: potential coefficients: %v", ErrSingularMatrix, err)
	}
	return &c, nil
}
