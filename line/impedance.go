package line

import (
	"math"

	"github.com/katalvlaran/ohline/cmplx128"
)

// CarsonDepth returns the equivalent earth-return depth D_erc in metres for
// the given earth resistivity (Ω·m) and frequency (Hz), using the common
// simplified Carson constant 658.87·√(ρ/f).
func CarsonDepth(resistivity, frequency float64) float64 {
	return 658.87 * math.Sqrt(resistivity/frequency)
}

// Impedance returns the full series impedance matrix in Ω/km, one row per
// conductor in system order, including Carson's earth-return correction.
//
// Self terms:    Z_ii = (r_ac + R_e) + jX·ln(D_erc / GMR_i)
// Mutual terms:  Z_ij = R_e + jX·ln(D_erc / d_ij)
// with R_e = π²·f·10⁻⁴ Ω/km and X = ω·µ0/2π·10³ Ω/km.
func (s *System) Impedance() (*cmplx128.Dense, error) {
	return s.impedance.get(s.buildImpedance)
}

func (s *System) buildImpedance() (*cmplx128.Dense, error) {
	n := len(s.conductors)
	derc := CarsonDepth(s.resistivity, s.frequency)
	rEarth := math.Pi * math.Pi * s.frequency * 1e-4
	x := s.Omega() * mu0 / (2 * math.Pi) * 1e3

	z, err := cmplx128.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, c := range s.conductors {
		z.Set(i, i, complex(c.RAC+rEarth, x*math.Log(derc/c.GMR)))
		for j := i + 1; j < n; j++ {
			zm := complex(rEarth, x*math.Log(derc/s.dist.At(i, j)))
			z.Set(i, j, zm)
			z.Set(j, i, zm)
		}
	}
	return z, nil
}
