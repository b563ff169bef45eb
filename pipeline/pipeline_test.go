package pipeline_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohline/line"
	"github.com/katalvlaran/ohline/pipeline"
)

// gasMain is a 600 mm coated steel pipeline used across the package tests.
func gasMain() pipeline.Physical {
	return pipeline.Physical{
		OuterDiameter:    0.6,
		WallThickness:    0.0095,
		SteelResistivity: 1.8e-7,
		RelPermeability:  300,
		Coating: pipeline.Coating{
			Thickness:       5e-4,
			Resistivity:     1e12,
			RelPermittivity: 4,
		},
	}
}

func closeTo(t *testing.T, want, got complex128, tol float64, msg string) {
	t.Helper()
	assert.InDelta(t, 0, cmplx.Abs(got-want), tol, msg)
}

func TestCompute_Physical(t *testing.T) {
	par, err := pipeline.Compute(gasMain(), line.DefaultParams())
	require.NoError(t, err)

	closeTo(t, 5.814849+6.270736i, par.Z, 1e-5, "series impedance")
	closeTo(t, 3.76991e-6+0.04194592i, par.Y, 1e-8, "shunt admittance")
	closeTo(t, 0.218754+0.557551i, par.Gamma, 1e-5, "propagation constant")
	closeTo(t, 13.292608-5.213945i, par.Zc, 1e-5, "characteristic impedance")

	// Wave attenuates in the direction of propagation.
	assert.Greater(t, real(par.Gamma), 0.0)
}

func TestCompute_Validation(t *testing.T) {
	_, err := pipeline.Compute(gasMain(), line.Params{Frequency: 0, Resistivity: 100})
	assert.ErrorIs(t, err, line.ErrNonPositiveFrequency)

	p := gasMain()
	p.OuterDiameter = 0
	_, err = pipeline.Compute(p, line.DefaultParams())
	assert.ErrorIs(t, err, pipeline.ErrBadGeometry)

	p = gasMain()
	p.WallThickness = 0.4 // thicker than the radius
	_, err = pipeline.Compute(p, line.DefaultParams())
	assert.ErrorIs(t, err, pipeline.ErrBadGeometry)

	p = gasMain()
	p.RelPermeability = -1
	_, err = pipeline.Compute(p, line.DefaultParams())
	assert.ErrorIs(t, err, pipeline.ErrBadMaterial)
}

func TestCalibrated(t *testing.T) {
	// Published textbook values for a comparable pipeline.
	par, err := pipeline.Calibrated(0.10688+0.5167i, 0.01256+0.00436i)
	require.NoError(t, err)
	closeTo(t, 0.055248+0.062950i, par.Gamma, 1e-5, "propagation constant")
	closeTo(t, 5.478389+3.110230i, par.Zc, 1e-5, "characteristic impedance")

	_, err = pipeline.Calibrated(0.1+0.5i, 0)
	assert.ErrorIs(t, err, pipeline.ErrZeroAdmittance)
}

func TestConductor(t *testing.T) {
	c, err := gasMain().Conductor("PL", 173.2, 1)
	require.NoError(t, err)
	assert.Equal(t, line.RolePipeline, c.Role)
	assert.Equal(t, 173.2, c.X)
	assert.Equal(t, -1.0, c.Y, "burial depth maps to negative height")
	assert.Equal(t, 0.3, c.GMR)
	assert.Equal(t, 0.3, c.Radius)
	assert.InDelta(t, 0.0102136, c.RAC, 1e-6, "annulus resistance")

	_, err = gasMain().Conductor("PL", 0, -2)
	assert.ErrorIs(t, err, pipeline.ErrBadGeometry)

	// The conductor must be accepted by the corridor model.
	_, err = line.NewSystem([]line.Conductor{c}, line.DefaultParams())
	assert.NoError(t, err)
}
