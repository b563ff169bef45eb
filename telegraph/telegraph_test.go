package telegraph_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohline/pipeline"
	"github.com/katalvlaran/ohline/telegraph"
)

// textbookParams closes the parameter set around published per-km values.
func textbookParams(t *testing.T) pipeline.Parameters {
	t.Helper()
	par, err := pipeline.Calibrated(0.10688+0.5167i, 0.01256+0.00436i)
	require.NoError(t, err)
	return par
}

func TestProfile_Open(t *testing.T) {
	par := textbookParams(t)
	const emf, length = 18.66, 4.0

	prof, err := telegraph.Profile(par, emf, length, telegraph.Open, telegraph.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, prof, 101)

	assert.Equal(t, complex128(0), prof[0].Voltage, "open end at x=0")
	assert.Equal(t, complex128(0), prof[100].Voltage, "open end at x=L")
	assert.Equal(t, length, prof[100].Distance)

	// Parabolic build-up peaks with e·L/4 at mid-section; no current flows.
	mid := prof[50]
	assert.InDelta(t, length/2, mid.Distance, 1e-12)
	assert.InDelta(t, emf*length/4, cmplx.Abs(mid.Voltage), 1e-9)
	for _, s := range prof {
		assert.Equal(t, complex128(0), s.Current)
	}

	// Symmetric about the middle.
	assert.InDelta(t, cmplx.Abs(prof[25].Voltage), cmplx.Abs(prof[75].Voltage), 1e-9)
	assert.InDelta(t, emf*length/4, telegraph.MaxVoltage(prof), 1e-9)
}

func TestProfile_Grounded(t *testing.T) {
	par := textbookParams(t)
	const emf, length = 18.66, 4.0

	prof, err := telegraph.Profile(par, emf, length, telegraph.Grounded, telegraph.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, prof, 101)

	assert.InDelta(t, 0, cmplx.Abs(prof[0].Voltage), 1e-9, "grounded end at x=0")
	assert.InDelta(t, 0, cmplx.Abs(prof[100].Voltage), 1e-9, "grounded end at x=L")

	// Sinh distribution, checked at the quarter and mid points.
	assert.InDelta(t, 26.546783, cmplx.Abs(prof[25].Voltage), 1e-4)
	assert.InDelta(t, 35.405985, cmplx.Abs(prof[50].Voltage), 1e-4)

	// Current follows the characteristic impedance.
	want := prof[50].Voltage / par.Zc
	assert.InDelta(t, 0, cmplx.Abs(prof[50].Current-want), 1e-12)
}

func TestProfile_Validation(t *testing.T) {
	par := textbookParams(t)

	_, err := telegraph.Profile(par, 10, 0, telegraph.Open, telegraph.DefaultOptions())
	assert.ErrorIs(t, err, telegraph.ErrBadLength)

	_, err = telegraph.Profile(par, 10, 4, telegraph.Open, telegraph.Options{Samples: 1})
	assert.ErrorIs(t, err, telegraph.ErrBadSamples)

	_, err = telegraph.Profile(par, 10, 4, telegraph.Boundary(99), telegraph.DefaultOptions())
	assert.ErrorIs(t, err, telegraph.ErrBadBoundary)

	_, err = telegraph.Profile(pipeline.Parameters{}, 10, 4, telegraph.Grounded, telegraph.DefaultOptions())
	assert.ErrorIs(t, err, telegraph.ErrBadParameters)
}

func TestEquivalentVoltage(t *testing.T) {
	par := textbookParams(t)

	// Short sections skip the correction entirely.
	v, err := telegraph.EquivalentVoltage(par, 18.66, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(v-complex(9.33, 0)), 1e-12)

	// Long sections pick up the sinh(γL)/γL factor.
	v, err = telegraph.EquivalentVoltage(par, 18.66, 4)
	require.NoError(t, err)
	assert.InDelta(t, 74.464064, cmplx.Abs(v), 1e-4)

	// Tiny γL leaves the factor at exactly one.
	degenerate := pipeline.Parameters{Gamma: complex(1e-9, 0)}
	v, err = telegraph.EquivalentVoltage(degenerate, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, complex(20, 0), v)

	_, err = telegraph.EquivalentVoltage(par, 18.66, -1)
	assert.ErrorIs(t, err, telegraph.ErrBadLength)
}
