package induction_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohline/induction"
	"github.com/katalvlaran/ohline/line"
)

func corridorConductors(withEarth bool) []line.Conductor {
	conds := []line.Conductor{
		{Label: "R", Role: line.RolePhase, X: -11, Y: 16, GMR: 0.0092, Radius: 0.0109, RAC: 0.0321},
		{Label: "Y", Role: line.RolePhase, X: 0, Y: 16, GMR: 0.0092, Radius: 0.0109, RAC: 0.0321},
		{Label: "B", Role: line.RolePhase, X: 11, Y: 16, GMR: 0.0092, Radius: 0.0109, RAC: 0.0321},
	}
	if withEarth {
		conds = append(conds, line.Conductor{Label: "E", Role: line.RoleEarth, X: 0, Y: 22.5, GMR: 0.0046, Radius: 0.0055, RAC: 0.8})
	}
	return append(conds, line.Conductor{Label: "PL", Role: line.RolePipeline, X: 173.2, Y: -1, GMR: 0.3, Radius: 0.3, RAC: 0.0631})
}

func corridor(t *testing.T, withEarth bool) *line.System {
	t.Helper()
	sys, err := line.NewSystem(corridorConductors(withEarth), line.DefaultParams())
	require.NoError(t, err)
	return sys
}

// balancedLoad returns a 2 kA positive-sequence load on phases R, Y, B.
func balancedLoad() induction.Currents {
	a := cmplx.Exp(complex(0, 2*math.Pi/3))
	return induction.Currents{
		"R": 2000,
		"Y": 2000 * a * a,
		"B": 2000 * a,
	}
}

func TestEarthCurrents(t *testing.T) {
	sys := corridor(t, true)

	ie, err := induction.EarthCurrents(sys, balancedLoad())
	require.NoError(t, err)
	require.Len(t, ie, 1)
	// Residual unbalance of the flat formation drives a circulating current.
	assert.InDelta(t, -22.78657, real(ie[0]), 1e-3)
	assert.InDelta(t, 70.59316, imag(ie[0]), 1e-3)

	// No earth wires, no induced loop.
	ie, err = induction.EarthCurrents(corridor(t, false), balancedLoad())
	require.NoError(t, err)
	assert.Empty(t, ie)
}

func TestEMF_SteadyState(t *testing.T) {
	sys := corridor(t, true)

	emf, err := induction.EMF(sys, balancedLoad())
	require.NoError(t, err)
	assert.InDelta(t, -15.615607, real(emf), 1e-4)
	assert.InDelta(t, -10.661471, imag(emf), 1e-4)
	assert.InDelta(t, 18.908, cmplx.Abs(emf), 1e-3)
}

func TestEMF_EarthWireShields(t *testing.T) {
	shielded, err := induction.EMF(corridor(t, true), balancedLoad())
	require.NoError(t, err)
	bare, err := induction.EMF(corridor(t, false), balancedLoad())
	require.NoError(t, err)
	assert.InDelta(t, 13.711306, cmplx.Abs(bare), 1e-4)
	// For this geometry the earth wire worsens the residual coupling.
	assert.NotEqual(t, cmplx.Abs(bare), cmplx.Abs(shielded))
}

func TestEMF_Errors(t *testing.T) {
	noPipe, err := line.NewSystem(corridorConductors(true)[:4], line.DefaultParams())
	require.NoError(t, err)
	_, err = induction.EMF(noPipe, balancedLoad())
	assert.ErrorIs(t, err, induction.ErrNoPipeline)

	partial := balancedLoad()
	delete(partial, "Y")
	_, err = induction.EMF(corridor(t, true), partial)
	assert.ErrorIs(t, err, induction.ErrMissingCurrent)
}

func TestScreeningFactor(t *testing.T) {
	k, err := induction.ScreeningFactor(corridor(t, true), "R")
	require.NoError(t, err)
	assert.InDelta(t, 0.806794, real(k), 1e-5)
	assert.InDelta(t, -0.152483, imag(k), 1e-5)
	assert.Less(t, cmplx.Abs(k), 1.0, "earth wire must reduce the fault coupling")

	// Exactly one without earth wires, no numerical residue allowed.
	k, err = induction.ScreeningFactor(corridor(t, false), "R")
	require.NoError(t, err)
	assert.Equal(t, complex(1, 0), k)
}

func TestScreeningFactor_Errors(t *testing.T) {
	sys := corridor(t, true)
	_, err := induction.ScreeningFactor(sys, "nope")
	assert.ErrorIs(t, err, induction.ErrUnknownPhase)
	_, err = induction.ScreeningFactor(sys, "E")
	assert.ErrorIs(t, err, induction.ErrUnknownPhase)
}

func TestFaultEMF(t *testing.T) {
	sys := corridor(t, true)

	emf, err := induction.FaultEMF(sys, "R", 13000)
	require.NoError(t, err)
	assert.InDelta(t, -718.955, real(emf), 1e-2)
	assert.InDelta(t, -967.675, imag(emf), 1e-2)
	assert.InDelta(t, 1205.53, cmplx.Abs(emf), 1e-1)

	// Without earth wires the full mutual applies.
	bare, err := induction.FaultEMF(corridor(t, false), "R", 13000)
	require.NoError(t, err)
	assert.InDelta(t, 1468.22, cmplx.Abs(bare), 1e-1)

	// EMF scales linearly with the fault current.
	twice, err := induction.FaultEMF(sys, "R", 26000)
	require.NoError(t, err)
	assert.InDelta(t, 2*cmplx.Abs(emf), cmplx.Abs(twice), 1e-6)
}
