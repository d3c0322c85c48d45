package hydraulics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReynolds(t *testing.T) {
	// Water at 20C through the 48/7 in hydraulic diameter of the flume
	{
		re, err := Reynolds(998, 1.0, 0.1741714286, 0.001)
		assert.NoError(t, err)
		assert.InDelta(t, 173823.086, re, 1e-2)
	}
	// Preconditions
	{
		for _, bad := range [][4]float64{
			{0, 1, 0.1, 0.001},
			{-998, 1, 0.1, 0.001},
			{998, 1, 0, 0.001},
			{998, 1, 0.1, 0},
		} {
			_, err := Reynolds(bad[0], bad[1], bad[2], bad[3])
			assert.ErrorIs(t, err, ErrPrecondition)
		}
	}
}

func TestHydraulicDiameter(t *testing.T) {
	// 8 in x 6 in rectangular duct: Dh = 48/7 in = 0.17417... m
	{
		dh, err := HydraulicDiameter(0.2032, 0.1524)
		assert.NoError(t, err)
		assert.InDelta(t, 0.1741714286, dh, 1e-9)
	}
	{
		_, err := HydraulicDiameter(0, 0.1524)
		assert.ErrorIs(t, err, ErrPrecondition)
		_, err = HydraulicDiameter(0.2032, -1)
		assert.ErrorIs(t, err, ErrPrecondition)
	}
}

func TestHaaland(t *testing.T) {
	// Smooth pipe at Re = 1e5
	{
		f, err := Haaland(1e5, 0, 0.05)
		assert.NoError(t, err)
		assert.InDelta(t, 0.0178249, f, 1e-6)
	}
	// The reference flume state: Re = 239217, eps/D = 8.61e-6
	{
		f, err := Haaland(239217.3, 1.5e-6, 0.1741714286)
		assert.NoError(t, err)
		assert.InDelta(t, 0.0150297, f, 1e-6)
	}
	// Laminar branch
	{
		f, err := Haaland(1000, 1.5e-6, 0.05)
		assert.NoError(t, err)
		assert.Equal(t, 0.064, f)
	}
	{
		f, err := Haaland(2299, 0, 0.05)
		assert.NoError(t, err)
		assert.InDelta(t, 64./2299., f, 1e-15)
	}
	// Preconditions
	{
		_, err := Haaland(0, 1.5e-6, 0.05)
		assert.ErrorIs(t, err, ErrPrecondition)
		_, err = Haaland(-100, 1.5e-6, 0.05)
		assert.ErrorIs(t, err, ErrPrecondition)
		_, err = Haaland(1e5, -1e-6, 0.05)
		assert.ErrorIs(t, err, ErrPrecondition)
		_, err = Haaland(1e5, 1.5e-6, 0)
		assert.ErrorIs(t, err, ErrPrecondition)
	}
}

func TestHaalandResidual(t *testing.T) {
	// Zero at the converged flume state
	{
		r, err := HaalandResidual(0.0150297, 239217.3, 1.5e-6, 0.1741714286)
		assert.NoError(t, err)
		assert.InDelta(t, 0, r, 1e-4)
	}
	// Domain violations raised instead of NaN
	{
		_, err := HaalandResidual(-0.01, 1e5, 1.5e-6, 0.05)
		assert.ErrorIs(t, err, ErrDomain)
		_, err = HaalandResidual(0, 1e5, 1.5e-6, 0.05)
		assert.ErrorIs(t, err, ErrDomain)
		_, err = HaalandResidual(0.02, 0, 1.5e-6, 0.05)
		assert.ErrorIs(t, err, ErrDomain)
		// smooth wall and negative Re drive the log10 argument negative
		_, err = HaalandResidual(0.02, -1e5, 0, 0.05)
		assert.ErrorIs(t, err, ErrDomain)
	}
	// A negative iterate with a dominant roughness term still evaluates
	{
		_, err := HaalandResidual(0.02, -1e12, 5e-3, 0.05)
		assert.NoError(t, err)
	}
}

func TestLosses(t *testing.T) {
	{
		h := MajorLoss(0.02, 10, 0.05, 2, StandardGravity)
		assert.InDelta(t, 0.8157732, h, 1e-6)
	}
	{
		h := MinorLoss(1.1, 3, StandardGravity)
		assert.InDelta(t, 0.5047595, h, 1e-6)
	}
	// Loss terms vanish with velocity
	{
		assert.Equal(t, 0.0, MajorLoss(0.02, 10, 0.05, 0, StandardGravity))
		assert.Equal(t, 0.0, MinorLoss(1.1, 0, StandardGravity))
	}
}

func TestAreaVelocity(t *testing.T) {
	// 2 in pipe carrying the pump example flow
	{
		a, err := CircularArea(0.0508)
		assert.NoError(t, err)
		assert.InDelta(t, 0.002026830, a, 1e-8)

		v, err := Velocity(0.006, 0.0508)
		assert.NoError(t, err)
		assert.InDelta(t, 2.96029, v, 1e-4)
	}
	{
		_, err := CircularArea(0)
		assert.ErrorIs(t, err, ErrPrecondition)
		_, err = Velocity(0.006, -0.05)
		assert.ErrorIs(t, err, ErrPrecondition)
	}
}
