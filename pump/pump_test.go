package pump

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openflume/gohydro/hydraulics"
	"github.com/openflume/gohydro/units"
)

func TestSolveReference(t *testing.T) {
	// The as-built teaching rig, against hand-checked values.
	res, err := DefaultSystem().Solve()
	assert.NoError(t, err)

	assert.InDelta(t, 2.96029, res.V1, 1.e-4)
	assert.InDelta(t, 0.9144, res.Z1, 1.e-12)
	assert.InDelta(t, 3.20249, res.HMinor, 2.e-3)
	assert.InDelta(t, 0.65566, res.HMajor, 2.e-3)
	assert.InDelta(t, 3.85814, res.HTotal, 3.e-3)
	assert.InDelta(t, 2.49694, res.Head, 3.e-3)
	assert.InDelta(t, 146.626, res.HydraulicPower, 0.3)
	assert.InEpsilon(t, res.HydraulicPower/0.70, res.ShaftPower, 1.e-12)

	{ // Per-fitting breakdown
		assert.Len(t, res.Losses, 3)
		assert.InDelta(t, 0.08825, res.Losses[0].Head, 2.e-4) // tee at 3-in velocity
		assert.InDelta(t, 0.16532, res.Losses[1].Head, 2.e-4) // contraction
		assert.InDelta(t, 2.94892, res.Losses[2].Head, 2.e-3) // six elbows
		var sum float64
		for _, l := range res.Losses {
			sum += l.Head
		}
		assert.InEpsilon(t, res.HMinor, sum, 1.e-12)
	}
	res.Print()
}

func TestSolvePipeOnly(t *testing.T) {
	// With no fittings and no elevation, the pump head is exactly the
	// pipe loss less the exit velocity head.
	s := System{
		FlowRate:     0.006,
		ExitDiameter: units.InchesToMeters(2.0),
		Pipe:         Segment{Diameter: units.InchesToMeters(2.0), Length: 4.5, Roughness: 1.5e-6},
		Eta:          1.0,
		Fluid:        Water20C(),
	}
	res, err := s.Solve()
	assert.NoError(t, err)
	assert.Zero(t, res.HMinor)
	assert.Empty(t, res.Losses)
	want := res.HMajor - res.V1*res.V1/(2*hydraulics.StandardGravity)
	assert.InDelta(t, want, res.Head, 1.e-12)
	assert.Equal(t, res.HydraulicPower, res.ShaftPower)
}

func TestSolveNoElbows(t *testing.T) {
	// Dropping the elbows and the elevation reduces the pump head to the
	// tee and contraction terms plus the pipe loss, less the exit
	// velocity head.
	s := DefaultSystem()
	s.Z1 = 0
	s.Fittings = s.Fittings[:2]
	res, err := s.Solve()
	assert.NoError(t, err)
	assert.Len(t, res.Losses, 2)
	want := res.Losses[0].Head + res.Losses[1].Head + res.HMajor -
		res.V1*res.V1/(2*hydraulics.StandardGravity)
	assert.InDelta(t, want, res.Head, 1.e-12)
}

func TestSolvePowerIdentity(t *testing.T) {
	res, err := DefaultSystem().Solve()
	assert.NoError(t, err)
	want := Water20C().Rho * hydraulics.StandardGravity * res.Q * res.Head
	assert.InEpsilon(t, want, res.HydraulicPower, 1.e-12)
}

func TestSolveGravityFed(t *testing.T) {
	// A tap far above the line needs no pump; the head and power go
	// negative rather than erroring.
	s := DefaultSystem()
	s.Z1 = 30
	res, err := s.Solve()
	assert.NoError(t, err)
	assert.Negative(t, res.Head)
	assert.Negative(t, res.HydraulicPower)
}

func TestSegmentLaminar(t *testing.T) {
	// 0.04 L/s in a 2-in pipe sits near Re = 1000, on the 64/Re branch.
	// Cross-checked against Hagen-Poiseuille.
	seg := Segment{Diameter: 0.0508, Length: 10, Roughness: 1.5e-6}
	h, err := seg.MajorLoss(4.e-5, Water20C())
	assert.NoError(t, err)
	assert.InEpsilon(t, 2.5054e-4, h, 1.e-3)
}

func TestFittingLoss(t *testing.T) {
	ft := Fitting{Name: "elbow 90", K: 1.1, Count: 6, Diameter: units.InchesToMeters(2.0)}
	h, err := ft.Loss(0.006)
	assert.NoError(t, err)
	assert.InDelta(t, 2.94892, h, 2.e-3)

	{ // count multiplies linearly
		one := Fitting{Name: "elbow 90", K: 1.1, Count: 1, Diameter: units.InchesToMeters(2.0)}
		h1, err := one.Loss(0.006)
		assert.NoError(t, err)
		assert.InEpsilon(t, 6*h1, h, 1.e-12)
	}
}

func TestSolvePreconditions(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*System)
	}{
		{"zero flow", func(s *System) { s.FlowRate = 0 }},
		{"negative exit diameter", func(s *System) { s.ExitDiameter = -0.05 }},
		{"zero efficiency", func(s *System) { s.Eta = 0 }},
		{"efficiency above one", func(s *System) { s.Eta = 1.2 }},
		{"zero density", func(s *System) { s.Fluid.Rho = 0 }},
		{"zero fitting count", func(s *System) { s.Fittings[0].Count = 0 }},
		{"negative fitting K", func(s *System) { s.Fittings[1].K = -0.4 }},
		{"zero fitting diameter", func(s *System) { s.Fittings[2].Diameter = 0 }},
		{"zero pipe diameter", func(s *System) { s.Pipe.Diameter = 0 }},
		{"negative pipe length", func(s *System) { s.Pipe.Length = -4.5 }},
	}
	for _, tc := range cases {
		s := DefaultSystem()
		tc.mutate(&s)
		_, err := s.Solve()
		assert.ErrorIs(t, err, hydraulics.ErrPrecondition, tc.name)
	}
}
