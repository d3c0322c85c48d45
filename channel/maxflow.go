// Package channel computes the gravity-driven discharge capacity of a
// closed rectangular duct fed from an open reservoir. The exit velocity,
// Darcy friction factor and Reynolds number are coupled through the energy
// balance, the Reynolds definition and the Haaland correlation, and are
// solved simultaneously with Newton iteration.
package channel

import (
	"errors"
	"fmt"

	"github.com/openflume/gohydro/hydraulics"
	"github.com/openflume/gohydro/rootfind"
	"github.com/openflume/gohydro/units"
)

// ErrNonPhysical is returned when the iteration converges onto a root with
// non-positive velocity, friction factor or Reynolds number.
var ErrNonPhysical = errors.New("channel: converged to a non-physical root")

// Constants are the fluid properties and wall roughness used by the
// energy balance.
type Constants struct {
	Gravity   float64 // m/s^2
	Rho       float64 // kg/m^3
	Mu        float64 // Pa*s
	Roughness float64 // m, absolute wall roughness
}

// DefaultConstants returns water near 20C in a smooth acrylic flume.
func DefaultConstants() Constants {
	return Constants{
		Gravity:   9.81,
		Rho:       998,
		Mu:        1.e-3,
		Roughness: 1.5e-6,
	}
}

// Geometry is the rectangular duct cross section and run length, in meters.
type Geometry struct {
	Height, Width, Length float64
}

// HydraulicDiameter is 4A/P for the full rectangular section.
func (g Geometry) HydraulicDiameter() (float64, error) {
	return hydraulics.HydraulicDiameter(g.Height, g.Width)
}

// Area is the flow cross section.
func (g Geometry) Area() float64 {
	return g.Height * g.Width
}

// Guess seeds the Newton iteration. The solved system admits mirrored
// negative roots, so the guess fixes which basin the iteration lands in.
type Guess struct {
	V  float64 // m/s
	F  float64 // Darcy friction factor
	Re float64
}

// DefaultGuess starts in the turbulent regime at order-one velocity, which
// converges for driving heads up to a few tenths of a meter. Taller
// reservoirs need a seed nearer the root.
func DefaultGuess() Guess {
	return Guess{V: 1.0, F: 0.02, Re: 1.e5}
}

// MaxFlow is the duct-discharge problem. Z1 is the reservoir free-surface
// elevation and Z2 the duct exit elevation, both relative to the same datum.
type MaxFlow struct {
	Constants Constants
	Geometry  Geometry
	Z1, Z2    float64
	Guess     Guess
	Settings  rootfind.Settings
}

// NewMaxFlow validates the problem and applies the default guess and solver
// settings. Fields may be overridden before calling Solve.
func NewMaxFlow(c Constants, g Geometry, z1, z2 float64) (*MaxFlow, error) {
	switch {
	case c.Gravity <= 0:
		return nil, fmt.Errorf("%w: gravity %g", hydraulics.ErrPrecondition, c.Gravity)
	case c.Rho <= 0:
		return nil, fmt.Errorf("%w: density %g", hydraulics.ErrPrecondition, c.Rho)
	case c.Mu <= 0:
		return nil, fmt.Errorf("%w: viscosity %g", hydraulics.ErrPrecondition, c.Mu)
	case c.Roughness < 0:
		return nil, fmt.Errorf("%w: roughness %g", hydraulics.ErrPrecondition, c.Roughness)
	case g.Height <= 0 || g.Width <= 0:
		return nil, fmt.Errorf("%w: cross section %gx%g", hydraulics.ErrPrecondition, g.Height, g.Width)
	case g.Length <= 0:
		return nil, fmt.Errorf("%w: length %g", hydraulics.ErrPrecondition, g.Length)
	case z1-z2 <= 0:
		return nil, fmt.Errorf("%w: driving head %g", hydraulics.ErrPrecondition, z1-z2)
	}
	return &MaxFlow{
		Constants: c,
		Geometry:  g,
		Z1:        z1,
		Z2:        z2,
		Guess:     DefaultGuess(),
		Settings:  rootfind.DefaultSettings(),
	}, nil
}

// Solution is the converged state of the coupled system.
type Solution struct {
	V            float64 // exit velocity, m/s
	F            float64 // Darcy friction factor
	Re           float64 // Reynolds number on the hydraulic diameter
	Iterations   int
	ResidualNorm float64
}

// system builds the residual for x = (v, f, Re):
//
//	r0 = (z1-z2) - (1 + f*L/Dh) * v^2/(2g)
//	r1 = Re - rho*v*Dh/mu
//	r2 = 1/sqrt(f) + 1.8*log10((eps/Dh/3.7)^1.11 + 6.9/Re)
//
// r0 balances the reservoir head against the exit velocity head plus the
// duct friction loss, r1 pins the Reynolds definition and r2 is the
// Haaland correlation in residual form.
func (mf *MaxFlow) system(dh float64) rootfind.Func {
	var (
		head = mf.Z1 - mf.Z2
		c    = mf.Constants
		l    = mf.Geometry.Length
	)
	return func(x, r []float64) error {
		v, f, re := x[0], x[1], x[2]
		r[0] = head - (1+f*l/dh)*v*v/(2*c.Gravity)
		r[1] = re - c.Rho*v*dh/c.Mu
		haaland, err := hydraulics.HaalandResidual(f, re, c.Roughness, dh)
		if err != nil {
			return err
		}
		r[2] = haaland
		return nil
	}
}

// Solve runs the Newton iteration from the configured guess.
func (mf *MaxFlow) Solve() (Solution, error) {
	dh, err := mf.Geometry.HydraulicDiameter()
	if err != nil {
		return Solution{}, err
	}
	x0 := []float64{mf.Guess.V, mf.Guess.F, mf.Guess.Re}
	res, err := rootfind.Solve(mf.system(dh), x0, mf.Settings)
	if err != nil {
		return Solution{}, fmt.Errorf("channel: %w", err)
	}
	sol := Solution{
		V:            res.X[0],
		F:            res.X[1],
		Re:           res.X[2],
		Iterations:   res.Iterations,
		ResidualNorm: res.ResidualNorm,
	}
	// Written so NaN also fails: NaN > 0 is false.
	if !(sol.V > 0 && sol.F > 0 && sol.Re > 0) {
		return sol, fmt.Errorf("%w: v=%g f=%g Re=%g", ErrNonPhysical, sol.V, sol.F, sol.Re)
	}
	return sol, nil
}

// Residuals re-evaluates the coupled system at an already-computed solution,
// for verification and reporting.
func (mf *MaxFlow) Residuals(sol Solution) ([]float64, error) {
	dh, err := mf.Geometry.HydraulicDiameter()
	if err != nil {
		return nil, err
	}
	r := make([]float64, 3)
	if err = mf.system(dh)([]float64{sol.V, sol.F, sol.Re}, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Report carries the solution plus the derived discharge.
type Report struct {
	Solution
	Area float64 // m^2
	Q    float64 // m^3/s
}

// Report derives the discharge from a converged solution.
func (mf *MaxFlow) Report(sol Solution) Report {
	area := mf.Geometry.Area()
	return Report{
		Solution: sol,
		Area:     area,
		Q:        area * sol.V,
	}
}

// Print writes the solved state with the discharge in SI and US customary
// units.
func (rp Report) Print() {
	fmt.Printf("==== Results ====\n")
	fmt.Printf("v2 (m/s)     = %.6g\n", rp.V)
	fmt.Printf("v2 (ft/s)    = %.6g\n", units.MetersToFeet(rp.V))
	fmt.Printf("f (-)        = %.6g\n", rp.F)
	fmt.Printf("Re_D (-)     = %.6g\n", rp.Re)
	fmt.Printf("A2 (m^2)     = %.6g\n", rp.Area)
	fmt.Printf("Q (m^3/s)    = %.6g\n", rp.Q)
	fmt.Printf("Q (ft^3/s)   = %.6g\n", units.CubicMetersToCubicFeet(rp.Q))
	fmt.Printf("Q (gal/min)  = %.6g\n", units.FlowToGPM(rp.Q))
	fmt.Printf("iterations   = %d\n", rp.Iterations)
	fmt.Printf("residual     = %.3e\n", rp.ResidualNorm)
}
