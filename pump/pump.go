// Package pump sizes the pump for a piped withdrawal line: given the flow
// rate, the suction-side elevation and the fitting and pipe inventory, it
// evaluates the head balance
//
//	z1 + v1^2/(2g) + h_s = h_L
//
// and reports the required pump head h_s together with the hydraulic and
// shaft power. Losses use Darcy-Weisbach with the Haaland friction factor.
package pump

import (
	"fmt"

	"github.com/openflume/gohydro/hydraulics"
	"github.com/openflume/gohydro/units"
)

// Fluid carries the working-fluid properties.
type Fluid struct {
	Rho float64 // kg/m^3
	Mu  float64 // Pa*s
}

// Water20C is the usual laboratory working fluid.
func Water20C() Fluid {
	return Fluid{Rho: 998.0, Mu: 1.002e-3}
}

// Segment is a straight pipe run. Roughness defaults are the caller's
// business; PVC is about 1.5e-6 m.
type Segment struct {
	Diameter  float64 // m
	Length    float64 // m
	Roughness float64 // m
}

// MajorLoss is the Darcy-Weisbach head loss across the segment at flow q.
func (s Segment) MajorLoss(q float64, fl Fluid) (float64, error) {
	if s.Length < 0 {
		return 0, fmt.Errorf("%w: segment length %g", hydraulics.ErrPrecondition, s.Length)
	}
	v, err := hydraulics.Velocity(q, s.Diameter)
	if err != nil {
		return 0, err
	}
	re, err := hydraulics.Reynolds(fl.Rho, v, s.Diameter, fl.Mu)
	if err != nil {
		return 0, err
	}
	f, err := hydraulics.Haaland(re, s.Roughness, s.Diameter)
	if err != nil {
		return 0, err
	}
	return hydraulics.MajorLoss(f, s.Length, s.Diameter, v, hydraulics.StandardGravity), nil
}

// Fitting is a minor-loss element. The loss coefficient K applies Count
// times at the velocity seen in a pipe of the given Diameter.
type Fitting struct {
	Name     string
	K        float64
	Count    int
	Diameter float64 // m
}

// Loss is the fitting head loss at flow q.
func (ft Fitting) Loss(q float64) (float64, error) {
	if ft.K < 0 {
		return 0, fmt.Errorf("%w: fitting %q K %g", hydraulics.ErrPrecondition, ft.Name, ft.K)
	}
	if ft.Count < 1 {
		return 0, fmt.Errorf("%w: fitting %q count %d", hydraulics.ErrPrecondition, ft.Name, ft.Count)
	}
	v, err := hydraulics.Velocity(q, ft.Diameter)
	if err != nil {
		return 0, fmt.Errorf("fitting %q: %w", ft.Name, err)
	}
	k := float64(ft.Count) * ft.K
	return hydraulics.MinorLoss(k, v, hydraulics.StandardGravity), nil
}

// System is the suction line as built: point 1 is the reservoir tap at
// elevation Z1 above the datum, v1 is evaluated at ExitDiameter, and the
// losses are the fitting inventory plus one straight pipe run.
type System struct {
	FlowRate     float64 // m^3/s
	Z1           float64 // m
	ExitDiameter float64 // m
	Fittings     []Fitting
	Pipe         Segment
	Eta          float64 // pump efficiency in (0, 1]; 1 means hydraulic power only
	Fluid        Fluid
}

// DefaultSystem is the as-built teaching rig: a 2-in PVC line fed through a
// 3-in branch tee, a 3x2 contraction and six 90-degree elbows, drawing
// 6 L/s from a tap 3 ft above datum through a 70%-efficient pump.
func DefaultSystem() System {
	return System{
		FlowRate:     0.006,
		Z1:           units.FeetToMeters(3.0),
		ExitDiameter: units.InchesToMeters(2.0),
		Fittings: []Fitting{
			{Name: "tee (branch)", K: 1.0, Count: 1, Diameter: units.InchesToMeters(3.0)},
			{Name: "contraction 3x2", K: 0.37, Count: 1, Diameter: units.InchesToMeters(2.0)},
			{Name: "elbow 90", K: 1.1, Count: 6, Diameter: units.InchesToMeters(2.0)},
		},
		Pipe: Segment{
			Diameter:  units.InchesToMeters(2.0),
			Length:    4.5,
			Roughness: 1.5e-6,
		},
		Eta:   0.70,
		Fluid: Water20C(),
	}
}

// Loss is one named contribution to the minor-loss total.
type Loss struct {
	Name string
	Head float64 // m
}

// Result is the solved head balance and the power draw it implies.
type Result struct {
	Q              float64 // m^3/s
	Z1             float64 // m
	V1             float64 // m/s
	Losses         []Loss  // per-fitting minor losses
	HMinor         float64 // m
	HMajor         float64 // m
	HTotal         float64 // m
	Head           float64 // m, required pump head h_s
	HydraulicPower float64 // W
	ShaftPower     float64 // W
	Eta            float64
}

// Solve evaluates the head balance. A negative Head means the elevation
// difference alone overcomes the losses and no pump work is needed.
func (s System) Solve() (Result, error) {
	switch {
	case s.FlowRate <= 0:
		return Result{}, fmt.Errorf("%w: flow rate %g", hydraulics.ErrPrecondition, s.FlowRate)
	case s.ExitDiameter <= 0:
		return Result{}, fmt.Errorf("%w: exit diameter %g", hydraulics.ErrPrecondition, s.ExitDiameter)
	case s.Eta <= 0 || s.Eta > 1:
		return Result{}, fmt.Errorf("%w: efficiency %g not in (0, 1]", hydraulics.ErrPrecondition, s.Eta)
	case s.Fluid.Rho <= 0 || s.Fluid.Mu <= 0:
		return Result{}, fmt.Errorf("%w: fluid %+v", hydraulics.ErrPrecondition, s.Fluid)
	}

	v1, err := hydraulics.Velocity(s.FlowRate, s.ExitDiameter)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Q:   s.FlowRate,
		Z1:  s.Z1,
		V1:  v1,
		Eta: s.Eta,
	}
	for _, ft := range s.Fittings {
		h, err := ft.Loss(s.FlowRate)
		if err != nil {
			return Result{}, err
		}
		res.Losses = append(res.Losses, Loss{Name: ft.Name, Head: h})
		res.HMinor += h
	}
	if res.HMajor, err = s.Pipe.MajorLoss(s.FlowRate, s.Fluid); err != nil {
		return Result{}, err
	}
	res.HTotal = res.HMinor + res.HMajor

	g := hydraulics.StandardGravity
	res.Head = res.HTotal - s.Z1 - v1*v1/(2*g)
	res.HydraulicPower = s.Fluid.Rho * g * s.FlowRate * res.Head
	res.ShaftPower = res.HydraulicPower / s.Eta
	return res, nil
}

// Print writes the head balance and power draw.
func (r Result) Print() {
	fmt.Printf("\n--- Results ---\n")
	fmt.Printf("Q               : %.6g m^3/s\n", r.Q)
	fmt.Printf("z1              : %.6g m\n", r.Z1)
	fmt.Printf("v1              : %.6g m/s\n", r.V1)
	fmt.Printf("h_minor         : %.6g m\n", r.HMinor)
	for _, l := range r.Losses {
		fmt.Printf("    %-16s %.6g m\n", l.Name, l.Head)
	}
	fmt.Printf("h_major         : %.6g m\n", r.HMajor)
	fmt.Printf("h_L (total)     : %.6g m\n", r.HTotal)
	fmt.Printf("h_s (pump head) : %.6g m\n", r.Head)

	fmt.Printf("\n--- Power ---\n")
	fmt.Printf("Hydraulic power : %.6g W  (%.6g hp)\n",
		r.HydraulicPower, units.WattsToHorsepower(r.HydraulicPower))
	fmt.Printf("Pump efficiency : %.6g\n", r.Eta)
	fmt.Printf("Shaft power     : %.6g W  (%.6g hp)\n\n",
		r.ShaftPower, units.WattsToHorsepower(r.ShaftPower))
}
