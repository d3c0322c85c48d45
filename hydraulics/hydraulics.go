// Package hydraulics has the closed-form pipe and channel flow relations
// shared by the solvers: Reynolds number, the Haaland friction factor
// correlation, Darcy-Weisbach major losses and K-value minor losses.
// All quantities are SI.
package hydraulics

import (
	"errors"
	"fmt"
	"math"
)

const (
	// StandardGravity is used by the piping-system calculators, m/s^2.
	StandardGravity = 9.80665
	// LaminarLimit is the Reynolds number below which the Haaland
	// correlation is replaced by the laminar result f = 64/Re.
	LaminarLimit = 2300.0
)

var (
	// ErrPrecondition flags non-physical input rejected before any
	// computation takes place.
	ErrPrecondition = errors.New("hydraulics: non-physical input")
	// ErrDomain flags a logarithm or square root of a non-positive
	// quantity encountered while evaluating a correlation.
	ErrDomain = errors.New("hydraulics: correlation domain violation")
)

// Reynolds returns rho*v*D/mu.
func Reynolds(rho, v, d, mu float64) (float64, error) {
	switch {
	case rho <= 0:
		return 0, fmt.Errorf("%w: density %g", ErrPrecondition, rho)
	case d <= 0:
		return 0, fmt.Errorf("%w: diameter %g", ErrPrecondition, d)
	case mu <= 0:
		return 0, fmt.Errorf("%w: dynamic viscosity %g", ErrPrecondition, mu)
	}
	return rho * v * d / mu, nil
}

// HydraulicDiameter returns 4A/P = 2HW/(H+W) for a rectangular section of
// height h and width w.
func HydraulicDiameter(h, w float64) (float64, error) {
	if h <= 0 || w <= 0 {
		return 0, fmt.Errorf("%w: section %g x %g", ErrPrecondition, h, w)
	}
	return 2 * h * w / (h + w), nil
}

// Haaland returns the Darcy friction factor for flow at Reynolds number re
// through a conduit of diameter d and absolute roughness eps. Below
// LaminarLimit the laminar result 64/Re is returned; otherwise the explicit
// Haaland approximation of the Colebrook equation,
//
//	1/sqrt(f) = -1.8*log10[ (eps/D/3.7)^1.11 + 6.9/Re ]
func Haaland(re, eps, d float64) (float64, error) {
	switch {
	case re <= 0:
		return 0, fmt.Errorf("%w: Reynolds number %g", ErrPrecondition, re)
	case d <= 0:
		return 0, fmt.Errorf("%w: diameter %g", ErrPrecondition, d)
	case eps < 0:
		return 0, fmt.Errorf("%w: roughness %g", ErrPrecondition, eps)
	}
	if re < LaminarLimit {
		return 64. / re, nil
	}
	term := math.Pow(eps/d/3.7, 1.11) + 6.9/re
	if term <= 0 {
		return 0, fmt.Errorf("%w: log10 argument %g at Re=%g", ErrDomain, term, re)
	}
	rsf := -1.8 * math.Log10(term)
	return 1. / (rsf * rsf), nil
}

// HaalandResidual evaluates 1/sqrt(f) + 1.8*log10[(eps/D/3.7)^1.11 + 6.9/Re],
// the form used when f is an unknown of a coupled system. Unlike Haaland it
// places no sign requirement on re beyond the log10 argument staying
// positive, since solver iterates may wander before converging.
func HaalandResidual(f, re, eps, d float64) (float64, error) {
	switch {
	case d <= 0:
		return 0, fmt.Errorf("%w: diameter %g", ErrPrecondition, d)
	case eps < 0:
		return 0, fmt.Errorf("%w: roughness %g", ErrPrecondition, eps)
	}
	if f <= 0 {
		return 0, fmt.Errorf("%w: sqrt of friction factor %g", ErrDomain, f)
	}
	if re == 0 {
		return 0, fmt.Errorf("%w: Reynolds number is zero", ErrDomain)
	}
	term := math.Pow(eps/d/3.7, 1.11) + 6.9/re
	if term <= 0 {
		return 0, fmt.Errorf("%w: log10 argument %g at Re=%g", ErrDomain, term, re)
	}
	return 1./math.Sqrt(f) + 1.8*math.Log10(term), nil
}

// MajorLoss returns the Darcy-Weisbach head loss f*(L/D)*v^2/(2g) in meters.
func MajorLoss(f, l, d, v, g float64) float64 {
	return f * (l / d) * v * v / (2 * g)
}

// MinorLoss returns the fitting head loss K*v^2/(2g) in meters.
func MinorLoss(k, v, g float64) float64 {
	return k * v * v / (2 * g)
}

// CircularArea returns pi*D^2/4.
func CircularArea(d float64) (float64, error) {
	if d <= 0 {
		return 0, fmt.Errorf("%w: diameter %g", ErrPrecondition, d)
	}
	return math.Pi * d * d / 4., nil
}

// Velocity returns the mean velocity Q/A in a circular conduit.
func Velocity(q, d float64) (float64, error) {
	a, err := CircularArea(d)
	if err != nil {
		return 0, err
	}
	return q / a, nil
}
