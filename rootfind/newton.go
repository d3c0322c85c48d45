// Package rootfind solves small square systems of nonlinear equations with
// Newton's method and a forward-difference Jacobian. The systems here are a
// handful of smooth equations, so the dense LU factorization from gonum is
// all the linear algebra required.
package rootfind

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrMaxIterations is returned when the iteration budget is spent
	// before every residual drops below the tolerance.
	ErrMaxIterations = errors.New("rootfind: not converged within the iteration budget")
	// ErrSingularJacobian is returned when the Newton step cannot be
	// computed because the finite-difference Jacobian is singular.
	ErrSingularJacobian = errors.New("rootfind: singular jacobian")
	// ErrNaN is returned when the residual evaluates to NaN without the
	// residual function reporting an error.
	ErrNaN = errors.New("rootfind: residual is NaN")
	// ErrPrecondition is returned for malformed solver input.
	ErrPrecondition = errors.New("rootfind: invalid input")
)

// Func evaluates the residual vector r at the point x. len(r) == len(x).
// Returning an error aborts the solve; a residual that evaluates to NaN
// without an error aborts with ErrNaN.
type Func func(x, r []float64) error

// Settings control the Newton iteration.
type Settings struct {
	// Tolerance is the absolute bound every residual component must meet.
	Tolerance float64
	// MaxIterations caps the number of Newton steps.
	MaxIterations int
	// Step scales the forward-difference perturbation, which is
	// Step*max(|x_j|, 1) per component.
	Step float64
}

// DefaultSettings returns the tolerances used throughout this repo:
// absolute residual 1e-9, 100 iterations, relative difference step 1e-8.
func DefaultSettings() Settings {
	return Settings{
		Tolerance:     1e-9,
		MaxIterations: 100,
		Step:          1e-8,
	}
}

// Result reports the terminal state of a solve. On error X holds the last
// iterate rather than a root.
type Result struct {
	X            []float64
	Residual     []float64
	ResidualNorm float64 // max-norm of Residual
	Iterations   int
}

// Solve runs damped-free Newton iteration from x0 until every residual
// component is within settings.Tolerance of zero. The iteration is
// deterministic: identical inputs produce identical results.
func Solve(f Func, x0 []float64, settings Settings) (Result, error) {
	n := len(x0)
	if f == nil {
		return Result{}, fmt.Errorf("%w: nil residual function", ErrPrecondition)
	}
	if n == 0 {
		return Result{}, fmt.Errorf("%w: empty initial guess", ErrPrecondition)
	}
	if settings.Tolerance <= 0 || settings.MaxIterations <= 0 || settings.Step <= 0 {
		return Result{}, fmt.Errorf("%w: settings %+v", ErrPrecondition, settings)
	}

	var (
		x    = append([]float64(nil), x0...)
		r    = make([]float64, n)
		rp   = make([]float64, n) // perturbed residual for the Jacobian
		jac  = mat.NewDense(n, n, nil)
		rhs  = mat.NewVecDense(n, nil)
		step = mat.NewVecDense(n, nil)
		lu   mat.LU
	)
	for iter := 0; ; iter++ {
		if err := f(x, r); err != nil {
			return Result{X: x, Iterations: iter},
				fmt.Errorf("rootfind: residual evaluation at iteration %d: %w", iter, err)
		}
		norm := maxAbs(r)
		if math.IsNaN(norm) {
			return Result{X: x, Residual: r, ResidualNorm: norm, Iterations: iter},
				fmt.Errorf("%w at iteration %d", ErrNaN, iter)
		}
		if norm <= settings.Tolerance {
			return Result{X: x, Residual: r, ResidualNorm: norm, Iterations: iter}, nil
		}
		if iter == settings.MaxIterations {
			return Result{X: x, Residual: r, ResidualNorm: norm, Iterations: iter},
				fmt.Errorf("%w: %d iterations, max residual %.3e", ErrMaxIterations, iter, norm)
		}

		// Forward-difference Jacobian, one column per unknown.
		for j := 0; j < n; j++ {
			xj := x[j]
			h := settings.Step * math.Max(math.Abs(xj), 1)
			x[j] = xj + h
			if err := f(x, rp); err != nil {
				x[j] = xj
				return Result{X: x, Iterations: iter},
					fmt.Errorf("rootfind: jacobian evaluation at iteration %d: %w", iter, err)
			}
			x[j] = xj
			for i := 0; i < n; i++ {
				jac.Set(i, j, (rp[i]-r[i])/h)
			}
		}

		for i := 0; i < n; i++ {
			rhs.SetVec(i, -r[i])
		}
		lu.Factorize(jac)
		if err := lu.SolveVecTo(step, false, rhs); err != nil {
			return Result{X: x, Residual: r, ResidualNorm: norm, Iterations: iter},
				fmt.Errorf("%w at iteration %d: %v", ErrSingularJacobian, iter, err)
		}
		for i := 0; i < n; i++ {
			x[i] += step.AtVec(i)
		}
	}
}

// maxAbs is the max-norm of r. math.Max propagates NaN, so a NaN component
// poisons the norm instead of comparing false and being skipped.
func maxAbs(r []float64) (norm float64) {
	for _, v := range r {
		norm = math.Max(norm, math.Abs(v))
	}
	return
}
