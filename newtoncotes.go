package numint

import (
	"fmt"
	"math"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultMaxPanels is the panel cap used when none is provided.
const DefaultMaxPanels = 5000

// Estimate is the result of the composite integration.
type Estimate struct {
	Value      float64 // last composite estimate
	Iterations int     // number of equal-width panels of the last estimate
}

func (e Estimate) String() string {
	return fmt.Sprintf("%.3f, in %d iterations", e.Value, e.Iterations)
}

// NewtonCotes integrates a function on a finite interval with the composite
// Simpson rule, increasing the number of equal-width panels one at a time
// until two successive estimates differ by less than the tolerance.
type NewtonCotes struct {
	Weight    WeightFunc // multiplies the integrand
	MaxPanels int        // panel count after which integration gives up
	logger    kitlog.Logger
}

// NewNewtonCotes returns a new composite integrator. A nil weight defaults to
// ExpWeight, a max panel count below 2 defaults to DefaultMaxPanels and a nil
// logger discards everything.
func NewNewtonCotes(w WeightFunc, maxPanels int, logger kitlog.Logger) *NewtonCotes {
	if w == nil {
		w = ExpWeight
	}
	if maxPanels < 2 {
		maxPanels = DefaultMaxPanels
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &NewtonCotes{Weight: w, MaxPanels: maxPanels, logger: kitlog.With(logger, "method", "newton-cotes")}
}

// Adaptive integrates f·e^(-x²) on [a, b] with the default panel cap.
func Adaptive(f Function, a, b, tol float64) (Estimate, error) {
	return NewNewtonCotes(ExpWeight, DefaultMaxPanels, nil).Integrate(f, a, b, tol)
}

func checkBounds(a, b float64) error {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return fmt.Errorf("%w: bounds must be finite, got [%g, %g]", ErrInvalidArgument, a, b)
	}
	return nil
}

// simpson returns Simpson's rule on a single panel [p, q].
func (nc *NewtonCotes) simpson(f Function, p, q float64) float64 {
	h := (q - p) / 2
	m := p + h
	return h / 3 * (Evaluate(p, f)*nc.Weight(p) + 4*Evaluate(m, f)*nc.Weight(m) + Evaluate(q, f)*nc.Weight(q))
}

// composite returns the sum of Simpson's rule over k equal panels of [a, b].
func (nc *NewtonCotes) composite(f Function, a, b float64, k int) float64 {
	step := (b - a) / float64(k)
	sum := 0.
	for i := 0; i < k; i++ {
		p := a + float64(i)*step
		q := a + float64(i+1)*step
		if i == k-1 {
			q = b
		}
		sum += nc.simpson(f, p, q)
	}
	return sum
}

// Integrate integrates f on [a, b] (swapped if a > b) until two successive
// composite estimates differ by less than tol. If MaxPanels is reached first,
// the last estimate is returned along with ErrNonConvergence.
func (nc *NewtonCotes) Integrate(f Function, a, b, tol float64) (Estimate, error) {
	if nc.Weight == nil || nc.MaxPanels < 2 || nc.logger == nil {
		return NewNewtonCotes(nc.Weight, nc.MaxPanels, nc.logger).Integrate(f, a, b, tol)
	}
	if !(tol > 0) {
		return Estimate{}, fmt.Errorf("%w: tolerance must be positive, got %g", ErrInvalidArgument, tol)
	}
	if err := checkBounds(a, b); err != nil {
		return Estimate{}, err
	}
	if a > b {
		a, b = b, a
	}
	logger := kitlog.With(nc.logger, "function", f, "a", a, "b", b, "tol", tol)

	prev := nc.simpson(f, a, b)
	cur := nc.composite(f, a, b, 2)
	k := 2
	for !(math.Abs(cur-prev) < tol) {
		if math.IsNaN(cur) || math.IsInf(cur, 0) {
			break
		}
		if k >= nc.MaxPanels {
			level.Warn(logger).Log("msg", "panel cap reached", "panels", k, "value", cur, "delta", math.Abs(cur-prev))
			return Estimate{cur, k}, fmt.Errorf("%w: |Δ|=%g ≥ %g after %d panels", ErrNonConvergence, math.Abs(cur-prev), tol, k)
		}
		k++
		prev, cur = cur, nc.composite(f, a, b, k)
		level.Debug(logger).Log("panels", k, "value", cur)
	}
	if math.IsNaN(cur) || math.IsInf(cur, 0) {
		level.Warn(logger).Log("msg", "non finite estimate", "panels", k, "value", cur)
		return Estimate{cur, k}, fmt.Errorf("%w: estimate is %g after %d panels", ErrNumericInstability, cur, k)
	}
	level.Debug(logger).Log("msg", "converged", "panels", k, "value", cur)
	return Estimate{cur, k}, nil
}
