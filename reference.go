package numint

import (
	"fmt"

	"github.com/quadlab/numint/integrator"
)

// area is the running integral of f·w, integrated as y' = f(x)w(x).
type area struct {
	f     Function
	w     WeightFunc
	steps uint64
	state []float64
}

func (a *area) GetState() []float64 {
	return a.state
}

func (a *area) SetState(i uint64, s []float64) {
	a.state = s
}

func (a *area) Stop(i uint64) bool {
	return i >= a.steps
}

func (a *area) Func(x float64, s []float64) []float64 {
	return []float64{Evaluate(x, a.f) * a.w(x)}
}

// Reference returns the integral of f·w on [a, b] computed with a fixed step RK4
// over the provided number of steps. It does not depend on the Newton-Cotes
// machinery and serves as a high resolution benchmark.
func Reference(f Function, w WeightFunc, a, b float64, steps int) (float64, error) {
	if steps < 1 {
		return 0, fmt.Errorf("%w: reference needs at least one step, got %d", ErrInvalidArgument, steps)
	}
	if err := checkBounds(a, b); err != nil {
		return 0, err
	}
	if a > b {
		a, b = b, a
	}
	if a == b {
		return 0, nil
	}
	if w == nil {
		w = Unweighted
	}
	inte := &area{f: f, w: w, steps: uint64(steps), state: []float64{0}}
	if _, _, err := integrator.NewRK4(a, (b-a)/float64(steps), inte).Solve(); err != nil {
		return 0, err
	}
	return inte.state[0], nil
}
