// Package integrator provides a fixed step fourth order Runge-Kutta solver for
// systems y' = f(x, y). The caller owns the state through Integrable and decides
// when to stop; the solver only advances the abscissa and combines the stages.
package integrator

// Integrable defines something which can be integrated, i.e. has a state vector.
// WARNING: Implementation must manage its own state based on the iteration.
type Integrable interface {
	GetState() []float64                   // Get the latest state of this integrable.
	SetState(i uint64, s []float64)        // Set the state s of a given iteration i.
	Stop(i uint64) bool                    // Return whether to stop the integration from iteration i.
	Func(x float64, s []float64) []float64 // ODE function from abscissa x and state s, must return the derivative.
}
