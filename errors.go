package numint

import "errors"

var (
	// ErrInvalidArgument is returned when a caller supplied value is outside of its domain
	// (node count, tolerance, bounds, step count).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNumericInstability is returned when a computation would divide by (near) zero.
	ErrNumericInstability = errors.New("numeric instability")
	// ErrNonConvergence is returned when the composite integrator reaches its panel cap
	// before successive estimates agree within the tolerance.
	ErrNonConvergence = errors.New("no convergence")
)
