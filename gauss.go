package numint

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// GaussHermite returns the n-point Gauss-Hermite approximation of the integral
// of f(x)·e^(-x²) over the real line. The weights are either the tabulated ones
// or, if properWeight is set, computed analytically with WeightProper.
func GaussHermite(f Function, n int, properWeight bool) (float64, error) {
	if err := checkNodes(n); err != nil {
		return 0, err
	}
	roots := hermiteRoots[n-1]
	weights := hermiteWeights[n-1]
	if properWeight {
		weights = make([]float64, n)
		for i, x := range roots {
			w, err := WeightProper(x, n)
			if err != nil {
				return 0, fmt.Errorf("node %d of %d: %w", i, n, err)
			}
			weights[i] = w
		}
	}
	values := make([]float64, n)
	for i, x := range roots {
		values[i] = Evaluate(x, f)
	}
	return floats.Dot(values, weights), nil
}
