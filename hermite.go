package numint

import "fmt"

const (
	// MinNodes is the smallest supported Gauss-Hermite node count.
	MinNodes = 1
	// MaxNodes is the largest supported Gauss-Hermite node count.
	MaxNodes = 6
)

// hermiteRoots are the roots of H_n, ascending, for n in [1, 6].
var hermiteRoots = [MaxNodes][]float64{
	{0},
	{-0.707106781187, 0.707106781187},
	{-1.22474487139, 0, 1.22474487139},
	{-1.65068012389, -0.524647623275, 0.524647623275, 1.65068012389},
	{-2.02018287046, -0.958572464614, 0, 0.958572464614, 2.02018287046},
	{-2.35060497367, -1.33584907401, -0.436077411928, 0.436077411928, 1.33584907401, 2.35060497367},
}

// hermiteWeights are the Gauss-Hermite weights matching hermiteRoots.
var hermiteWeights = [MaxNodes][]float64{
	{1.77245385091},
	{0.886226925453, 0.886226925453},
	{0.295408975151, 1.1816359006, 0.295408975151},
	{0.0813128354472, 0.804914090006, 0.804914090006, 0.0813128354472},
	{0.0199532420591, 0.393619323152, 0.945308720483, 0.393619323152, 0.0199532420591},
	{0.00453000990551, 0.157067320323, 0.724629595224, 0.724629595224, 0.157067320323, 0.00453000990551},
}

func checkNodes(n int) error {
	if n < MinNodes || n > MaxNodes {
		return fmt.Errorf("%w: node count %d outside [%d, %d]", ErrInvalidArgument, n, MinNodes, MaxNodes)
	}
	return nil
}

// Roots returns a copy of the n Gauss-Hermite nodes, in ascending order.
func Roots(n int) ([]float64, error) {
	if err := checkNodes(n); err != nil {
		return nil, err
	}
	return append([]float64(nil), hermiteRoots[n-1]...), nil
}

// Weights returns a copy of the n Gauss-Hermite weights, ordered as Roots.
func Weights(n int) ([]float64, error) {
	if err := checkNodes(n); err != nil {
		return nil, err
	}
	return append([]float64(nil), hermiteWeights[n-1]...), nil
}

// Factorial returns n!. Panics if n is negative.
func Factorial(n int) float64 {
	if n < 0 {
		panic(fmt.Errorf("factorial of negative number %d", n))
	}
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
