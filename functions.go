package numint

import (
	"fmt"
	"math"
	"strings"
)

// Function selects one of the fixed test integrands.
type Function uint8

const (
	// Poly1 is 0.15x² - x - 1.
	Poly1 Function = iota
	// Poly2 is 0.07x⁴ - 0.3x³ - 0.2x² - x - 1.
	Poly2
	// Linear is 0.5x + 2.
	Linear
	// Sinusoidal is cos(x).
	Sinusoidal
	// Absolute is |x|.
	Absolute
	// Mixed is ||x-2|-2| + sin(x) + 0.05x³.
	Mixed
)

var functionNames = [...]string{"poly1", "poly2", "linear", "sinusoidal", "absolute", "mixed"}

// Functions returns all the available functions in declaration order.
func Functions() []Function {
	return []Function{Poly1, Poly2, Linear, Sinusoidal, Absolute, Mixed}
}

func (f Function) String() string {
	if int(f) < len(functionNames) {
		return functionNames[f]
	}
	return fmt.Sprintf("Function(%d)", uint8(f))
}

// FunctionFromString returns the function of the given name (case insensitive).
func FunctionFromString(name string) (Function, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, fName := range functionNames {
		if fName == name {
			return Function(i), nil
		}
	}
	return Poly1, fmt.Errorf("%w: undefined function '%s'", ErrInvalidArgument, name)
}

// Evaluate returns the value of f at x. The value is never weighted: the
// integrators apply their own weight exactly once.
func Evaluate(x float64, f Function) float64 {
	switch f {
	case Poly1:
		return -1 + x*(-1+0.15*x)
	case Poly2:
		return -1 + x*(-1+x*(-0.2+x*(-0.3+0.07*x)))
	case Linear:
		return 0.5*x + 2
	case Sinusoidal:
		return math.Cos(x)
	case Absolute:
		return math.Abs(x)
	case Mixed:
		return math.Abs(math.Abs(x-2)-2) + math.Sin(x) + 0.05*x*x*x
	default:
		panic(fmt.Errorf("unknown function: %s", f))
	}
}

// WeightFunc is a multiplicative weight applied to the integrand.
type WeightFunc func(x float64) float64

// WeightSimple returns e^(-x²), the Gauss-Hermite weight.
func WeightSimple(x float64) float64 {
	return math.Exp(-x * x)
}

var (
	// ExpWeight weights the integrand by e^(-x²).
	ExpWeight WeightFunc = WeightSimple
	// Unweighted leaves the integrand as is.
	Unweighted WeightFunc = func(float64) float64 { return 1 }
)

// HermitePoly returns the physicists' Hermite polynomial H_k evaluated at x.
func HermitePoly(k int, x float64) float64 {
	if k < 0 {
		panic("Hermite polynomial degree must be non negative")
	}
	hPrev, h := 1.0, 2*x
	if k == 0 {
		return hPrev
	}
	for i := 2; i <= k; i++ {
		hPrev, h = h, 2*x*h-2*float64(i-1)*hPrev
	}
	return h
}

// WeightProper returns the analytic Gauss-Hermite weight for a node x of an
// n-point rule: 2^(n-1) n! √π / (n² H_{n-1}(x)²).
// If x is a root of H_{n-1} (e.g. x=0 for n=2) the weight is undefined and
// ErrNumericInstability is returned instead of an infinite value.
func WeightProper(x float64, n int) (float64, error) {
	if err := checkNodes(n); err != nil {
		return 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: node must be finite, got %g", ErrInvalidArgument, x)
	}
	h := HermitePoly(n-1, x)
	den := float64(n*n) * h * h
	if !(den >= minDenominator) {
		return math.Inf(1), fmt.Errorf("%w: H_%d(%g)² = %g in weight denominator", ErrNumericInstability, n-1, x, h*h)
	}
	return math.Exp2(float64(n-1)) * Factorial(n) * math.SqrtPi / den, nil
}

const minDenominator = 1e-300
