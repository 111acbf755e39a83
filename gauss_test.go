package numint

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestGaussHermiteExactness(t *testing.T) {
	// ∫x^{2k} e^(-x²) dx = √π (2k-1)!!/2^k; odd moments vanish.
	poly1 := math.SqrtPi * (-1 + 0.15*0.5)
	poly2 := math.SqrtPi * (-1 - 0.2*0.5 + 0.07*0.75)
	linear := 2 * math.SqrtPi
	for n := MinNodes; n <= MaxNodes; n++ {
		for _, tc := range []struct {
			f      Function
			degree int
			exp    float64
		}{{Poly1, 2, poly1}, {Poly2, 4, poly2}, {Linear, 1, linear}} {
			if tc.degree > 2*n-1 {
				continue
			}
			got, err := GaussHermite(tc.f, n, false)
			if err != nil {
				t.Fatalf("%s n=%d: %s", tc.f, n, err)
			}
			if !scalar.EqualWithinAbs(got, tc.exp, 1e-9) {
				t.Fatalf("%s n=%d: %.12f expected %.12f", tc.f, n, got, tc.exp)
			}
		}
	}
	if got, _ := GaussHermite(Poly1, 2, false); !scalar.EqualWithinAbs(got, -0.925*math.SqrtPi, 1e-10) {
		t.Fatalf("two nodes are not exact for Poly1: %.12f", got)
	}
}

func TestGaussHermiteSinusoidal(t *testing.T) {
	exp := math.SqrtPi * math.Exp(-0.25)
	got, err := GaussHermite(Sinusoidal, 6, false)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(got, exp, 1e-6) {
		t.Fatalf("∫cos(x)e^(-x²)=%.9f expected %.9f", got, exp)
	}
	// The error must shrink as nodes are added.
	prevErr := math.Inf(1)
	for n := 2; n <= MaxNodes; n++ {
		got, _ := GaussHermite(Sinusoidal, n, false)
		if e := math.Abs(got - exp); e >= prevErr {
			t.Fatalf("n=%d: error %g did not decrease from %g", n, e, prevErr)
		} else {
			prevErr = e
		}
	}
}

func TestGaussHermiteProperWeight(t *testing.T) {
	for n := MinNodes; n <= MaxNodes; n++ {
		for _, f := range Functions() {
			table, err := GaussHermite(f, n, false)
			if err != nil {
				t.Fatal(err)
			}
			proper, err := GaussHermite(f, n, true)
			if err != nil {
				t.Fatalf("%s n=%d: %s", f, n, err)
			}
			if !scalar.EqualWithinAbs(table, proper, 1e-8) {
				t.Fatalf("%s n=%d: table %.12f proper %.12f", f, n, table, proper)
			}
		}
	}
}

func TestGaussHermiteInvalidNodes(t *testing.T) {
	for _, n := range []int{0, 7, -1} {
		for _, proper := range []bool{false, true} {
			if _, err := GaussHermite(Poly1, n, proper); !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("n=%d: expected ErrInvalidArgument, got %v", n, err)
			}
		}
	}
}
