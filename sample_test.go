package numint

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSampleDefault(t *testing.T) {
	p := Sample(Poly1, ExpWeight, -2, 2, DefaultPlotConfig())
	if len(p.LeftSide) != 1000 || len(p.Middle) != 10000 || len(p.RightSide) != 1000 {
		t.Fatalf("unexpected sizes %d %d %d", len(p.LeftSide), len(p.Middle), len(p.RightSide))
	}
	if p.LeftSide[0].X != -7 || p.Middle[0].X != -2 || p.RightSide[0].X != 2 {
		t.Fatal("incorrect segment starts")
	}
	if p.Middle[len(p.Middle)-1].X >= 2 || p.RightSide[len(p.RightSide)-1].X >= 7 {
		t.Fatal("segment ends must be excluded")
	}
}

func TestSampleValues(t *testing.T) {
	p := Sample(Mixed, ExpWeight, -1, 1, PlotConfig{Margin: 1, OuterSamples: 4, InnerSamples: 8})
	expLeft := []float64{-2, -1.75, -1.5, -1.25}
	for i, pt := range p.LeftSide {
		if !scalar.EqualWithinAbs(pt.X, expLeft[i], 1e-12) {
			t.Fatalf("left[%d].X=%f expected %f", i, pt.X, expLeft[i])
		}
	}
	for _, pt := range p.Middle {
		if exp := Evaluate(pt.X, Mixed) * math.Exp(-pt.X*pt.X); !scalar.EqualWithinAbs(pt.Y, exp, 1e-15) {
			t.Fatalf("y(%f)=%f expected %f", pt.X, pt.Y, exp)
		}
	}
	if !scalar.EqualWithinAbs(p.Middle[1].X-p.Middle[0].X, 0.25, 1e-12) {
		t.Fatal("incorrect middle spacing")
	}
	if p.Function != Mixed || p.Left != -1 || p.Right != 1 {
		t.Fatal("plot does not record its parameters")
	}
}

func TestSampleUnweighted(t *testing.T) {
	p := Sample(Linear, nil, 0, 1, PlotConfig{Margin: 0, OuterSamples: 0, InnerSamples: 2})
	if p.LeftSide != nil || p.RightSide != nil {
		t.Fatal("no outer sample expected")
	}
	if p.Middle[0] != (Point{0, 2}) || p.Middle[1] != (Point{0.5, 2.25}) {
		t.Fatalf("unexpected samples %+v", p.Middle)
	}
}
