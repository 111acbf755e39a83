package numint

import "gonum.org/v1/gonum/floats"

// PlotConfig defines how a function is sampled around an integration interval.
type PlotConfig struct {
	Margin       float64 // width sampled on each side of the interval
	OuterSamples int     // points on each side of the interval
	InnerSamples int     // points within the interval
}

// DefaultPlotConfig returns the sampling used for the interactive plots.
func DefaultPlotConfig() PlotConfig {
	return PlotConfig{Margin: 5, OuterSamples: 1000, InnerSamples: 10000}
}

// Point is a single sample of a plot.
type Point struct {
	X, Y float64
}

// Plot holds the samples left of, within, and right of an integration interval.
type Plot struct {
	Function    Function
	Left, Right float64 // integration bounds
	LeftSide    []Point
	Middle      []Point
	RightSide   []Point
}

// Sample evaluates f·w on [a-margin, a), [a, b) and [b, b+margin).
// A nil weight samples the bare function. The bounds are used as provided.
func Sample(f Function, w WeightFunc, a, b float64, cfg PlotConfig) Plot {
	if w == nil {
		w = Unweighted
	}
	return Plot{
		Function:  f,
		Left:      a,
		Right:     b,
		LeftSide:  sampleSegment(f, w, a-cfg.Margin, a, cfg.OuterSamples),
		Middle:    sampleSegment(f, w, a, b, cfg.InnerSamples),
		RightSide: sampleSegment(f, w, b, b+cfg.Margin, cfg.OuterSamples),
	}
}

// sampleSegment returns n points evenly spaced on [lo, hi), hi excluded.
func sampleSegment(f Function, w WeightFunc, lo, hi float64, n int) []Point {
	if n < 1 {
		return nil
	}
	// Span includes both ends, so compute n+1 abscissae and drop the last one.
	xs := floats.Span(make([]float64, n+1), lo, hi)[:n]
	pts := make([]Point, n)
	for i, x := range xs {
		pts[i] = Point{X: x, Y: Evaluate(x, f) * w(x)}
	}
	return pts
}
