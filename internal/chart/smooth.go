package chart

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/plot/plotter"
)

// Smoothing names the interpolation used for the lines connecting a team's points.
type Smoothing string

// Every method passes through all of the points in order.
const (
	FritschButland Smoothing = "fritsch-butland"
	Akima          Smoothing = "akima"
	Natural        Smoothing = "natural"
	Linear         Smoothing = "linear"
)

// ParseSmoothing validates a smoothing name.
func ParseSmoothing(s string) (Smoothing, error) {
	switch sm := Smoothing(s); sm {
	case FritschButland, Akima, Natural, Linear:
		return sm, nil
	}
	return "", fmt.Errorf("smoothing '%s' not recognized", s)
}

func (s Smoothing) predictor() interp.FittablePredictor {
	switch s {
	case Akima:
		return &interp.AkimaSpline{}
	case Natural:
		return &interp.NaturalCubic{}
	case Linear:
		return &interp.PiecewiseLinear{}
	}
	return &interp.FritschButland{}
}

// Smooth returns samples evenly spaced points along a curve through xys, which must be sorted by X.
// Fewer than two points have no curve, so nil is returned.
// If the chosen method cannot fit the points, a piecewise linear curve is used instead.
func Smooth(xys plotter.XYs, method Smoothing, samples int) (plotter.XYs, error) {
	if len(xys) < 2 {
		return nil, nil
	}
	if samples < 2 {
		samples = 2
	}
	xs := make([]float64, len(xys))
	ys := make([]float64, len(xys))
	for i, xy := range xys {
		xs[i] = xy.X
		ys[i] = xy.Y
	}

	pred := method.predictor()
	if err := pred.Fit(xs, ys); err != nil {
		pred = &interp.PiecewiseLinear{}
		if err := pred.Fit(xs, ys); err != nil {
			return nil, fmt.Errorf("Smooth: %w", err)
		}
	}

	lo, hi := xs[0], xs[len(xs)-1]
	step := (hi - lo) / float64(samples-1)
	out := make(plotter.XYs, samples)
	for i := range out {
		x := lo + float64(i)*step
		if i == samples-1 {
			x = hi
		}
		out[i].X = x
		out[i].Y = pred.Predict(x)
	}
	return out, nil
}
