package plotsos

import (
	"context"

	"github.com/reallyasi9/sosplot/internal/chart"
	"github.com/reallyasi9/sosplot/internal/sos"
	"github.com/reallyasi9/sosplot/internal/tabular"
	"gonum.org/v1/plot/vg"
)

type Context struct {
	context.Context

	Analysis *sos.Analysis
	Colors   chart.ColorLookup
	Opener   tabular.Opener

	Season    string
	Metric    chart.Metric
	Smoothing chart.Smoothing
	Samples   int
	Width     vg.Length
	Height    vg.Length

	Output string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
