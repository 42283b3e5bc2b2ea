package main

import (
	"context"

	"github.com/reallyasi9/sosplot/internal/chart"
	"github.com/reallyasi9/sosplot/internal/tools/inputs"
	"github.com/reallyasi9/sosplot/internal/tools/plotsos"
	"gonum.org/v1/plot/vg"
)

type plotCmd struct {
	Output    string `help:"Chart location. The extension picks the format: png, svg, pdf, eps, jpg, or tif. A Google Cloud Storage location can be given with a gs:// prefix." short:"o" default:"sos.png"`
	Metric    string `help:"Value plotted on the y axis: rank or cumulative. Overrides the config."`
	Smoothing string `help:"Line smoothing: fritsch-butland, akima, natural, or linear. Overrides the config."`
}

func (a *plotCmd) Run(g *globalCmd) error {
	ctx := plotsos.NewContext(context.Background())
	cfg, err := g.load(ctx.Context)
	if err != nil {
		return err
	}
	if a.Metric != "" {
		cfg.Metric = a.Metric
	}
	if a.Smoothing != "" {
		cfg.Smoothing = a.Smoothing
	}
	if ctx.Metric, err = chart.ParseMetric(cfg.Metric); err != nil {
		return err
	}
	if ctx.Smoothing, err = chart.ParseSmoothing(cfg.Smoothing); err != nil {
		return err
	}

	analysis, lg, err := inputs.Load(ctx.Context, cfg)
	if err != nil {
		return err
	}
	ctx.Analysis = analysis
	ctx.Colors = lg
	ctx.Opener = inputs.Opener(cfg)
	ctx.Season = inputs.Season(cfg, lg)
	ctx.Samples = cfg.Samples
	ctx.Width = vg.Length(cfg.ChartWidthIn) * vg.Inch
	ctx.Height = vg.Length(cfg.ChartHeightIn) * vg.Inch
	ctx.Output = a.Output
	return plotsos.Plot(ctx)
}
