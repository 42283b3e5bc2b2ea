package plotsos

import (
	"fmt"
	"log"

	"github.com/reallyasi9/sosplot/internal/chart"
	"github.com/reallyasi9/sosplot/internal/tabular"
)

// Plot renders the strength of schedule chart and writes it to ctx.Output.
// The image format follows the output's extension.
func Plot(ctx *Context) error {
	format := tabular.Ext(ctx.Output)
	if format == "" {
		return fmt.Errorf("Plot: output '%s' has no extension to choose an image format", ctx.Output)
	}

	series, err := chart.NewSeries(ctx.Analysis, ctx.Colors)
	if err != nil {
		return fmt.Errorf("Plot: %w", err)
	}
	c, err := chart.New(ctx.Analysis, series, chart.Options{
		Title:     chart.Title(ctx.Season, ctx.Analysis.Window, ctx.Analysis.Conference),
		Metric:    ctx.Metric,
		Smoothing: ctx.Smoothing,
		Samples:   ctx.Samples,
		Width:     ctx.Width,
		Height:    ctx.Height,
	})
	if err != nil {
		return fmt.Errorf("Plot: %w", err)
	}

	w, err := ctx.Opener.Create(ctx.Context, ctx.Output)
	if err != nil {
		return fmt.Errorf("Plot: failed to create '%s': %w", ctx.Output, err)
	}
	if err := c.Write(w, format); err != nil {
		w.Close()
		return fmt.Errorf("Plot: failed to write '%s': %w", ctx.Output, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("Plot: failed to close '%s': %w", ctx.Output, err)
	}
	log.Printf("Wrote chart to %s", ctx.Output)
	return nil
}
