package chart

import (
	"fmt"
	"io"
	"strconv"

	"github.com/reallyasi9/sosplot/internal/sos"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Options control how a chart is drawn.
type Options struct {
	Title     string
	Metric    Metric
	Smoothing Smoothing
	// Samples is the number of points along each smoothed line.
	Samples int
	Width   vg.Length
	Height  vg.Length
}

// Title builds the chart title for a season, window, and conference selector.
func Title(season string, window int, conference string) string {
	t := fmt.Sprintf("%s: Strength of Schedule Over Last %d Games", season, window)
	if name := sos.ConferenceName(conference); name != "" {
		t += " (" + name + ")"
	}
	return t
}

// Chart is a drawable strength of schedule chart.
type Chart struct {
	Plot   *plot.Plot
	Width  vg.Length
	Height vg.Length

	// RightLabels are drawn to the right of the data area at y = 1..len(RightLabels).
	RightLabels []string
}

const labelPad = vg.Length(4)

// New lays out the chart for an analysis. Series are usually built with NewSeries.
func New(a *sos.Analysis, series []Series, opts Options) (*Chart, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Games remaining"
	p.X.Min = -0.25
	p.X.Max = float64(a.Window-1) + 0.25

	ticks := make([]plot.Tick, a.Window)
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i), Label: strconv.Itoa(a.Window - i)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	c := &Chart{Plot: p, Width: opts.Width, Height: opts.Height}

	switch opts.Metric {
	case MetricCumulative:
		p.Y.Label.Text = "Cumulative opponent win/loss ratio"
		p.Legend.Top = true
		p.Legend.Left = true
	default:
		n := a.Ranks.Len()
		p.Y.Label.Text = fmt.Sprintf("Strength of schedule: 1 = hardest, %d = easiest", n)
		p.Y.Min = 0.5
		p.Y.Max = float64(n) + 0.5
		start := TeamsStart(a.Ranks)
		yticks := make([]plot.Tick, len(start))
		for i, label := range start {
			yticks[i] = plot.Tick{Value: float64(i + 1), Label: label}
		}
		p.Y.Tick.Marker = plot.ConstantTicks(yticks)
		c.RightLabels = TeamsEnd(a.Ranks)
	}

	for _, s := range series {
		pts := s.Points(opts.Metric)
		if len(pts) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("New: team '%s': %w", s.Team, err)
		}
		scatter.GlyphStyle.Color = s.Color
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)

		curve, err := Smooth(pts, opts.Smoothing, opts.Samples)
		if err != nil {
			return nil, fmt.Errorf("New: team '%s': %w", s.Team, err)
		}
		if curve != nil {
			line, err := plotter.NewLine(curve)
			if err != nil {
				return nil, fmt.Errorf("New: team '%s': %w", s.Team, err)
			}
			line.LineStyle.Color = s.Color
			line.LineStyle.Width = vg.Points(2)
			p.Add(line)
			if opts.Metric == MetricCumulative {
				p.Legend.Add(s.Name, line, scatter)
			}
		} else if opts.Metric == MetricCumulative {
			p.Legend.Add(s.Name, scatter)
		}
	}

	return c, nil
}

// Write draws the chart in an image format ("png", "svg", "pdf", "eps", "jpg", "tif") to w.
func (c *Chart) Write(w io.Writer, format string) error {
	cw, err := draw.NewFormattedCanvas(c.Width, c.Height, format)
	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	dc := draw.New(cw)

	sty := c.Plot.Y.Tick.Label
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YCenter
	var margin vg.Length
	for _, label := range c.RightLabels {
		if lw := sty.Width(label); lw > margin {
			margin = lw
		}
	}
	if margin > 0 {
		margin += 2 * labelPad
	}

	area := draw.Crop(dc, 0, -margin, 0, 0)
	c.Plot.Draw(area)

	if len(c.RightLabels) > 0 {
		da := c.Plot.DataCanvas(area)
		_, trY := c.Plot.Transforms(&da)
		x := area.Max.X + labelPad
		for i, label := range c.RightLabels {
			dc.FillText(sty, vg.Point{X: x, Y: trY(float64(i + 1))}, label)
		}
	}

	if _, err := cw.WriteTo(w); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	return nil
}
