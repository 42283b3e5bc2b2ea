package chart

import (
	"bytes"
	"errors"
	"image/color"
	"slices"
	"strings"
	"testing"

	"github.com/reallyasi9/sosplot/internal/sos"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type palette map[string]color.Color

func (p palette) Color(team string) (color.Color, error) {
	c, ok := p[team]
	if !ok {
		return nil, sos.MissingTeamError{Team: team, Table: "palette"}
	}
	return c, nil
}

var testPalette = palette{
	"Utah Jazz":      color.RGBA{R: 0x00, G: 0x2b, B: 0x5c, A: 0xff},
	"Boston Celtics": color.RGBA{R: 0x00, G: 0x7a, B: 0x33, A: 0xff},
	"Miami Heat":     color.RGBA{R: 0x98, G: 0x00, B: 0x2e, A: 0xff},
}

// testAnalysis ranks Celtics < Heat < Jazz at the first position and Jazz < Celtics at the second.
// The Heat played only one game.
func testAnalysis() *sos.Analysis {
	s := sos.NewSequences()
	s.Set("Utah Jazz", []float64{3, 4})
	s.Set("Boston Celtics", []float64{1, 5})
	s.Set("Miami Heat", []float64{2})
	return &sos.Analysis{
		Window:   2,
		Strength: s,
		Ranks:    sos.Rank(s, 2),
	}
}

func TestLabels(t *testing.T) {
	a := testAnalysis()

	start := TeamsStart(a.Ranks)
	wantStart := []string{"Celtics (3)", "Heat (2)", "Jazz (1)"}
	if !slices.Equal(start, wantStart) {
		t.Errorf("expected %v, got %v", wantStart, start)
	}

	end := TeamsEnd(a.Ranks)
	wantEnd := []string{"Jazz (3)", "Celtics (2)", "Heat (1)"}
	if !slices.Equal(end, wantEnd) {
		t.Errorf("expected %v, got %v", wantEnd, end)
	}

	if got := Order(a.Ranks, 1); !slices.Equal(got, []string{"Utah Jazz", "Boston Celtics", "Miami Heat"}) {
		t.Errorf("expected unranked team last, got %v", got)
	}
}

func TestNewSeries(t *testing.T) {
	a := testAnalysis()
	series, err := NewSeries(a, testPalette)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("expected 3 series, got %d", len(series))
	}

	jazz := series[0]
	if jazz.Name != "Jazz" {
		t.Errorf("expected name Jazz, got %s", jazz.Name)
	}
	if jazz.Color != testPalette["Utah Jazz"] {
		t.Errorf("expected Jazz color, got %v", jazz.Color)
	}
	wantCum := plotter.XYs{{X: 0, Y: 3}, {X: 1, Y: 4}}
	if !slices.Equal(jazz.Points(MetricCumulative), wantCum) {
		t.Errorf("expected %v, got %v", wantCum, jazz.Cumulative)
	}
	wantRanks := plotter.XYs{{X: 0, Y: 3}, {X: 1, Y: 1}}
	if !slices.Equal(jazz.Points(MetricRank), wantRanks) {
		t.Errorf("expected %v, got %v", wantRanks, jazz.Ranks)
	}

	heat := series[2]
	if len(heat.Ranks) != 1 || heat.Ranks[0] != (plotter.XY{X: 0, Y: 2}) {
		t.Errorf("expected one Heat rank point at (0, 2), got %v", heat.Ranks)
	}

	_, err = NewSeries(a, palette{})
	var missing sos.MissingTeamError
	if !errors.As(err, &missing) {
		t.Errorf("expected MissingTeamError, got %v", err)
	}
}

func TestSmooth(t *testing.T) {
	line := plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 4}}

	for _, method := range []Smoothing{FritschButland, Akima, Natural, Linear} {
		t.Run(string(method), func(t *testing.T) {
			out, err := Smooth(line, method, 5)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out) != 5 {
				t.Fatalf("expected 5 samples, got %d", len(out))
			}
			if out[0].X != 0 || out[4].X != 2 {
				t.Errorf("expected samples to span [0, 2], got [%g, %g]", out[0].X, out[4].X)
			}
			if !scalar.EqualWithinAbs(out[0].Y, 0, 1e-9) || !scalar.EqualWithinAbs(out[4].Y, 4, 1e-9) {
				t.Errorf("expected curve through the end points, got %g and %g", out[0].Y, out[4].Y)
			}
		})
	}

	out, err := Smooth(line, Linear, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !scalar.EqualWithinAbs(out[1].Y, 1, 1e-9) {
		t.Errorf("expected linear midpoint 1, got %g", out[1].Y)
	}

	out, err = Smooth(line[:1], FritschButland, 5)
	if err != nil || out != nil {
		t.Errorf("expected no curve for one point, got %v, %v", out, err)
	}
}

func TestParse(t *testing.T) {
	if m, err := ParseMetric("cumulative"); err != nil || m != MetricCumulative {
		t.Errorf("expected cumulative, got %q, %v", m, err)
	}
	if _, err := ParseMetric("wins"); err == nil {
		t.Errorf("expected error for unknown metric")
	}
	if s, err := ParseSmoothing("natural"); err != nil || s != Natural {
		t.Errorf("expected natural, got %q, %v", s, err)
	}
	if _, err := ParseSmoothing(""); err == nil {
		t.Errorf("expected error for empty smoothing")
	}
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		sos.AllConferences: "2020-2021 NBA Season: Strength of Schedule Over Last 8 Games",
		sos.Eastern:        "2020-2021 NBA Season: Strength of Schedule Over Last 8 Games (Eastern Conference)",
		sos.Western:        "2020-2021 NBA Season: Strength of Schedule Over Last 8 Games (Western Conference)",
	}
	for conf, want := range tests {
		if got := Title("2020-2021 NBA Season", 8, conf); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func testOptions(m Metric) Options {
	return Options{
		Title:     "Test",
		Metric:    m,
		Smoothing: FritschButland,
		Samples:   50,
		Width:     6 * vg.Inch,
		Height:    4 * vg.Inch,
	}
}

func TestNewRank(t *testing.T) {
	a := testAnalysis()
	series, err := NewSeries(a, testPalette)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := New(a, series, testOptions(MetricRank))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasSuffix(c.Plot.Y.Label.Text, "3 = easiest") {
		t.Errorf("unexpected y label %q", c.Plot.Y.Label.Text)
	}
	xticks := c.Plot.X.Tick.Marker.Ticks(c.Plot.X.Min, c.Plot.X.Max)
	if len(xticks) != 2 || xticks[0].Label != "2" || xticks[1].Label != "1" {
		t.Errorf("expected x ticks labeled [2 1], got %v", xticks)
	}
	yticks := c.Plot.Y.Tick.Marker.Ticks(c.Plot.Y.Min, c.Plot.Y.Max)
	if len(yticks) != 3 || yticks[0].Label != "Celtics (3)" || yticks[0].Value != 1 {
		t.Errorf("unexpected y ticks %v", yticks)
	}
	if !slices.Equal(c.RightLabels, TeamsEnd(a.Ranks)) {
		t.Errorf("expected right labels %v, got %v", TeamsEnd(a.Ranks), c.RightLabels)
	}

	var buf bytes.Buffer
	if err := c.Write(&buf, "png"); err != nil {
		t.Fatalf("unexpected error writing png: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("expected png output")
	}

	if err := c.Write(&bytes.Buffer{}, "bmp"); err == nil {
		t.Errorf("expected error for unsupported format")
	}
}

func TestNewCumulative(t *testing.T) {
	a := testAnalysis()
	series, err := NewSeries(a, testPalette)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := New(a, series, testOptions(MetricCumulative))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.RightLabels != nil {
		t.Errorf("expected no right labels, got %v", c.RightLabels)
	}

	var buf bytes.Buffer
	if err := c.Write(&buf, "svg"); err != nil {
		t.Fatalf("unexpected error writing svg: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("expected svg output")
	}
}
