package chart

import (
	"fmt"
	"image/color"

	"github.com/reallyasi9/sosplot/internal/league"
	"github.com/reallyasi9/sosplot/internal/sos"
	"gonum.org/v1/plot/plotter"
)

// ColorLookup reports the chart color of a team.
type ColorLookup interface {
	Color(team string) (color.Color, error)
}

// Series holds the points plotted for one team. X values are window positions.
type Series struct {
	Team  string
	Name  string
	Color color.Color

	// Cumulative holds the cumulative strength of schedule at each position the team played.
	Cumulative plotter.XYs
	// Ranks holds the team's rank at each position the team played.
	Ranks plotter.XYs
}

// Points returns the points plotted for a metric.
func (s Series) Points(m Metric) plotter.XYs {
	if m == MetricCumulative {
		return s.Cumulative
	}
	return s.Ranks
}

// NewSeries builds one Series per analyzed team, in first-seen order.
// A team missing from the color lookup is an error.
func NewSeries(a *sos.Analysis, colors ColorLookup) ([]Series, error) {
	teams := a.Strength.Teams()
	series := make([]Series, 0, len(teams))
	for _, team := range teams {
		c, err := colors.Color(team)
		if err != nil {
			return nil, fmt.Errorf("NewSeries: %w", err)
		}
		values, _ := a.Strength.Get(team)
		s := Series{
			Team:       team,
			Name:       league.DisplayName(team),
			Color:      c,
			Cumulative: make(plotter.XYs, len(values)),
			Ranks:      make(plotter.XYs, 0, len(values)),
		}
		for i, v := range values {
			s.Cumulative[i].X = float64(i)
			s.Cumulative[i].Y = v
			if r, ok := a.Ranks.At(team, i); ok {
				s.Ranks = append(s.Ranks, plotter.XY{X: float64(i), Y: float64(r)})
			}
		}
		series = append(series, s)
	}
	return series, nil
}
