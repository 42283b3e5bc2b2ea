// Package config defines the run configuration and how it is layered from defaults, a YAML file, and the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/reallyasi9/sosplot/internal/chart"
	"github.com/reallyasi9/sosplot/internal/sos"
)

// ErrInvalidConfig is wrapped by all validation errors.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains the settings of a run.
type Config struct {
	// Standings is the location of the season standings table.
	Standings string `koanf:"standings"`

	// Games is the location of the trailing-month game log.
	Games string `koanf:"games"`

	// League is the location of the league lookup YAML. Empty uses the built-in table.
	League string `koanf:"league"`

	// Conference restricts the run to "E" or "W". Empty keeps every team.
	Conference string `koanf:"conference"`

	// Window is the number of trailing games per team.
	Window int `koanf:"window"`

	// Title overrides the season title used in the chart. Empty uses the league's season.
	Title string `koanf:"title"`

	StandingsTeamColumn   string `koanf:"standings_team_column"`
	StandingsRecordColumn string `koanf:"standings_record_column"`
	HomeColumn            string `koanf:"home_column"`
	VisitorColumn         string `koanf:"visitor_column"`
	DateColumn            string `koanf:"date_column"`

	// AnonymousGCS reads gs:// locations without credentials.
	AnonymousGCS bool `koanf:"anonymous_gcs"`

	ChartWidthIn  float64 `koanf:"chart_width_in"`
	ChartHeightIn float64 `koanf:"chart_height_in"`
	// Smoothing is one of "fritsch-butland", "akima", "natural", or "linear".
	Smoothing string `koanf:"smoothing"`
	// Metric is the value plotted on the y axis: "rank" or "cumulative".
	Metric string `koanf:"metric"`
	// Samples is the number of points used to draw each smoothed line.
	Samples int `koanf:"samples"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		Standings:             "standings.csv",
		Games:                 "may.csv",
		Window:                sos.DefaultWindow,
		StandingsTeamColumn:   "Team",
		StandingsRecordColumn: "Overall",
		HomeColumn:            "Home/Neutral",
		VisitorColumn:         "Visitor/Neutral",
		DateColumn:            "Date",
		ChartWidthIn:          16,
		ChartHeightIn:         10,
		Smoothing:             string(chart.FritschButland),
		Metric:                string(chart.MetricRank),
		Samples:               500,
	}
}

// Validate checks the values that cannot be caught until the pipeline runs.
func (c *Config) Validate() error {
	if c.Standings == "" {
		return fmt.Errorf("%w: standings location must not be empty", ErrInvalidConfig)
	}
	if c.Games == "" {
		return fmt.Errorf("%w: games location must not be empty", ErrInvalidConfig)
	}
	if c.Window < 1 {
		return fmt.Errorf("%w: window must be at least 1, got %d", ErrInvalidConfig, c.Window)
	}
	if err := sos.ValidateConference(c.Conference); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := chart.ParseMetric(c.Metric); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := chart.ParseSmoothing(c.Smoothing); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.ChartWidthIn <= 0 || c.ChartHeightIn <= 0 {
		return fmt.Errorf("%w: chart dimensions must be positive, got %gx%g", ErrInvalidConfig, c.ChartWidthIn, c.ChartHeightIn)
	}
	if c.Samples < 2 {
		return fmt.Errorf("%w: samples must be at least 2, got %d", ErrInvalidConfig, c.Samples)
	}
	return nil
}
