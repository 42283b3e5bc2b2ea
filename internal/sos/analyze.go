package sos

import (
	"fmt"
	"log"
)

// Options control an analysis run.
type Options struct {
	// Window is the number of trailing games kept per team. Values below 1 use DefaultWindow.
	Window int
	// Conference restricts the analysis to one conference. The empty string keeps every team.
	Conference string
}

// Analysis is the result of a strength of schedule run.
type Analysis struct {
	Window     int
	Conference string

	// Opponents holds the trailing-window opponent ratios before accumulation.
	Opponents *Sequences
	// Strength holds the cumulative strength of schedule.
	Strength *Sequences
	// Ranks holds the dense ranks of Strength at every window position.
	Ranks *RankTable
}

// Analyze runs the full pipeline: aggregate opponent strengths, keep the trailing window,
// filter by conference, accumulate, and rank.
// The conference filter is applied before ranking, so ranks are relative to the filtered teams.
func Analyze(standings Standings, games []Game, lookup ConferenceLookup, opts Options) (*Analysis, error) {
	window := opts.Window
	if window < 1 {
		window = DefaultWindow
	}

	raw, err := Aggregate(games, standings)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	log.Printf("Aggregated opponent strength for %d teams from %d games", raw.Len(), len(games))

	trailing := raw.Map(func(_ string, v []float64) []float64 { return Truncate(v, window) })

	filtered, err := FilterConference(trailing, opts.Conference, lookup)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	if opts.Conference != AllConferences {
		log.Printf("Kept %d of %d teams in conference '%s'", filtered.Len(), trailing.Len(), opts.Conference)
	}

	strength := filtered.Map(func(_ string, v []float64) []float64 { return Cumulative(v) })

	return &Analysis{
		Window:     window,
		Conference: opts.Conference,
		Opponents:  filtered,
		Strength:   strength,
		Ranks:      Rank(strength, window),
	}, nil
}
