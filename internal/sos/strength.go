package sos

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// DefaultWindow is the number of trailing games kept per team.
const DefaultWindow = 8

// Game is a single game between a home team and a visiting team.
type Game struct {
	Home    string
	Visitor string
	// Date is informational only and may be empty.
	Date string
}

func (g Game) String() string {
	if g.Date == "" {
		return fmt.Sprintf("%s vs %s", g.Visitor, g.Home)
	}
	return fmt.Sprintf("%s: %s vs %s", g.Date, g.Visitor, g.Home)
}

// Aggregate builds, for every team appearing in games, the chronological sequence of its opponents' win ratios.
// Ratios come from the final standings, not the standings at the time each game was played.
// Teams are ordered by first appearance, home team before visitor within a game.
func Aggregate(games []Game, standings Standings) (*Sequences, error) {
	s := NewSequences()
	for i, game := range games {
		visitorRatio, err := standings.Ratio(game.Visitor)
		if err != nil {
			return nil, fmt.Errorf("Aggregate: game %d (%s): %w", i, game, err)
		}
		homeRatio, err := standings.Ratio(game.Home)
		if err != nil {
			return nil, fmt.Errorf("Aggregate: game %d (%s): %w", i, game, err)
		}
		s.Append(game.Home, visitorRatio)
		s.Append(game.Visitor, homeRatio)
	}
	return s, nil
}

// Truncate keeps the last window values of v. Shorter sequences are returned whole, never padded.
func Truncate(v []float64, window int) []float64 {
	if len(v) <= window {
		return slices.Clone(v)
	}
	return slices.Clone(v[len(v)-window:])
}

// Cumulative returns the running sum of v as a new slice.
func Cumulative(v []float64) []float64 {
	return floats.CumSum(make([]float64, len(v)), v)
}

// StrengthOfSchedule aggregates opponent strengths, keeps the trailing window, and accumulates them.
func StrengthOfSchedule(games []Game, standings Standings, window int) (*Sequences, error) {
	raw, err := Aggregate(games, standings)
	if err != nil {
		return nil, err
	}
	return raw.Map(func(_ string, v []float64) []float64 {
		return Cumulative(Truncate(v, window))
	}), nil
}
