// Package chart builds the strength of schedule chart: axis labels, per-team series, smoothed lines, and the rendered plot.
package chart

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/reallyasi9/sosplot/internal/league"
	"github.com/reallyasi9/sosplot/internal/sos"
)

type rankedTeam struct {
	team string
	rank int
}

// Order returns the teams sorted by rank at a window position.
// Teams without a rank at that position come last, in first-seen order.
func Order(rt *sos.RankTable, position int) []string {
	ranked := make([]rankedTeam, 0, rt.Len())
	for _, team := range rt.Teams() {
		r, ok := rt.At(team, position)
		if !ok {
			r = math.MaxInt
		}
		ranked = append(ranked, rankedTeam{team: team, rank: r})
	}
	slices.SortStableFunc(ranked, func(a, b rankedTeam) int { return cmp.Compare(a.rank, b.rank) })

	teams := make([]string, len(ranked))
	for i, r := range ranked {
		teams[i] = r.team
	}
	return teams
}

// Labels returns axis labels for the teams ordered by rank at a window position.
// Each label is the team's display name followed by its count from the bottom:
// with N teams, the first label ends in "(N)" and the last in "(1)".
func Labels(rt *sos.RankTable, position int) []string {
	teams := Order(rt, position)
	labels := make([]string, len(teams))
	for i, team := range teams {
		labels[i] = fmt.Sprintf("%s (%d)", league.DisplayName(team), len(teams)-i)
	}
	return labels
}

// TeamsStart labels the teams by rank at the first window position.
func TeamsStart(rt *sos.RankTable) []string {
	return Labels(rt, 0)
}

// TeamsEnd labels the teams by rank at the last window position.
func TeamsEnd(rt *sos.RankTable) []string {
	return Labels(rt, rt.Positions()-1)
}
