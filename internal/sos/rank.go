package sos

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// RankTable holds a dense rank for every team at every window position.
// A rank of 1 belongs to the smallest value at that position.
type RankTable struct {
	teams     []string
	ranks     map[string][]int
	counts    []int
	positions int
}

// Rank assigns dense ranks at each of the given number of window positions.
// Only teams with a value at a position are ranked there; ties go to the team seen first in s.
func Rank(s *Sequences, positions int) *RankTable {
	rt := &RankTable{
		teams:     s.Teams(),
		ranks:     make(map[string][]int, s.Len()),
		counts:    make([]int, positions),
		positions: positions,
	}
	for _, team := range rt.teams {
		rt.ranks[team] = make([]int, positions)
	}

	for p := 0; p < positions; p++ {
		teams := make([]string, 0, s.Len())
		values := make([]float64, 0, s.Len())
		for _, team := range rt.teams {
			v := s.values[team]
			if p >= len(v) {
				continue
			}
			teams = append(teams, team)
			values = append(values, v[p])
		}
		sort.Stable(byOther[string, float64]{Slice: teams, SortBy: values})
		for i, team := range teams {
			rt.ranks[team][p] = i + 1
		}
		rt.counts[p] = len(teams)
	}

	return rt
}

// At returns the rank of a team at a position. The boolean is false if the team has no value there.
func (rt *RankTable) At(team string, position int) (int, bool) {
	r, ok := rt.ranks[team]
	if !ok || position < 0 || position >= rt.positions || r[position] == 0 {
		return 0, false
	}
	return r[position], true
}

// Teams returns the ranked teams in first-seen order.
func (rt *RankTable) Teams() []string {
	return slices.Clone(rt.teams)
}

// Len returns the number of teams under consideration.
func (rt *RankTable) Len() int {
	return len(rt.teams)
}

// Positions returns the number of window positions ranked.
func (rt *RankTable) Positions() int {
	return rt.positions
}

// Count returns the number of teams ranked at a position.
func (rt *RankTable) Count(position int) int {
	if position < 0 || position >= rt.positions {
		return 0
	}
	return rt.counts[position]
}

func (rt *RankTable) String() string {
	var sb strings.Builder
	for _, team := range rt.teams {
		rs := make([]string, rt.positions)
		for p := range rs {
			if r, ok := rt.At(team, p); ok {
				rs[p] = fmt.Sprintf("%2d", r)
			} else {
				rs[p] = " -"
			}
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", team, strings.Join(rs, " ")))
	}
	return sb.String()
}

// byOther sorts Slice by the values in SortBy, moving both together.
type byOther[X any, T constraints.Ordered] struct {
	Slice  []X
	SortBy []T
}

func (sbo byOther[X, T]) Len() int { return len(sbo.Slice) }
func (sbo byOther[X, T]) Swap(i, j int) {
	sbo.Slice[i], sbo.Slice[j] = sbo.Slice[j], sbo.Slice[i]
	sbo.SortBy[i], sbo.SortBy[j] = sbo.SortBy[j], sbo.SortBy[i]
}
func (sbo byOther[X, T]) Less(i, j int) bool { return sbo.SortBy[i] < sbo.SortBy[j] }
