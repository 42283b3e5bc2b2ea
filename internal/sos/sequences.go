package sos

import (
	"fmt"
	"slices"
	"strings"
)

// Sequences maps team names to sequences of values.
// Teams are iterated in the order in which they were first added, which is what ranking ties are broken by.
type Sequences struct {
	teams  []string
	values map[string][]float64
}

// NewSequences makes an empty table.
func NewSequences() *Sequences {
	return &Sequences{values: make(map[string][]float64)}
}

// Append adds a value to the end of a team's sequence, registering the team if it has not been seen.
func (s *Sequences) Append(team string, v float64) {
	if _, ok := s.values[team]; !ok {
		s.teams = append(s.teams, team)
	}
	s.values[team] = append(s.values[team], v)
}

// Set replaces a team's sequence. A team seen for the first time is placed last in iteration order.
func (s *Sequences) Set(team string, v []float64) {
	if _, ok := s.values[team]; !ok {
		s.teams = append(s.teams, team)
	}
	s.values[team] = slices.Clone(v)
}

// Get returns a copy of a team's sequence.
func (s *Sequences) Get(team string) ([]float64, bool) {
	v, ok := s.values[team]
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// Teams returns the teams in first-seen order.
func (s *Sequences) Teams() []string {
	return slices.Clone(s.teams)
}

// Len returns the number of teams.
func (s *Sequences) Len() int {
	return len(s.teams)
}

// Map builds a new table by applying f to every sequence, keeping team order.
func (s *Sequences) Map(f func(team string, v []float64) []float64) *Sequences {
	out := NewSequences()
	for _, team := range s.teams {
		out.Set(team, f(team, slices.Clone(s.values[team])))
	}
	return out
}

// Filter builds a new table holding only the teams for which keep returns true, keeping team order.
// The first error returned by keep stops the filter.
func (s *Sequences) Filter(keep func(team string) (bool, error)) (*Sequences, error) {
	out := NewSequences()
	for _, team := range s.teams {
		ok, err := keep(team)
		if err != nil {
			return nil, err
		}
		if ok {
			out.Set(team, s.values[team])
		}
	}
	return out, nil
}

func (s *Sequences) String() string {
	var sb strings.Builder
	for _, team := range s.teams {
		vals := make([]string, len(s.values[team]))
		for i, v := range s.values[team] {
			vals[i] = fmt.Sprintf("%0.3f", v)
		}
		sb.WriteString(fmt.Sprintf("%s: [%s]\n", team, strings.Join(vals, " ")))
	}
	return sb.String()
}
