package sos

import (
	"errors"
	"slices"
	"testing"
)

func TestCumulative(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{name: "prefix sum", in: []float64{1, 2, 3}, want: []float64{1, 3, 6}},
		{name: "single", in: []float64{0.5}, want: []float64{0.5}},
		{name: "empty", in: []float64{}, want: []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := slices.Clone(tt.in)
			got := Cumulative(in)
			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if !slices.Equal(in, tt.in) {
				t.Errorf("input modified: expected %v, got %v", tt.in, in)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	ten := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	got := Truncate(ten, 8)
	want := []float64{3, 4, 5, 6, 7, 8, 9, 10}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	three := []float64{1, 2, 3}
	got = Truncate(three, 8)
	if !slices.Equal(got, three) {
		t.Errorf("expected %v, got %v", three, got)
	}
}

func TestAggregate(t *testing.T) {
	standings := Standings{"A": "10-5", "B": "5-10", "C": "6-6"}
	games := []Game{
		{Home: "A", Visitor: "B"},
		{Home: "C", Visitor: "A"},
	}
	s, err := Aggregate(games, standings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantTeams := []string{"A", "B", "C"}
	if !slices.Equal(s.Teams(), wantTeams) {
		t.Errorf("expected teams %v, got %v", wantTeams, s.Teams())
	}
	want := map[string][]float64{
		"A": {0.5, 1.0},
		"B": {2.0},
		"C": {2.0},
	}
	for team, w := range want {
		got, _ := s.Get(team)
		if !slices.Equal(got, w) {
			t.Errorf("%s: expected %v, got %v", team, w, got)
		}
	}

	_, err = Aggregate([]Game{{Home: "A", Visitor: "Z"}}, standings)
	var missing MissingTeamError
	if !errors.As(err, &missing) {
		t.Errorf("expected MissingTeamError, got %v", err)
	}
}

func TestStrengthOfSchedule(t *testing.T) {
	t.Run("single game", func(t *testing.T) {
		standings := Standings{"A": "10-5", "B": "5-10"}
		s, err := StrengthOfSchedule([]Game{{Home: "A", Visitor: "B"}}, standings, DefaultWindow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		a, _ := s.Get("A")
		b, _ := s.Get("B")
		if !slices.Equal(a, []float64{0.5}) {
			t.Errorf("A: expected %v, got %v", []float64{0.5}, a)
		}
		if !slices.Equal(b, []float64{2.0}) {
			t.Errorf("B: expected %v, got %v", []float64{2.0}, b)
		}
	})

	t.Run("window keeps last games", func(t *testing.T) {
		// A plays ten games; the first two against a 1-1 team, then eight against a 3-1 team.
		standings := Standings{"A": "1-1", "Weak": "1-1", "Strong": "3-1"}
		games := []Game{
			{Home: "A", Visitor: "Weak"},
			{Home: "A", Visitor: "Weak"},
		}
		for i := 0; i < 8; i++ {
			games = append(games, Game{Home: "Strong", Visitor: "A"})
		}
		s, err := StrengthOfSchedule(games, standings, DefaultWindow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := s.Get("A")
		want := []float64{3, 6, 9, 12, 15, 18, 21, 24}
		if !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}
