package sos

import "fmt"

// Conference selectors.
const (
	AllConferences = ""
	Eastern        = "E"
	Western        = "W"
)

// ConferenceLookup reports the conference a team plays in.
type ConferenceLookup interface {
	Conference(team string) (string, error)
}

// ConferenceName returns the long name of a conference selector, or the empty string for AllConferences.
func ConferenceName(conference string) string {
	switch conference {
	case Eastern:
		return "Eastern Conference"
	case Western:
		return "Western Conference"
	}
	return ""
}

// ValidateConference checks that a selector is one of the recognized values.
func ValidateConference(conference string) error {
	switch conference {
	case AllConferences, Eastern, Western:
		return nil
	}
	return UnknownConferenceError{Conference: conference}
}

// FilterConference keeps only the teams whose conference matches the selector.
// An empty selector keeps every team without consulting the lookup.
func FilterConference(s *Sequences, conference string, lookup ConferenceLookup) (*Sequences, error) {
	if err := ValidateConference(conference); err != nil {
		return nil, fmt.Errorf("FilterConference: %w", err)
	}
	if conference == AllConferences {
		return s.Map(func(_ string, v []float64) []float64 { return v }), nil
	}
	out, err := s.Filter(func(team string) (bool, error) {
		c, err := lookup.Conference(team)
		if err != nil {
			return false, err
		}
		return c == conference, nil
	})
	if err != nil {
		return nil, fmt.Errorf("FilterConference: %w", err)
	}
	return out, nil
}
