package sos

import "fmt"

// MissingTeamError is returned when a team is referenced but absent from a lookup table.
type MissingTeamError struct {
	Team  string
	Table string
}

func (e MissingTeamError) Error() string {
	return fmt.Sprintf("team '%s' not found in %s", e.Team, e.Table)
}

// DuplicateTeamError is returned when a team appears more than once in a table keyed by team.
type DuplicateTeamError struct {
	Team  string
	Table string
	Rows  []int
}

func (e DuplicateTeamError) Error() string {
	return fmt.Sprintf("team '%s' appears more than once in %s (rows %v)", e.Team, e.Table, e.Rows)
}

// UnknownConferenceError is returned when a conference selector is not one of the recognized values.
type UnknownConferenceError struct {
	Conference string
}

func (e UnknownConferenceError) Error() string {
	return fmt.Sprintf("conference '%s' not recognized: expected one of '', '%s', or '%s'", e.Conference, Eastern, Western)
}
