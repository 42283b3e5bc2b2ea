package sos

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedRecord is returned when a record string is not in "wins-losses" format.
var ErrMalformedRecord = errors.New("malformed record")

// ErrDivisionByZero is returned when a record has zero losses, making the win ratio undefined.
var ErrDivisionByZero = errors.New("division by zero")

// ParseRecord converts a "wins-losses" record string into the ratio wins / losses.
func ParseRecord(record string) (float64, error) {
	splits := strings.Split(record, "-")
	if len(splits) != 2 {
		return 0, fmt.Errorf("ParseRecord: unexpected number of fields in record '%s': expected 2, got %d: %w", record, len(splits), ErrMalformedRecord)
	}
	wins, err := strconv.Atoi(strings.TrimSpace(splits[0]))
	if err != nil {
		return 0, fmt.Errorf("ParseRecord: unable to parse wins in record '%s': %w", record, errors.Join(ErrMalformedRecord, err))
	}
	losses, err := strconv.Atoi(strings.TrimSpace(splits[1]))
	if err != nil {
		return 0, fmt.Errorf("ParseRecord: unable to parse losses in record '%s': %w", record, errors.Join(ErrMalformedRecord, err))
	}
	if losses == 0 {
		return 0, fmt.Errorf("ParseRecord: record '%s' has no losses: %w", record, ErrDivisionByZero)
	}
	return float64(wins) / float64(losses), nil
}

// Standings maps a team name to its overall "wins-losses" record.
type Standings map[string]string

// Ratio returns the parsed win ratio of the given team.
func (s Standings) Ratio(team string) (float64, error) {
	record, ok := s[team]
	if !ok {
		return 0, MissingTeamError{Team: team, Table: "standings"}
	}
	return ParseRecord(record)
}
