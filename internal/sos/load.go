package sos

import (
	"fmt"
	"strings"
)

// Table is a header-addressable table of string cells.
type Table interface {
	Column(name string) ([]string, error)
	HasColumn(name string) bool
}

// StandingsFromTable reads team records from the named columns of a standings table.
// A team listed twice is an error.
func StandingsFromTable(t Table, teamColumn, recordColumn string) (Standings, error) {
	teams, err := t.Column(teamColumn)
	if err != nil {
		return nil, fmt.Errorf("StandingsFromTable: %w", err)
	}
	records, err := t.Column(recordColumn)
	if err != nil {
		return nil, fmt.Errorf("StandingsFromTable: %w", err)
	}

	standings := make(Standings, len(teams))
	seen := make(map[string]int, len(teams))
	for i, team := range teams {
		team = strings.TrimSpace(team)
		if first, ok := seen[team]; ok {
			return nil, fmt.Errorf("StandingsFromTable: %w", DuplicateTeamError{Team: team, Table: "standings", Rows: []int{first, i}})
		}
		seen[team] = i
		standings[team] = strings.TrimSpace(records[i])
	}
	return standings, nil
}

// GamesFromTable reads games from the named columns of a game log, in row order.
// The date column is optional: if the table does not have it, games are left undated.
func GamesFromTable(t Table, homeColumn, visitorColumn, dateColumn string) ([]Game, error) {
	homes, err := t.Column(homeColumn)
	if err != nil {
		return nil, fmt.Errorf("GamesFromTable: %w", err)
	}
	visitors, err := t.Column(visitorColumn)
	if err != nil {
		return nil, fmt.Errorf("GamesFromTable: %w", err)
	}
	var dates []string
	if dateColumn != "" && t.HasColumn(dateColumn) {
		dates, err = t.Column(dateColumn)
		if err != nil {
			return nil, fmt.Errorf("GamesFromTable: %w", err)
		}
	}

	games := make([]Game, len(homes))
	for i := range homes {
		games[i] = Game{
			Home:    strings.TrimSpace(homes[i]),
			Visitor: strings.TrimSpace(visitors[i]),
		}
		if dates != nil {
			games[i].Date = strings.TrimSpace(dates[i])
		}
	}
	return games, nil
}
