// Package league holds the static lookup tables of a league: which conference each team plays in
// and which color represents it on a chart.
package league

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reallyasi9/sosplot/internal/sos"
	"github.com/reallyasi9/sosplot/internal/tabular"
)

//go:embed nba-2020-21.yaml
var defaultLeague []byte

// Team is one entry in the league table.
type Team struct {
	// Name is the full team name exactly as it appears in the standings and game tables.
	Name string `koanf:"name"`

	// Conference is "E" or "W".
	Conference string `koanf:"conference"`

	// Color is the chart color in HTML RGB format ("#RRGGBB").
	Color string `koanf:"color"`
}

// League is a set of teams with their conferences and colors.
type League struct {
	// Season is a display title for the season, e.g. "2020-2021 NBA Season".
	Season string `koanf:"season"`
	Teams  []Team `koanf:"teams"`

	byName map[string]Team
	colors map[string]color.RGBA
}

// TeamNotFoundError is returned when a team is looked up that the league does not list.
type TeamNotFoundError struct {
	Name  string
	Table string
}

func (e TeamNotFoundError) Error() string {
	return fmt.Sprintf("team '%s' not found in league %s table", e.Name, e.Table)
}

// rawBytes is a koanf.Provider for YAML that is already in memory.
type rawBytes []byte

func (r rawBytes) ReadBytes() ([]byte, error) { return r, nil }

func (r rawBytes) Read() (map[string]interface{}, error) {
	return nil, errors.New("raw bytes provider does not support Read")
}

// Default returns the built-in 2020-21 NBA league table.
func Default() (*League, error) {
	return Parse(defaultLeague)
}

// Parse reads a league table from YAML.
func Parse(b []byte) (*League, error) {
	return load(rawBytes(b))
}

// LoadFile reads a league table from a YAML file on local disk.
func LoadFile(path string) (*League, error) {
	return load(file.Provider(path))
}

// Load reads a league table from a location. An empty location returns the built-in table.
func Load(ctx context.Context, o tabular.Opener, location string) (*League, error) {
	if location == "" {
		log.Print("Using built-in 2020-21 NBA league table")
		return Default()
	}
	u, err := url.Parse(location)
	if err == nil && (u.Scheme == "" || u.Scheme == "file") {
		l, err := LoadFile(u.Path)
		if err != nil {
			return nil, fmt.Errorf("Load: '%s': %w", location, err)
		}
		return l, nil
	}
	r, err := o.Open(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("Load: failed to open '%s': %w", location, err)
	}
	defer r.Close()
	slurp, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Load: failed to read '%s': %w", location, err)
	}
	l, err := Parse(slurp)
	if err != nil {
		return nil, fmt.Errorf("Load: '%s': %w", location, err)
	}
	return l, nil
}

func load(p koanf.Provider) (*League, error) {
	k := koanf.New(".")
	if err := k.Load(p, yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse league table: %w", err)
	}
	var l League
	if err := k.UnmarshalWithConf("", &l, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode league table: %w", err)
	}
	if err := l.index(); err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *League) index() error {
	l.byName = make(map[string]Team, len(l.Teams))
	l.colors = make(map[string]color.RGBA, len(l.Teams))
	for i, t := range l.Teams {
		if t.Name == "" {
			return fmt.Errorf("team %d has no name", i)
		}
		if _, ok := l.byName[t.Name]; ok {
			return fmt.Errorf("team '%s' listed more than once", t.Name)
		}
		if t.Conference != sos.Eastern && t.Conference != sos.Western {
			return fmt.Errorf("team '%s': %w", t.Name, sos.UnknownConferenceError{Conference: t.Conference})
		}
		c, err := ParseColor(t.Color)
		if err != nil {
			return fmt.Errorf("team '%s': %w", t.Name, err)
		}
		l.byName[t.Name] = t
		l.colors[t.Name] = c
	}
	return nil
}

// Conference returns the conference of a team.
func (l *League) Conference(team string) (string, error) {
	t, ok := l.byName[team]
	if !ok {
		return "", TeamNotFoundError{Name: team, Table: "conference"}
	}
	return t.Conference, nil
}

// Color returns the chart color of a team.
func (l *League) Color(team string) (color.Color, error) {
	c, ok := l.colors[team]
	if !ok {
		return nil, TeamNotFoundError{Name: team, Table: "color"}
	}
	return c, nil
}

// ParseColor parses an HTML "#RRGGBB" color string.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color '%s' not in #RRGGBB format", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color '%s' not in #RRGGBB format: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// DisplayName shortens a full team name to its last word, dropping the city: "Utah Jazz" becomes "Jazz".
func DisplayName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[len(fields)-1]
}
