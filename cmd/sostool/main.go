package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/reallyasi9/sosplot/internal/config"
)

type globalCmd struct {
	Config     string `help:"YAML config file. Values given on the command line override it." env:"SOS_CONFIG" type:"path"`
	Standings  string `help:"Location of the standings table (local path, file://, gs://, or http(s)://)."`
	Games      string `help:"Location of the game log for the trailing month."`
	League     string `help:"Location of the league YAML with team conferences and colors. If empty, the built-in 2020-21 NBA table is used."`
	Conference string `help:"Restrict to one conference: E or W. If empty, all teams are kept." enum:",E,W" default:""`
	Window     int    `help:"Number of trailing games per team." default:"0"`
}

// load layers the config file and environment under the command-line flags and validates the result.
func (g *globalCmd) load(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx, g.Config)
	if err != nil {
		return nil, err
	}
	if g.Standings != "" {
		cfg.Standings = g.Standings
	}
	if g.Games != "" {
		cfg.Games = g.Games
	}
	if g.League != "" {
		cfg.League = g.League
	}
	if g.Conference != "" {
		cfg.Conference = g.Conference
	}
	if g.Window > 0 {
		cfg.Window = g.Window
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var CLI struct {
	globalCmd

	Plot   plotCmd   `cmd:"" help:"Plot strength of schedule over the trailing games."`
	Table  tableCmd  `cmd:"" help:"Print each team's trailing strength of schedule and ranks."`
	Export exportCmd `cmd:"" help:"Export cumulative strength of schedule and ranks to an Excel workbook."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sostool"),
		kong.Description("Strength of schedule over the last games of the season."),
	)
	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}
