// Package inputs reads the standings, game log, and league table named by a Config and runs the analysis.
package inputs

import (
	"context"
	"fmt"
	"log"

	"github.com/reallyasi9/sosplot/internal/config"
	"github.com/reallyasi9/sosplot/internal/league"
	"github.com/reallyasi9/sosplot/internal/sos"
	"github.com/reallyasi9/sosplot/internal/tabular"
)

// Opener returns the location opener configured by cfg.
func Opener(cfg *config.Config) tabular.Opener {
	return tabular.Opener{Anonymous: cfg.AnonymousGCS}
}

// Load reads every input named by cfg and returns the analysis along with the league table used for it.
func Load(ctx context.Context, cfg *config.Config) (*sos.Analysis, *league.League, error) {
	o := Opener(cfg)

	lg, err := league.Load(ctx, o, cfg.League)
	if err != nil {
		return nil, nil, fmt.Errorf("Load: %w", err)
	}

	st, err := tabular.Read(ctx, o, cfg.Standings)
	if err != nil {
		return nil, nil, fmt.Errorf("Load: standings: %w", err)
	}
	standings, err := sos.StandingsFromTable(st, cfg.StandingsTeamColumn, cfg.StandingsRecordColumn)
	if err != nil {
		return nil, nil, fmt.Errorf("Load: standings '%s': %w", cfg.Standings, err)
	}

	gt, err := tabular.Read(ctx, o, cfg.Games)
	if err != nil {
		return nil, nil, fmt.Errorf("Load: games: %w", err)
	}
	games, err := sos.GamesFromTable(gt, cfg.HomeColumn, cfg.VisitorColumn, cfg.DateColumn)
	if err != nil {
		return nil, nil, fmt.Errorf("Load: games '%s': %w", cfg.Games, err)
	}
	log.Printf("Loaded %d teams' standings and %d games", len(standings), len(games))

	a, err := sos.Analyze(standings, games, lg, sos.Options{Window: cfg.Window, Conference: cfg.Conference})
	if err != nil {
		return nil, nil, fmt.Errorf("Load: %w", err)
	}
	return a, lg, nil
}

// Season returns the title prefix for the chart: the configured title, or the league's season.
func Season(cfg *config.Config, lg *league.League) string {
	if cfg.Title != "" {
		return cfg.Title
	}
	return lg.Season
}
