package inputs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/reallyasi9/sosplot/internal/config"
	"github.com/reallyasi9/sosplot/internal/sos"
)

const testStandings = `Rk,Team,Overall
1,Utah Jazz,52-20
2,Denver Nuggets,47-25
3,Miami Heat,40-32
4,Boston Celtics,36-36
`

const testGames = `Date,Visitor/Neutral,PTS,Home/Neutral,PTS
"Sat, May 1, 2021",Utah Jazz,98,Boston Celtics,102
"Sat, May 1, 2021",Denver Nuggets,110,Miami Heat,99
"Mon, May 3, 2021",Miami Heat,101,Utah Jazz,120
`

func writeInputs(t *testing.T, standings, games string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.New()
	cfg.Standings = filepath.Join(dir, "standings.csv")
	cfg.Games = filepath.Join(dir, "may.csv")
	if err := os.WriteFile(cfg.Standings, []byte(standings), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.Games, []byte(games), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestLoad(t *testing.T) {
	cfg := writeInputs(t, testStandings, testGames)

	a, lg, err := Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantTeams := []string{"Boston Celtics", "Utah Jazz", "Miami Heat", "Denver Nuggets"}
	if !slices.Equal(a.Strength.Teams(), wantTeams) {
		t.Errorf("expected %v, got %v", wantTeams, a.Strength.Teams())
	}
	heat, _ := a.Strength.Get("Miami Heat")
	if len(heat) != 2 || heat[1] < 4.47 || heat[1] > 4.49 {
		t.Errorf("expected Heat cumulative [1.88 4.48], got %v", heat)
	}
	if got := Season(cfg, lg); got != "2020-2021 NBA Season" {
		t.Errorf("expected league season, got %q", got)
	}
	cfg.Title = "Playoff Push"
	if got := Season(cfg, lg); got != "Playoff Push" {
		t.Errorf("expected configured title, got %q", got)
	}
}

func TestLoadConference(t *testing.T) {
	cfg := writeInputs(t, testStandings, testGames)
	cfg.Conference = sos.Eastern

	a, _, err := Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(a.Strength.Teams(), []string{"Boston Celtics", "Miami Heat"}) {
		t.Errorf("expected eastern teams, got %v", a.Strength.Teams())
	}
	if r, _ := a.Ranks.At("Miami Heat", 0); r != 1 {
		t.Errorf("expected Heat to rank 1, got %d", r)
	}
	if r, _ := a.Ranks.At("Boston Celtics", 0); r != 2 {
		t.Errorf("expected Celtics to rank 2, got %d", r)
	}
}

func TestLoadErrors(t *testing.T) {
	games := testGames + "\"Tue, May 4, 2021\",Phoenix Suns,110,Utah Jazz,100\n"
	cfg := writeInputs(t, testStandings, games)

	_, _, err := Load(context.Background(), cfg)
	var missing sos.MissingTeamError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingTeamError, got %v", err)
	}
	if missing.Team != "Phoenix Suns" {
		t.Errorf("expected missing Phoenix Suns, got %s", missing.Team)
	}

	cfg = writeInputs(t, testStandings, testGames)
	cfg.Games = filepath.Join(t.TempDir(), "june.csv")
	if _, _, err := Load(context.Background(), cfg); err == nil {
		t.Errorf("expected error for missing games file")
	}

	cfg = writeInputs(t, testStandings, testGames)
	cfg.StandingsRecordColumn = "W-L"
	if _, _, err := Load(context.Background(), cfg); err == nil {
		t.Errorf("expected error for missing record column")
	}
}
