package ranksos

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/reallyasi9/sosplot/internal/chart"
	"github.com/reallyasi9/sosplot/internal/sos"
	"gonum.org/v1/gonum/stat"
)

// Row summarizes one team's trailing window.
type Row struct {
	Team       string
	Conference string
	Games      int

	// FirstCumulative and LastCumulative are NaN if the team has no value at that position.
	FirstCumulative float64
	LastCumulative  float64
	// FirstRank and LastRank are 0 if the team has no rank at that position.
	FirstRank int
	LastRank  int

	MeanOpponent float64
}

// Rows summarizes every analyzed team, ordered by rank at the last window position.
func Rows(a *sos.Analysis, conferences sos.ConferenceLookup) ([]Row, error) {
	last := a.Window - 1
	teams := chart.Order(a.Ranks, last)
	rows := make([]Row, len(teams))
	for i, team := range teams {
		conf, err := conferences.Conference(team)
		if err != nil {
			return nil, fmt.Errorf("Rows: %w", err)
		}
		opp, _ := a.Opponents.Get(team)
		cum, _ := a.Strength.Get(team)
		r := Row{
			Team:            team,
			Conference:      conf,
			Games:           len(opp),
			FirstCumulative: at(cum, 0),
			LastCumulative:  at(cum, last),
			MeanOpponent:    stat.Mean(opp, nil),
		}
		r.FirstRank, _ = a.Ranks.At(team, 0)
		r.LastRank, _ = a.Ranks.At(team, last)
		rows[i] = r
	}
	return rows, nil
}

func at(v []float64, i int) float64 {
	if i < 0 || i >= len(v) {
		return math.NaN()
	}
	return v[i]
}

// PrintTable writes the team summary to ctx.Out.
func PrintTable(ctx *Context) error {
	rows, err := Rows(ctx.Analysis, ctx.Conferences)
	if err != nil {
		return fmt.Errorf("PrintTable: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(ctx.Out)
	w := ctx.Analysis.Window
	t.AppendHeader(table.Row{"Team", "Conf.", "Games", fmt.Sprintf("Cum. SoS (%d left)", w), "Cum. SoS (1 left)", fmt.Sprintf("Rank (%d left)", w), "Rank (1 left)", "Mean Opp. W/L"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Team, r.Conference, r.Games, formatFloat(r.FirstCumulative), formatFloat(r.LastCumulative), formatRank(r.FirstRank), formatRank(r.LastRank), formatFloat(r.MeanOpponent)})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%0.3f", v)
}

func formatRank(r int) string {
	if r == 0 {
		return "-"
	}
	return strconv.Itoa(r)
}
