package main

import (
	"context"
	"os"

	"github.com/reallyasi9/sosplot/internal/tools/inputs"
	"github.com/reallyasi9/sosplot/internal/tools/ranksos"
)

type tableCmd struct{}

func (a *tableCmd) Run(g *globalCmd) error {
	ctx := ranksos.NewContext(context.Background())
	cfg, err := g.load(ctx.Context)
	if err != nil {
		return err
	}
	analysis, lg, err := inputs.Load(ctx.Context, cfg)
	if err != nil {
		return err
	}
	ctx.Analysis = analysis
	ctx.Conferences = lg
	ctx.Out = os.Stdout
	return ranksos.PrintTable(ctx)
}
