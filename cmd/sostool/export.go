package main

import (
	"context"
	"os"

	"github.com/reallyasi9/sosplot/internal/tools/inputs"
	"github.com/reallyasi9/sosplot/internal/tools/ranksos"
)

type exportCmd struct {
	Output string `help:"Workbook location. If not given, prints the rows to console. A Google Cloud Storage location can be given with a gs:// prefix." short:"o"`
}

func (a *exportCmd) Run(g *globalCmd) error {
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
	ctx.Opener = inputs.Opener(cfg)
	ctx.Out = os.Stdout
	ctx.Output = a.Output
	return ranksos.Export(ctx)
}
