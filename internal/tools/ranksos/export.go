package ranksos

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/reallyasi9/sosplot/internal/chart"
	"github.com/reallyasi9/sosplot/internal/sos"
	excelize "github.com/xuri/excelize/v2"
)

const (
	cumulativeSheet = "Cumulative"
	ranksSheet      = "Ranks"
)

// Export writes the cumulative values and ranks as a workbook to ctx.Output.
// With no output location, the rows of each sheet are printed to ctx.Out.
func Export(ctx *Context) error {
	xl, err := makeWorkbook(ctx.Analysis)
	if err != nil {
		return fmt.Errorf("Export: %w", err)
	}
	defer xl.Close()

	if ctx.Output == "" {
		for _, sheet := range []string{cumulativeSheet, ranksSheet} {
			if err := printSheet(ctx, xl, sheet); err != nil {
				return fmt.Errorf("Export: %w", err)
			}
		}
		return nil
	}

	w, err := ctx.Opener.Create(ctx.Context, ctx.Output)
	if err != nil {
		return fmt.Errorf("Export: failed to create '%s': %w", ctx.Output, err)
	}
	if _, err := xl.WriteTo(w); err != nil {
		w.Close()
		return fmt.Errorf("Export: failed to write workbook: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("Export: failed to close '%s': %w", ctx.Output, err)
	}
	log.Printf("Wrote workbook to %s", ctx.Output)
	return nil
}

func printSheet(ctx *Context, xl *excelize.File, sheet string) error {
	rows, err := xl.Rows(sheet)
	if err != nil {
		return fmt.Errorf("unable to get row iterator for sheet '%s': %w", sheet, err)
	}
	defer rows.Close()
	fmt.Fprintf(ctx.Out, "%s\n", sheet)
	for rows.Next() {
		row, err := rows.Columns()
		if err != nil {
			return fmt.Errorf("unable to get cells from sheet '%s': %w", sheet, err)
		}
		fmt.Fprintln(ctx.Out, strings.Join(row, ", "))
	}
	return nil
}

// makeWorkbook lays out one row per team, ordered by rank at the last window position,
// and one column per window position labeled by games remaining.
func makeWorkbook(a *sos.Analysis) (*excelize.File, error) {
	xl := excelize.NewFile()
	if err := xl.SetSheetName(xl.GetSheetName(xl.GetActiveSheetIndex()), cumulativeSheet); err != nil {
		return nil, err
	}
	if _, err := xl.NewSheet(ranksSheet); err != nil {
		return nil, err
	}

	for _, sheet := range []string{cumulativeSheet, ranksSheet} {
		if err := xl.SetCellStr(sheet, "A1", "Team"); err != nil {
			return nil, err
		}
		for p := 0; p < a.Window; p++ {
			cell, err := excelize.CoordinatesToCellName(p+2, 1)
			if err != nil {
				return nil, err
			}
			if err := xl.SetCellStr(sheet, cell, strconv.Itoa(a.Window-p)); err != nil {
				return nil, err
			}
		}
	}

	for i, team := range chart.Order(a.Ranks, a.Window-1) {
		row := i + 2
		for _, sheet := range []string{cumulativeSheet, ranksSheet} {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, err
			}
			if err := xl.SetCellStr(sheet, cell, team); err != nil {
				return nil, err
			}
		}

		values, _ := a.Strength.Get(team)
		for p, v := range values {
			cell, err := excelize.CoordinatesToCellName(p+2, row)
			if err != nil {
				return nil, err
			}
			if err := xl.SetCellFloat(cumulativeSheet, cell, v, 4, 64); err != nil {
				return nil, err
			}
			if r, ok := a.Ranks.At(team, p); ok {
				if err := xl.SetCellValue(ranksSheet, cell, r); err != nil {
					return nil, err
				}
			}
		}
	}
	return xl, nil
}
