package ranksos

import (
	"context"
	"io"

	"github.com/reallyasi9/sosplot/internal/sos"
	"github.com/reallyasi9/sosplot/internal/tabular"
)

type Context struct {
	context.Context

	Analysis    *sos.Analysis
	Conferences sos.ConferenceLookup
	Opener      tabular.Opener

	// Out receives printed tables and rows.
	Out io.Writer
	// Output is the location of the exported workbook. Empty prints the rows to Out instead.
	Output string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
