// Package budget provides the CLI runner that prints a plan cost rollup.
package budget

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/party/pkg/app"
	"tableflip.dev/party/pkg/printers"
)

type Budget struct {
	Service *app.Service
	Name    string
	JSON    bool
	Out     io.Writer
}

func (n *Budget) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not compute budget, no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	v, err := n.Service.View(ctx, n.Name)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(out, v.Budget)
	}

	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	pp.Title(v.Title + " budget")
	pp.NewLine()
	pp.Budget(v.Budget)
	if v.Plan.Params.Budget != "" {
		_, _ = color.New(color.Faint).Fprintf(out, "\nplanned budget: %s\n", v.Plan.Params.Budget)
	}
	pp.NewLine()
	return nil
}
