// Package generate provides the CLI runner that (re)builds a plan checklist.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/party/pkg/app"
	"tableflip.dev/party/pkg/plan"
	"tableflip.dev/party/pkg/printers"
	"tableflip.dev/party/pkg/task"
)

type Generate struct {
	Service *app.Service
	Name    string
	// Adjust, when set, edits the stored parameters. A changed set is saved
	// before the checklist is regenerated.
	Adjust func(task.Params) (task.Params, bool)
	JSON   bool
	Out    io.Writer
}

func (n *Generate) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not generate, no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	p, err := n.generate(ctx)
	if err != nil {
		return err
	}
	v, err := n.Service.View(ctx, p.Name)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(out, v)
	}

	pp := printers.PrettyPrint{Out: out}
	_, _ = fmt.Fprintf(out, "generated %d items for %s\n\n", len(p.Items), v.Title)
	pp.Summary(v.Summary)
	return nil
}

func (n *Generate) generate(ctx context.Context) (*plan.Plan, error) {
	if n.Adjust == nil {
		return n.Service.Generate(ctx, n.Name)
	}
	cur, err := n.Service.Load(ctx, n.Name)
	if err != nil {
		return nil, err
	}
	params, changed := n.Adjust(cur.Params)
	if !changed {
		return n.Service.Generate(ctx, n.Name)
	}
	return n.Service.Regenerate(ctx, n.Name, params)
}
