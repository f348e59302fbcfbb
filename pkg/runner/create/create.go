// Package create provides the CLI runner that starts a new party plan.
package create

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

// Create stores a new plan and optionally generates its first checklist.
type Create struct {
	Service  *app.Service
	Name     string
	Meta     plan.Meta
	Params   task.Params
	Generate bool
	JSON     bool
	Out      io.Writer
}

func (n *Create) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not create, no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	p, err := n.Service.Create(ctx, n.Name, n.Meta, n.Params)
	if err != nil {
		return err
	}
	if n.Generate {
		if p, err = n.Service.Generate(ctx, p.Name); err != nil {
			return err
		}
	}

	if n.JSON {
		return printers.JSON(out, p)
	}
	_, _ = fmt.Fprintf(out, "created plan %q for %s\n", p.Name, p.ReportMeta().Title())
	if n.Generate {
		_, _ = fmt.Fprintf(out, "generated %d checklist items, see `party status %s`\n", len(p.Items), p.Name)
	} else {
		_, _ = fmt.Fprintf(out, "run `party generate %s` to build the checklist\n", p.Name)
	}
	return nil
}
