// Package status provides the CLI runner that shows a plan checklist.
package status

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/party/pkg/app"
	"tableflip.dev/party/pkg/log"
	"tableflip.dev/party/pkg/plan"
	"tableflip.dev/party/pkg/printers"
	"tableflip.dev/party/pkg/store"
)

type Status struct {
	Service      *app.Service
	Name         string
	ShowKeys     bool
	ShowExcluded bool
	JSON         bool
	// Watch re-renders whenever the stored plan changes, until ctx is done.
	Watch bool
	Out   io.Writer
}

func (n *Status) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show status, no service")
	}
	if err := n.render(ctx); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}

	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !n.affects(ev) {
				continue
			}
			if err := n.render(ctx); err != nil {
				log.Warn().Err(err).Str("plan", n.Name).Msg("status: refresh failed")
			}
		}
	}
}

func (n *Status) affects(ev store.Event) bool {
	if ev.Type == store.EventInvalidated {
		return true
	}
	name, err := plan.CleanName(n.Name)
	if err != nil {
		return true
	}
	return ev.Key == app.PlanKey(name)
}

func (n *Status) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

func (n *Status) render(ctx context.Context) error {
	v, err := n.Service.View(ctx, n.Name)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.out(), v)
	}

	pp := printers.PrettyPrint{ShowKeys: n.ShowKeys, ShowExcluded: n.ShowExcluded, Out: n.out()}
	pp.NewLine()
	pp.Title(v.Title)
	pp.NewLine()
	if len(v.Plan.Items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintf(n.out(), "no generated items yet, run `party generate %s`\n\n", v.Plan.Name)
	}
	pp.Checklist(v.Zones, v.Plan.Overlay)
	pp.Summary(v.Summary)
	_, _ = fmt.Fprintln(n.out(), "")
	return nil
}
