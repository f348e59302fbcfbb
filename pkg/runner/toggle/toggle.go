// Package toggle provides the CLI runners that mark checklist items done or
// excluded.
package toggle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/party/pkg/app"
	"tableflip.dev/party/pkg/glyph"
	"tableflip.dev/party/pkg/printers"
	"tableflip.dev/party/pkg/zone"
)

// Flag selects which overlay flag is toggled.
type Flag int

const (
	Completed Flag = iota
	Excluded
)

type Toggle struct {
	Service *app.Service
	Name    string
	Keys    []string
	Flag    Flag
	JSON    bool
	Out     io.Writer
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not toggle, no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	// Check every key first so a bad key leaves the plan untouched.
	v, err := n.Service.View(ctx, n.Name)
	if err != nil {
		return err
	}
	for _, key := range n.Keys {
		if _, ok := zone.Find(v.Zones, strings.TrimSpace(key)); !ok {
			return fmt.Errorf("%w: %s", app.ErrUnknownKey, key)
		}
	}

	results := make([]app.ToggleResult, 0, len(n.Keys))
	for _, key := range n.Keys {
		var (
			res app.ToggleResult
			err error
		)
		switch n.Flag {
		case Excluded:
			res, err = n.Service.ToggleExcluded(ctx, n.Name, key)
		default:
			res, err = n.Service.ToggleCompleted(ctx, n.Name, key)
		}
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	if n.JSON {
		return printers.JSON(out, results)
	}
	f := color.New(color.Faint)
	for _, res := range results {
		_, _ = fmt.Fprintf(out, "%s %s", glyph.ForState(res.State), res.Task)
		if !res.Changed {
			_, _ = f.Fprint(out, "  (excluded, unchanged)")
		}
		_, _ = fmt.Fprintln(out, "")
	}
	return nil
}
