// Package zones provides the CLI runner that prints the zone taxonomy and the
// checklist legend.
package zones

import (
	"context"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/party/pkg/printers"
	"tableflip.dev/party/pkg/zone"
)

type Zones struct {
	Taxonomy *zone.Taxonomy
	JSON     bool
	Out      io.Writer
}

func (n *Zones) Do(_ context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	t := n.Taxonomy
	if t == nil {
		t = zone.Default()
	}
	if n.JSON {
		return printers.JSON(out, t)
	}

	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	pp.Zones(t)
	pp.NewLine()
	pp.Key()
	return nil
}
