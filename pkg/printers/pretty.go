package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/party/pkg/glyph"
	"tableflip.dev/party/pkg/overlay"
	"tableflip.dev/party/pkg/progress"
	"tableflip.dev/party/pkg/zone"
)

type PrettyPrint struct {
	ShowKeys     bool
	ShowExcluded bool
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("entertainment-12  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowKeys {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

// Checklist prints every zone with its items and a per-zone count.
func (pp *PrettyPrint) Checklist(zones []zone.MergedZone, o *overlay.Overlay) {
	for _, z := range zones {
		pp.Zone(z, o)
	}
}

// Zone prints one zone heading and its items. Excluded items are hidden
// unless ShowExcluded is set.
func (pp *PrettyPrint) Zone(z zone.MergedZone, o *overlay.Overlay) {
	w := pp.out()
	h := color.New(append(zoneColor(z.Color), color.Bold)...)
	c := color.New(color.Faint)

	p := progress.ZoneProgress(z, o)
	if pp.ShowKeys {
		_, _ = h.Fprint(w, spacing)
	}
	_, _ = h.Fprintf(w, "%s %s", z.Emoji, z.Name)
	_, _ = c.Fprintf(w, " - %d/%d\n", p.Completed, p.Active)

	shown := 0
	for _, it := range z.Items {
		state := o.State(it.Key)
		if state == overlay.Excluded && !pp.ShowExcluded {
			continue
		}
		pp.item(it, state)
		shown++
	}
	if shown == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowKeys {
			_, _ = f.Fprint(w, spacing)
		}
		_, _ = f.Fprint(w, " none\n")
	}
	_, _ = fmt.Fprintln(w, "")
}

func (pp *PrettyPrint) item(it zone.MergedItem, state overlay.State) {
	w := pp.out()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	t := color.New()
	f := color.New(color.Faint)

	switch state {
	case overlay.Done:
		t = color.New(color.Faint)
	case overlay.Excluded:
		t = color.New(color.Faint, color.CrossedOut)
	}

	if pp.ShowKeys {
		_, _ = y.Fprint(w, it.Key)
		_, _ = y.Fprint(w, strings.Repeat(" ", max(1, len(spacing)-len(it.Key))))
	}
	_, _ = t.Fprintf(w, "%s %s %s", glyph.ForState(state), glyph.ForPriority(it.Priority()), it.Task())
	if est := strings.TrimSpace(it.CostEstimate()); est != "" {
		_, _ = f.Fprintf(w, "  %s", est)
	}
	_, _ = fmt.Fprintln(w, "")
}

func zoneColor(name string) []color.Attribute {
	switch name {
	case "red":
		return []color.Attribute{color.FgRed}
	case "green":
		return []color.Attribute{color.FgGreen}
	case "yellow":
		return []color.Attribute{color.FgYellow}
	case "blue":
		return []color.Attribute{color.FgBlue}
	case "magenta":
		return []color.Attribute{color.FgMagenta}
	case "cyan":
		return []color.Attribute{color.FgCyan}
	default:
		return nil
	}
}
