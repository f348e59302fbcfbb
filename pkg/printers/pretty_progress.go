package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/party/pkg/progress"
)

const barWidth = 20

// Bar renders a fixed-width progress bar such as "[#####---------------]".
func Bar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * barWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

// Summary prints the global progress line followed by one line per zone.
func (pp *PrettyPrint) Summary(s progress.Summary) {
	w := pp.out()
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	g := color.New(color.FgGreen)

	_, _ = b.Fprint(w, "Progress ")
	_, _ = g.Fprint(w, Bar(s.Percent))
	_, _ = fmt.Fprintf(w, " %d/%d (%d%%)", s.Progress.Completed, s.Progress.Active, s.Percent)
	if s.Excluded > 0 {
		_, _ = f.Fprintf(w, ", %d excluded", s.Excluded)
	}
	_, _ = fmt.Fprintln(w, "")

	for _, z := range s.Zones {
		_, _ = fmt.Fprintf(w, "  %s %-20s %s %d/%d\n", z.Emoji, z.Name, Bar(z.Progress.Percent()), z.Progress.Completed, z.Progress.Active)
	}
}
