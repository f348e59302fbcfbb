package progress

import (
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/party/pkg/cost"
	"tableflip.dev/party/pkg/overlay"
	"tableflip.dev/party/pkg/zone"
)

const (
	// CheckedBox marks a completed item in the report.
	CheckedBox = "☑"
	// UncheckedBox marks an open item in the report.
	UncheckedBox = "☐"

	notSet = "TBD"
)

// Meta describes the party in the report header.
type Meta struct {
	ChildName  string `json:"childName,omitempty"`
	Theme      string `json:"theme,omitempty"`
	Date       string `json:"date,omitempty"`
	GuestCount int    `json:"guestCount,omitempty"`
	Budget     string `json:"budget,omitempty"`
}

// Title is the party title used in headers, e.g. "Emma's Dinosaur Party".
func (m Meta) Title() string {
	var b strings.Builder
	if name := strings.TrimSpace(m.ChildName); name != "" {
		b.WriteString(name)
		b.WriteString("'s ")
	}
	if theme := strings.TrimSpace(m.Theme); theme != "" {
		b.WriteString(theme)
		b.WriteString(" ")
	}
	b.WriteString("Party")
	return b.String()
}

// filenameSeparators are replaced so a child name stays one path element.
var filenameSeparators = strings.NewReplacer("/", "-", "\\", "-", "..", "-")

// ExportFilename is the download name for a report. Path separators and ".."
// in the child name become "-".
func ExportFilename(m Meta) string {
	name := filenameSeparators.Replace(strings.TrimSpace(m.ChildName))
	if name == "" {
		name = "party"
	}
	return "party-checklist-" + name + ".txt"
}

// ExportReport renders the checklist as plain text. Zones without active
// items are skipped. The output depends only on its arguments.
func ExportReport(zones []zone.MergedZone, o *overlay.Overlay, m Meta) string {
	var b strings.Builder

	guests := notSet
	if m.GuestCount > 0 {
		guests = strconv.Itoa(m.GuestCount)
	}
	header := fmt.Sprintf("%s Checklist | Date: %s | Guests: %s | Budget: %s",
		m.Title(), orNotSet(m.Date), guests, orNotSet(m.Budget))
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 40))
	b.WriteString("\n")

	for _, z := range zones {
		active := ActiveItems(z, o)
		if len(active) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s %s\n", z.Emoji, strings.ToUpper(z.Name))
		for _, it := range active {
			box := UncheckedBox
			if o.IsCompleted(it.Key) {
				box = CheckedBox
			}
			fmt.Fprintf(&b, "  %s %s%s\n", box, it.Task(), costSuffix(it.CostEstimate()))
		}
	}

	p := GlobalProgress(zones, o)
	fmt.Fprintf(&b, "\nProgress: %d/%d completed (%d%%)\n", p.Completed, p.Active, p.Percent())
	if n := ExcludedCount(zones, o); n > 0 {
		fmt.Fprintf(&b, "Excluded: %d %s\n", n, plural(n, "item", "items"))
	}
	return b.String()
}

func costSuffix(estimate string) string {
	estimate = strings.TrimSpace(estimate)
	if cost.Parse(estimate).IsZero() {
		return ""
	}
	return " (" + estimate + ")"
}

func orNotSet(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSet
	}
	return s
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
