package printers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/party/pkg/glyph"
	"tableflip.dev/party/pkg/zone"
)

// Zones prints the taxonomy: each zone, its seeded item count and the
// categories routed to it.
func (pp *PrettyPrint) Zones(t *zone.Taxonomy) {
	bold := color.New(color.Bold)

	routed := make(map[string][]string)
	for category, id := range t.Categories {
		routed[id] = append(routed[id], category)
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("Zone"), bold.Sprint("ID"), bold.Sprint("Seeded"), bold.Sprint("Categories"))
	for _, z := range t.Zones {
		cats := routed[z.ID]
		sort.Strings(cats)
		if z.ID == t.DefaultID || (t.DefaultID == "" && z.ID == zone.DefaultZoneID) {
			cats = append(cats, "(anything else)")
		}
		tbl.AddRow(z.Emoji+" "+z.Name, z.ID, len(z.Items), strings.Join(cats, ", "))
	}
	tbl.RightAlign(2)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Key prints the glyph legend used by Checklist.
func (pp *PrettyPrint) Key() {
	bold := color.New(color.Bold)

	for _, set := range []struct {
		title  string
		glyphs []glyph.Glyph
	}{
		{title: "State", glyphs: glyph.States()},
		{title: "Priority", glyphs: glyph.Priorities()},
	} {
		gs := set.glyphs
		sort.Sort(glyph.ByOrder(gs))

		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold.Sprint(set.title), bold.Sprint("Meaning"))
		for _, g := range gs {
			tbl.AddRow(g.Symbol, g.Meaning)
		}
		tbl.RightAlign(0)
		_, _ = fmt.Fprintln(pp.out(), tbl)
		_, _ = fmt.Fprintln(pp.out(), "")
	}
}
