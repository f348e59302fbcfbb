package glyph

import (
	"tableflip.dev/party/pkg/overlay"
	"tableflip.dev/party/pkg/task"
)

// Glyph is a printed symbol and what it means in the checklist legend.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Order   int
}

// States returns the glyphs for item states, in legend order.
func States() []Glyph {
	return []Glyph{
		{Key: overlay.Open.String(), Symbol: "☐", Meaning: "to do", Order: 0},
		{Key: overlay.Done.String(), Symbol: "☑", Meaning: "done", Order: 1},
		{Key: overlay.Excluded.String(), Symbol: "⦵", Meaning: "excluded, not counted", Order: 2},
	}
}

// Priorities returns the glyphs for task priorities, in legend order.
func Priorities() []Glyph {
	return []Glyph{
		{Key: string(task.PriorityHigh), Symbol: "✷", Meaning: "high priority", Order: 0},
		{Key: string(task.PriorityMedium), Symbol: "•", Meaning: "medium priority", Order: 1},
		{Key: string(task.PriorityLow), Symbol: "·", Meaning: "low priority", Order: 2},
		{Key: "", Symbol: " ", Meaning: "seeded item", Order: 3},
	}
}

func (g Glyph) String() string {
	return g.Symbol
}

// ForState returns the glyph for s.
func ForState(s overlay.State) Glyph {
	for _, g := range States() {
		if g.Key == s.String() {
			return g
		}
	}
	return States()[0]
}

// ForPriority returns the glyph for a priority string. Unknown or empty
// priorities get the blank glyph.
func ForPriority(p string) Glyph {
	all := Priorities()
	for _, g := range all {
		if g.Key == p {
			return g
		}
	}
	return all[len(all)-1]
}

// ByOrder sorts glyphs by their legend order.
type ByOrder []Glyph

func (a ByOrder) Len() int           { return len(a) }
func (a ByOrder) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByOrder) Less(i, j int) bool { return a[i].Order < a[j].Order }
