// Package progress folds a merged zone view and its overlay into counts,
// budget rollups and the plain-text checklist report.
package progress

import (
	"math"

	"tableflip.dev/party/pkg/cost"
	"tableflip.dev/party/pkg/overlay"
	"tableflip.dev/party/pkg/zone"
)

// Progress counts completed items against active items.
type Progress struct {
	Completed int `json:"completedCount"`
	Active    int `json:"activeCount"`
}

// Percent is the completed share of active items, rounded to a whole number.
// It is 0 when nothing is active.
func (p Progress) Percent() int {
	if p.Active == 0 {
		return 0
	}
	return int(math.Round(float64(p.Completed) * 100 / float64(p.Active)))
}

// Add sums two progress values.
func (p Progress) Add(o Progress) Progress {
	return Progress{Completed: p.Completed + o.Completed, Active: p.Active + o.Active}
}

// ActiveItems returns the items of z that are not excluded.
func ActiveItems(z zone.MergedZone, o *overlay.Overlay) []zone.MergedItem {
	active := make([]zone.MergedItem, 0, len(z.Items))
	for _, it := range z.Items {
		if !o.IsExcluded(it.Key) {
			active = append(active, it)
		}
	}
	return active
}

// ZoneProgress counts completion over the active items of z.
func ZoneProgress(z zone.MergedZone, o *overlay.Overlay) Progress {
	var p Progress
	for _, it := range ActiveItems(z, o) {
		p.Active++
		if o.IsCompleted(it.Key) {
			p.Completed++
		}
	}
	return p
}

// GlobalProgress sums ZoneProgress over every zone.
func GlobalProgress(zones []zone.MergedZone, o *overlay.Overlay) Progress {
	var p Progress
	for _, z := range zones {
		p = p.Add(ZoneProgress(z, o))
	}
	return p
}

// ExcludedCount counts merged items that are excluded. Overlay entries for
// keys not in the view are ignored.
func ExcludedCount(zones []zone.MergedZone, o *overlay.Overlay) int {
	n := 0
	for _, z := range zones {
		for _, it := range z.Items {
			if o.IsExcluded(it.Key) {
				n++
			}
		}
	}
	return n
}

// ZoneSummary is the per-zone line of a status view.
type ZoneSummary struct {
	ID       string   `json:"id"`
	Emoji    string   `json:"emoji"`
	Name     string   `json:"name"`
	Progress Progress `json:"progress"`
	Excluded int      `json:"excluded"`
}

// Summary is the aggregate status of a merged view.
type Summary struct {
	Progress Progress      `json:"progress"`
	Percent  int           `json:"percent"`
	Excluded int           `json:"excluded"`
	Zones    []ZoneSummary `json:"zones"`
}

// Summarize builds the zone-by-zone and global counts in one pass.
func Summarize(zones []zone.MergedZone, o *overlay.Overlay) Summary {
	s := Summary{Zones: make([]ZoneSummary, 0, len(zones))}
	for _, z := range zones {
		zs := ZoneSummary{
			ID:       z.ID,
			Emoji:    z.Emoji,
			Name:     z.Name,
			Progress: ZoneProgress(z, o),
			Excluded: ExcludedCount([]zone.MergedZone{z}, o),
		}
		s.Progress = s.Progress.Add(zs.Progress)
		s.Excluded += zs.Excluded
		s.Zones = append(s.Zones, zs)
	}
	s.Percent = s.Progress.Percent()
	return s
}

// BudgetLine adapts a merged item for cost aggregation. Seeded items have no
// category of their own and are grouped under their zone name.
type BudgetLine struct {
	Category string
	Estimate string
}

// CostEstimate implements cost.Estimated.
func (b BudgetLine) CostEstimate() string { return b.Estimate }

// CostCategory implements cost.Categorized.
func (b BudgetLine) CostCategory() string { return b.Category }

// Budget is the cost rollup of the active items.
type Budget struct {
	Total      cost.Total      `json:"total"`
	Categories []cost.Category `json:"categories"`
}

// BudgetFor sums the estimates of every active item. Seeded items carry no
// category and are grouped under their zone name, so this view never uses
// the cost package's "Other" bucket for them.
func BudgetFor(zones []zone.MergedZone, o *overlay.Overlay) Budget {
	var lines []BudgetLine
	for _, z := range zones {
		for _, it := range ActiveItems(z, o) {
			category := it.Category()
			if it.Provenance == zone.Static {
				category = z.Name
			}
			lines = append(lines, BudgetLine{Category: category, Estimate: it.CostEstimate()})
		}
	}
	return Budget{
		Total:      cost.Sum(lines),
		Categories: cost.Breakdown(lines),
	}
}
