// Package zone holds the fixed party zone taxonomy and merges generated
// checklists into it.
package zone

import (
	"tableflip.dev/party/pkg/task"
)

// DefaultZoneID receives every category the taxonomy does not map.
const DefaultZoneID = "logistics"

// StaticItem is a task every party gets in a given zone.
type StaticItem struct {
	Task          string `json:"task"`
	SearchTerms   string `json:"searchTerms"`
	EstimatedCost string `json:"estimatedCost"`
	Priority      string `json:"priority"`
}

// Zone is a named area of the party with its seeded tasks.
type Zone struct {
	ID    string       `json:"id"`
	Emoji string       `json:"emoji"`
	Name  string       `json:"name"`
	Color string       `json:"color"`
	Items []StaticItem `json:"items"`
}

// Taxonomy is the ordered zone list plus the category routing table.
type Taxonomy struct {
	Zones      []Zone            `json:"zones"`
	Categories map[string]string `json:"categories"`
	DefaultID  string            `json:"defaultZone"`
}

// ZoneFor returns the zone id a category is routed to.
func (t *Taxonomy) ZoneFor(category string) string {
	if id, ok := t.Categories[category]; ok {
		return id
	}
	return t.defaultID()
}

func (t *Taxonomy) defaultID() string {
	if t.DefaultID == "" {
		return DefaultZoneID
	}
	return t.DefaultID
}

// Zone looks up a zone by id.
func (t *Taxonomy) Zone(id string) (Zone, bool) {
	for _, z := range t.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}

// StaticCount is the number of seeded items across all zones.
func (t *Taxonomy) StaticCount() int {
	n := 0
	for _, z := range t.Zones {
		n += len(z.Items)
	}
	return n
}

var defaultTaxonomy = Taxonomy{
	DefaultID: DefaultZoneID,
	Zones: []Zone{{
		ID:    "arrival",
		Emoji: "🎈",
		Name:  "Arrival & Welcome",
		Color: "magenta",
		Items: []StaticItem{
			{Task: "Welcome sign at the entrance", SearchTerms: "birthday welcome sign", EstimatedCost: "$15-30", Priority: "medium"},
			{Task: "Name tags and marker", SearchTerms: "kids name tag stickers", EstimatedCost: "$5-10", Priority: "low"},
			{Task: "Coat and gift drop-off spot", SearchTerms: "", EstimatedCost: "$0", Priority: "low"},
		},
	}, {
		ID:    "activities",
		Emoji: "🎪",
		Name:  "Activities & Games",
		Color: "yellow",
		Items: []StaticItem{
			{Task: "Party playlist and speaker", SearchTerms: "bluetooth party speaker", EstimatedCost: "$10-30", Priority: "medium"},
			{Task: "Game prizes", SearchTerms: "kids party game prizes", EstimatedCost: "$10-20", Priority: "medium"},
		},
	}, {
		ID:    "buffet",
		Emoji: "🍰",
		Name:  "Buffet & Cake",
		Color: "red",
		Items: []StaticItem{
			{Task: "Serving table and tablecloth", SearchTerms: "plastic tablecloth", EstimatedCost: "$5-15", Priority: "high"},
			{Task: "Cake knife and serving utensils", SearchTerms: "cake server set", EstimatedCost: "$5-10", Priority: "medium"},
			{Task: "Allergy labels for food", SearchTerms: "food allergy labels", EstimatedCost: "$5", Priority: "medium"},
		},
	}, {
		ID:    "favors",
		Emoji: "🎁",
		Name:  "Gifts & Favors",
		Color: "cyan",
		Items: []StaticItem{
			{Task: "Gift table and thank-you list", SearchTerms: "", EstimatedCost: "$0", Priority: "low"},
			{Task: "Thank-you cards", SearchTerms: "kids thank you cards", EstimatedCost: "$8-15", Priority: "low"},
		},
	}, {
		ID:    "cleanup",
		Emoji: "🧹",
		Name:  "Cleanup",
		Color: "green",
		Items: []StaticItem{
			{Task: "Recycling and trash stations", SearchTerms: "trash bags", EstimatedCost: "$5-10", Priority: "medium"},
			{Task: "Leftover containers", SearchTerms: "food storage containers", EstimatedCost: "$5-15", Priority: "low"},
		},
	}, {
		ID:    DefaultZoneID,
		Emoji: "📋",
		Name:  "Logistics",
		Color: "blue",
		Items: []StaticItem{
			{Task: "Confirm venue booking and timing", SearchTerms: "", EstimatedCost: "$0", Priority: "high"},
			{Task: "First aid kit on hand", SearchTerms: "first aid kit", EstimatedCost: "$10-20", Priority: "medium"},
			{Task: "Phone charged for photos", SearchTerms: "", EstimatedCost: "$0", Priority: "low"},
		},
	}},
	Categories: map[string]string{
		task.CategoryInvitations:      "arrival",
		task.CategoryDecorations:      "arrival",
		task.CategoryRentals:          "activities",
		task.CategoryEntertainment:    "activities",
		task.CategoryActivitySupplies: "activities",
		task.CategoryFood:             "buffet",
		task.CategoryDessert:          "buffet",
		task.CategoryDrinks:           "buffet",
		task.CategoryFavors:           "favors",
		task.CategorySupplies:         "cleanup",
	},
}

// Default returns the built-in taxonomy. The returned value shares nothing
// with the package copy, so callers may not mutate configuration by accident.
func Default() *Taxonomy {
	t := &Taxonomy{
		DefaultID:  defaultTaxonomy.DefaultID,
		Zones:      make([]Zone, len(defaultTaxonomy.Zones)),
		Categories: make(map[string]string, len(defaultTaxonomy.Categories)),
	}
	for i, z := range defaultTaxonomy.Zones {
		z.Items = append([]StaticItem(nil), z.Items...)
		t.Zones[i] = z
	}
	for k, v := range defaultTaxonomy.Categories {
		t.Categories[k] = v
	}
	return t
}
