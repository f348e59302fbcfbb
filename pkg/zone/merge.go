package zone

import (
	"strconv"
	"strings"

	"tableflip.dev/party/pkg/task"
)

// Provenance records where a merged item came from.
type Provenance string

const (
	Static  Provenance = "static"
	Dynamic Provenance = "dynamic"
)

const dynamicKeyPrefix = "checklist-"

// StaticKey is the identity key of the index-th seeded item of a zone.
func StaticKey(zoneID string, index int) string {
	return zoneID + "-" + strconv.Itoa(index)
}

// DynamicKey is the identity key of the index-th item of a generated list.
func DynamicKey(index int) string {
	return dynamicKeyPrefix + strconv.Itoa(index)
}

// IsDynamicKey reports whether key addresses a generated item.
func IsDynamicKey(key string) bool {
	return strings.HasPrefix(key, dynamicKeyPrefix)
}

// MergedItem is a seeded or generated task placed in a zone. Exactly one of
// Static and Dynamic is set, matching Provenance.
type MergedItem struct {
	Provenance Provenance  `json:"provenance"`
	Key        string      `json:"key"`
	ZoneID     string      `json:"zone"`
	Static     *StaticItem `json:"static,omitempty"`
	Dynamic    *task.Item  `json:"dynamic,omitempty"`
}

// Task returns the item description.
func (m MergedItem) Task() string {
	if m.Dynamic != nil {
		return m.Dynamic.Task
	}
	if m.Static != nil {
		return m.Static.Task
	}
	return ""
}

// Category returns the generated category, or "" for seeded items.
func (m MergedItem) Category() string {
	if m.Dynamic != nil {
		return m.Dynamic.Category
	}
	return ""
}

// Priority returns the item priority as written.
func (m MergedItem) Priority() string {
	if m.Dynamic != nil {
		return string(m.Dynamic.Priority)
	}
	if m.Static != nil {
		return m.Static.Priority
	}
	return ""
}

// SearchTerms returns the shopping search hint.
func (m MergedItem) SearchTerms() string {
	if m.Dynamic != nil {
		return m.Dynamic.SearchTerms
	}
	if m.Static != nil {
		return m.Static.SearchTerms
	}
	return ""
}

// CostEstimate implements cost.Estimated.
func (m MergedItem) CostEstimate() string {
	if m.Dynamic != nil {
		return m.Dynamic.EstimatedCost
	}
	if m.Static != nil {
		return m.Static.EstimatedCost
	}
	return ""
}

// MergedZone is a zone with its seeded items followed by the generated items
// routed to it.
type MergedZone struct {
	ID    string       `json:"id"`
	Emoji string       `json:"emoji"`
	Name  string       `json:"name"`
	Color string       `json:"color"`
	Items []MergedItem `json:"items"`
}

// Merge places every generated item into its zone. Zones keep taxonomy order;
// within a zone the seeded items come first in configured order, then the
// generated items in list order. Generated items are keyed by their index in
// the full list so a key means the same item whatever zone it lands in.
// Merge is pure; callers recompute it whenever the list changes.
func Merge(items []task.Item, t *Taxonomy) []MergedZone {
	zones := make([]MergedZone, len(t.Zones))
	index := make(map[string]int, len(t.Zones))
	for i, z := range t.Zones {
		index[z.ID] = i
		mz := MergedZone{
			ID:    z.ID,
			Emoji: z.Emoji,
			Name:  z.Name,
			Color: z.Color,
			Items: make([]MergedItem, 0, len(z.Items)),
		}
		for j := range z.Items {
			static := z.Items[j]
			mz.Items = append(mz.Items, MergedItem{
				Provenance: Static,
				Key:        StaticKey(z.ID, j),
				ZoneID:     z.ID,
				Static:     &static,
			})
		}
		zones[i] = mz
	}

	if len(zones) == 0 {
		return zones
	}
	fallback := len(zones) - 1
	if i, ok := index[t.defaultID()]; ok {
		fallback = i
	}
	for i := range items {
		it := items[i]
		zi, ok := index[t.ZoneFor(it.Category)]
		if !ok {
			// Routed to a zone the taxonomy does not define.
			zi = fallback
		}
		zones[zi].Items = append(zones[zi].Items, MergedItem{
			Provenance: Dynamic,
			Key:        DynamicKey(i),
			ZoneID:     zones[zi].ID,
			Dynamic:    &it,
		})
	}
	return zones
}

// Keys returns every identity key in the merged view, in display order.
func Keys(zones []MergedZone) []string {
	var keys []string
	for _, z := range zones {
		for _, it := range z.Items {
			keys = append(keys, it.Key)
		}
	}
	return keys
}

// Find returns the merged item with the given key.
func Find(zones []MergedZone, key string) (MergedItem, bool) {
	for _, z := range zones {
		for _, it := range z.Items {
			if it.Key == key {
				return it, true
			}
		}
	}
	return MergedItem{}, false
}
