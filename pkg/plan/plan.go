// Package plan holds the state of a single in-progress party: its
// parameters, the current generated checklist and the overlay on top of it.
package plan

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/party/pkg/overlay"
	"tableflip.dev/party/pkg/progress"
	"tableflip.dev/party/pkg/task"
	"tableflip.dev/party/pkg/zone"
)

// CurrentSchema is written into every stored plan.
const CurrentSchema = "v1"

// ErrNoName is returned when a plan name is empty after cleaning.
var ErrNoName = errors.New("plan: name required")

// Meta is the party information that is not a generation input.
type Meta struct {
	ChildName string `json:"childName,omitempty"`
	Date      string `json:"date,omitempty"`
}

// Plan is one party being planned.
type Plan struct {
	Schema     string           `json:"schema"`
	Name       string           `json:"name"`
	Meta       Meta             `json:"meta"`
	Params     task.Params      `json:"params"`
	Generation string           `json:"generation,omitempty"`
	Generated  time.Time        `json:"generated,omitempty"`
	Items      []task.Item      `json:"items"`
	Overlay    *overlay.Overlay `json:"overlay"`
	Updated    time.Time        `json:"updated"`
}

var nameCleaner = regexp.MustCompile(`[^a-z0-9_]+`)

// CleanName turns a user-supplied name into a storage-safe slug.
func CleanName(name string) (string, error) {
	n := nameCleaner.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
	n = strings.Trim(n, "_")
	if n == "" {
		return "", ErrNoName
	}
	return n, nil
}

// New creates an empty plan with no checklist.
func New(name string, meta Meta, params task.Params) (*Plan, error) {
	n, err := CleanName(name)
	if err != nil {
		return nil, err
	}
	return &Plan{
		Schema:  CurrentSchema,
		Name:    n,
		Meta:    meta,
		Params:  params,
		Overlay: overlay.New(),
	}, nil
}

// Merge returns the merged zone view of the current checklist.
func (p *Plan) Merge(t *zone.Taxonomy) []zone.MergedZone {
	return zone.Merge(p.Items, t)
}

// ReportMeta builds the report header information.
func (p *Plan) ReportMeta() progress.Meta {
	return progress.Meta{
		ChildName:  p.Meta.ChildName,
		Theme:      p.Params.Theme,
		Date:       p.Meta.Date,
		GuestCount: p.Params.GuestCount,
		Budget:     p.Params.Budget,
	}
}

// Replace installs a freshly generated checklist under a new generation
// stamp. Overlay flags of generated items carry over to new items with the
// same category and task; flags of items that no longer exist are dropped.
// Seeded item flags are kept as they are.
func (p *Plan) Replace(items []task.Item, now time.Time) {
	moves := carryForward(p.Items, items)
	p.Overlay = p.Overlay.Rekey(func(key string) (string, bool) {
		if !zone.IsDynamicKey(key) {
			return key, true
		}
		nk, ok := moves[key]
		return nk, ok
	})
	p.Items = append([]task.Item(nil), items...)
	p.Generation = uuid.NewString()
	p.Generated = now
	p.Updated = now
}

// carryForward maps old dynamic keys to the new dynamic key of the first
// unclaimed new item with the same identity.
func carryForward(old, fresh []task.Item) map[string]string {
	free := make(map[string][]int, len(fresh))
	for j, it := range fresh {
		id := identity(it)
		free[id] = append(free[id], j)
	}
	moves := make(map[string]string)
	for i, it := range old {
		id := identity(it)
		slots := free[id]
		if len(slots) == 0 {
			continue
		}
		moves[zone.DynamicKey(i)] = zone.DynamicKey(slots[0])
		free[id] = slots[1:]
	}
	return moves
}

func identity(it task.Item) string {
	return normalize(it.Category) + "\x00" + normalize(it.Task)
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Marshal encodes the plan for storage.
func (p *Plan) Marshal() ([]byte, error) {
	if p.Schema == "" {
		p.Schema = CurrentSchema
	}
	return json.MarshalIndent(p, "", "  ")
}

// Unmarshal decodes a stored plan.
func Unmarshal(data []byte) (*Plan, error) {
	p := &Plan{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, err
	}
	if p.Schema == "" {
		p.Schema = CurrentSchema
	}
	if p.Overlay == nil {
		p.Overlay = overlay.New()
	}
	return p, nil
}
