// Package task produces the ordered list of party tasks for a plan, either
// from a text-generation backend or from a built-in rule library.
package task

import (
	"strconv"
	"strings"
)

// Priority ranks a task. The empty Priority means none was given.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Item is a single generated to-do entry. Items have no identity beyond their
// position in the list that produced them.
type Item struct {
	Category      string   `json:"category"`
	Task          string   `json:"task"`
	Priority      Priority `json:"priority,omitempty"`
	EstimatedCost string   `json:"estimatedCost"`
	SearchTerms   string   `json:"searchTerms"`

	// Completed is always stamped false on generation. Completion lives in
	// the plan overlay; this field is only kept so generated lists round-trip.
	Completed bool `json:"completed"`
}

// CostEstimate implements cost.Estimated.
func (i Item) CostEstimate() string { return i.EstimatedCost }

// CostCategory implements cost.Categorized.
func (i Item) CostCategory() string { return i.Category }

// Params describes the party a checklist is generated for.
type Params struct {
	Theme         string   `json:"theme"`
	Age           int      `json:"age,omitempty"`
	VenueType     string   `json:"venueType,omitempty"`
	Budget        string   `json:"budget,omitempty"`
	GuestCount    int      `json:"guestCount,omitempty"`
	Activities    []string `json:"activities,omitempty"`
	HireCharacter bool     `json:"hireCharacter,omitempty"`
}

// ActivityList returns the selected activities comma-joined.
func (p Params) ActivityList() string {
	return strings.Join(p.Activities, ", ")
}

// SplitActivities parses a comma separated activity list, dropping blanks.
func SplitActivities(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (p Params) ageLabel() string {
	if p.Age <= 0 {
		return "kids"
	}
	return strconv.Itoa(p.Age) + " year olds"
}
