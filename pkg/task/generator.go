package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/party/pkg/log"
)

// Completer sends a prompt to a text-generation backend and returns its raw
// response.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator produces checklists. When Completer is nil, fails, or returns
// something that does not parse, the rule library in Fallback is used
// instead, so Generate always returns a usable list.
type Generator struct {
	Completer Completer
}

// ErrNoTasks is returned by ParseResponse when no usable task was found.
var ErrNoTasks = errors.New("task: response contains no tasks")

// Generate returns the checklist for p. It never fails.
func (g *Generator) Generate(ctx context.Context, p Params) []Item {
	if g == nil || g.Completer == nil {
		log.Debug().Msg("task: no completer configured, using fallback checklist")
		return Fallback(p)
	}

	text, err := g.Completer.Complete(ctx, Prompt(p))
	if err != nil {
		log.Warn().Err(err).Msg("task: generation failed, using fallback checklist")
		return Fallback(p)
	}
	items, err := ParseResponse(text)
	if err != nil {
		log.Warn().Err(err).Int("responseBytes", len(text)).Msg("task: unusable generation response, using fallback checklist")
		return Fallback(p)
	}
	log.Debug().Int("items", len(items)).Msg("task: generated checklist")
	return items
}

// Prompt renders the generation request for p. The response is expected to be
// a JSON object with a "tasks" array.
func Prompt(p Params) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a shopping and task checklist for a %s themed birthday party for %s.\n", orDefault(p.Theme, "general"), p.ageLabel())
	fmt.Fprintf(&b, "Venue: %s. Budget: %s. Guests: %d.\n", orDefault(p.VenueType, "home"), orDefault(p.Budget, "flexible"), p.GuestCount)
	if list := p.ActivityList(); list != "" {
		fmt.Fprintf(&b, "Planned activities: %s.\n", list)
	}
	if p.HireCharacter {
		b.WriteString("They want to hire a character or entertainer.\n")
	}
	b.WriteString(`Reply with JSON only: {"tasks": [{"category": "...", "task": "...", "priority": "high|medium|low", "estimatedCost": "$A-B", "searchTerms": "..."}]}.`)
	b.WriteString("\nUse categories such as Invitations, Decorations, Food & Cake, Dessert Table, Drinks, Party Favors, Rentals, Entertainment & Hire, Activity Supplies, Supplies & Cleanup.")
	return b.String()
}

// ParseResponse extracts task items from a generation response. It accepts
// either a bare JSON array or an object with a "tasks" array, optionally
// wrapped in a markdown code fence. Otherwise the outermost bracketed array
// is tried, which covers objects keyed by another name. Entries without a
// task are dropped.
func ParseResponse(text string) ([]Item, error) {
	text = stripFence(strings.TrimSpace(text))
	if text == "" {
		return nil, ErrNoTasks
	}

	var raw []Item
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		var wrapped struct {
			Tasks []Item `json:"tasks"`
		}
		if json.Unmarshal([]byte(text), &wrapped) == nil && len(wrapped.Tasks) > 0 {
			raw = wrapped.Tasks
		} else {
			start, end := strings.Index(text, "["), strings.LastIndex(text, "]")
			if start < 0 || end <= start {
				return nil, fmt.Errorf("task: parse response: %w", err)
			}
			if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
				return nil, fmt.Errorf("task: parse response: %w", err)
			}
		}
	}

	items := make([]Item, 0, len(raw))
	for _, it := range raw {
		it.Task = strings.TrimSpace(it.Task)
		if it.Task == "" {
			continue
		}
		it.Category = strings.TrimSpace(it.Category)
		it.Priority = normalizePriority(it.Priority)
		it.Completed = false
		items = append(items, it)
	}
	if len(items) == 0 {
		return nil, ErrNoTasks
	}
	return items, nil
}

func normalizePriority(p Priority) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(string(p)))) {
	case PriorityHigh:
		return PriorityHigh
	case PriorityMedium:
		return PriorityMedium
	case PriorityLow:
		return PriorityLow
	default:
		return ""
	}
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.Index(s, "\n"); nl >= 0 {
		s = s[nl+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
