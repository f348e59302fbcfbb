package task

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeCompleter struct {
	text   string
	err    error
	prompt string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

var bounceParams = Params{
	Theme:      "Dinosaur",
	Age:        6,
	GuestCount: 12,
	Activities: []string{"Bounce House"},
}

func TestGenerateFallsBack(t *testing.T) {
	tests := map[string]*Generator{
		"nil generator":  nil,
		"no completer":   {},
		"network error":  {Completer: &fakeCompleter{err: errors.New("dial tcp: connection refused")}},
		"invalid json":   {Completer: &fakeCompleter{text: "Sure! Here is your list: {oops"}},
		"empty array":    {Completer: &fakeCompleter{text: "[]"}},
		"no task fields": {Completer: &fakeCompleter{text: `[{"category":"Drinks"}]`}},
	}
	want := Fallback(bounceParams)
	for name, g := range tests {
		t.Run(name, func(t *testing.T) {
			got := g.Generate(context.Background(), bounceParams)
			if len(got) == 0 {
				t.Fatalf("expected a non-empty fallback checklist")
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("expected fallback checklist (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateUsesCompleter(t *testing.T) {
	fc := &fakeCompleter{text: "```json\n{\"tasks\": [{\"category\": \"Drinks\", \"task\": \"Lemonade\", \"priority\": \"HIGH\", \"estimatedCost\": \"$10-15\", \"searchTerms\": \"lemonade\", \"completed\": true}]}\n```"}
	g := &Generator{Completer: fc}
	got := g.Generate(context.Background(), bounceParams)
	want := []Item{{Category: "Drinks", Task: "Lemonade", Priority: PriorityHigh, EstimatedCost: "$10-15", SearchTerms: "lemonade"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
	if !strings.Contains(fc.prompt, "Dinosaur") || !strings.Contains(fc.prompt, "Bounce House") {
		t.Fatalf("prompt missing plan details: %s", fc.prompt)
	}
}

func TestParseResponseShapes(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    int
		wantErr bool
	}{
		"bare array":    {in: `[{"category":"A","task":"one"},{"category":"B","task":"two"}]`, want: 2},
		"wrapped":       {in: `{"tasks":[{"category":"A","task":"one"}]}`, want: 1},
		"prose wrapper": {in: `Here you go: [{"category":"A","task":"one"}] enjoy!`, want: 1},
		"blank task":    {in: `[{"category":"A","task":"  "},{"category":"B","task":"two"}]`, want: 1},
		"other key":     {in: `{"checklist":[{"category":"A","task":"one"},{"category":"B","task":"two"}]}`, want: 2},
		"no array":      {in: `{"note":"nothing to add"}`, wantErr: true},
		"empty":         {in: "", wantErr: true},
		"null":          {in: "null", wantErr: true},
		"wrong types":   {in: `[{"category":"A","task":"one","estimatedCost":12}]`, wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseResponse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("expected %d items, got %d", tc.want, len(got))
			}
		})
	}
}

func TestFallbackBounceHouse(t *testing.T) {
	items := Fallback(bounceParams)
	var rental, supplies *Item
	for i := range items {
		switch items[i].Category {
		case CategoryRentals:
			rental = &items[i]
		case CategoryActivitySupplies:
			supplies = &items[i]
		}
		if items[i].Completed {
			t.Fatalf("fallback item %q should not be completed", items[i].Task)
		}
	}
	if rental == nil {
		t.Fatalf("expected a Rentals item")
	}
	if !strings.Contains(rental.Task, "Bounce House") || rental.EstimatedCost != "$100-250" {
		t.Fatalf("unexpected rental item %+v", rental)
	}
	if supplies == nil || supplies.EstimatedCost != GenericSupplyCost {
		t.Fatalf("expected generic activity supplies, got %+v", supplies)
	}
}

func TestFallbackConditionalItems(t *testing.T) {
	base := Fallback(Params{Theme: "Space"})
	countCategory := func(items []Item, category string) int {
		n := 0
		for _, it := range items {
			if it.Category == category {
				n++
			}
		}
		return n
	}
	if n := countCategory(base, CategoryEntertainment); n != 1 {
		t.Fatalf("expected only the helper item without hire flag, got %d", n)
	}
	if n := countCategory(base, CategoryRentals); n != 0 {
		t.Fatalf("expected no rentals, got %d", n)
	}

	full := Fallback(Params{
		Theme:         "Space",
		HireCharacter: true,
		Activities:    []string{"Water Slide", "Face Painting", "Obstacle Course", "Limbo"},
	})
	if n := countCategory(full, CategoryEntertainment); n != 2 {
		t.Fatalf("expected entertainer and helper, got %d", n)
	}
	if n := countCategory(full, CategoryRentals); n != 2 {
		t.Fatalf("expected two inflatable rentals, got %d", n)
	}
	if n := countCategory(full, CategoryActivitySupplies); n != 4 {
		t.Fatalf("expected one supply item per activity, got %d", n)
	}
	for _, it := range full {
		if it.Category == CategoryRentals && strings.Contains(it.Task, "Water Slide") && it.EstimatedCost != "$150-350" {
			t.Fatalf("unexpected water slide tier %q", it.EstimatedCost)
		}
		if it.Category == CategoryActivitySupplies && strings.Contains(it.Task, "Limbo") && it.EstimatedCost != GenericSupplyCost {
			t.Fatalf("unregistered activity should use generic cost, got %q", it.EstimatedCost)
		}
	}
}

func TestSplitActivities(t *testing.T) {
	got := SplitActivities(" Bounce House, ,Face Painting ,")
	want := []string{"Bounce House", "Face Painting"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SplitActivities mismatch (-want +got):\n%s", diff)
	}
	if list := (Params{Activities: want}).ActivityList(); list != "Bounce House, Face Painting" {
		t.Fatalf("unexpected activity list %q", list)
	}
}
