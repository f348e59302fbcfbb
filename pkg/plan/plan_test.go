package plan

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/party/pkg/task"
)

func TestCleanName(t *testing.T) {
	tests := map[string]string{
		"Emma":            "emma",
		"  Emma's 7th!  ": "emma_s_7th",
		"dino-party":      "dino_party",
	}
	for in, want := range tests {
		got, err := CleanName(in)
		if err != nil || got != want {
			t.Fatalf("CleanName(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := CleanName(" !!! "); !errors.Is(err, ErrNoName) {
		t.Fatalf("expected ErrNoName, got %v", err)
	}
}

func TestReplaceCarriesFlagsByContent(t *testing.T) {
	p, err := New("emma", Meta{ChildName: "Emma"}, task.Params{Theme: "Dinosaur"})
	if err != nil {
		t.Fatalf("new plan: %v", err)
	}
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	p.Replace([]task.Item{
		{Category: "Drinks", Task: "Juice boxes"},
		{Category: "Food & Cake", Task: "Order cake"},
		{Category: "Rentals", Task: "Rent a Bounce House"},
	}, now)
	first := p.Generation

	p.Overlay.ToggleCompleted("checklist-1") // cake
	p.Overlay.ToggleExcluded("checklist-2")  // bounce house
	p.Overlay.ToggleCompleted("checklist-0") // juice
	p.Overlay.ToggleCompleted("buffet-0")

	p.Replace([]task.Item{
		{Category: "food & cake", Task: " Order  cake"},
		{Category: "Decorations", Task: "Balloons"},
		{Category: "Rentals", Task: "Rent a Bounce House"},
	}, now.Add(time.Hour))

	if p.Generation == "" || p.Generation == first {
		t.Fatalf("expected a new generation stamp")
	}
	if diff := cmp.Diff([]string{"buffet-0", "checklist-0"}, p.Overlay.CompletedKeys()); diff != "" {
		t.Fatalf("completed keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"checklist-2"}, p.Overlay.ExcludedKeys()); diff != "" {
		t.Fatalf("excluded keys mismatch (-want +got):\n%s", diff)
	}
	if p.Overlay.IsCompleted("checklist-1") {
		t.Fatalf("new balloons item must not inherit stale completion")
	}
}

func TestReplaceMatchesDuplicatesInOrder(t *testing.T) {
	p, _ := New("twins", Meta{}, task.Params{})
	now := time.Now()
	same := task.Item{Category: "Party Favors", Task: "Favor bags"}
	p.Replace([]task.Item{same, same}, now)
	p.Overlay.ToggleCompleted("checklist-0")
	p.Overlay.ToggleExcluded("checklist-1")

	p.Replace([]task.Item{{Category: "Drinks", Task: "Water"}, same}, now)
	if diff := cmp.Diff([]string{"checklist-1"}, p.Overlay.CompletedKeys()); diff != "" {
		t.Fatalf("completed keys mismatch (-want +got):\n%s", diff)
	}
	// Only one copy survives, so the second copy's exclusion has nowhere to go.
	if keys := p.Overlay.ExcludedKeys(); len(keys) != 0 {
		t.Fatalf("expected no excluded keys, got %v", keys)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	p, _ := New("emma", Meta{ChildName: "Emma", Date: "2026-11-07"}, task.Params{Theme: "Dinosaur", GuestCount: 12})
	p.Replace(task.Fallback(p.Params), time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
	p.Overlay.ToggleCompleted("checklist-3")
	p.Overlay.ToggleExcluded("arrival-1")

	data, err := p.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(p, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalFillsDefaults(t *testing.T) {
	p, err := Unmarshal([]byte(`{"name":"old","items":[]}`))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Schema != CurrentSchema || p.Overlay == nil {
		t.Fatalf("expected defaults filled, got %+v", p)
	}
	if !p.Overlay.ToggleCompleted("arrival-0") {
		t.Fatalf("overlay should be usable")
	}
}

func TestReportMeta(t *testing.T) {
	p, _ := New("emma", Meta{ChildName: "Emma", Date: "Nov 7"}, task.Params{Theme: "Dinosaur", GuestCount: 12, Budget: "$300"})
	m := p.ReportMeta()
	if m.Title() != "Emma's Dinosaur Party" || m.Budget != "$300" || m.GuestCount != 12 || m.Date != "Nov 7" {
		t.Fatalf("unexpected report meta %+v", m)
	}
}
