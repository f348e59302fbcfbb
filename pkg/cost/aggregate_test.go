package cost

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type line struct {
	category string
	cost     string
}

func (l line) CostEstimate() string { return l.cost }
func (l line) CostCategory() string { return l.category }

func TestSumEmpty(t *testing.T) {
	if got := Sum([]line(nil)); got != (Total{}) {
		t.Fatalf("expected zero total, got %+v", got)
	}
}

func TestSumRoundsOnce(t *testing.T) {
	items := []line{
		{cost: "$10-11"}, // mid 10.5
		{cost: "$10-11"},
		{cost: "$0.4"},
		{cost: ""},
	}
	got := Sum(items)
	want := Total{Low: 20, High: 22, Mid: 21}
	if got != want {
		t.Fatalf("Sum mismatch: want %+v, got %+v", want, got)
	}
}

func TestSumIsAdditive(t *testing.T) {
	items := []line{{cost: "$5"}, {cost: "$10-30"}, {cost: "$100-250"}, {cost: "n/a"}}
	var low, high, mid float64
	for _, item := range items {
		r := Parse(item.cost)
		low += r.Low
		high += r.High
		mid += r.Mid
	}
	got := Sum(items)
	if got.Low != int(low) || got.High != int(high) || got.Mid != int(mid) {
		t.Fatalf("Sum %+v does not match elementwise %v/%v/%v", got, low, high, mid)
	}
}

func TestBreakdownOrdering(t *testing.T) {
	items := []line{
		{category: "Drinks", cost: "$10-20"},
		{category: "Rentals", cost: "$100-250"},
		{category: "", cost: "$5"},
		{category: "Drinks", cost: "$15"},
		{category: "Favors", cost: "$30"},
	}
	want := []Category{
		{Category: "Rentals", Low: 100, High: 250, Mid: 175, Count: 1},
		{Category: "Drinks", Low: 25, High: 35, Mid: 30, Count: 2},
		{Category: "Favors", Low: 30, High: 30, Mid: 30, Count: 1},
		{Category: OtherCategory, Low: 5, High: 5, Mid: 5, Count: 1},
	}
	got := Breakdown(items)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Breakdown mismatch (-want +got):\n%s", diff)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Mid > got[i-1].Mid {
			t.Fatalf("rows not sorted by mid: %+v", got)
		}
	}
	if diff := cmp.Diff(got, Breakdown(items)); diff != "" {
		t.Fatalf("Breakdown not deterministic:\n%s", diff)
	}
}
