package cost

import (
	"math"
	"sort"
	"strings"
)

// OtherCategory buckets items that carry no category.
const OtherCategory = "Other"

// Estimated is anything carrying a free-text cost estimate.
type Estimated interface {
	CostEstimate() string
}

// Categorized is an Estimated item that also belongs to a budget category.
type Categorized interface {
	Estimated
	CostCategory() string
}

// Total is the rounded sum of a list of estimates.
type Total struct {
	Low  int `json:"totalLow"`
	High int `json:"totalHigh"`
	Mid  int `json:"totalMid"`
}

// Category is one row of a budget breakdown.
type Category struct {
	Category string  `json:"category"`
	Low      float64 `json:"low"`
	High     float64 `json:"high"`
	Mid      float64 `json:"mid"`
	Count    int     `json:"count"`
}

// Sum adds up the parsed estimates of items. Rounding happens once, on the
// final totals.
func Sum[T Estimated](items []T) Total {
	var low, high, mid float64
	for _, item := range items {
		r := Parse(item.CostEstimate())
		low += r.Low
		high += r.High
		mid += r.Mid
	}
	return Total{
		Low:  int(math.Round(low)),
		High: int(math.Round(high)),
		Mid:  int(math.Round(mid)),
	}
}

// Breakdown groups items by category and returns the rows ordered by
// descending mid cost. Ties keep the order in which categories were first
// seen.
func Breakdown[T Categorized](items []T) []Category {
	index := make(map[string]int)
	rows := make([]Category, 0)
	for _, item := range items {
		name := strings.TrimSpace(item.CostCategory())
		if name == "" {
			name = OtherCategory
		}
		i, ok := index[name]
		if !ok {
			i = len(rows)
			index[name] = i
			rows = append(rows, Category{Category: name})
		}
		r := Parse(item.CostEstimate())
		rows[i].Low += r.Low
		rows[i].High += r.High
		rows[i].Mid += r.Mid
		rows[i].Count++
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Mid > rows[j].Mid
	})
	return rows
}
