// Package cost parses free-text cost estimates such as "$10-20" and rolls
// them up into totals and per-category breakdowns.
package cost

import (
	"strconv"
	"strings"
)

// Range is a parsed cost estimate.
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
	Mid  float64 `json:"mid"`
}

// Parse converts an estimate string into a Range. Anything without a
// positive number in it parses to the zero Range. Only the first two numbers
// are used and they are not reordered.
func Parse(s string) Range {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)

	nums := make([]float64, 0, 2)
	for _, part := range strings.Split(cleaned, "-") {
		if len(nums) == 2 {
			break
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v <= 0 {
			continue
		}
		nums = append(nums, v)
	}

	switch len(nums) {
	case 0:
		return Range{}
	case 1:
		return Range{Low: nums[0], High: nums[0], Mid: nums[0]}
	default:
		return Range{Low: nums[0], High: nums[1], Mid: (nums[0] + nums[1]) / 2}
	}
}

// IsZero reports whether no cost was found.
func (r Range) IsZero() bool {
	return r.Low == 0 && r.High == 0
}

// String renders the range the way estimates are usually written.
func (r Range) String() string {
	if r.IsZero() {
		return "$0"
	}
	if r.Low == r.High {
		return "$" + formatAmount(r.Low)
	}
	return "$" + formatAmount(r.Low) + "-" + formatAmount(r.High)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
