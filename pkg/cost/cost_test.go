package cost

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		in   string
		want Range
	}{
		"empty":          {in: "", want: Range{}},
		"zero":           {in: "$0", want: Range{}},
		"garbage":        {in: "free!", want: Range{}},
		"single":         {in: "$50", want: Range{Low: 50, High: 50, Mid: 50}},
		"range":          {in: "$10-20", want: Range{Low: 10, High: 20, Mid: 15}},
		"spaced":         {in: "$10 - $25", want: Range{Low: 10, High: 25, Mid: 17.5}},
		"thousands":      {in: "$1,000-1,500", want: Range{Low: 1000, High: 1500, Mid: 1250}},
		"decimals":       {in: "$2.50-3.50", want: Range{Low: 2.5, High: 3.5, Mid: 3}},
		"extra tokens":   {in: "$10-20-30", want: Range{Low: 10, High: 20, Mid: 15}},
		"leading hyphen": {in: "-5", want: Range{Low: 5, High: 5, Mid: 5}},
		"zero low":       {in: "$0-20", want: Range{Low: 20, High: 20, Mid: 20}},
		"descending":     {in: "$30-10", want: Range{Low: 30, High: 10, Mid: 20}},
		"bad number":     {in: "1.2.3", want: Range{}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := Parse(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestParseIsTotal(t *testing.T) {
	alphabet := []rune("$0123456789.-, abc€")
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		n := rng.Intn(12)
		rs := make([]rune, n)
		for j := range rs {
			rs[j] = alphabet[rng.Intn(len(alphabet))]
		}
		r := Parse(string(rs))
		if r.Low < 0 || r.High < 0 || r.Mid < 0 {
			t.Fatalf("Parse(%q) produced negative range %+v", string(rs), r)
		}
		lo, hi := r.Low, r.High
		if lo > hi {
			lo, hi = hi, lo
		}
		if r.Mid < lo || r.Mid > hi {
			t.Fatalf("Parse(%q) mid outside bounds: %+v", string(rs), r)
		}
	}
}

func TestRangeString(t *testing.T) {
	for in, want := range map[string]string{
		"":       "$0",
		"$50":    "$50",
		"$10-20": "$10-20",
	} {
		if got := Parse(in).String(); got != want {
			t.Fatalf("Parse(%q).String() = %q, want %q", in, got, want)
		}
	}
}
