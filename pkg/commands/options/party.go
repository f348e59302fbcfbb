package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/party/pkg/plan"
	"tableflip.dev/party/pkg/task"
)

// PartyOptions
type PartyOptions struct {
	Child         string
	Theme         string
	Age           int
	Venue         string
	Budget        string
	Guests        int
	Date          string
	Activities    string
	HireCharacter bool
}

func AddPartyArgs(cmd *cobra.Command, o *PartyOptions) {
	cmd.Flags().StringVar(&o.Child, "child", "",
		"Name of the birthday child.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Party date, free form.")
	AddParamsArgs(cmd, o)
}

// AddParamsArgs adds the flags that feed checklist generation.
func AddParamsArgs(cmd *cobra.Command, o *PartyOptions) {
	cmd.Flags().StringVarP(&o.Theme, "theme", "t", "",
		"Party theme, e.g. Dinosaur.")
	cmd.Flags().IntVar(&o.Age, "age", 0,
		"Age the child is turning.")
	cmd.Flags().StringVar(&o.Venue, "venue", "home",
		"Venue type: home, park, hall...")
	cmd.Flags().StringVar(&o.Budget, "budget", "",
		"Overall budget, e.g. $300-500.")
	cmd.Flags().IntVarP(&o.Guests, "guests", "g", 0,
		"Number of guests.")
	cmd.Flags().StringVarP(&o.Activities, "activities", "a", "",
		"Comma separated activities, e.g. \"bounce house, face painting\".")
	cmd.Flags().BoolVar(&o.HireCharacter, "hire-character", false,
		"Plan to hire a character or entertainer.")
}

func (o *PartyOptions) Meta() plan.Meta {
	return plan.Meta{ChildName: o.Child, Date: o.Date}
}

func (o *PartyOptions) Params() task.Params {
	return task.Params{
		Theme:         o.Theme,
		Age:           o.Age,
		VenueType:     o.Venue,
		Budget:        o.Budget,
		GuestCount:    o.Guests,
		Activities:    task.SplitActivities(o.Activities),
		HireCharacter: o.HireCharacter,
	}
}

// ChangedParams overlays the generation flags set on cmd onto p. It reports
// whether any flag was set.
func (o *PartyOptions) ChangedParams(cmd *cobra.Command, p task.Params) (task.Params, bool) {
	f := cmd.Flags()
	changed := false
	if f.Changed("theme") {
		p.Theme, changed = o.Theme, true
	}
	if f.Changed("age") {
		p.Age, changed = o.Age, true
	}
	if f.Changed("venue") {
		p.VenueType, changed = o.Venue, true
	}
	if f.Changed("budget") {
		p.Budget, changed = o.Budget, true
	}
	if f.Changed("guests") {
		p.GuestCount, changed = o.Guests, true
	}
	if f.Changed("activities") {
		p.Activities, changed = task.SplitActivities(o.Activities), true
	}
	if f.Changed("hire-character") {
		p.HireCharacter, changed = o.HireCharacter, true
	}
	return p, changed
}
