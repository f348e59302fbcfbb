package task

import (
	"fmt"
	"strconv"
	"strings"
)

// Categories produced by the fallback library.
const (
	CategoryInvitations      = "Invitations"
	CategoryDecorations      = "Decorations"
	CategoryFood             = "Food & Cake"
	CategoryDessert          = "Dessert Table"
	CategoryDrinks           = "Drinks"
	CategoryFavors           = "Party Favors"
	CategorySupplies         = "Supplies & Cleanup"
	CategoryRentals          = "Rentals"
	CategoryEntertainment    = "Entertainment & Hire"
	CategoryActivitySupplies = "Activity Supplies"
)

// GenericSupplyCost is used for activities with no registered supply.
const GenericSupplyCost = "$10-25"

// inflatables maps inflatable activity names to their rental cost tier.
var inflatables = map[string]string{
	"bounce house":    "$100-250",
	"bounce castle":   "$100-250",
	"water slide":     "$150-350",
	"obstacle course": "$200-400",
	"ball pit":        "$50-100",
}

type supply struct {
	task        string
	cost        string
	searchTerms string
}

var supplies = map[string]supply{
	"face painting":   {"Face paint kit, brushes and sponges", "$15-30", "kids face paint kit"},
	"treasure hunt":   {"Treasure chest, clue cards and prizes", "$15-30", "treasure hunt kit kids"},
	"arts & crafts":   {"Craft kits, glue sticks and markers", "$20-40", "kids party craft kit"},
	"arts and crafts": {"Craft kits, glue sticks and markers", "$20-40", "kids party craft kit"},
	"pinata":          {"Piñata, stick and candy filler", "$25-45", "pinata with candy filler"},
	"piñata":          {"Piñata, stick and candy filler", "$25-45", "pinata with candy filler"},
	"musical chairs":  {"Portable speaker and party playlist", "$20-30", "bluetooth party speaker"},
	"pass the parcel": {"Wrapping paper and small prizes", "$10-20", "pass the parcel prizes"},
	"magic show":      {"Magic trick kit for the birthday child", "$15-35", "kids magic kit"},
	"scavenger hunt":  {"Scavenger lists, bags and prizes", "$10-20", "scavenger hunt kit"},
	"karaoke":         {"Karaoke microphone", "$20-40", "kids karaoke microphone"},
}

// Fallback builds a checklist from the built-in rule library. The result is
// never empty.
func Fallback(p Params) []Item {
	theme := strings.TrimSpace(p.Theme)
	if theme == "" {
		theme = "party"
	}
	guests := "all"
	if p.GuestCount > 0 {
		guests = strconv.Itoa(p.GuestCount)
	}

	items := []Item{
		{CategoryInvitations, fmt.Sprintf("Send %s invitations to %s guests", theme, guests), PriorityHigh, "$15-30", theme + " birthday invitations", false},
		{CategoryInvitations, "Track RSVPs and dietary needs", PriorityMedium, "$0", "", false},
		{CategoryDecorations, fmt.Sprintf("%s balloons and birthday banner", theme), PriorityHigh, "$25-50", theme + " balloon banner set", false},
		{CategoryDecorations, "Table cover and centerpieces", PriorityMedium, "$15-30", theme + " table decorations", false},
		{CategoryFood, fmt.Sprintf("Order a %s birthday cake", theme), PriorityHigh, "$40-80", theme + " birthday cake", false},
		{CategoryFood, fmt.Sprintf("Finger food or pizza for %s guests", guests), PriorityHigh, "$60-120", "kids party food platter", false},
		{CategoryDessert, "Cupcakes, cookies and fruit platter", PriorityMedium, "$20-40", theme + " cupcake toppers", false},
		{CategoryDrinks, "Juice boxes, water bottles and cups", PriorityMedium, "$15-25", "juice boxes bulk", false},
		{CategoryFavors, fmt.Sprintf("Favor bags for %s guests", guests), PriorityMedium, "$25-50", theme + " party favor bags", false},
		{CategorySupplies, "Plates, napkins and utensils", PriorityHigh, "$15-25", theme + " party tableware set", false},
		{CategorySupplies, "Birthday candles and lighter", PriorityHigh, "$5", "birthday candles", false},
		{CategorySupplies, "Trash bags and cleaning wipes", PriorityLow, "$5-10", "heavy duty trash bags", false},
	}

	for _, activity := range p.Activities {
		if tier, ok := inflatables[normalize(activity)]; ok {
			items = append(items, Item{
				Category:      CategoryRentals,
				Task:          fmt.Sprintf("Rent a %s", activity),
				Priority:      PriorityHigh,
				EstimatedCost: tier,
				SearchTerms:   activity + " rental near me",
			})
		}
	}

	if p.HireCharacter {
		items = append(items, Item{
			Category:      CategoryEntertainment,
			Task:          fmt.Sprintf("Book a %s character or entertainer", theme),
			Priority:      PriorityHigh,
			EstimatedCost: "$150-300",
			SearchTerms:   theme + " character party entertainer",
		})
	}
	items = append(items, Item{
		Category:      CategoryEntertainment,
		Task:          "Line up a helper for setup and supervision",
		Priority:      PriorityMedium,
		EstimatedCost: "$50-100",
		SearchTerms:   "party helper babysitter hire",
	})

	for _, activity := range p.Activities {
		if s, ok := supplies[normalize(activity)]; ok {
			items = append(items, Item{
				Category:      CategoryActivitySupplies,
				Task:          s.task,
				Priority:      PriorityMedium,
				EstimatedCost: s.cost,
				SearchTerms:   s.searchTerms,
			})
			continue
		}
		items = append(items, Item{
			Category:      CategoryActivitySupplies,
			Task:          fmt.Sprintf("Supplies for %s", activity),
			Priority:      PriorityLow,
			EstimatedCost: GenericSupplyCost,
			SearchTerms:   activity + " party supplies",
		})
	}

	return items
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
