package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/party/pkg/app"
	"tableflip.dev/party/pkg/plan"
	"tableflip.dev/party/pkg/printers"
	"tableflip.dev/party/pkg/store"
	"tableflip.dev/party/pkg/task"
)

// Seeds a "demo" plan from the built-in checklist and prints it.
func main() {
	ctx := context.Background()

	p, err := store.Load(nil)
	if err != nil {
		panic(err)
	}
	svc := &app.Service{Persistence: p}

	params := task.Params{
		Theme:         "Dinosaur",
		Age:           6,
		GuestCount:    14,
		Budget:        "$300-500",
		Activities:    []string{"bounce house", "face painting", "pinata"},
		HireCharacter: true,
	}
	_, err = svc.Create(ctx, "demo", plan.Meta{ChildName: "Demo", Date: "Saturday"}, params)
	if err != nil && !errors.Is(err, app.ErrPlanExists) {
		panic(err)
	}
	if _, err := svc.Generate(ctx, "demo"); err != nil {
		panic(err)
	}
	for _, key := range []string{"arrival-0", "checklist-0", "checklist-2"} {
		if _, err := svc.ToggleCompleted(ctx, "demo", key); err != nil {
			panic(err)
		}
	}

	v, err := svc.View(ctx, "demo")
	if err != nil {
		panic(err)
	}
	pp := printers.PrettyPrint{ShowKeys: true, Out: os.Stdout}
	pp.Title(v.Title)
	pp.NewLine()
	pp.Checklist(v.Zones, v.Plan.Overlay)
	pp.Summary(v.Summary)
	fmt.Println("")
}
