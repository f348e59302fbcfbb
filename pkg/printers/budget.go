package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/party/pkg/progress"
)

// Budget prints the cost rollup as a table, largest category first.
func (pp *PrettyPrint) Budget(b progress.Budget) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Category"), bold.Sprint("Items"), bold.Sprint("Low"), bold.Sprint("High"), bold.Sprint("Mid"))
	for _, c := range b.Categories {
		tbl.AddRow(c.Category, c.Count, dollars(c.Low), dollars(c.High), dollars(c.Mid))
	}
	tbl.AddRow(bold.Sprint("Total"), "", bold.Sprint(dollars(b.Total.Low)), bold.Sprint(dollars(b.Total.High)), bold.Sprint(dollars(b.Total.Mid)))
	tbl.RightAlign(1)
	tbl.RightAlign(2)
	tbl.RightAlign(3)
	tbl.RightAlign(4)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func dollars(n int) string {
	return fmt.Sprintf("$%d", n)
}
