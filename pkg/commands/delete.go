package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a plan and its checklist.",
		Example: `
party delete emma
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: planCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := newService(true)
			if err != nil {
				return output.HandleError(err)
			}
			if err := svc.Delete(cmd.Context(), args[0]); err != nil {
				return output.HandleError(err)
			}
			_, _ = fmt.Fprintf(color.Output, "deleted plan %q\n", args[0])
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
