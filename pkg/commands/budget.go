package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/party/pkg/runner/budget"
)

func addBudget(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "budget <name>",
		Short: "Estimated cost of the active items, by category.",
		Example: `
party budget emma
party budget emma --json
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: planCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := newService(true)
			if err != nil {
				return output.HandleError(err)
			}
			s := budget.Budget{
				Service: svc,
				Name:    args[0],
				JSON:    output.JSON,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
