package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/party/pkg/commands/options"
	"tableflip.dev/party/pkg/runner/status"
)

func addStatus(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	watch := false

	cmd := &cobra.Command{
		Use:     "status <name>",
		Aliases: []string{"get", "show"},
		Short:   "Show the checklist of a plan zone by zone.",
		Example: `
party status emma
party status emma --show-keys
party status emma --watch
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: planCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := newService(true)
			if err != nil {
				return output.HandleError(err)
			}
			s := status.Status{
				Service:      svc,
				Name:         args[0],
				ShowKeys:     vo.ShowKeys,
				ShowExcluded: vo.ShowExcluded,
				JSON:         output.JSON,
				Watch:        watch,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	options.AddViewArgs(cmd, vo)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and redraw when the plan changes.")

	topLevel.AddCommand(cmd)
}
