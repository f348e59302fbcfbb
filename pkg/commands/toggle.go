package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/party/pkg/runner/toggle"
)

func addDone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "done <name> <key>...",
		Aliases: []string{"complete", "x"},
		Short:   "Toggle items done. Excluded items are left alone.",
		Example: `
party done emma checklist-3
party done emma arrival-0 arrival-1
`,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: keyCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, args, toggle.Completed)
		},
	}

	topLevel.AddCommand(cmd)
}

func addExclude(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "exclude <name> <key>...",
		Aliases: []string{"skip"},
		Short:   "Toggle items excluded from progress and budget.",
		Example: `
party exclude emma checklist-7
`,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: keyCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, args, toggle.Excluded)
		},
	}

	topLevel.AddCommand(cmd)
}

func runToggle(cmd *cobra.Command, args []string, flag toggle.Flag) error {
	cmd.SilenceUsage = true
	svc, _, err := newService(true)
	if err != nil {
		return output.HandleError(err)
	}
	s := toggle.Toggle{
		Service: svc,
		Name:    args[0],
		Keys:    args[1:],
		Flag:    flag,
		JSON:    output.JSON,
	}
	err = s.Do(cmd.Context())
	return output.HandleError(err)
}
