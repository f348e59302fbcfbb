package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/party/pkg/commands/options"
	"tableflip.dev/party/pkg/runner/generate"
	"tableflip.dev/party/pkg/task"
)

func addGenerate(topLevel *cobra.Command) {
	gop := &options.GenerateOptions{}
	po := &options.PartyOptions{}

	cmd := &cobra.Command{
		Use:     "generate <name>",
		Aliases: []string{"gen", "regenerate"},
		Short:   "Generate or regenerate a plan's checklist.",
		Long: `Generate a checklist for the plan. Done and excluded marks on items that
are generated again carry over; marks on items that disappear are dropped.
Without an OpenAI key, or with --offline, the built-in checklist is used.
Party flags given here replace the stored ones before generating.`,
		Example: `
party generate emma
party generate emma --offline
party generate emma --activities "bounce house, face painting" --hire-character
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: planCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := newService(gop.Offline)
			if err != nil {
				return output.HandleError(err)
			}
			s := generate.Generate{
				Service: svc,
				Name:    args[0],
				Adjust: func(p task.Params) (task.Params, bool) {
					return po.ChangedParams(cmd, p)
				},
				JSON: output.JSON,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	options.AddGenerateArgs(cmd, gop)
	options.AddParamsArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
