package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/party/pkg/commands/options"
	"tableflip.dev/party/pkg/runner/create"
)

func addNew(topLevel *cobra.Command) {
	po := &options.PartyOptions{}
	generate := false
	offline := false

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Start planning a new party.",
		Example: `
party new emma --child Emma --theme Dinosaur --age 6 --guests 14
party new sam --theme Space --activities "bounce house, face painting" --hire-character --generate
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := newService(offline)
			if err != nil {
				return output.HandleError(err)
			}
			s := create.Create{
				Service:  svc,
				Name:     args[0],
				Meta:     po.Meta(),
				Params:   po.Params(),
				Generate: generate,
				JSON:     output.JSON,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	options.AddPartyArgs(cmd, po)
	cmd.Flags().BoolVar(&generate, "generate", false, "Generate the checklist right away.")
	cmd.Flags().BoolVar(&offline, "offline", false, "With --generate, use the built-in checklist only.")

	topLevel.AddCommand(cmd)
}
