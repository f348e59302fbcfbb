package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/party/pkg/runner/zones"
)

func addZones(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "zones",
		Aliases: []string{"key"},
		Short:   "Show the party zones, their categories and the checklist legend.",
		Example: `
party zones
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := zones.Zones{JSON: output.JSON}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
