package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/party/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about configuration and stored plans.",
		Example: `
party info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := newService(true)
			if err != nil {
				return err
			}
			s := info.Info{
				Config:  cfg,
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
