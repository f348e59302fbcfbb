package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/party/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	dir := "."
	stdout := false

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Write the checklist as a plain-text file.",
		Example: `
party export emma
party export emma --out ~/Desktop
party export emma --stdout | lpr
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: planCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := newService(true)
			if err != nil {
				return output.HandleError(err)
			}
			s := export.Export{
				Service: svc,
				Name:    args[0],
				Dir:     dir,
				Stdout:  stdout,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	cmd.Flags().StringVarP(&dir, "out", "o", ".", "Directory to write the report to.")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print the report instead of writing a file.")

	topLevel.AddCommand(cmd)
}
