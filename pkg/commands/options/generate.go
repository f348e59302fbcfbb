package options

import (
	"github.com/spf13/cobra"
)

// GenerateOptions
type GenerateOptions struct {
	Offline bool
}

func AddGenerateArgs(cmd *cobra.Command, o *GenerateOptions) {
	cmd.Flags().BoolVar(&o.Offline, "offline", false,
		"Skip the AI generator and use the built-in checklist.")
}
