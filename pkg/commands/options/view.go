package options

import (
	"github.com/spf13/cobra"
)

// ViewOptions
type ViewOptions struct {
	ShowKeys     bool
	ShowExcluded bool
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().BoolVarP(&o.ShowKeys, "show-keys", "k", false,
		"Show item keys for done/exclude.")
	cmd.Flags().BoolVarP(&o.ShowExcluded, "show-excluded", "x", false,
		"Show excluded items too.")
}
