package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gt/internal/alias"
)

func newCheckoutCmd(e alias.Entry) *cobra.Command {
	return &cobra.Command{
		Use:   "co [branch|N]",
		Short: e.Summary,
		Long: `Check out a branch by name, or by its 1-based position in the
branch list printed by "gt b". Without an argument an interactive picker
opens on the local branches.`,
		Example: `  gt co feature/login   # by name
  gt co 3               # third branch listed by "gt b"
  gt co                 # pick interactively`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			return checkout(cmd.Context(), arg)
		},
	}
}
