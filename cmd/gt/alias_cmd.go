package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gt/internal/alias"
)

// newAliasCmd builds the cobra command for one dispatch table entry. Flag
// parsing is disabled so that anything after the mnemonic reaches git
// verbatim (gt l --graph passes --graph to git log).
func newAliasCmd(e alias.Entry, entries []alias.Entry, opts alias.Options) *cobra.Command {
	return &cobra.Command{
		Use:                e.Name,
		Short:              e.Summary,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if e.BareHelp && len(args) == 0 {
				printHelp(ctx, entries)
				return nil
			}
			return alias.Run(ctx, e, args, opts)
		},
	}
}
