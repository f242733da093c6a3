package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/gt/internal/alias"
	"github.com/raphi011/gt/internal/config"
	"github.com/raphi011/gt/internal/git"
	"github.com/raphi011/gt/internal/log"
	"github.com/raphi011/gt/internal/output"
	"github.com/raphi011/gt/internal/ui/styles"
)

// Global flags. Everything after the mnemonic is forwarded to git
// untouched, so these must precede it; globalFlags peels them off before
// cobra sees the argument list.
var (
	verbose bool
	quiet   bool
)

// newRootCmd builds the root command with one subcommand per dispatch
// table entry.
func newRootCmd(entries []alias.Entry, opts alias.Options) *cobra.Command {
	root := &cobra.Command{
		Use:   "gt <mnemonic> [args...]",
		Short: "Short mnemonics for everyday git commands",
		Long: `gt maps short mnemonics to git command lines and runs them.

Arguments after the mnemonic are passed to git untouched; global flags
must come first (e.g. gt -v pp). Unknown mnemonics print the alias table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		// Bare invocations and unknown mnemonics fall through to here:
		// print the alias table and exit successfully.
		RunE: func(cmd *cobra.Command, args []string) error {
			printHelp(cmd.Context(), entries)
			return nil
		},
	}

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Skip the git check for commands that never spawn it. The root
		// fallback and a bare "?" only print the alias table, so they
		// must work even when git is not installed.
		if cmd == root {
			return nil
		}
		switch cmd.Name() {
		case "completion", "__complete", "help":
			return nil
		}
		if e, ok := alias.Lookup(entries, cmd.Name()); ok && e.BareHelp && len(args) == 0 {
			return nil
		}
		return git.Check()
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all diagnostic output")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.Version = versionString()
	root.SetVersionTemplate("{{.Version}}\n")

	for _, e := range entries {
		if e.Checkout {
			root.AddCommand(newCheckoutCmd(e))
			continue
		}
		root.AddCommand(newAliasCmd(e, entries, opts))
	}

	return root
}

// printHelp writes the alias table to the primary output, styled when
// stdout is a terminal.
func printHelp(ctx context.Context, entries []alias.Entry) {
	output.FromContext(ctx).Print(alias.Help(entries, terminal(os.Stdout)))
}

func terminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// errorText renders err for stderr, colored when writing to a terminal.
func errorText(err error, styled bool) string {
	if styled {
		return styles.ErrorStyle.Render(err.Error())
	}
	return err.Error()
}

// globalFlags peels -v/-q off the front of the argument list so that the
// same tokens after a mnemonic still reach git.
func globalFlags(args []string) []string {
	for len(args) > 0 {
		switch args[0] {
		case "-v", "--verbose":
			verbose = true
		case "-q", "--quiet":
			quiet = true
		default:
			return args
		}
		args = args[1:]
	}
	return args
}

// customEntries converts configured aliases into dispatch table entries.
func customEntries(aliases map[string]config.Alias) []alias.Entry {
	entries := make([]alias.Entry, 0, len(aliases))
	for name, a := range aliases {
		entries = append(entries, alias.Entry{
			Name:    name,
			Summary: a.Summary,
			Steps:   []alias.Step{{Args: a.Args}},
		})
	}
	return entries
}

// Execute runs the CLI and exits with the child's exit code on failure.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	git.Binary = cfg.GitBin

	entries := alias.Merge(alias.Builtins(cfg.InfoLogLines), customEntries(cfg.Aliases))
	opts := alias.Options{ContinueOnError: cfg.CompositeContinue}

	args := globalFlags(os.Args[1:])

	// Context with signal handling; an interrupt reaches the running
	// child through the process group and cancels anything queued.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))
	ctx = output.WithPrinter(ctx, os.Stdout)

	root := newRootCmd(entries, opts)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		styled := terminal(os.Stderr)
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			// Pass-through failures already streamed git's message to
			// stderr; captured ones carry it in the error text.
			if err.Error() != ee.Error() {
				fmt.Fprintln(os.Stderr, errorText(err, styled))
			}
			os.Exit(ee.ExitCode())
		}
		fmt.Fprintln(os.Stderr, errorText(err, styled))
		os.Exit(1)
	}
}
