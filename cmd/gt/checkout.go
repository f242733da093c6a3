package main

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/gt/internal/git"
	"github.com/raphi011/gt/internal/log"
	"github.com/raphi011/gt/internal/ui/prompt"
)

var branchNumber = regexp.MustCompile(`^[0-9]+$`)

// checkout resolves the argument to a branch name and checks it out.
// Numbers index into the branch list (1-based, as printed by "gt b"),
// anything else is used literally, and an empty argument opens an
// interactive picker.
func checkout(ctx context.Context, arg string) error {
	switch {
	case arg == "":
		return checkoutInteractive(ctx)
	case branchNumber.MatchString(arg):
		return checkoutByNumber(ctx, arg)
	default:
		return checkoutByName(ctx, arg)
	}
}

func checkoutByNumber(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid branch number %q", arg)
	}

	branches, err := git.Branches(ctx)
	if err != nil {
		return err
	}
	b, err := git.BranchAt(branches, n)
	if err != nil {
		return err
	}

	return git.Checkout(ctx, b.Name)
}

// checkoutByName passes the name to git unchanged. On failure the git
// error propagates; a fuzzy match against the local branches is offered
// as a hint only.
func checkoutByName(ctx context.Context, name string) error {
	err := git.Checkout(ctx, name)
	if err != nil {
		suggestBranch(ctx, name)
	}
	return err
}

func suggestBranch(ctx context.Context, name string) {
	branches, err := git.Branches(ctx)
	if err != nil || len(branches) == 0 {
		return
	}

	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = b.Name
	}

	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return
	}
	best := matches[0]
	log.FromContext(ctx).Printf("gt: did you mean %q? (gt co %d)\n", names[best.Index], best.Index+1)
}

func checkoutInteractive(ctx context.Context) error {
	if !terminal(os.Stdin) {
		return fmt.Errorf("branch name or number required (interactive selection needs a terminal)")
	}

	branches, err := git.Branches(ctx)
	if err != nil {
		return err
	}
	if len(branches) == 0 {
		return fmt.Errorf("no local branches")
	}

	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = b.Name
	}

	res, err := prompt.Select("Checkout branch", names)
	if err != nil {
		return err
	}
	if res.Cancelled {
		return nil
	}

	return git.Checkout(ctx, res.Value)
}
