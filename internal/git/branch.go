package git

import (
	"context"
	"fmt"
	"strings"
)

// Branch is a single local branch as reported by "git branch".
type Branch struct {
	Name    string
	Current bool
}

// Branches lists local branches in the order git prints them.
func Branches(ctx context.Context) ([]Branch, error) {
	out, err := Output(ctx, "branch")
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	return ParseBranches(out), nil
}

// ParseBranches parses "git branch" output. The current branch carries a
// "* " marker which is decoration, not part of the name; it is stripped
// along with surrounding whitespace.
func ParseBranches(out []byte) []Branch {
	var branches []Branch
	for _, line := range strings.Split(string(out), "\n") {
		current := strings.HasPrefix(line, "* ")
		name := strings.TrimSpace(strings.TrimPrefix(line, "* "))
		if name == "" {
			continue
		}
		branches = append(branches, Branch{Name: name, Current: current})
	}
	return branches
}

// BranchAt returns the branch at the given 1-based position.
func BranchAt(branches []Branch, n int) (Branch, error) {
	if n < 1 || n > len(branches) {
		return Branch{}, fmt.Errorf("branch %d out of range (1-%d)", n, len(branches))
	}
	return branches[n-1], nil
}

// Checkout switches to the named branch. Git's output and exit status pass
// through to the caller.
func Checkout(ctx context.Context, name string) error {
	return Run(ctx, "checkout", name)
}
