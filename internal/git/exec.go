package git

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/raphi011/gt/internal/cmd"
)

// Binary is the git executable to invoke. Overridden at startup from the
// git_bin config key, and by tests pointing at a stub executable.
var Binary = "git"

// ErrGitNotFound indicates git is not installed or not in PATH.
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// Check verifies that the configured git binary is available in PATH.
func Check() error {
	if _, err := exec.LookPath(Binary); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// Run executes a git command with the caller's standard streams attached.
func Run(ctx context.Context, args ...string) error {
	return cmd.AttachContext(ctx, "", Binary, args...)
}

// Output executes a git command and returns its stdout, with stderr folded
// into the error on failure.
func Output(ctx context.Context, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", Binary, args...)
}
