package alias

import (
	"context"
	"strings"

	"github.com/raphi011/gt/internal/git"
	"github.com/raphi011/gt/internal/output"
)

// Options controls executor behavior.
type Options struct {
	// ContinueOnError keeps executing composite steps after a failure.
	// The default aborts on the first non-zero exit.
	ContinueOnError bool
}

// Run evaluates an entry: each step in order, one child process at a time,
// each awaited to completion before the next begins. The error of the
// failing (or, with ContinueOnError, the last failing) step is returned
// unmodified so the child's exit code stays recoverable.
func Run(ctx context.Context, e Entry, callerArgs []string, opts Options) error {
	var lastErr error
	for _, step := range e.Steps {
		args := Expand(step.Args, callerArgs)

		var err error
		if step.Head > 0 || step.Numbered {
			err = runCaptured(ctx, step, args)
		} else {
			err = git.Run(ctx, args...)
		}

		if err != nil {
			if !opts.ContinueOnError {
				return err
			}
			lastErr = err
		}
	}
	return lastErr
}

// runCaptured executes one step with stdout captured, then prints it with
// line numbering and/or truncation applied in-process.
func runCaptured(ctx context.Context, step Step, args []string) error {
	out, err := git.Output(ctx, args...)
	if err != nil {
		return err
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	if step.Head > 0 && len(lines) > step.Head {
		lines = lines[:step.Head]
	}

	p := output.FromContext(ctx)
	for i, line := range lines {
		if step.Numbered {
			p.Printf("%6d\t%s\n", i+1, line)
		} else {
			p.Println(line)
		}
	}
	return nil
}
