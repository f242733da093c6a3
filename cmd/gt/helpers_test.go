package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/gt/internal/alias"
	"github.com/raphi011/gt/internal/git"
	"github.com/raphi011/gt/internal/log"
	"github.com/raphi011/gt/internal/output"
)

// stubScript is a fake git recording each argument vector it receives,
// one line per invocation. Exit codes for checkout/pull are forced via
// CHECKOUT_EXIT/PULL_EXIT so failure paths can be driven from tests.
const stubScript = `#!/bin/sh
echo "$@" >> "$GT_RECORD"
case "$1" in
  branch) printf '  alpha\n* beta\n  gamma\n' ;;
  log) printf 'c4 fourth\nc3 third\nc2 second\nc1 first\n' ;;
  checkout) exit "${CHECKOUT_EXIT:-0}" ;;
  pull) exit "${PULL_EXIT:-0}" ;;
esac
`

// setupStub installs the stub as git.Binary and returns the record file.
// Tests using it must not be parallel: git.Binary is package state.
func setupStub(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	bin := filepath.Join(dir, "git")
	if err := os.WriteFile(bin, []byte(stubScript), 0o755); err != nil {
		t.Fatalf("write stub git: %v", err)
	}
	record := filepath.Join(dir, "record")
	t.Setenv("GT_RECORD", record)
	old := git.Binary
	git.Binary = bin
	t.Cleanup(func() { git.Binary = old })
	return record
}

func recorded(t *testing.T, record string) []string {
	t.Helper()
	data, err := os.ReadFile(record)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read record: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// runGT executes the CLI with the given argv, returning primary output,
// diagnostics, and the command error.
func runGT(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, diag bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&diag, false, false))
	ctx = output.WithPrinter(ctx, &out)

	root := newRootCmd(alias.Builtins(3), alias.Options{})
	root.SetArgs(args)
	err = root.ExecuteContext(ctx)
	return out.String(), diag.String(), err
}
