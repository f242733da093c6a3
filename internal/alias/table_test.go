package alias

import (
	"reflect"
	"testing"
)

func TestBuiltins_Surface(t *testing.T) {
	t.Parallel()

	entries := Builtins(3)

	want := []string{
		"a", "ac", "am", "b", "c", "cd", "co", "d", "gc", "gl", "i", "l",
		"p", "pp", "P", "s", "sc", "Sc", "sh", "S", "sp", "Sp", "t", "u", "U", "?",
	}

	if len(entries) != len(want) {
		t.Fatalf("len(Builtins) = %d, want %d", len(entries), len(want))
	}

	seen := make(map[string]bool)
	for i, e := range entries {
		if e.Name != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Name, want[i])
		}
		if seen[e.Name] {
			t.Errorf("duplicate mnemonic %q", e.Name)
		}
		seen[e.Name] = true
		if e.Summary == "" {
			t.Errorf("mnemonic %q has no summary", e.Name)
		}
		if !e.Checkout && len(e.Steps) == 0 {
			t.Errorf("mnemonic %q has no steps", e.Name)
		}
	}
}

func TestBuiltins_CaseSensitive(t *testing.T) {
	t.Parallel()

	entries := Builtins(3)

	lower, ok := Lookup(entries, "s")
	if !ok {
		t.Fatal("mnemonic s missing")
	}
	upper, ok := Lookup(entries, "S")
	if !ok {
		t.Fatal("mnemonic S missing")
	}
	if reflect.DeepEqual(lower.Steps, upper.Steps) {
		t.Error("s and S must be distinct entries")
	}
	if got := lower.Steps[0].Args; !reflect.DeepEqual(got, []string{"status", "-s"}) {
		t.Errorf("s args = %v", got)
	}
	if got := upper.Steps[0].Args; !reflect.DeepEqual(got, []string{"stash"}) {
		t.Errorf("S args = %v", got)
	}
}

func TestBuiltins_CommandLines(t *testing.T) {
	t.Parallel()

	// Expected argv per mnemonic, given the caller args in args.
	tests := []struct {
		mnemonic string
		args     []string
		want     [][]string
	}{
		{"a", []string{"x.go", "y.go"}, [][]string{{"add", "x.go", "y.go"}}},
		{"ac", []string{"x.go"}, [][]string{{"add", "x.go"}, {"commit", "--amend", "--no-edit"}}},
		{"am", nil, [][]string{{"commit", "--amend", "--no-edit"}}},
		{"b", nil, [][]string{{"branch"}}},
		{"c", []string{"fix crash"}, [][]string{{"commit", "-m", "fix crash"}}},
		{"cd", []string{"https://example.com/r.git"}, [][]string{{"clone", "--depth", "1", "https://example.com/r.git"}}},
		{"d", nil, [][]string{{"diff"}}},
		{"gc", []string{"needle"}, [][]string{{"log", "--all", "--oneline", "-S", "needle"}}},
		{"gl", []string{"needle"}, [][]string{{"log", "--all", "--oneline", "--grep", "needle"}}},
		{"i", nil, [][]string{{"branch"}, {"status", "-s"}, {"log", "--oneline"}}},
		{"l", nil, [][]string{{"log", "--oneline"}}},
		{"p", nil, [][]string{{"pull"}}},
		{"pp", nil, [][]string{{"pull"}, {"push"}}},
		{"P", nil, [][]string{{"push"}}},
		{"s", nil, [][]string{{"status", "-s"}}},
		{"sc", nil, [][]string{{"stash", "clear"}}},
		{"Sc", nil, [][]string{{"stash", "clear"}}},
		{"sh", nil, [][]string{{"stash"}}},
		{"S", nil, [][]string{{"stash"}}},
		{"sp", nil, [][]string{{"stash", "pop"}}},
		{"Sp", nil, [][]string{{"stash", "pop"}}},
		{"t", nil, [][]string{{"diff", "--cached"}}},
		{"u", nil, [][]string{{"reset", "--soft", "HEAD~1"}}},
		{"U", nil, [][]string{{"log", "@{upstream}..", "--oneline"}}},
		{"?", []string{"HEAD~2"}, [][]string{{"show", "HEAD~2"}}},
	}

	entries := Builtins(3)
	for _, tt := range tests {
		t.Run(tt.mnemonic, func(t *testing.T) {
			t.Parallel()
			e, ok := Lookup(entries, tt.mnemonic)
			if !ok {
				t.Fatalf("mnemonic %q not in table", tt.mnemonic)
			}
			if len(e.Steps) != len(tt.want) {
				t.Fatalf("%q has %d steps, want %d", tt.mnemonic, len(e.Steps), len(tt.want))
			}
			for i, step := range e.Steps {
				got := Expand(step.Args, tt.args)
				if !reflect.DeepEqual(got, tt.want[i]) {
					t.Errorf("%q step %d = %v, want %v", tt.mnemonic, i, got, tt.want[i])
				}
			}
		})
	}
}

func TestBuiltins_InfoTruncation(t *testing.T) {
	t.Parallel()

	e, ok := Lookup(Builtins(5), "i")
	if !ok {
		t.Fatal("mnemonic i missing")
	}
	last := e.Steps[len(e.Steps)-1]
	if last.Head != 5 {
		t.Errorf("i log step Head = %d, want 5", last.Head)
	}
	if b := e.Steps[0]; !b.Numbered {
		t.Error("i branch step should be numbered")
	}
}

func TestExpand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template []string
		args     []string
		want     []string
	}{
		{"literal only", []string{"pull"}, []string{"junk"}, []string{"pull"}},
		{"arg present", []string{"commit", "-m", Arg}, []string{"msg"}, []string{"commit", "-m", "msg"}},
		{"arg elided when unset", []string{"commit", "-m", Arg}, nil, []string{"commit", "-m"}},
		{"arg takes only first", []string{"add", Arg}, []string{"a", "b"}, []string{"add", "a"}},
		{"rest splices all", []string{"add", Rest}, []string{"a", "b"}, []string{"add", "a", "b"}},
		{"rest elided when empty", []string{"add", Rest}, nil, []string{"add"}},
		{"rest mid-template", []string{"show", Rest, "--stat"}, []string{"HEAD"}, []string{"show", "HEAD", "--stat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Expand(tt.template, tt.args); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expand(%v, %v) = %v, want %v", tt.template, tt.args, got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	builtins := Builtins(3)
	custom := []Entry{
		{Name: "zz", Summary: "z alias", Steps: steps("fetch")},
		{Name: "s", Summary: "shadowing builtin", Steps: steps("status")},
		{Name: "fa", Summary: "fetch all", Steps: steps("fetch", "--all")},
		{Name: "", Steps: steps("nope")},
	}

	merged := Merge(builtins, custom)

	if len(merged) != len(builtins)+2 {
		t.Fatalf("len(merged) = %d, want %d", len(merged), len(builtins)+2)
	}

	// Builtin s must survive the shadowing attempt
	s, _ := Lookup(merged, "s")
	if s.Custom || !reflect.DeepEqual(s.Steps[0].Args, []string{"status", "-s"}) {
		t.Errorf("builtin s was shadowed: %+v", s)
	}

	// Custom entries appended sorted, flagged
	tail := merged[len(builtins):]
	if tail[0].Name != "fa" || tail[1].Name != "zz" {
		t.Errorf("custom tail = %q, %q, want fa, zz", tail[0].Name, tail[1].Name)
	}
	for _, e := range tail {
		if !e.Custom {
			t.Errorf("custom entry %q not flagged", e.Name)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()

	if _, ok := Lookup(Builtins(3), "zz"); ok {
		t.Error("Lookup(zz) found an entry, want miss")
	}
}
