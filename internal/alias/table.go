// Package alias defines gt's dispatch table: a static mapping from
// mnemonic to a sequence of git invocations, evaluated by one generic
// executor.
package alias

import "sort"

// Argument placeholders usable in Step.Args.
const (
	// Arg expands to the first caller argument. When unset the token is
	// elided rather than passed as an empty argument.
	Arg = "{arg}"
	// Rest expands to all caller arguments, spliced in place.
	Rest = "{rest}"
)

// Step is one git invocation template. Steps with Head or Numbered set
// capture the child's stdout and post-process it in-process; all other
// steps inherit the caller's standard streams.
type Step struct {
	Args     []string // git arguments, possibly containing placeholders
	Head     int      // if > 0, print only the first Head lines
	Numbered bool     // prefix each output line with its 1-based number
}

// Entry maps one mnemonic to its action. Mnemonics are case-sensitive and
// unique; the table is fixed at startup and immutable afterwards.
type Entry struct {
	Name    string
	Summary string
	Steps   []Step // executed in order; composite entries have several
	Custom  bool   // defined in the user's config file

	// Checkout marks the branch-resolving checkout entry, which is
	// dispatched by its own command instead of the generic executor.
	Checkout bool
	// BareHelp prints the help text instead of running Steps when the
	// entry is invoked without arguments.
	BareHelp bool
}

// Builtins returns the builtin dispatch table in help order. infoLines is
// the number of log lines the i command shows.
func Builtins(infoLines int) []Entry {
	branches := Step{Args: []string{"branch"}, Numbered: true}
	status := Step{Args: []string{"status", "-s"}}
	lastLog := Step{Args: []string{"log", "--oneline"}, Head: infoLines}
	amend := Step{Args: []string{"commit", "--amend", "--no-edit"}}

	return []Entry{
		{Name: "a", Summary: "stage files", Steps: steps("add", Rest)},
		{Name: "ac", Summary: "stage file, then amend commit", Steps: []Step{{Args: []string{"add", Arg}}, amend}},
		{Name: "am", Summary: "amend commit", Steps: []Step{amend}},
		{Name: "b", Summary: "list branches, numbered", Steps: []Step{branches}},
		{Name: "c", Summary: "commit with message", Steps: steps("commit", "-m", Arg)},
		{Name: "cd", Summary: "shallow clone (depth 1)", Steps: steps("clone", "--depth", "1", Arg)},
		{Name: "co", Summary: "checkout branch by name or number", Checkout: true},
		{Name: "d", Summary: "show working-tree diff", Steps: steps("diff")},
		{Name: "gc", Summary: "search pattern across commit contents", Steps: steps("log", "--all", "--oneline", "-S", Arg)},
		{Name: "gl", Summary: "search commit messages", Steps: steps("log", "--all", "--oneline", "--grep", Arg)},
		{Name: "i", Summary: "branches, status and recent log", Steps: []Step{branches, status, lastLog}},
		{Name: "l", Summary: "oneline log", Steps: steps("log", "--oneline")},
		{Name: "p", Summary: "pull", Steps: steps("pull")},
		{Name: "pp", Summary: "pull, then push", Steps: []Step{{Args: []string{"pull"}}, {Args: []string{"push"}}}},
		{Name: "P", Summary: "push", Steps: steps("push")},
		{Name: "s", Summary: "short status", Steps: []Step{status}},
		{Name: "sc", Summary: "clear stash", Steps: steps("stash", "clear")},
		{Name: "Sc", Summary: "clear stash", Steps: steps("stash", "clear")},
		{Name: "sh", Summary: "stash changes", Steps: steps("stash")},
		{Name: "S", Summary: "stash changes", Steps: steps("stash")},
		{Name: "sp", Summary: "pop stash", Steps: steps("stash", "pop")},
		{Name: "Sp", Summary: "pop stash", Steps: steps("stash", "pop")},
		{Name: "t", Summary: "show staged diff", Steps: steps("diff", "--cached")},
		{Name: "u", Summary: "undo last commit (soft reset)", Steps: steps("reset", "--soft", "HEAD~1")},
		{Name: "U", Summary: "show unpushed commits", Steps: steps("log", "@{upstream}..", "--oneline")},
		{Name: "?", Summary: "show object at ref (bare: this help)", Steps: steps("show", Rest), BareHelp: true},
	}
}

// steps builds a single-step action.
func steps(args ...string) []Step {
	return []Step{{Args: args}}
}

// Merge appends user-defined entries to the builtin table. Entries that
// would shadow a builtin mnemonic are dropped; builtins always win.
// Custom entries are sorted by name for deterministic help output.
func Merge(builtins, custom []Entry) []Entry {
	names := make(map[string]bool, len(builtins))
	for _, e := range builtins {
		names[e.Name] = true
	}

	var extra []Entry
	for _, e := range custom {
		if e.Name == "" || names[e.Name] {
			continue
		}
		names[e.Name] = true
		e.Custom = true
		extra = append(extra, e)
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Name < extra[j].Name })

	return append(builtins, extra...)
}

// Lookup finds an entry by mnemonic, case-sensitively.
func Lookup(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Expand materializes a step's argument template against the caller's
// arguments: Rest splices all of them in place, Arg becomes the first one
// (elided when absent). Everything else is literal.
func Expand(template, callerArgs []string) []string {
	out := make([]string, 0, len(template)+len(callerArgs))
	for _, t := range template {
		switch t {
		case Rest:
			out = append(out, callerArgs...)
		case Arg:
			if len(callerArgs) > 0 {
				out = append(out, callerArgs[0])
			}
		default:
			out = append(out, t)
		}
	}
	return out
}
