package alias

import (
	"fmt"
	"strings"

	"github.com/raphi011/gt/internal/ui/styles"
)

// Help renders the usage text enumerating every mnemonic with its one-line
// summary. When styled is set the mnemonics are colorized with lipgloss;
// pass false when stdout is not a terminal.
func Help(entries []Entry, styled bool) string {
	width := 0
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}

	var b strings.Builder
	b.WriteString("gt - short mnemonics for everyday git commands\n\n")
	b.WriteString("Usage: gt <mnemonic> [args...]\n\n")

	wroteCustomHeader := false
	for _, e := range entries {
		if e.Custom && !wroteCustomHeader {
			b.WriteString("\nConfigured aliases:\n")
			wroteCustomHeader = true
		}
		name := fmt.Sprintf("%-*s", width, e.Name)
		summary := e.Summary
		if styled {
			name = styles.AccentStyle.Render(name)
			summary = styles.MutedStyle.Render(summary)
		}
		fmt.Fprintf(&b, "  %s  %s\n", name, summary)
	}

	b.WriteString("\nAnything else prints this help.\n")
	return b.String()
}
