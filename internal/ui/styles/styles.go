// Package styles provides shared lipgloss styles for gt's terminal output.
package styles

import "charm.land/lipgloss/v2"

// Colors used throughout the UI.
var (
	// Accent is the highlight color for mnemonics and selected items.
	Accent = lipgloss.Color("212")

	// Muted is used for secondary text (summaries, hints).
	Muted = lipgloss.Color("240")

	// Error is used for error messages.
	Error = lipgloss.Color("196")
)

// Common styles.
var (
	// AccentStyle applies the accent color with bold.
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// MutedStyle applies the muted color.
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// ErrorStyle applies the error color.
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)
)
