// Package theme defines the lipgloss styles used when coloring tree
// output.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds the styles applied to rendered lines.
type Palette struct {
	// Staged colors the X (index) position of a status code.
	Staged lipgloss.Style
	// Unstaged colors the Y (worktree) position of a status code.
	Unstaged lipgloss.Style
	// Conflict colors whole codes for untracked, ignored and
	// merge-conflict entries.
	Conflict lipgloss.Style
	// Dir colors directory names and tree guides.
	Dir lipgloss.Style
}

// Default returns the default palette. Plain ANSI colors so the output
// follows the terminal scheme, the way git itself colors status.
func Default() *Palette {
	return &Palette{
		Staged:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Unstaged: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Conflict: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Dir:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
