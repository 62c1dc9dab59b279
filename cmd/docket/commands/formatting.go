package commands

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// colorEnabled reports whether styled output should be used: the
// config allows it, stdout is a terminal and NO_COLOR is not set.
func colorEnabled(configColor bool) bool {
	if !configColor || termenv.EnvNoColor() {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// formatHeader styles a section header when color is on.
func formatHeader(s string, color bool) string {
	if !color {
		return s
	}
	return headerStyle.Render(s)
}

// formatBold styles a string bold when color is on.
func formatBold(s string, color bool) string {
	if !color {
		return s
	}
	return pterm.Bold.Sprint(s)
}
