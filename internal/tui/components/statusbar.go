package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trucost-app/trucost/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with key hints on the
// left and a context note on the right.
func RenderStatusBar(width int, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	if right != "" {
		right += " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
