package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"github.com/thenoetrevino/swimlane/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	Left  string // drag phase or hidden column hints
	Right string // help hint
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	rightRendered := style.Render(props.Right)
	rightWidth := lipgloss.Width(rightRendered)

	left := truncate.StringWithTail(props.Left, uint(max(props.Width-rightWidth-1, 0)), "…")
	leftRendered := style.Render(left)

	// Calculate space between left and right text
	gapWidth := props.Width - lipgloss.Width(leftRendered) - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
