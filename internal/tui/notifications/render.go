package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
)

// Render renders a notification banner based on severity level
func Render(severity Severity, message string) string {
	style := severity.style()

	// Calculate max width needed
	headerText := style.icon + " " + style.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	// Create header with icon and title
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(maxWidth)

	if severity == Info {
		headerStyle = headerStyle.Background(lipgloss.Color(style.background))
	}

	header := headerStyle.Render(headerText)

	// Create message content
	messageContent := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(maxWidth).
		Render(message)

	// Combine header and message vertically
	content := lipgloss.JoinVertical(lipgloss.Left, header, messageContent)

	// Apply border and background
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.borderForeground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderFromState renders a notification banner from a state.Notification
func RenderFromState(n state.Notification) string {
	return Render(severityOf(n.Level), n.Message)
}

// RenderInline renders a compact inline notification (for the status bar)
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	// Icon + message on single line
	content := style.icon + " " + message

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification) string {
	return RenderInline(severityOf(n.Level), n.Message)
}
