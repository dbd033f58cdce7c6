// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/swimlane/internal/config/colors"
	"github.com/thenoetrevino/swimlane/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of kanban board columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	// ZoneStyle defines the trash and placeholder drop zones
	ZoneStyle lipgloss.Style

	// FormBoxStyle defines the base style for the card form (accent border)
	FormBoxStyle lipgloss.Style

	// CreateInputBoxStyle defines the base style for the column form (green border)
	CreateInputBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for the help screen
	HelpBoxStyle lipgloss.Style

	// DetailsBoxStyle frames the rendered description of the selected card
	DetailsBoxStyle lipgloss.Style

	// InfoBannerStyle defines the appearance of info notifications
	InfoBannerStyle lipgloss.Style

	// ErrorBannerStyle defines the appearance of error messages (red)
	ErrorBannerStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// SubtleStyle is used for hints and empty states
	SubtleStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder))

	CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(colors.CardBorder)).
		BorderBackground(lipgloss.Color(colors.CardBackground)).
		Background(lipgloss.Color(colors.CardBackground)).
		Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	ZoneStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(colors.Subtle)).
		Foreground(lipgloss.Color(colors.Subtle)).
		Align(lipgloss.Center)

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)

	CreateInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Create)).
		Padding(1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder)).
		Padding(1, 2)

	DetailsBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.SelectedBorder)).
		Padding(0, 1)

	// Banner styles for notifications
	InfoBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Bold(true).
		Padding(0, 1)

	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Bold(true).
		Padding(0, 1)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Align(lipgloss.Center)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)
}
