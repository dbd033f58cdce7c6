// Package styles holds the lipgloss styles for human-readable CLI output
package styles

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/models"
)

var (
	// Column styles
	ColumnStyle lipgloss.Style
	ColumnWidth = 28

	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Column:"
	ValueStyle    lipgloss.Style // For field values

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder)).
		Padding(0, 1).
		Width(ColumnWidth)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColumnView is one column as printed by the CLI
type ColumnView struct {
	Column *models.Column
	Cards  []*models.Card
}

// RenderColumn renders a column header followed by its card titles
func RenderColumn(view ColumnView) string {
	lines := []string{
		TitleStyle.Render(view.Column.DisplayName()) + " " + SubtitleStyle.Render("("+view.Column.ID.String()+")"),
	}
	if len(view.Cards) == 0 {
		lines = append(lines, SubtitleStyle.Italic(true).Render("empty"))
	}
	for _, card := range view.Cards {
		title := wordwrap.String(card.DisplayTitle(), ColumnWidth-6)
		lines = append(lines, ValueStyle.Render("• "+strings.ReplaceAll(title, "\n", "\n  ")))
	}
	return ColumnStyle.Render(strings.Join(lines, "\n"))
}

// RenderBoard renders columns side by side, or stacked when vertical is set
func RenderBoard(views []ColumnView, vertical bool) string {
	rendered := make([]string, len(views))
	for i, v := range views {
		rendered[i] = RenderColumn(v)
	}
	if vertical {
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
