package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/tui/layout"
	"github.com/thenoetrevino/swimlane/internal/tui/theme"
)

// openButton is the nested control that shows card details
const openButton = "[open]"

// CardProps describes how one card is drawn
type CardProps struct {
	Card        *models.Card
	Width       int
	Selected    bool
	ButtonFocus bool // the open button has focus instead of the card
	Dragging    bool // drawn under the pointer
	Ghost       bool // the slot the dragged card will land in
}

// RenderCard renders a single card at a fixed height
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Card Title}           ┃
//	┃ {id}            [open] ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━┛
func RenderCard(props CardProps) string {
	inner := max(props.Width-4, 1)

	style := CardStyle
	switch {
	case props.Ghost:
		style = style.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.Subtle)).
			Foreground(lipgloss.Color(theme.Subtle)).
			Faint(true)
	case props.Dragging:
		style = style.BorderForeground(lipgloss.Color(theme.DragBorder))
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	content := renderCardTitle(props.Card, inner) + "\n" + renderCardFooter(props, inner)

	return style.
		Width(props.Width).
		Height(layout.CardHeight).
		MaxHeight(layout.CardHeight).
		Render(content)
}

func renderCardTitle(card *models.Card, width int) string {
	title := truncate.StringWithTail(card.DisplayTitle(), uint(width), "…")
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(theme.CardBg)).
		Render(title)
}

// renderCardFooter puts the card id on the left and the open button on the right
func renderCardFooter(props CardProps, width int) string {
	bg := lipgloss.Color(theme.CardBg)

	button := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Background(bg)
	if props.Selected && props.ButtonFocus {
		button = button.Foreground(lipgloss.Color(theme.Accent)).Bold(true).Reverse(true)
	}
	rendered := button.Render(openButton)

	idWidth := max(width-lipgloss.Width(rendered)-1, 0)
	id := truncate.StringWithTail(props.Card.ID.String(), uint(idWidth), "…")
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Background(bg)

	gap := max(width-lipgloss.Width(id)-lipgloss.Width(rendered), 0)
	return idStyle.Render(id) + lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", gap)) + rendered
}
