package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/tui/theme"
)

// ColumnProps describes how one column frame is drawn
type ColumnProps struct {
	Column     *models.Column
	Count      int
	Width      int
	Height     int // total height, borders included
	Selected   bool
	DropTarget bool // a dragged card is over this column
	Dragging   bool // the column itself is being dragged
}

// RenderColumn renders a column frame with its title. Cards are drawn on
// top of the frame as their own layers.
//
// Layout:
//
//	╭──────────────────────────╮
//	│{Column Name} ({count})   │
//	│{Card 1}                  │
//	│...                       │
//	╰──────────────────────────╯
func RenderColumn(props ColumnProps) string {
	content := renderColumnHeader(props.Column, props.Count, props.Width-2)
	if props.Count == 0 {
		content += "\n\n" + SubtleStyle.Render(" No cards")
	}

	style := ColumnStyle
	switch {
	case props.Dragging:
		style = style.BorderForeground(lipgloss.Color(theme.DragBorder))
	case props.DropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.DropTarget))
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.
		Width(props.Width).
		Height(props.Height).
		MaxHeight(props.Height).
		Render(content)
}

func renderColumnHeader(column *models.Column, count, width int) string {
	header := fmt.Sprintf("%s (%d)", column.DisplayName(), count)
	return TitleStyle.Render(truncate.StringWithTail(header, uint(max(width, 1)), "…"))
}
