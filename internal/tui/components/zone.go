package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/swimlane/internal/tui/layout"
	"github.com/thenoetrevino/swimlane/internal/tui/theme"
)

// Drop zone labels
const (
	TrashLabel       = "✕ drop to delete"
	PlaceholderLabel = "+ drop for new column"
)

// ZoneProps describes a sentinel drop zone
type ZoneProps struct {
	Label  string
	Width  int
	Over   bool // the dragged card is over the zone
	Delete bool // colors the zone as destructive when hovered
}

// RenderZone renders the trash or the placeholder zone
func RenderZone(props ZoneProps) string {
	style := ZoneStyle
	if props.Over {
		color := theme.Create
		if props.Delete {
			color = theme.Delete
		}
		style = style.
			BorderForeground(lipgloss.Color(color)).
			Foreground(lipgloss.Color(color)).
			Bold(true)
	}

	return style.
		Width(props.Width).
		Height(layout.ZoneHeight).
		MaxHeight(layout.ZoneHeight).
		Render(props.Label)
}
