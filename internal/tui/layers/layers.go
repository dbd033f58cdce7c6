// Package layers positions rendered content on the screen canvas
package layers

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/swimlane/internal/dnd"
)

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Typically called with ui.Width() and ui.Height() as dimensions.
//
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := (screenWidth - contentWidth) / 2
	y := (screenHeight - contentHeight) / 2

	x = max(x, 0)
	y = max(y, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CreateLayerAt creates a layer whose top-left corner sits on the origin of
// rect. Parts of the rect left of or above the screen are clamped onto it.
func CreateLayerAt(content string, rect dnd.Rect) *lipgloss.Layer {
	if content == "" {
		return nil
	}
	x := max(int(rect.Left), 0)
	y := max(int(rect.Top), 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// Compact drops nil layers so optional overlays can be listed inline
func Compact(layers ...*lipgloss.Layer) []*lipgloss.Layer {
	kept := make([]*lipgloss.Layer, 0, len(layers))
	for _, l := range layers {
		if l != nil {
			kept = append(kept, l)
		}
	}
	return kept
}
