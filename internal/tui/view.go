package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/swimlane/internal/dnd"
	"github.com/thenoetrevino/swimlane/internal/kanban"
	"github.com/thenoetrevino/swimlane/internal/tui/components"
	"github.com/thenoetrevino/swimlane/internal/tui/layers"
	"github.com/thenoetrevino/swimlane/internal/tui/layout"
	"github.com/thenoetrevino/swimlane/internal/tui/notifications"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	// Wait for terminal size to be initialized
	if m.UIState.Width() == 0 {
		v := tea.NewView("Loading...")
		v.AltScreen = true
		return v
	}

	canvas := lipgloss.NewCanvas(layers.Compact(m.renderLayers()...)...)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// renderLayers returns every layer of the screen, bottom first
func (m Model) renderLayers() []*lipgloss.Layer {
	width, height := m.UIState.Width(), m.UIState.Height()

	// blank base so the canvas always covers the whole terminal
	base := lipgloss.NewStyle().Width(width).Height(height).Render("")
	out := []*lipgloss.Layer{lipgloss.NewLayer(base), withZ(m.renderHeaderLayer(), zBoard)}

	out = append(out, m.renderBoardLayers()...)
	out = append(out, withZ(m.renderDragLayer(), zDrag), withZ(m.renderDetailsLayer(), zOverlay))
	for _, l := range m.renderFooterLayers() {
		out = append(out, withZ(l, zOverlay))
	}

	switch m.UIState.Mode() {
	case state.CardFormMode:
		out = append(out, withZ(m.renderCardFormLayer(), zModal))
	case state.ColumnFormMode:
		out = append(out, withZ(m.renderColumnFormLayer(), zModal))
	case state.HelpMode:
		out = append(out, withZ(m.renderHelpLayer(), zModal))
	}
	return out
}

// Stacking order of the screen layers
const (
	zBoard = iota + 1
	zCard
	zDrag
	zOverlay
	zModal
)

// withZ stacks an optional layer
func withZ(l *lipgloss.Layer, z int) *lipgloss.Layer {
	if l == nil {
		return nil
	}
	return l.Z(z)
}

// renderHeaderLayer renders the title row with the latest notification
func (m Model) renderHeaderLayer() *lipgloss.Layer {
	title := components.TitleStyle.Render("swimlane")

	if n, ok := m.Notifications.Latest(); ok {
		inline := notifications.RenderInlineFromState(n)
		gap := max(m.UIState.Width()-lipgloss.Width(title)-lipgloss.Width(inline), 1)
		title += strings.Repeat(" ", gap) + inline
	}
	return lipgloss.NewLayer(title)
}

// renderBoardLayers renders column frames, then cards on top of them, then
// the drop zones.
func (m Model) renderBoardLayers() []*lipgloss.Layer {
	c := m.board.container
	l := m.board.layout
	activeID := m.Drag.ActiveID()
	selectedCard, _ := m.selectedCard()
	focus := m.UIState.Focus()

	var frames, cards []*lipgloss.Layer
	for _, col := range l.Columns {
		frame := components.RenderColumn(components.ColumnProps{
			Column:     m.column(col.ID),
			Count:      len(col.Cards),
			Width:      int(col.Rect.Width),
			Height:     int(col.Rect.Height),
			Selected:   col.Index == m.UIState.SelectedColumn(),
			DropTarget: m.Drag.Active() && activeID != col.ID && c.IsOverColumn(col.ID),
		})
		if activeID == col.ID {
			frame = components.SubtleStyle.Render(frame)
		}
		frames = append(frames, withZ(layers.CreateLayerAt(frame, col.Rect), zBoard))

		for _, card := range col.Cards {
			selected := card.ID == selectedCard && col.Index == m.UIState.SelectedColumn() &&
				focus != state.FocusColumnHeader
			rendered := components.RenderCard(components.CardProps{
				Card:        m.card(card.ID),
				Width:       int(card.Rect.Width),
				Selected:    selected && !m.Drag.Active(),
				ButtonFocus: focus == state.FocusOpenButton,
				Ghost:       card.ID == activeID,
			})
			cards = append(cards, withZ(layers.CreateLayerAt(rendered, card.Rect), zCard))
		}
	}

	zones := []*lipgloss.Layer{
		m.renderZone(components.PlaceholderLabel, l.Placeholder, types.PlaceholderID, false),
		m.renderZone(components.TrashLabel, l.Trash, types.TrashID, true),
	}

	return append(append(frames, cards...), zones...)
}

func (m Model) renderZone(label string, rect dnd.Rect, id types.ID, destructive bool) *lipgloss.Layer {
	zone := components.RenderZone(components.ZoneProps{
		Label:  label,
		Width:  int(rect.Width),
		Over:   m.Drag.Active() && m.Drag.Over() == id,
		Delete: destructive,
	})
	return withZ(layers.CreateLayerAt(zone, rect), zCard)
}

// renderDragLayer renders the dragged card or column under the pointer
func (m Model) renderDragLayer() *lipgloss.Layer {
	if !m.Drag.Active() {
		return nil
	}
	id := m.Drag.ActiveID()
	rect := m.Drag.Rect()

	if m.board.container.Items().Has(id) {
		return layers.CreateLayerAt(components.RenderColumn(components.ColumnProps{
			Column:   m.column(id),
			Count:    len(m.board.container.Items().Cards(id)),
			Width:    int(rect.Width),
			Height:   int(rect.Height),
			Dragging: true,
		}), rect)
	}

	return layers.CreateLayerAt(components.RenderCard(components.CardProps{
		Card:     m.card(id),
		Width:    int(rect.Width),
		Dragging: true,
	}), rect)
}

// renderDetailsLayer renders the selected card's description below the
// drop zones, or centered when there is no room beside the board.
func (m Model) renderDetailsLayer() *lipgloss.Layer {
	if !m.UIState.ShowDetails() || m.Drag.Active() {
		return nil
	}
	id, ok := m.selectedCard()
	if !ok {
		return nil
	}
	card := m.card(id)

	width := layout.ColumnWidth
	body := components.RenderDescription(components.DescriptionProps{
		Description: card.Description,
		Width:       width - 4,
	})
	content := components.TitleStyle.Render(card.DisplayTitle()) + "\n\n" + body
	box := components.DetailsBoxStyle.
		Width(width).
		MaxHeight(max(m.UIState.ContentHeight()-2*layout.ZoneHeight-1, 5)).
		Render(content)

	at := m.board.layout.Trash
	at.Top = at.Bottom() + 1
	if int(at.Left)+width > m.UIState.Width() {
		return layers.CreateCenteredLayer(box, m.UIState.Width(), m.UIState.Height())
	}
	return layers.CreateLayerAt(box, at)
}

// renderFooterLayers renders the status bar and the short help line
func (m Model) renderFooterLayers() []*lipgloss.Layer {
	width, height := m.UIState.Width(), m.UIState.Height()

	status := components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Left:  m.statusText(),
		Right: m.board.lastEvent,
	})
	helpLine := m.help.View(m.keys)

	return []*lipgloss.Layer{
		lipgloss.NewLayer(status).Y(max(height-2, 0)),
		lipgloss.NewLayer(helpLine).Y(max(height-1, 0)),
	}
}

// statusText describes the drag in progress and any columns scrolled out
// of view.
func (m Model) statusText() string {
	var parts []string

	if m.Drag.Active() {
		over := m.Drag.Over()
		target := "nothing"
		if !over.IsZero() {
			target = over.String()
		}
		parts = append(parts, fmt.Sprintf("%s %s over %s",
			m.board.container.Phase(), m.Drag.ActiveID(), target))
	} else if _, ok := m.Drag.Pending(); ok {
		parts = append(parts, "pressed")
	}

	if m.board.container.Orientation() == kanban.Horizontal {
		total := len(m.board.container.Columns())
		if hiddenLeft := m.UIState.ViewportOffset(); hiddenLeft > 0 {
			parts = append(parts, fmt.Sprintf("◀ %d more", hiddenLeft))
		}
		if hiddenRight := total - len(m.board.layout.Columns) - m.UIState.ViewportOffset(); hiddenRight > 0 {
			parts = append(parts, fmt.Sprintf("%d more ▶", hiddenRight))
		}
	}
	return strings.Join(parts, "  ")
}

// renderCardFormLayer renders the new card form as a centered modal
func (m Model) renderCardFormLayer() *lipgloss.Layer {
	if m.Forms.CardForm == nil {
		return nil
	}
	box := components.FormBoxStyle.
		Width(max(m.UIState.Width()*6/10, 40)).
		Render(m.Forms.CardForm.View())
	return layers.CreateCenteredLayer(box, m.UIState.Width(), m.UIState.Height())
}

// renderColumnFormLayer renders the new column form as a centered modal
func (m Model) renderColumnFormLayer() *lipgloss.Layer {
	if m.Forms.ColumnForm == nil {
		return nil
	}
	box := components.CreateInputBoxStyle.
		Width(50).
		Render("New Column\n\n" + m.Forms.ColumnForm.View())
	return layers.CreateCenteredLayer(box, m.UIState.Width(), m.UIState.Height())
}

// renderHelpLayer renders every key binding as a centered modal
func (m Model) renderHelpLayer() *lipgloss.Layer {
	full := m.help
	full.ShowAll = true

	content := components.TitleStyle.Render("swimlane - Keyboard Shortcuts") +
		"\n\n" + full.View(m.keys) +
		"\n\n" + components.SubtleStyle.Render("Drag cards and column titles with the mouse.\nPress any key to close")

	box := components.HelpBoxStyle.Render(content)
	return layers.CreateCenteredLayer(box, m.UIState.Width(), m.UIState.Height())
}
