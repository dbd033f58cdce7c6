package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/swimlane/internal/dnd"
	"github.com/thenoetrevino/swimlane/internal/tui/layout"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// openButtonWidth is the width of the "[open]" label in a card footer
const openButtonWidth = 6

func pointOf(x, y int) dnd.Point {
	return dnd.Point{X: float64(x), Y: float64(y)}
}

// handleMouseClick selects what was clicked and arms a pointer drag on
// cards and column headers. The drag only starts once the pointer moves
// past the activation distance, so a plain click stays a click.
func (m Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if msg.Button == tea.MouseRight && m.Drag.Active() {
		return m.cancelDrag()
	}
	if msg.Button != tea.MouseLeft || m.Drag.Active() {
		return nil
	}

	p := pointOf(msg.X, msg.Y)
	hit := m.board.layout.Hit(p)

	switch hit.Kind {
	case layout.KindCard:
		m.selectID(hit.ID)
		rect, _ := m.board.layout.Rect(hit.ID)
		if onOpenButton(rect, p) {
			m.UIState.SetFocus(state.FocusOpenButton)
			m.UIState.ToggleDetails()
			return nil
		}
		m.UIState.ResetFocus()
		m.Drag.Press(hit.ID, p, rect)

	case layout.KindColumnHeader:
		m.selectColumn(hit.ID)
		m.UIState.SetFocus(state.FocusColumnHeader)
		rect, _ := m.board.layout.Rect(hit.ID)
		m.Drag.Press(hit.ID, p, rect)

	case layout.KindColumn:
		m.selectColumn(hit.ID)
		m.UIState.ResetFocus()
	}
	return nil
}

// handleMouseMotion starts an armed drag once the pointer sensor allows it
// and moves a running pointer drag.
func (m Model) handleMouseMotion(msg tea.MouseMotionMsg) {
	p := pointOf(msg.X, msg.Y)

	if id, ok := m.Drag.Pending(); ok {
		if !m.board.container.Sensors().Pointer.Activated(m.Drag.PressPoint(), p) {
			return
		}
		m.board.container.DragStart(id)
		m.Drag.Activate(state.SourcePointer, id, m.Drag.Rect())
	}

	if !m.Drag.Active() || m.Drag.Source() != state.SourcePointer {
		return
	}
	m.Drag.FollowPointer(p)
	m.dragOver(&p)
}

// handleMouseRelease drops a pointer drag, or disarms a press that never
// became one.
func (m Model) handleMouseRelease(msg tea.MouseReleaseMsg) tea.Cmd {
	if _, ok := m.Drag.Pending(); ok {
		m.Drag.Reset()
		return nil
	}
	if !m.Drag.Active() || m.Drag.Source() != state.SourcePointer {
		return nil
	}

	p := pointOf(msg.X, msg.Y)
	m.Drag.FollowPointer(p)
	m.dragOver(&p)
	return m.drop()
}

// selectColumn selects a column and its first card
func (m Model) selectColumn(id types.ColumnID) {
	m.selectID(id)
	m.UIState.SetSelectedCard(0)
}

// onOpenButton reports whether p lies on the open button of a card drawn at
// rect. The button ends inside the right border and padding of the footer row.
func onOpenButton(rect dnd.Rect, p dnd.Point) bool {
	right := rect.Right() - 2
	return p.Y == rect.Top+2 && p.X >= right-openButtonWidth && p.X < right
}
