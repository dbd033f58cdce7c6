package tui

import (
	"fmt"
	"slices"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/swimlane/internal/dnd"
	"github.com/thenoetrevino/swimlane/internal/kanban"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// handleNormalKey handles key presses while no drag is running
func (m Model) handleNormalKey(msg tea.KeyPressMsg) tea.Cmd {
	k := m.keys

	switch {
	case key.Matches(msg, k.quit):
		return tea.Quit
	case key.Matches(msg, k.showHelp):
		m.UIState.SetMode(state.HelpMode)
	case key.Matches(msg, k.prevColumn):
		m.moveSelection(-1, 0)
	case key.Matches(msg, k.nextColumn):
		m.moveSelection(1, 0)
	case key.Matches(msg, k.prevCard):
		m.moveSelection(0, -1)
	case key.Matches(msg, k.nextCard):
		m.moveSelection(0, 1)
	case key.Matches(msg, k.focusNext):
		_, hasCard := m.selectedCard()
		m.UIState.ToggleFocus(hasCard)
	case key.Matches(msg, k.toggleDetails):
		m.UIState.ToggleDetails()
	case key.Matches(msg, k.addCard):
		return m.openCardForm()
	case key.Matches(msg, k.deleteCard):
		return m.deleteSelectedCard()
	case key.Matches(msg, k.moveCardLeft):
		return m.moveSelectedCard(-1)
	case key.Matches(msg, k.moveCardRight):
		return m.moveSelectedCard(1)
	case key.Matches(msg, k.createColumn):
		return m.openColumnForm()
	case key.Matches(msg, k.deleteColumn):
		return m.deleteSelectedColumn()
	case slices.Contains(k.activationKeys(), msg.String()):
		m.activate(msg.String())
	}
	return nil
}

// moveSelection moves the selection by columns and cards
func (m Model) moveSelection(dColumn, dCard int) {
	c := m.board.container
	columns := c.Columns()
	if len(columns) == 0 {
		return
	}

	if dColumn != 0 {
		i := min(max(m.UIState.SelectedColumn()+dColumn, 0), len(columns)-1)
		m.UIState.SetSelectedColumn(i)
		m.UIState.ClampCard(len(c.Items().Cards(columns[i])))
		m.UIState.ResetFocus()
	}
	if dCard != 0 {
		if column, ok := m.selectedColumn(); ok {
			m.UIState.SetSelectedCard(max(m.UIState.SelectedCard()+dCard, 0))
			m.UIState.ClampCard(len(c.Items().Cards(column)))
			m.UIState.ResetFocus()
		}
	}
	m.UIState.EnsureSelectionVisible(len(columns))
}

// focusedTarget returns the element with keyboard focus, the drag handle it
// belongs to and the id that handle drags.
func (m Model) focusedTarget() (target, handle *dnd.Element, id types.ID, ok bool) {
	column, ok := m.selectedColumn()
	if !ok {
		return nil, nil, types.None, false
	}

	card, hasCard := m.selectedCard()
	if !hasCard || m.UIState.Focus() == state.FocusColumnHeader {
		el := m.elements(column)
		return el.handle, el.handle, column, true
	}

	el := m.elements(card)
	if m.UIState.Focus() == state.FocusOpenButton {
		return el.button, el.handle, card, true
	}
	return el.handle, el.handle, card, true
}

// activate offers an activation key to the keyboard activator. Keys aimed
// at the open button press the button instead of starting a drag.
func (m Model) activate(pressed string) {
	target, handle, id, ok := m.focusedTarget()
	if !ok {
		return
	}

	activator := m.board.container.Handlers().Activator
	activator.Keys = m.keys.activationKeys()
	activator.Handler = func(dnd.KeyEvent) bool {
		return m.startKeyboardDrag(id)
	}

	ev := dnd.KeyEvent{Key: pressed, Target: target, CurrentTarget: handle}
	if activator.Activate(ev) {
		return
	}
	if activator.Suppressed(ev) {
		m.UIState.ToggleDetails()
	}
}

// startKeyboardDrag picks up id where it is drawn
func (m Model) startKeyboardDrag(id types.ID) bool {
	rect, ok := m.board.layout.Rect(id)
	if !ok {
		return false
	}
	m.board.container.DragStart(id)
	m.Drag.Activate(state.SourceKeyboard, id, rect)
	// Dropping without moving puts it back where it was
	m.Drag.SetOver(id)
	return true
}

// handleDragKey handles key presses while a drag is running
func (m Model) handleDragKey(msg tea.KeyPressMsg) tea.Cmd {
	pressed := msg.String()

	switch {
	case key.Matches(msg, m.keys.cancelDrag):
		return m.cancelDrag()
	case m.Drag.Source() != state.SourceKeyboard:
		return nil
	case slices.Contains(m.keys.activationKeys(), pressed):
		return m.drop()
	}

	if dir, ok := m.keys.direction(pressed); ok {
		m.keyboardMove(dir)
	}
	return nil
}

// keyboardMove steps the dragged rect in dir and previews the move
func (m Model) keyboardMove(dir string) {
	c := m.board.container
	id := m.Drag.ActiveID()

	rect, ok := c.Sensors().Keyboard.Move(dnd.KeyEvent{Key: dir}, dnd.CoordinateContext{
		Active:     id,
		ActiveRect: m.Drag.Rect(),
		Droppables: m.board.layout.Droppables(),
	})
	if !ok {
		return
	}
	m.Drag.SetRect(rect)
	m.dragOver(nil)
}

// coordinates steps a keyboard drag onto the nearest target in the arrow's
// direction. Columns move between columns; cards move between cards, empty
// columns and the two drop zones.
func (m Model) coordinates(ev dnd.KeyEvent, ctx dnd.CoordinateContext) (dnd.Point, bool) {
	items := m.board.container.Items()
	draggingColumn := items.Has(ctx.Active)

	ctx.Droppables = slices.DeleteFunc(slices.Clone(ctx.Droppables), func(d dnd.Droppable) bool {
		if draggingColumn {
			return !items.Has(d.ID)
		}
		return items.Has(d.ID) && len(items.Cards(d.ID)) > 0
	})
	return dnd.NearestDroppableCoordinates(ev, ctx)
}

// dragOver resolves the target under the dragged rect and feeds one
// drag-over frame. When the card moved to another column the board is
// measured again and the target resolved once more against the new slots.
func (m Model) dragOver(pointer *dnd.Point) {
	c := m.board.container
	id := m.Drag.ActiveID()

	resolve := func() (types.ID, bool) {
		return c.ResolveTarget(dnd.CollisionArgs{
			Active:     id,
			ActiveRect: m.Drag.Rect(),
			Droppables: m.board.layout.Droppables(),
			Pointer:    pointer,
		})
	}

	over, ok := resolve()
	if !ok {
		return
	}
	m.Drag.SetOver(over)

	overRect, _ := m.board.layout.Rect(over)
	moved := c.DragOver(kanban.DragOverEvent{
		ActiveID:   id,
		OverID:     over,
		ActiveRect: m.Drag.Rect(),
		OverRect:   overRect,
	})
	if !moved {
		return
	}

	m.relayout()
	if settled, ok := resolve(); ok {
		m.Drag.SetOver(settled)
	}
}

// drop ends the drag on the last resolved target
func (m Model) drop() tea.Cmd {
	id := m.Drag.ActiveID()
	outcome := m.board.container.DragEnd(id, m.Drag.Over())
	return m.finishDrop(id, outcome)
}

// cancelDrag rolls the board back to where the drag started
func (m Model) cancelDrag() tea.Cmd {
	m.board.container.DragCancel()
	m.Drag.Reset()
	m.clampSelection()
	return m.gestureEnded()
}

// finishDrop resets the gesture, follows the dropped item and saves
// whatever the drop committed.
func (m Model) finishDrop(id types.ID, outcome kanban.Outcome) tea.Cmd {
	m.Drag.Reset()
	m.relayout()

	if _, ok := m.board.container.FindColumn(id); ok {
		m.selectID(id)
	} else {
		m.clampSelection()
	}

	switch outcome {
	case kanban.OutcomeDeleted:
		m.notify(state.LevelInfo, "Deleted card "+m.card(id).DisplayTitle())
	case kanban.OutcomeColumnCreated:
		column, _ := m.board.container.FindColumn(id)
		m.notify(state.LevelInfo, fmt.Sprintf("Created column %s", column))
	}

	var cmds []tea.Cmd
	if outcome.Committed() {
		cmds = append(cmds, m.saveCmd(outcome))
	}
	cmds = append(cmds, m.gestureEnded())
	return tea.Batch(cmds...)
}

// deleteSelectedCard drops the selected card on the trash
func (m Model) deleteSelectedCard() tea.Cmd {
	card, ok := m.selectedCard()
	if !ok {
		return nil
	}
	c := m.board.container
	c.DragStart(card)
	return m.finishDrop(card, c.DragEnd(card, types.TrashID))
}

// moveSelectedCard moves the selected card to the end of a neighbor column
func (m Model) moveSelectedCard(delta int) tea.Cmd {
	card, ok := m.selectedCard()
	if !ok {
		return nil
	}
	c := m.board.container
	columns := c.Columns()
	i := m.UIState.SelectedColumn() + delta
	if i < 0 || i >= len(columns) {
		return nil
	}
	target := columns[i]

	c.DragStart(card)
	c.DragOver(kanban.DragOverEvent{ActiveID: card, OverID: target})
	return m.finishDrop(card, c.DragEnd(card, target))
}

// deleteSelectedColumn removes the selected column when it is empty
func (m Model) deleteSelectedColumn() tea.Cmd {
	column, ok := m.selectedColumn()
	if !ok {
		return nil
	}
	if n := len(m.board.container.Items().Cards(column)); n > 0 {
		m.notify(state.LevelError, fmt.Sprintf("Column %s still holds %d cards", m.column(column).DisplayName(), n))
		return nil
	}
	return m.deleteColumnCmd(column)
}
