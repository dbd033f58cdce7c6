package tui

import (
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/kanban"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UIState.SetWidth(msg.Width)
		m.UIState.SetHeight(msg.Height)
		m.help.SetWidth(msg.Width)
		m.clampSelection()

	case frameMsg:
		m.board.ticking = false
		m.board.frames.Flush()

	case eventMsg:
		m.handleEvent(events.Event(msg))
		cmd = listenEvents(m.events)

	case boardChangedMsg:
		cmd = tea.Batch(m.handleExternalChange(), waitForChange(m.changes))

	case boardLoadedMsg:
		if m.board.container.Phase() != kanban.PhaseIdle {
			m.board.reloadPending = true
			break
		}
		m.installSnapshot(msg.snapshot)

	case boardSavedMsg:
		if msg.outcome == kanban.OutcomeColumnCreated {
			// pick up the stored details of the new column
			cmd = m.loadCmd()
		}

	case cardCreatedMsg:
		m.handleCardCreated(msg)

	case columnCreatedMsg:
		m.handleColumnCreated(msg)

	case columnDeletedMsg:
		m.handleColumnDeleted(msg)

	case errMsg:
		m.logger.Error(msg.action, "error", msg.err)
		m.notify(state.LevelError, msg.Error())

	case tea.KeyPressMsg:
		cmd = m.handleKey(msg)

	case tea.MouseClickMsg:
		if m.UIState.Mode() == state.NormalMode {
			cmd = m.handleMouseClick(msg)
		}

	case tea.MouseMotionMsg:
		if m.UIState.Mode() == state.NormalMode {
			m.handleMouseMotion(msg)
		}

	case tea.MouseReleaseMsg:
		if m.UIState.Mode() == state.NormalMode {
			cmd = m.handleMouseRelease(msg)
		}

	default:
		// Forms get their own internal messages
		cmd = m.updateForm(msg)
	}

	m.relayout()
	return m, tea.Batch(cmd, m.scheduleFrame())
}

// handleKey dispatches a key press by mode
func (m Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch m.UIState.Mode() {
	case state.CardFormMode, state.ColumnFormMode:
		return m.updateForm(msg)
	case state.HelpMode:
		m.UIState.SetMode(state.NormalMode)
		return nil
	}

	if m.Drag.Active() {
		return m.handleDragKey(msg)
	}
	return m.handleNormalKey(msg)
}

// scheduleFrame ticks until the frame scheduler has drained
func (m Model) scheduleFrame() tea.Cmd {
	if m.board.ticking || m.board.frames.Pending() == 0 {
		return nil
	}
	m.board.ticking = true
	return frameTick()
}

// handleEvent records the latest board event for the status bar
func (m Model) handleEvent(ev events.Event) {
	m.board.lastEvent = fmt.Sprintf("%s #%d", ev.Type, ev.SequenceID)
}

// handleExternalChange reloads the board unless a gesture is running
func (m Model) handleExternalChange() tea.Cmd {
	if m.Drag.Active() || m.board.container.Phase() != kanban.PhaseIdle {
		m.board.reloadPending = true
		return nil
	}
	return m.loadCmd()
}

// gestureEnded runs a reload deferred while a drag was active
func (m Model) gestureEnded() tea.Cmd {
	if !m.board.reloadPending {
		return nil
	}
	m.board.reloadPending = false
	return m.loadCmd()
}

func (m Model) handleCardCreated(msg cardCreatedMsg) {
	b := m.board
	if b.snapshot.Cards == nil {
		b.snapshot.Cards = make(map[types.CardID]*models.Card)
	}
	b.snapshot.Cards[msg.card.ID] = msg.card

	items := b.container.Items()
	b.container.SetItems(items.With(msg.column, append(items.Cards(msg.column), msg.card.ID)...))

	m.selectID(msg.card.ID)
	m.notify(state.LevelInfo, "Created card "+msg.card.DisplayTitle())
}

func (m Model) handleColumnCreated(msg columnCreatedMsg) {
	b := m.board
	if _, err := b.container.AddColumn(msg.column.ID); err != nil {
		m.notify(state.LevelError, err.Error())
		return
	}
	b.snapshot.Columns = append(b.snapshot.Columns, msg.column)

	m.selectID(msg.column.ID)
	m.notify(state.LevelInfo, "Created column "+msg.column.DisplayName())
}

func (m Model) handleColumnDeleted(msg columnDeletedMsg) {
	b := m.board
	name := m.column(msg.id).DisplayName()
	if err := b.container.RemoveColumn(msg.id); err != nil {
		m.notify(state.LevelError, err.Error())
		return
	}
	b.snapshot.Columns = slices.DeleteFunc(slices.Clone(b.snapshot.Columns), func(c *models.Column) bool {
		return c.ID == msg.id
	})

	m.clampSelection()
	m.notify(state.LevelInfo, "Deleted column "+name)
}
