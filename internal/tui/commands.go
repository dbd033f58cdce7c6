package tui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/kanban"
	"github.com/thenoetrevino/swimlane/internal/models"
	boardservice "github.com/thenoetrevino/swimlane/internal/services/board"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// frameInterval paces deferred engine work at roughly 60 frames a second
const frameInterval = 16 * time.Millisecond

// Messages produced by the commands below
type (
	// frameMsg flushes the frame scheduler
	frameMsg struct{}

	// eventMsg carries a board event from the app's publisher
	eventMsg events.Event

	// boardChangedMsg reports that the database was written by someone else
	boardChangedMsg struct{}

	boardLoadedMsg struct {
		snapshot *boardservice.Snapshot
	}

	boardSavedMsg struct {
		outcome kanban.Outcome
	}

	cardCreatedMsg struct {
		card   *models.Card
		column types.ColumnID
	}

	columnCreatedMsg struct {
		column *models.Column
	}

	columnDeletedMsg struct {
		id types.ColumnID
	}

	errMsg struct {
		action string
		err    error
	}
)

func (e errMsg) Error() string {
	return fmt.Sprintf("%s: %v", e.action, e.err)
}

// frameTick schedules the next frame
func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// listenEvents waits for the next board event
func listenEvents(ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

// waitForChange waits for the next database change
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return boardChangedMsg{}
	}
}

// saveCmd writes the current board and column order
func (m Model) saveCmd(outcome kanban.Outcome) tea.Cmd {
	items := m.board.container.Items()
	order := m.board.container.Columns()
	svc := m.app.BoardService
	ctx := m.ctx
	return func() tea.Msg {
		if err := svc.SaveBoard(ctx, items, order); err != nil {
			return errMsg{action: "saving board", err: err}
		}
		return boardSavedMsg{outcome: outcome}
	}
}

// loadCmd reads the stored board
func (m Model) loadCmd() tea.Cmd {
	svc := m.app.BoardService
	ctx := m.ctx
	return func() tea.Msg {
		snapshot, err := svc.Load(ctx)
		if err != nil {
			return errMsg{action: "reloading board", err: err}
		}
		return boardLoadedMsg{snapshot: snapshot}
	}
}

// createCardCmd stores a new card at the end of column
func (m Model) createCardCmd(column types.ColumnID, title, description string) tea.Cmd {
	svc := m.app.BoardService
	ctx := m.ctx
	return func() tea.Msg {
		card, err := svc.CreateCard(ctx, boardservice.CreateCardRequest{
			ColumnID:    column,
			Title:       title,
			Description: description,
		})
		if err != nil {
			return errMsg{action: "creating card", err: err}
		}
		return cardCreatedMsg{card: card, column: column}
	}
}

// createColumnCmd stores a new empty column
func (m Model) createColumnCmd(id types.ColumnID, name string) tea.Cmd {
	svc := m.app.BoardService
	ctx := m.ctx
	return func() tea.Msg {
		column, err := svc.CreateColumn(ctx, boardservice.CreateColumnRequest{ID: id, Name: name})
		if err != nil {
			return errMsg{action: "creating column", err: err}
		}
		return columnCreatedMsg{column: column}
	}
}

// deleteColumnCmd removes an empty column from storage
func (m Model) deleteColumnCmd(id types.ColumnID) tea.Cmd {
	svc := m.app.BoardService
	ctx := m.ctx
	return func() tea.Msg {
		if err := svc.DeleteColumn(ctx, id); err != nil {
			return errMsg{action: "deleting column", err: err}
		}
		return columnDeletedMsg{id: id}
	}
}
