package app

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/swimlane/internal/dnd"
	"github.com/thenoetrevino/swimlane/internal/kanban"
	"github.com/thenoetrevino/swimlane/internal/models"
	boardservice "github.com/thenoetrevino/swimlane/internal/services/board"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Session is a stored board loaded into a board container. Gestures run
// through the container exactly as a drag would, and whatever they commit is
// written back through the board service.
type Session struct {
	app       *App
	snapshot  *boardservice.Snapshot
	container *kanban.Container
	frames    *dnd.FrameScheduler
}

// OpenSession loads the board and wraps it in an uncontrolled container.
// Extra options are applied after the app's own.
func (a *App) OpenSession(ctx context.Context, opts ...kanban.Option) (*Session, error) {
	snapshot, err := a.BoardService.Load(ctx)
	if err != nil {
		return nil, err
	}

	frames := dnd.NewFrameScheduler()
	all := append(a.ContainerOptions(),
		kanban.WithDefaultItems(snapshot.Board),
		kanban.WithScheduler(frames),
	)
	all = append(all, opts...)

	return &Session{
		app:       a,
		snapshot:  snapshot,
		container: kanban.New(all...),
		frames:    frames,
	}, nil
}

// Container returns the session's board container
func (s *Session) Container() *kanban.Container {
	return s.container
}

// Snapshot returns the details loaded with the board
func (s *Session) Snapshot() *boardservice.Snapshot {
	return s.snapshot
}

// Board returns the current board
func (s *Session) Board() models.Board {
	return s.container.Items()
}

// Drop drags activeID onto overID: start, one drag-over frame for cards, then
// the drop. Committed outcomes are saved. The outcome is returned even when
// nothing changed.
func (s *Session) Drop(ctx context.Context, activeID, overID types.ID) (kanban.Outcome, error) {
	c := s.container
	if _, ok := c.FindColumn(activeID); !ok {
		return kanban.OutcomeAborted, fmt.Errorf("%w: %s", ErrUnknownID, activeID)
	}
	if _, ok := c.FindColumn(overID); !ok && !overID.IsSentinel() {
		return kanban.OutcomeAborted, fmt.Errorf("%w: %s", ErrUnknownID, overID)
	}

	c.DragStart(activeID)
	if !c.IsSortingColumn() {
		c.DragOver(kanban.DragOverEvent{ActiveID: activeID, OverID: overID})
		s.frames.Flush()
	}
	outcome := c.DragEnd(activeID, overID)
	s.frames.Flush()

	if !outcome.Committed() {
		return outcome, nil
	}
	if err := s.Save(ctx); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// Save writes the current board and column order
func (s *Session) Save(ctx context.Context) error {
	return s.app.BoardService.SaveBoard(ctx, s.container.Items(), s.container.Columns())
}

// AddColumn appends a column to the board. An empty id picks the next one.
func (s *Session) AddColumn(ctx context.Context, id types.ColumnID, name string) (*models.Column, error) {
	if id.IsZero() {
		id = s.container.NextColumnID()
	}
	column, err := s.app.BoardService.CreateColumn(ctx, boardservice.CreateColumnRequest{ID: id, Name: name})
	if err != nil {
		return nil, err
	}
	if _, err := s.container.AddColumn(id); err != nil {
		return nil, err
	}
	return column, nil
}

// RemoveColumn deletes an empty column
func (s *Session) RemoveColumn(ctx context.Context, id types.ColumnID) error {
	if err := s.app.BoardService.DeleteColumn(ctx, id); err != nil {
		return err
	}
	if err := s.container.RemoveColumn(id); err != nil {
		return err
	}
	s.frames.Flush()
	return nil
}
