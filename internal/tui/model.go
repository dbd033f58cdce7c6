// Package tui is the interactive terminal board. Mouse and keyboard input is
// turned into drag lifecycle calls on a controlled board container, and every
// committed change is written back through the board service.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/swimlane/internal/app"
	"github.com/thenoetrevino/swimlane/internal/dnd"
	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/kanban"
	"github.com/thenoetrevino/swimlane/internal/models"
	boardservice "github.com/thenoetrevino/swimlane/internal/services/board"
	"github.com/thenoetrevino/swimlane/internal/tui/components"
	"github.com/thenoetrevino/swimlane/internal/tui/layout"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Model represents the application state for the TUI.
// Everything that changes lives behind a pointer so copies of Model made by
// the update loop share it.
type Model struct {
	ctx    context.Context
	app    *app.App
	logger *slog.Logger

	board *boardState

	UIState       *state.UIState
	Drag          *state.DragState
	Forms         *state.FormState
	Notifications *state.NotificationState

	keys keyMap
	help help.Model

	events  <-chan events.Event
	changes <-chan struct{}
}

// boardState is the board container and everything it is drawn from
type boardState struct {
	container *kanban.Container
	frames    *dnd.FrameScheduler
	snapshot  *boardservice.Snapshot
	layout    layout.Layout

	// focusable parts of each card, created on first use
	elements map[types.ID]cardElements

	ticking       bool // a frame tick is scheduled
	reloadPending bool // the database changed during a drag
	lastEvent     string
}

// cardElements are the drag handle of a card and its nested open button
type cardElements struct {
	handle *dnd.Element
	button *dnd.Element
}

// Option is a functional option for configuring a Model
type Option func(*Model)

// WithChanges sets the channel reporting database writes by other processes
func WithChanges(ch <-chan struct{}) Option {
	return func(m *Model) {
		m.changes = ch
	}
}

// WithEvents overrides the board event stream, which defaults to listening
// on the app's publisher.
func WithEvents(ch <-chan events.Event) Option {
	return func(m *Model) {
		m.events = ch
	}
}

// New loads the board and creates the TUI model
func New(ctx context.Context, application *app.App, opts ...Option) (Model, error) {
	snapshot, err := application.BoardService.Load(ctx)
	if err != nil {
		return Model{}, err
	}

	components.InitStyles(application.Config().ColorScheme)

	m := Model{
		ctx:           ctx,
		app:           application,
		logger:        application.Logger().With("component", "tui"),
		board:         &boardState{elements: make(map[types.ID]cardElements)},
		UIState:       state.NewUIState(),
		Drag:          state.NewDragState(),
		Forms:         state.NewFormState(),
		Notifications: state.NewNotificationState(),
		keys:          newKeyMap(application.Config().KeyMappings),
		help:          help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.events == nil {
		m.events = application.Events().Listen(ctx)
	}

	m.installSnapshot(snapshot)
	return m, nil
}

// installSnapshot replaces the board with a freshly loaded one. The
// container is rebuilt so the stored column order is taken as is.
func (m Model) installSnapshot(snapshot *boardservice.Snapshot) {
	b := m.board
	b.snapshot = snapshot
	b.frames = dnd.NewFrameScheduler()

	opts := append(m.app.ContainerOptions(),
		kanban.WithItems(orderedBoard(snapshot)),
		kanban.WithScheduler(b.frames),
		kanban.WithCoordinateGetter(m.coordinates),
		kanban.WithOnItemsChange(func(next models.Board) {
			// Accept every change the engine proposes
			b.container.SetItems(next)
		}),
		kanban.WithOnCardDragEnd(func(end kanban.CardDragEnd) {
			m.logger.Info("card moved",
				"from", end.From.ColumnID, "from_index", end.From.Index,
				"to", end.To.ColumnID, "to_index", end.To.Index)
		}),
		kanban.WithOnColumnDragEnd(func(end kanban.ColumnDragEnd) {
			m.logger.Info("column moved", "from", end.From.Index, "to", end.To.Index)
		}),
	)
	b.container = kanban.New(opts...)

	m.UIState.EnsureSelectionVisible(len(b.container.Columns()))
	m.clampSelection()
	m.relayout()
}

// orderedBoard returns the stored board with its keys in display order
func orderedBoard(snapshot *boardservice.Snapshot) models.Board {
	board := models.NewBoard()
	for _, id := range snapshot.Order() {
		board = board.With(id, snapshot.Board.Cards(id)...)
	}
	for _, id := range snapshot.Board.Keys() {
		if !board.Has(id) {
			board = board.With(id, snapshot.Board.Cards(id)...)
		}
	}
	return board
}

// Init starts listening for board events and database changes
func (m Model) Init() tea.Cmd {
	return tea.Batch(listenEvents(m.events), waitForChange(m.changes))
}

// Container returns the board container driven by the model
func (m Model) Container() *kanban.Container {
	return m.board.container
}

// Layout returns the board as last measured
func (m Model) Layout() layout.Layout {
	return m.board.layout
}

// relayout measures the board for the current terminal size and viewport
func (m Model) relayout() {
	c := m.board.container
	params := layout.Params{
		Orientation: c.Orientation(),
		Top:         1,
		Width:       m.UIState.Width(),
		Height:      m.UIState.ContentHeight(),
	}
	if params.Orientation == kanban.Horizontal {
		params.Offset = m.UIState.ViewportOffset()
		params.Visible = m.UIState.ViewportSize()
	}
	m.board.layout = layout.Compute(c.Items(), c.Columns(), params)
}

// ============================================================================
// Selection
// ============================================================================

// selectedColumn returns the id of the selected column
func (m Model) selectedColumn() (types.ColumnID, bool) {
	columns := m.board.container.Columns()
	i := m.UIState.SelectedColumn()
	if i < 0 || i >= len(columns) {
		return types.None, false
	}
	return columns[i], true
}

// selectedCard returns the id of the selected card
func (m Model) selectedCard() (types.CardID, bool) {
	column, ok := m.selectedColumn()
	if !ok {
		return types.None, false
	}
	cards := m.board.container.Items().Cards(column)
	i := m.UIState.SelectedCard()
	if i < 0 || i >= len(cards) {
		return types.None, false
	}
	return cards[i], true
}

// selectID moves the selection onto a column or card
func (m Model) selectID(id types.ID) {
	c := m.board.container
	column, ok := c.FindColumn(id)
	if !ok {
		return
	}
	for i, col := range c.Columns() {
		if col == column {
			m.UIState.SetSelectedColumn(i)
		}
	}
	if id != column {
		m.UIState.SetSelectedCard(c.GetIndex(id))
	}
	m.UIState.EnsureSelectionVisible(len(c.Columns()))
}

// clampSelection keeps the selection on the board after it changed
func (m Model) clampSelection() {
	columns := m.board.container.Columns()
	m.UIState.EnsureSelectionVisible(len(columns))
	if column, ok := m.selectedColumn(); ok {
		m.UIState.ClampCard(len(m.board.container.Items().Cards(column)))
	}
}

// column returns the details of a column, or a bare one for unknown ids
func (m Model) column(id types.ColumnID) *models.Column {
	if col := m.board.snapshot.Column(id); col != nil {
		return col
	}
	return &models.Column{ID: id}
}

// card returns the details of a card, or a bare one for unknown ids
func (m Model) card(id types.CardID) *models.Card {
	if card := m.board.snapshot.Card(id); card != nil {
		return card
	}
	return &models.Card{ID: id}
}

// elements returns the focusable parts of a card or column header
func (m Model) elements(id types.ID) cardElements {
	if el, ok := m.board.elements[id]; ok {
		return el
	}
	el := cardElements{
		handle: dnd.NewElement("div", "tabindex", "0", "id", id.String()),
		button: dnd.NewElement("button", "id", id.String()+"-open"),
	}
	m.board.elements[id] = el
	return el
}

// notify adds a status notification
func (m Model) notify(level state.NotificationLevel, message string) {
	m.Notifications.Add(level, message)
}
