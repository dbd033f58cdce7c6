// Package kanban is the board state engine: it owns the column to card
// assignment and turns drag lifecycle calls from a drag framework into board
// mutations, commit callbacks and change events.
//
// A Container is not safe for concurrent use. Drive it from one goroutine,
// such as a bubbletea update loop.
package kanban

import (
	"log/slog"
	"slices"

	"github.com/thenoetrevino/swimlane/internal/dnd"
	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Container orchestrates the board, its column order and the drag lifecycle
type Container struct {
	state

	// Transient collision caches, not part of committed state
	lastOver      types.ID
	recentlyMoved bool

	controlled      bool
	onItemsChange   func(models.Board)
	onCardDragEnd   func(CardDragEnd)
	onColumnDragEnd func(ColumnDragEnd)
	isMoveAllowed   func(MoveRequest) bool
	cancelDrop      func(DropEvent) bool
	orientation     Orientation
	sensors         dnd.Sensors
	scheduler       dnd.Scheduler
	ownFrames       *dnd.FrameScheduler // flushed by the lifecycle when no scheduler is set
	publisher       events.EventPublisher
	logger          *slog.Logger
}

// New creates a container. Without WithItems the container owns its board,
// starting from WithDefaultItems (empty by default).
func New(opts ...Option) *Container {
	cfg := &containerConfig{
		defaultItems: models.NewBoard(),
		orientation:  Horizontal,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Container{
		onItemsChange:   cfg.onItemsChange,
		onCardDragEnd:   cfg.onCardDragEnd,
		onColumnDragEnd: cfg.onColumnDragEnd,
		isMoveAllowed:   cfg.isMoveAllowed,
		cancelDrop:      cfg.cancelDrop,
		orientation:     cfg.orientation,
		scheduler:       cfg.scheduler,
		publisher:       cfg.publisher,
		logger:          cfg.logger,
	}

	if c.onItemsChange == nil {
		c.onItemsChange = cfg.onChange
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.scheduler == nil {
		c.ownFrames = dnd.NewFrameScheduler()
		c.scheduler = c.ownFrames
	}
	if c.publisher == nil {
		c.publisher = events.NewBus()
	}
	if cfg.sensors != nil {
		c.sensors = *cfg.sensors
	} else {
		c.sensors = dnd.DefaultSensors(cfg.coordinateGetter)
	}
	if cfg.coordinateGetter != nil {
		c.sensors.Keyboard.CoordinateGetter = cfg.coordinateGetter
	}

	items := cfg.defaultItems
	if cfg.items != nil {
		c.controlled = true
		items = *cfg.items
	}
	c.items = items.Clone()
	c.columns = items.Keys()

	return c
}

// Items returns a copy of the current board
func (c *Container) Items() models.Board {
	return c.items.Clone()
}

// Columns returns the column order
func (c *Container) Columns() []types.ColumnID {
	return slices.Clone(c.columns)
}

// ActiveID returns the id being dragged, or types.None
func (c *Container) ActiveID() types.ID {
	return c.activeID
}

// Phase returns the drag lifecycle state
func (c *Container) Phase() Phase {
	return c.phase
}

// IsSortingColumn reports whether the active drag is a column drag
func (c *Container) IsSortingColumn() bool {
	return !c.activeID.IsZero() && slices.Contains(c.columns, c.activeID)
}

// IsOverColumn reports whether the current drag hovers column, either the
// column itself during a card drag or one of its cards.
func (c *Container) IsOverColumn(column types.ColumnID) bool {
	if c.overID.IsZero() {
		return false
	}
	if c.overID == column && !c.IsSortingColumn() {
		return true
	}
	return slices.Contains(c.items.Cards(column), c.overID)
}

// IsControlled reports whether the caller owns the board
func (c *Container) IsControlled() bool {
	return c.controlled
}

// Orientation returns the column layout direction
func (c *Container) Orientation() Orientation {
	return c.orientation
}

// Sensors returns the configured input sensors
func (c *Container) Sensors() dnd.Sensors {
	return c.sensors
}

// Scheduler returns the frame scheduler deferred work is queued on
func (c *Container) Scheduler() dnd.Scheduler {
	return c.scheduler
}

// SetItems replaces the board, e.g. a controlled value pushed back by the
// caller or a reload from storage. The column order is re-synchronized with
// the new board; no items-changed notification is sent.
func (c *Container) SetItems(b models.Board) {
	c.items = b.Clone()
	c.columns = syncColumns(c.columns, c.items)
	c.scheduleFrame()
}

// Subscribe registers fn for board events and returns a function removing it
func (c *Container) Subscribe(fn events.Handler) func() {
	return c.publisher.Subscribe(fn)
}

// Handlers returns the lifecycle bundle for the drag framework
func (c *Container) Handlers() DragHandlers {
	activator := c.sensors.Keyboard.Activator
	if len(activator.Keys) == 0 {
		activator = dnd.NewKeyboardActivator(activator.Handler)
	}
	return DragHandlers{
		Start:              c.DragStart,
		Over:               c.DragOver,
		End:                c.DragEnd,
		Cancel:             c.DragCancel,
		CollisionDetection: c.CollisionDetection,
		Activator:          activator,
		Sensors:            c.sensors,
	}
}
