package kanban

import (
	"log/slog"

	"github.com/thenoetrevino/swimlane/internal/dnd"
	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/models"
)

// Option is a functional option for configuring a Container
type Option func(*containerConfig)

// containerConfig holds the configuration for Container initialization
type containerConfig struct {
	defaultItems     models.Board
	items            *models.Board
	onItemsChange    func(models.Board)
	onChange         func(models.Board)
	onCardDragEnd    func(CardDragEnd)
	onColumnDragEnd  func(ColumnDragEnd)
	isMoveAllowed    func(MoveRequest) bool
	cancelDrop       func(DropEvent) bool
	coordinateGetter dnd.CoordinateGetter
	orientation      Orientation
	scheduler        dnd.Scheduler
	sensors          *dnd.Sensors
	publisher        events.EventPublisher
	logger           *slog.Logger
}

// WithDefaultItems sets the initial board of an uncontrolled container
func WithDefaultItems(b models.Board) Option {
	return func(cfg *containerConfig) {
		cfg.defaultItems = b
	}
}

// WithItems makes the container controlled: the caller owns the board and
// pushes accepted changes back with SetItems.
func WithItems(b models.Board) Option {
	return func(cfg *containerConfig) {
		cfg.items = &b
	}
}

// WithOnItemsChange sets the callback receiving every new board
func WithOnItemsChange(fn func(models.Board)) Option {
	return func(cfg *containerConfig) {
		cfg.onItemsChange = fn
	}
}

// WithOnChange sets the items change callback.
//
// Deprecated: use WithOnItemsChange. It takes precedence when both are set.
func WithOnChange(fn func(models.Board)) Option {
	return func(cfg *containerConfig) {
		cfg.onChange = fn
	}
}

// WithOnCardDragEnd sets the callback fired when a card drag commits
func WithOnCardDragEnd(fn func(CardDragEnd)) Option {
	return func(cfg *containerConfig) {
		cfg.onCardDragEnd = fn
	}
}

// WithOnColumnDragEnd sets the callback fired when a column drag commits
func WithOnColumnDragEnd(fn func(ColumnDragEnd)) Option {
	return func(cfg *containerConfig) {
		cfg.onColumnDragEnd = fn
	}
}

// WithIsMoveAllowed sets the policy consulted before a cross-column preview
func WithIsMoveAllowed(fn func(MoveRequest) bool) Option {
	return func(cfg *containerConfig) {
		cfg.isMoveAllowed = fn
	}
}

// WithCancelDrop sets the predicate that turns a drop into a cancel
func WithCancelDrop(fn func(DropEvent) bool) Option {
	return func(cfg *containerConfig) {
		cfg.cancelDrop = fn
	}
}

// WithCoordinateGetter sets the keyboard movement function
func WithCoordinateGetter(fn dnd.CoordinateGetter) Option {
	return func(cfg *containerConfig) {
		cfg.coordinateGetter = fn
	}
}

// WithOrientation sets the column layout direction
func WithOrientation(o Orientation) Option {
	return func(cfg *containerConfig) {
		cfg.orientation = o
	}
}

// WithScheduler sets the frame scheduler used for deferred flag clears
func WithScheduler(s dnd.Scheduler) Option {
	return func(cfg *containerConfig) {
		cfg.scheduler = s
	}
}

// WithSensors overrides the default activation constraints
func WithSensors(s dnd.Sensors) Option {
	return func(cfg *containerConfig) {
		cfg.sensors = &s
	}
}

// WithEventPublisher sets the publisher board events are sent to
func WithEventPublisher(p events.EventPublisher) Option {
	return func(cfg *containerConfig) {
		cfg.publisher = p
	}
}

// WithLogger sets the logger for the container
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *containerConfig) {
		cfg.logger = logger
	}
}
