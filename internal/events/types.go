package events

import (
	"time"

	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventItemsChanged  EventType = "items_changed"
	EventCardDragEnd   EventType = "card_drag_end"
	EventColumnDragEnd EventType = "column_drag_end"
	EventDragCancelled EventType = "drag_cancelled"
)

// Event represents a board change notification.
// For column drags only From.Index and To.Index are set.
type Event struct {
	Type       EventType
	Board      models.Board     // Snapshot of the board after the change
	Columns    []types.ColumnID // Column order after the change
	From       models.Position
	To         models.Position
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}

// Handler receives events synchronously on the publisher's goroutine
type Handler func(Event)
