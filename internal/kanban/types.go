package kanban

import (
	"github.com/thenoetrevino/swimlane/internal/dnd"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Phase is the drag lifecycle state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDraggingCard
	PhaseDraggingColumn
)

// String returns the phase name used in logs
func (p Phase) String() string {
	switch p {
	case PhaseDraggingCard:
		return "dragging_card"
	case PhaseDraggingColumn:
		return "dragging_column"
	default:
		return "idle"
	}
}

// Outcome reports how a drag end was resolved
type Outcome int

const (
	// OutcomeAborted means the drop could not be resolved and the board is
	// back to where the gesture started
	OutcomeAborted Outcome = iota

	// OutcomeCancelled means the drop was turned into a cancel and rolled back
	OutcomeCancelled

	// OutcomeUnchanged means the card was dropped where it started
	OutcomeUnchanged

	// OutcomeMoved means a card move was committed
	OutcomeMoved

	// OutcomeDeleted means the card was dropped on the trash
	OutcomeDeleted

	// OutcomeColumnCreated means the card was dropped on the placeholder
	OutcomeColumnCreated

	// OutcomeColumnMoved means a column reorder was committed
	OutcomeColumnMoved
)

// String returns the outcome name used in logs and CLI output
func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeMoved:
		return "moved"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeColumnCreated:
		return "column_created"
	case OutcomeColumnMoved:
		return "column_moved"
	default:
		return "aborted"
	}
}

// Committed reports whether the outcome changed the board or column order
func (o Outcome) Committed() bool {
	return o >= OutcomeMoved
}

// Orientation is the direction columns are laid out in
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// SortingStrategy names the list sorting strategy used for column drags
func (o Orientation) SortingStrategy() string {
	if o == Vertical {
		return "vertical-list"
	}
	return "horizontal-list"
}

// CardDragEnd is handed to the card drag end callback on commit
type CardDragEnd struct {
	Items models.Board
	From  models.Position
	To    models.Position
}

// ColumnDragEnd is handed to the column drag end callback on commit
type ColumnDragEnd struct {
	Items models.Board
	From  models.ColumnPosition
	To    models.ColumnPosition
}

// MoveRequest is what the move policy sees before a cross-column preview
type MoveRequest struct {
	Items models.Board
	From  models.Position
	To    models.Target
}

// DropEvent is what the cancel-drop predicate sees at drag end
type DropEvent struct {
	ActiveID types.ID
	OverID   types.ID
}

// DragOverEvent is one drag-over frame.
// ActiveRect is the active element translated by the drag; an empty rect
// means the framework could not measure it.
type DragOverEvent struct {
	ActiveID   types.ID
	OverID     types.ID
	ActiveRect dnd.Rect
	OverRect   dnd.Rect
}

// belowOverItem reports whether the active element has been dragged past the
// bottom edge of the element it is over.
func (e DragOverEvent) belowOverItem() bool {
	if e.ActiveRect.IsEmpty() {
		return false
	}
	return e.ActiveRect.Top > e.OverRect.Top+e.OverRect.Height
}

// DragHandlers is the bundle the drag framework calls into
type DragHandlers struct {
	Start              func(activeID types.ID)
	Over               func(ev DragOverEvent) bool
	End                func(activeID, overID types.ID) Outcome
	Cancel             func()
	CollisionDetection dnd.CollisionDetector
	Activator          dnd.KeyboardActivator
	Sensors            dnd.Sensors
}
