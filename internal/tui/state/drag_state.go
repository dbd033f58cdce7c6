package state

import (
	"github.com/thenoetrevino/swimlane/internal/dnd"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Source is the input device driving a drag
type Source int

const (
	SourceNone Source = iota
	SourcePointer
	SourceKeyboard
)

// DragState tracks the gesture the TUI is feeding into the board container.
// A pointer press first arms a pending drag; it becomes active once the
// pointer sensor's activation distance is covered.
type DragState struct {
	source Source

	// pendingID was pressed but has not moved far enough to start a drag
	pendingID types.ID
	start     dnd.Point

	// grab is where inside the active rect the pointer holds it
	grab dnd.Point

	activeID types.ID
	rect     dnd.Rect

	// overID is the last target the collision strategy resolved
	overID types.ID
}

// NewDragState creates an idle DragState
func NewDragState() *DragState {
	return &DragState{}
}

// Press arms a pointer drag of id, pressed at point p on rect
func (s *DragState) Press(id types.ID, p dnd.Point, rect dnd.Rect) {
	s.Reset()
	s.pendingID = id
	s.start = p
	s.rect = rect
	s.grab = dnd.Point{X: p.X - rect.Left, Y: p.Y - rect.Top}
}

// Pending returns the armed id, if any
func (s *DragState) Pending() (types.ID, bool) {
	return s.pendingID, !s.pendingID.IsZero()
}

// PressPoint returns where the pending drag was pressed
func (s *DragState) PressPoint() dnd.Point {
	return s.start
}

// Activate starts a drag of id from rect
func (s *DragState) Activate(source Source, id types.ID, rect dnd.Rect) {
	s.source = source
	s.pendingID = types.None
	s.activeID = id
	s.rect = rect
	s.overID = types.None
}

// Active reports whether a drag is running
func (s *DragState) Active() bool {
	return !s.activeID.IsZero()
}

// ActiveID returns the dragged id
func (s *DragState) ActiveID() types.ID {
	return s.activeID
}

// Source returns the device driving the active drag
func (s *DragState) Source() Source {
	return s.source
}

// FollowPointer moves the active rect so the grabbed point sits under p
func (s *DragState) FollowPointer(p dnd.Point) dnd.Rect {
	s.rect = s.rect.MoveTo(dnd.Point{X: p.X - s.grab.X, Y: p.Y - s.grab.Y})
	return s.rect
}

// Rect returns the active rect
func (s *DragState) Rect() dnd.Rect {
	return s.rect
}

// SetRect replaces the active rect
func (s *DragState) SetRect(r dnd.Rect) {
	s.rect = r
}

// Over returns the last resolved target
func (s *DragState) Over() types.ID {
	return s.overID
}

// SetOver records the last resolved target
func (s *DragState) SetOver(id types.ID) {
	s.overID = id
}

// Reset returns to idle
func (s *DragState) Reset() {
	*s = DragState{}
}
