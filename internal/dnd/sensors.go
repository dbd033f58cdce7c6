package dnd

import (
	"math"
	"time"

	"github.com/thenoetrevino/swimlane/internal/types"
)

// Default activation constraints
const (
	DefaultPointerDistance = 5
	DefaultTouchDelay      = 250 * time.Millisecond
	DefaultTouchTolerance  = 5
)

// Arrow keys understood by the default coordinate getter
const (
	KeyUp    = "up"
	KeyDown  = "down"
	KeyLeft  = "left"
	KeyRight = "right"
)

// PointerSensor activates a mouse drag once the pointer has travelled
// Distance units from where it was pressed.
type PointerSensor struct {
	Distance float64
}

// Activated reports whether moving from start to current starts the drag
func (s PointerSensor) Activated(start, current Point) bool {
	return start.Distance(current) >= s.Distance
}

// TouchState is the outcome of evaluating a touch press
type TouchState int

const (
	// TouchPending means keep waiting for the delay to elapse
	TouchPending TouchState = iota

	// TouchActivated means the long press completed within tolerance
	TouchActivated

	// TouchAborted means the finger moved too far before the delay elapsed
	TouchAborted
)

// TouchSensor activates a drag after a long press of Delay, aborting if the
// touch moves more than Tolerance before then.
type TouchSensor struct {
	Delay     time.Duration
	Tolerance float64
}

// Evaluate classifies a touch that started at start, is now at current and
// has been held for held.
func (s TouchSensor) Evaluate(start, current Point, held time.Duration) TouchState {
	if start.Distance(current) > s.Tolerance {
		return TouchAborted
	}
	if held >= s.Delay {
		return TouchActivated
	}
	return TouchPending
}

// CoordinateContext is what a coordinate getter sees for one keyboard step
type CoordinateContext struct {
	Active     types.ID
	ActiveRect Rect
	Droppables []Droppable
}

// CoordinateGetter maps an arrow key to the next top-left position of the
// active rectangle during a keyboard drag. ok is false when the key does
// not move the drag.
type CoordinateGetter func(ev KeyEvent, ctx CoordinateContext) (next Point, ok bool)

// KeyboardSensor drives drags from the keyboard
type KeyboardSensor struct {
	Activator        KeyboardActivator
	CoordinateGetter CoordinateGetter
}

// Move computes the next active rectangle for an arrow key
func (s KeyboardSensor) Move(ev KeyEvent, ctx CoordinateContext) (Rect, bool) {
	getter := s.CoordinateGetter
	if getter == nil {
		getter = NearestDroppableCoordinates
	}
	next, ok := getter(ev, ctx)
	if !ok {
		return ctx.ActiveRect, false
	}
	return ctx.ActiveRect.MoveTo(next), true
}

// Sensors bundles the input sensors the board accepts
type Sensors struct {
	Pointer  PointerSensor
	Touch    TouchSensor
	Keyboard KeyboardSensor
}

// DefaultSensors returns the stock activation constraints
func DefaultSensors(getter CoordinateGetter) Sensors {
	if getter == nil {
		getter = NearestDroppableCoordinates
	}
	return Sensors{
		Pointer:  PointerSensor{Distance: DefaultPointerDistance},
		Touch:    TouchSensor{Delay: DefaultTouchDelay, Tolerance: DefaultTouchTolerance},
		Keyboard: KeyboardSensor{Activator: NewKeyboardActivator(nil), CoordinateGetter: getter},
	}
}

// NearestDroppableCoordinates moves the active rectangle onto the nearest
// droppable lying in the arrow key's direction. Droppables are compared by
// center distance; the active id itself is skipped.
func NearestDroppableCoordinates(ev KeyEvent, ctx CoordinateContext) (Point, bool) {
	from := ctx.ActiveRect.Center()

	ahead := func(c Point) bool {
		switch ev.Key {
		case KeyUp:
			return c.Y < from.Y
		case KeyDown:
			return c.Y > from.Y
		case KeyLeft:
			return c.X < from.X
		case KeyRight:
			return c.X > from.X
		}
		return false
	}

	best := math.Inf(1)
	var target *Droppable
	for i := range ctx.Droppables {
		d := &ctx.Droppables[i]
		if d.Disabled || d.ID == ctx.Active {
			continue
		}
		c := d.Rect.Center()
		if !ahead(c) {
			continue
		}
		if dist := from.Distance(c); dist < best {
			best = dist
			target = d
		}
	}

	if target == nil {
		return Point{}, false
	}
	return target.Rect.Origin(), true
}
