package dnd

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/swimlane/internal/types"
)

func ptr(p Point) *Point { return &p }

// ============================================================================
// Geometry Tests
// ============================================================================

func TestRect_Geometry(t *testing.T) {
	r := Rect{Left: 2, Top: 4, Width: 10, Height: 6}

	assert.Equal(t, 12.0, r.Right())
	assert.Equal(t, 10.0, r.Bottom())
	assert.Equal(t, Point{X: 7, Y: 7}, r.Center())
	assert.Equal(t, 60.0, r.Area())
	assert.True(t, r.Contains(Point{X: 2, Y: 4}), "edges are inside")
	assert.False(t, r.Contains(Point{X: 13, Y: 5}))
	assert.Equal(t, Rect{Left: 3, Top: 2, Width: 10, Height: 6}, r.Translate(1, -2))
	assert.True(t, Rect{Width: 0, Height: 3}.IsEmpty())
}

func TestRect_Intersection(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Width: 10, Height: 10}

	assert.Equal(t, 25.0, a.Intersection(Rect{Left: 5, Top: 5, Width: 10, Height: 10}))
	assert.Equal(t, 0.0, a.Intersection(Rect{Left: 10, Top: 0, Width: 5, Height: 5}), "touching edges do not overlap")
	assert.Equal(t, 0.0, a.Intersection(Rect{Left: 20, Top: 20, Width: 5, Height: 5}))
}

// ============================================================================
// Collision Primitive Tests
// ============================================================================

func columnsFixture() []Droppable {
	return []Droppable{
		{ID: "A", Rect: Rect{Left: 0, Top: 0, Width: 20, Height: 40}},
		{ID: "B", Rect: Rect{Left: 30, Top: 0, Width: 20, Height: 40}},
		{ID: "C", Rect: Rect{Left: 60, Top: 0, Width: 20, Height: 40}},
	}
}

func TestClosestCenter_OrdersByDistance(t *testing.T) {
	args := CollisionArgs{
		Active:     "x",
		ActiveRect: Rect{Left: 52, Top: 0, Width: 20, Height: 40},
		Droppables: columnsFixture(),
	}

	got := ClosestCenter(args)

	require.Len(t, got, 3)
	assert.Equal(t, types.ID("C"), got[0].ID)
	assert.Equal(t, types.ID("B"), got[1].ID)
	assert.Equal(t, types.ID("A"), got[2].ID)
}

func TestClosestCenter_SkipsDisabled(t *testing.T) {
	droppables := columnsFixture()
	droppables[2].Disabled = true

	got := ClosestCenter(CollisionArgs{ActiveRect: Rect{Left: 60, Width: 20, Height: 40}, Droppables: droppables})

	id, ok := FirstCollision(got)
	require.True(t, ok)
	assert.Equal(t, types.ID("B"), id)
}

func TestPointerWithin(t *testing.T) {
	droppables := append(columnsFixture(), Droppable{ID: "card", Rect: Rect{Left: 30, Top: 0, Width: 20, Height: 5}})

	got := PointerWithin(CollisionArgs{Droppables: droppables, Pointer: ptr(Point{X: 35, Y: 2})})

	require.Len(t, got, 2)
	assert.Equal(t, types.ID("card"), got[0].ID, "smaller rect has nearer corners")
	assert.Equal(t, types.ID("B"), got[1].ID)
}

// TestPointerWithin_NoPointer covers keyboard drags.
// Edge case: without a pointer nothing can be under it.
func TestPointerWithin_NoPointer(t *testing.T) {
	got := PointerWithin(CollisionArgs{Droppables: columnsFixture()})
	assert.Empty(t, got)
}

func TestRectIntersection(t *testing.T) {
	args := CollisionArgs{
		ActiveRect: Rect{Left: 15, Top: 0, Width: 20, Height: 40},
		Droppables: columnsFixture(),
	}

	got := RectIntersection(args)

	require.Len(t, got, 2)
	assert.Equal(t, types.ID("A"), got[0].ID, "A overlaps 5 wide, B overlaps 5 wide; stable order keeps A first")
	assert.InDelta(t, 200.0/(800+800-200), got[0].Value, 1e-9)

	args.ActiveRect = Rect{Left: 25, Top: 0, Width: 20, Height: 40}
	got = RectIntersection(args)
	require.Len(t, got, 1)
	assert.Equal(t, types.ID("B"), got[0].ID)
}

func TestFirstCollision_Empty(t *testing.T) {
	id, ok := FirstCollision(nil)
	assert.False(t, ok)
	assert.True(t, id.IsZero())
}

func TestCollisionArgs_Filter(t *testing.T) {
	args := CollisionArgs{Droppables: columnsFixture()}

	filtered := args.Filter(func(d Droppable) bool { return d.ID != "B" })

	assert.Len(t, filtered.Droppables, 2)
	assert.Len(t, args.Droppables, 3, "receiver must be untouched")
}

// ============================================================================
// Keyboard Activation Filter Tests
// ============================================================================

func TestParseSelector(t *testing.T) {
	sel, err := ParseSelector(FocusableSelectors)
	require.NoError(t, err)

	tests := []struct {
		name string
		el   *Element
		want bool
	}{
		{"button", NewElement("button"), true},
		{"upper case tag", NewElement("INPUT"), true},
		{"link", NewElement("a"), true},
		{"tabindex attribute", NewElement("div", "tabindex", "0"), true},
		{"plain div", NewElement("div"), false},
		{"nil element", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sel.Matches(tt.el))
		})
	}
}

func TestParseSelector_Invalid(t *testing.T) {
	for _, s := range []string{"", "a,,b", "div.card", "[]", "#id"} {
		_, err := ParseSelector(s)
		assert.True(t, errors.Is(err, ErrInvalidSelector), "ParseSelector(%q) = %v", s, err)
	}
}

// TestKeyboardActivator_NestedControl ensures a keydown on a nested focusable
// control never starts a drag.
// Edge case: the handle itself is focusable (tabindex) and must still work.
func TestKeyboardActivator_NestedControl(t *testing.T) {
	started := 0
	activator := NewKeyboardActivator(func(KeyEvent) bool {
		started++
		return true
	})

	handle := NewElement("div", "tabindex", "0", "role", "button")
	nested := NewElement("button")
	label := NewElement("span")

	assert.False(t, activator.Activate(KeyEvent{Key: "space", Target: nested, CurrentTarget: handle}))
	assert.False(t, activator.Activate(KeyEvent{Key: "enter", Target: nested, CurrentTarget: handle}))
	assert.Equal(t, 0, started)

	assert.True(t, activator.Activate(KeyEvent{Key: "space", Target: handle, CurrentTarget: handle}))
	assert.True(t, activator.Activate(KeyEvent{Key: "enter", Target: label, CurrentTarget: handle}))
	assert.Equal(t, 2, started)

	assert.False(t, activator.Activate(KeyEvent{Key: "x", Target: handle, CurrentTarget: handle}))
	assert.Equal(t, 2, started)
}

// ============================================================================
// Sensor Tests
// ============================================================================

func TestPointerSensor(t *testing.T) {
	s := PointerSensor{Distance: DefaultPointerDistance}

	assert.False(t, s.Activated(Point{X: 0, Y: 0}, Point{X: 3, Y: 3}))
	assert.True(t, s.Activated(Point{X: 0, Y: 0}, Point{X: 3, Y: 4}))
}

func TestTouchSensor(t *testing.T) {
	s := TouchSensor{Delay: DefaultTouchDelay, Tolerance: DefaultTouchTolerance}
	start := Point{X: 10, Y: 10}

	assert.Equal(t, TouchPending, s.Evaluate(start, Point{X: 12, Y: 10}, 100*time.Millisecond))
	assert.Equal(t, TouchActivated, s.Evaluate(start, Point{X: 12, Y: 10}, 250*time.Millisecond))
	assert.Equal(t, TouchAborted, s.Evaluate(start, Point{X: 20, Y: 10}, 100*time.Millisecond))
}

func TestNearestDroppableCoordinates(t *testing.T) {
	ctx := CoordinateContext{
		Active:     "B",
		ActiveRect: Rect{Left: 30, Top: 0, Width: 20, Height: 40},
		Droppables: columnsFixture(),
	}

	next, ok := NearestDroppableCoordinates(KeyEvent{Key: KeyRight}, ctx)
	require.True(t, ok)
	assert.Equal(t, Point{X: 60, Y: 0}, next)

	next, ok = NearestDroppableCoordinates(KeyEvent{Key: KeyLeft}, ctx)
	require.True(t, ok)
	assert.Equal(t, Point{X: 0, Y: 0}, next)

	_, ok = NearestDroppableCoordinates(KeyEvent{Key: KeyUp}, ctx)
	assert.False(t, ok, "nothing above")

	_, ok = NearestDroppableCoordinates(KeyEvent{Key: "space"}, ctx)
	assert.False(t, ok)
}

func TestKeyboardSensor_CustomGetter(t *testing.T) {
	s := KeyboardSensor{CoordinateGetter: func(ev KeyEvent, ctx CoordinateContext) (Point, bool) {
		return Point{X: ctx.ActiveRect.Left + 1, Y: ctx.ActiveRect.Top}, true
	}}

	rect, ok := s.Move(KeyEvent{Key: KeyRight}, CoordinateContext{ActiveRect: Rect{Left: 1, Width: 2, Height: 2}})

	require.True(t, ok)
	assert.Equal(t, Rect{Left: 2, Width: 2, Height: 2}, rect)
}

// ============================================================================
// Scheduler Tests
// ============================================================================

func TestFrameScheduler(t *testing.T) {
	s := NewFrameScheduler()
	ran := 0

	s.Schedule(func() {
		ran++
		s.Schedule(func() { ran += 10 })
	})
	s.Schedule(nil)

	assert.Equal(t, 1, s.Pending())
	assert.Equal(t, 1, s.Flush())
	assert.Equal(t, 1, ran, "callbacks scheduled during a flush wait a frame")
	assert.Equal(t, 1, s.Flush())
	assert.Equal(t, 11, ran)
	assert.Equal(t, 0, s.Flush())
}
