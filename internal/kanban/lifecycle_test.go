package kanban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/swimlane/internal/dnd"
	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// recorder collects every callback and event a container emits
type recorder struct {
	items      []models.Board
	cardEnds   []CardDragEnd
	columnEnds []ColumnDragEnd
	events     []events.Event
}

func newRecorded(t *testing.T, b models.Board, opts ...Option) (*Container, *recorder, *dnd.FrameScheduler) {
	t.Helper()
	rec := &recorder{}
	frames := dnd.NewFrameScheduler()
	base := []Option{
		WithDefaultItems(b),
		WithScheduler(frames),
		WithOnItemsChange(func(b models.Board) { rec.items = append(rec.items, b) }),
		WithOnCardDragEnd(func(e CardDragEnd) { rec.cardEnds = append(rec.cardEnds, e) }),
		WithOnColumnDragEnd(func(e ColumnDragEnd) { rec.columnEnds = append(rec.columnEnds, e) }),
	}
	c := New(append(base, opts...)...)
	c.Subscribe(func(e events.Event) { rec.events = append(rec.events, e) })
	return c, rec, frames
}

func (r *recorder) count(t events.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// cardRect is a 10x3 card at row in a column starting at x
func cardRect(x, row float64) dnd.Rect {
	return dnd.Rect{Left: x, Top: 1 + row*3, Width: 10, Height: 3}
}

// ============================================================================
// Drag Start / Cancel Tests
// ============================================================================

func TestDragStart_RecordsGesture(t *testing.T) {
	c, rec, _ := newRecorded(t, boardAB())

	c.DragStart("2")

	assert.Equal(t, types.ID("2"), c.ActiveID())
	assert.Equal(t, PhaseDraggingCard, c.Phase())
	assert.False(t, c.IsSortingColumn())
	require.NotNil(t, c.initial)
	assert.Equal(t, models.Position{ColumnID: "A", Index: 1}, *c.initial)
	require.NotNil(t, c.snapshot)
	assert.True(t, c.snapshot.Equal(boardAB()))
	assert.Empty(t, rec.items, "start does not change the board")
}

func TestDragStart_Column(t *testing.T) {
	c, _, _ := newRecorded(t, boardAB())

	c.DragStart("B")

	assert.Equal(t, PhaseDraggingColumn, c.Phase())
	assert.True(t, c.IsSortingColumn())
}

// TestDragCancel_RoundTrip starts and cancels with nothing in between.
func TestDragCancel_RoundTrip(t *testing.T) {
	c, rec, _ := newRecorded(t, boardAB())
	columns := c.Columns()

	c.DragStart("1")
	c.DragCancel()

	assert.True(t, c.Items().Equal(boardAB()))
	assert.Equal(t, columns, c.Columns())
	assert.True(t, c.ActiveID().IsZero())
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Nil(t, c.snapshot)
	assert.Empty(t, rec.items, "restoring an unchanged board is not a mutation")
	assert.Equal(t, 1, rec.count(events.EventDragCancelled))
}

// TestDragCancel_RestoresAfterPreviews ensures cancel undoes any number of
// drag-over previews bit for bit.
func TestDragCancel_RestoresAfterPreviews(t *testing.T) {
	before := models.NewBoard().With("A", "1", "2").With("B", "3").With("C", "4", "5")
	c, rec, frames := newRecorded(t, before)

	c.DragStart("1")
	assert.True(t, c.DragOver(DragOverEvent{ActiveID: "1", OverID: "3"}))
	frames.Flush()
	assert.True(t, c.DragOver(DragOverEvent{ActiveID: "1", OverID: "C"}))
	frames.Flush()
	assert.True(t, c.DragOver(DragOverEvent{ActiveID: "1", OverID: "3"}))
	require.NoError(t, c.Items().Validate())

	c.DragCancel()

	assert.True(t, c.Items().Equal(before), "got %s, want %s", c.Items(), before)
	assert.Len(t, rec.items, 4, "three previews and one rollback")
	assert.True(t, rec.items[3].Equal(before))
	assert.Empty(t, rec.cardEnds)

	// Idempotent: a second cancel changes nothing
	c.DragCancel()
	assert.True(t, c.Items().Equal(before))
	assert.Len(t, rec.items, 4)
	assert.Equal(t, 1, rec.count(events.EventDragCancelled))
}

// ============================================================================
// Drag Over Tests
// ============================================================================

func TestDragOver_CrossColumnHeuristic(t *testing.T) {
	tests := []struct {
		name       string
		activeRect dnd.Rect
		want       []types.CardID
	}{
		{
			name:       "above over item inserts before",
			activeRect: cardRect(20, 0),
			want:       []types.CardID{"1", "3"},
		},
		{
			name:       "below over item inserts after",
			activeRect: cardRect(20, 2),
			want:       []types.CardID{"3", "1"},
		},
		{
			name:       "unmeasured active rect inserts before",
			activeRect: dnd.Rect{},
			want:       []types.CardID{"1", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec, _ := newRecorded(t, boardAB())

			c.DragStart("1")
			moved := c.DragOver(DragOverEvent{
				ActiveID:   "1",
				OverID:     "3",
				ActiveRect: tt.activeRect,
				OverRect:   cardRect(20, 0),
			})

			require.True(t, moved)
			items := c.Items()
			assert.Equal(t, []types.CardID{"2"}, items.Cards("A"))
			assert.Equal(t, tt.want, items.Cards("B"))
			assert.NoError(t, items.Validate())
			assert.True(t, c.recentlyMoved)
			require.Len(t, rec.items, 1, "exactly one notification per mutation")
			assert.Equal(t, 1, rec.count(events.EventItemsChanged))
			assert.Empty(t, rec.cardEnds, "previews never fire commit callbacks")
		})
	}
}

func TestDragOver_OverColumnAppends(t *testing.T) {
	c, _, _ := newRecorded(t, boardAB())

	c.DragStart("1")
	c.DragOver(DragOverEvent{ActiveID: "1", OverID: "B"})

	assert.Equal(t, []types.CardID{"3", "1"}, c.Items().Cards("B"))
	assert.True(t, c.IsOverColumn("B"))
	assert.False(t, c.IsOverColumn("A"))
}

func TestDragOver_NoOps(t *testing.T) {
	tests := []struct {
		name string
		ev   DragOverEvent
	}{
		{"no over id", DragOverEvent{ActiveID: "1"}},
		{"over trash", DragOverEvent{ActiveID: "1", OverID: types.TrashID}},
		{"column drag", DragOverEvent{ActiveID: "A", OverID: "3"}},
		{"same column", DragOverEvent{ActiveID: "1", OverID: "2"}},
		{"same column container", DragOverEvent{ActiveID: "1", OverID: "A"}},
		{"unknown over", DragOverEvent{ActiveID: "1", OverID: "ghost"}},
		{"unknown active", DragOverEvent{ActiveID: "ghost", OverID: "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec, _ := newRecorded(t, boardAB())
			c.DragStart(tt.ev.ActiveID)

			assert.False(t, c.DragOver(tt.ev))
			assert.True(t, c.Items().Equal(boardAB()))
			assert.Empty(t, rec.items)
		})
	}
}

// TestDragOver_VetoRepeated ensures a vetoed move never changes the board,
// however often the frame repeats.
func TestDragOver_VetoRepeated(t *testing.T) {
	var requests []MoveRequest
	c, rec, _ := newRecorded(t, boardAB(), WithIsMoveAllowed(func(r MoveRequest) bool {
		requests = append(requests, r)
		return r.To.ColumnID != "B"
	}))

	c.DragStart("1")
	for i := 0; i < 5; i++ {
		assert.False(t, c.DragOver(DragOverEvent{ActiveID: "1", OverID: "3"}))
		assert.False(t, c.DragOver(DragOverEvent{ActiveID: "1", OverID: "B"}))
	}

	assert.True(t, c.Items().Equal(boardAB()))
	assert.Empty(t, rec.items)
	require.Len(t, requests, 10)
	assert.Equal(t, models.Position{ColumnID: "A", Index: 0}, requests[0].From)
	assert.Equal(t, types.ColumnID("B"), requests[0].To.ColumnID)

	assert.Equal(t, OutcomeAborted, c.DragEnd("1", "3"), "a drop in a vetoed column does not move the card")
	assert.True(t, c.Items().Equal(boardAB()))
	assert.Empty(t, rec.cardEnds)
}

// TestDragOver_FlagClearedNextFrame covers the deferred clear of the
// cross-column flag.
func TestDragOver_FlagClearedNextFrame(t *testing.T) {
	c, _, frames := newRecorded(t, boardAB())

	c.DragStart("1")
	c.DragOver(DragOverEvent{ActiveID: "1", OverID: "3"})
	assert.True(t, c.recentlyMoved)

	frames.Flush()
	assert.False(t, c.recentlyMoved)
}

// TestDragOver_RecordsTargetWithoutNotifying covers a hover that moves
// nothing: the target is tracked but observers hear nothing.
func TestDragOver_RecordsTargetWithoutNotifying(t *testing.T) {
	c, rec, _ := newRecorded(t, boardAB())

	c.DragStart("1")
	assert.False(t, c.DragOver(DragOverEvent{ActiveID: "1", OverID: "2"}))

	assert.True(t, c.IsOverColumn("A"))
	assert.False(t, c.IsOverColumn("B"))
	assert.Empty(t, rec.items)
	assert.Equal(t, 0, rec.count(events.EventItemsChanged))
}

// Edge case: a new gesture never inherits the lock-on of the previous one,
// even when the host has not rendered a frame in between.
func TestDragStart_ClearsCrossColumnFlag(t *testing.T) {
	c, _, frames := newRecorded(t, boardAB())

	c.DragStart("1")
	require.True(t, c.DragOver(DragOverEvent{ActiveID: "1", OverID: "3"}))
	c.DragEnd("1", "1")
	require.Positive(t, frames.Pending())

	c.DragStart("2")
	assert.False(t, c.recentlyMoved)
	_, ok := c.ResolveTarget(dnd.CollisionArgs{Active: "2"})
	assert.False(t, ok)
}

// ============================================================================
// Drag End Tests
// ============================================================================

func TestDragEnd_Trash(t *testing.T) {
	c, rec, _ := newRecorded(t, models.NewBoard().With("A", "1", "2"))

	c.DragStart("2")
	outcome := c.DragEnd("2", types.TrashID)

	assert.Equal(t, OutcomeDeleted, outcome)
	assert.Equal(t, []types.CardID{"1"}, c.Items().Cards("A"))
	assert.True(t, c.ActiveID().IsZero())
	assert.Nil(t, c.initial)
	require.Len(t, rec.items, 1)
	assert.Empty(t, rec.cardEnds)

	// Unrecoverable: cancelling after the drop has nothing to restore
	c.DragCancel()
	assert.Equal(t, []types.CardID{"1"}, c.Items().Cards("A"))
}

func TestDragEnd_Placeholder(t *testing.T) {
	c, rec, _ := newRecorded(t, models.NewBoard().With("A", "1", "2"))
	before := c.Columns()

	c.DragStart("1")
	outcome := c.DragEnd("1", types.PlaceholderID)

	assert.Equal(t, OutcomeColumnCreated, outcome)
	items := c.Items()
	assert.Equal(t, []types.CardID{"2"}, items.Cards("A"))
	assert.Equal(t, []types.CardID{"1"}, items.Cards("B"))
	assert.NoError(t, items.Validate())

	after := c.Columns()
	require.Len(t, after, len(before)+1)
	assert.NotContains(t, before, after[len(after)-1])
	assert.Equal(t, types.ColumnID("B"), after[len(after)-1])
	require.Len(t, rec.items, 1)
}

// TestDragEnd_PlaceholderCollision covers a generated id that already exists.
// Edge case: the drop aborts instead of overwriting the existing column.
func TestDragEnd_PlaceholderCollision(t *testing.T) {
	board := models.NewBoard().With("A", "1").With("C", "3").With("B", "2")
	c, rec, _ := newRecorded(t, board)

	c.DragStart("1")
	assert.Equal(t, OutcomeAborted, c.DragEnd("1", types.PlaceholderID))

	assert.True(t, c.Items().Equal(board))
	assert.Empty(t, rec.items)
	assert.True(t, c.ActiveID().IsZero())
}

func TestDragEnd_SameColumnReorder(t *testing.T) {
	c, rec, _ := newRecorded(t, models.NewBoard().With("A", "1", "2", "3"))

	c.DragStart("1")
	outcome := c.DragEnd("1", "3")

	assert.Equal(t, OutcomeMoved, outcome)
	assert.Equal(t, []types.CardID{"2", "3", "1"}, c.Items().Cards("A"))
	require.Len(t, rec.cardEnds, 1)
	end := rec.cardEnds[0]
	assert.Equal(t, models.Position{ColumnID: "A", Index: 0}, end.From)
	assert.Equal(t, models.Position{ColumnID: "A", Index: 2}, end.To)
	assert.True(t, end.Items.Equal(c.Items()))
	assert.Equal(t, 1, rec.count(events.EventCardDragEnd))
	assert.Len(t, rec.items, 1)
}

func TestDragEnd_CrossColumnCommit(t *testing.T) {
	c, rec, _ := newRecorded(t, boardAB())

	c.DragStart("1")
	c.DragOver(DragOverEvent{ActiveID: "1", OverID: "3", ActiveRect: cardRect(20, 0), OverRect: cardRect(20, 0)})
	// B is now [1 3]; dropping on 3 moves 1 after it
	outcome := c.DragEnd("1", "3")

	assert.Equal(t, OutcomeMoved, outcome)
	assert.Equal(t, []types.CardID{"3", "1"}, c.Items().Cards("B"))
	require.Len(t, rec.cardEnds, 1)
	assert.Equal(t, models.Position{ColumnID: "A", Index: 0}, rec.cardEnds[0].From)
	assert.Equal(t, models.Position{ColumnID: "B", Index: 1}, rec.cardEnds[0].To)
	assert.NoError(t, c.Items().Validate())
}

// TestDragEnd_SameIndexAfterPreview covers the drop where drag over already
// placed the card: the commit callback still fires with the unchanged board.
func TestDragEnd_SameIndexAfterPreview(t *testing.T) {
	c, rec, _ := newRecorded(t, boardAB())

	c.DragStart("1")
	c.DragOver(DragOverEvent{ActiveID: "1", OverID: "3", ActiveRect: cardRect(20, 2), OverRect: cardRect(20, 0)})
	previewed := c.Items()
	outcome := c.DragEnd("1", "1")

	assert.Equal(t, OutcomeMoved, outcome)
	assert.True(t, c.Items().Equal(previewed))
	require.Len(t, rec.cardEnds, 1)
	assert.True(t, rec.cardEnds[0].Items.Equal(previewed))
	assert.Equal(t, models.Position{ColumnID: "A", Index: 0}, rec.cardEnds[0].From)
	assert.Equal(t, models.Position{ColumnID: "B", Index: 1}, rec.cardEnds[0].To)
	assert.Len(t, rec.items, 1, "no second notification: the board did not change at drop")
}

func TestDragEnd_DropInPlace(t *testing.T) {
	c, rec, _ := newRecorded(t, boardAB())

	c.DragStart("2")
	assert.Equal(t, OutcomeUnchanged, c.DragEnd("2", "2"))

	assert.Empty(t, rec.cardEnds)
	assert.True(t, c.ActiveID().IsZero())
}

func TestDragEnd_OverOwnColumnMovesToEnd(t *testing.T) {
	c, _, _ := newRecorded(t, models.NewBoard().With("A", "1", "2", "3"))

	c.DragStart("1")
	assert.Equal(t, OutcomeMoved, c.DragEnd("1", "A"))
	assert.Equal(t, []types.CardID{"2", "3", "1"}, c.Items().Cards("A"))
}

func TestDragEnd_Aborts(t *testing.T) {
	tests := []struct {
		name         string
		active, over types.ID
	}{
		{"no over id", "1", types.None},
		{"unknown active", "ghost", "2"},
		{"unknown over", "1", "ghost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec, _ := newRecorded(t, boardAB())
			c.DragStart(tt.active)

			assert.Equal(t, OutcomeAborted, c.DragEnd(tt.active, tt.over))
			assert.True(t, c.Items().Equal(boardAB()))
			assert.True(t, c.ActiveID().IsZero())
			assert.Nil(t, c.initial)
			assert.Empty(t, rec.items)
			assert.Empty(t, rec.cardEnds)
		})
	}
}

func TestDragEnd_CancelDrop(t *testing.T) {
	c, rec, _ := newRecorded(t, boardAB(), WithCancelDrop(func(e DropEvent) bool {
		return e.OverID == types.TrashID
	}))

	c.DragStart("1")
	c.DragOver(DragOverEvent{ActiveID: "1", OverID: "B"})
	outcome := c.DragEnd("1", types.TrashID)

	assert.Equal(t, OutcomeCancelled, outcome)
	assert.True(t, c.Items().Equal(boardAB()), "drop turned into a rollback")
	assert.Equal(t, 1, rec.count(events.EventDragCancelled))
	assert.Len(t, rec.items, 2, "preview and rollback")
}

// ============================================================================
// Column Drag Tests
// ============================================================================

func TestColumnDrag_Reorder(t *testing.T) {
	c, rec, _ := newRecorded(t, models.DefaultBoard().With("A", "1"))

	c.DragStart("A")
	assert.False(t, c.DragOver(DragOverEvent{ActiveID: "A", OverID: "C"}), "column drags never preview")
	outcome := c.DragEnd("A", "C")

	assert.Equal(t, OutcomeColumnMoved, outcome)
	assert.Equal(t, []types.ColumnID{"B", "C", "A"}, c.Columns())
	assert.Equal(t, []types.ColumnID{"A", "B", "C"}, c.Items().Keys(), "only the column order changes")
	require.Len(t, rec.columnEnds, 1)
	assert.Equal(t, 0, rec.columnEnds[0].From.Index)
	assert.Equal(t, 2, rec.columnEnds[0].To.Index)
	assert.Empty(t, rec.cardEnds)
	assert.Empty(t, rec.items)
	assert.Equal(t, 1, rec.count(events.EventColumnDragEnd))
}

func TestColumnDrag_OverCardUsesItsColumn(t *testing.T) {
	c, _, _ := newRecorded(t, boardAB().With("C"))

	c.DragStart("C")
	assert.Equal(t, OutcomeColumnMoved, c.DragEnd("C", "1"))
	assert.Equal(t, []types.ColumnID{"C", "A", "B"}, c.Columns())
}

func TestColumnDrag_OrderSurvivesBoardChanges(t *testing.T) {
	c, _, _ := newRecorded(t, boardAB())

	c.DragStart("B")
	c.DragEnd("B", "A")
	require.Equal(t, []types.ColumnID{"B", "A"}, c.Columns())

	c.DragStart("1")
	c.DragEnd("1", types.TrashID)

	assert.Equal(t, []types.ColumnID{"B", "A"}, c.Columns())
}

// ============================================================================
// Invariant Tests
// ============================================================================

// TestInvariant_RandomGestures drives a fixed gesture script and validates
// the board after every step.
func TestInvariant_RandomGestures(t *testing.T) {
	c, _, frames := newRecorded(t, models.NewBoard().With("A", "1", "2", "3").With("B", "4").With("C"))
	targets := []types.ID{"1", "2", "3", "4", "A", "B", "C", types.TrashID}

	step := 0
	for _, active := range []types.ID{"1", "4", "2", "3"} {
		c.DragStart(active)
		for i := 0; i < 4; i++ {
			over := targets[(step*3+i)%len(targets)]
			below := dnd.Rect{Top: float64(step%3) * 4, Width: 10, Height: 3}
			c.DragOver(DragOverEvent{ActiveID: active, OverID: over, ActiveRect: below, OverRect: cardRect(0, 0)})
			require.NoError(t, c.Items().Validate(), "after over %s on %s", active, over)
			frames.Flush()
			step++
		}
		c.DragEnd(active, targets[step%len(targets)])
		require.NoError(t, c.Items().Validate())
	}
}

// TestDragEnd_VetoedAfterPreview covers a card previewed into one column and
// then dropped over a column that refuses it.
// Edge case: the previewed move is committed where the card sits.
func TestDragEnd_VetoedAfterPreview(t *testing.T) {
	board := models.NewBoard().With("A", "1").With("B", "2").With("C", "3")
	c, rec, _ := newRecorded(t, board, WithIsMoveAllowed(func(r MoveRequest) bool {
		return r.To.ColumnID != "C"
	}))

	c.DragStart("1")
	require.True(t, c.DragOver(DragOverEvent{ActiveID: "1", OverID: "2"}))
	require.False(t, c.DragOver(DragOverEvent{ActiveID: "1", OverID: "3"}))

	assert.Equal(t, OutcomeMoved, c.DragEnd("1", "3"))

	items := c.Items()
	assert.Empty(t, items.Cards("A"))
	assert.Equal(t, []types.CardID{"1", "2"}, items.Cards("B"))
	assert.Equal(t, []types.CardID{"3"}, items.Cards("C"))
	assert.True(t, c.ActiveID().IsZero())

	require.Len(t, rec.cardEnds, 1)
	end := rec.cardEnds[0]
	assert.Equal(t, models.Position{ColumnID: "A", Index: 0}, end.From)
	assert.Equal(t, models.Position{ColumnID: "B", Index: 0}, end.To)
	assert.True(t, end.Items.Equal(items))
	assert.Equal(t, 1, rec.count(events.EventCardDragEnd))
}

// Edge case: a drop with no target after a preview rolls the board back
func TestDragEnd_NoTargetAfterPreviewRollsBack(t *testing.T) {
	c, rec, _ := newRecorded(t, boardAB())

	c.DragStart("1")
	require.True(t, c.DragOver(DragOverEvent{ActiveID: "1", OverID: "3"}))

	assert.Equal(t, OutcomeAborted, c.DragEnd("1", types.None))

	assert.True(t, c.Items().Equal(boardAB()))
	assert.Len(t, rec.items, 2, "preview and rollback")
	assert.Empty(t, rec.cardEnds)
	assert.Equal(t, PhaseIdle, c.Phase())
}
