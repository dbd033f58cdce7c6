package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/swimlane/internal/dnd"
	"github.com/thenoetrevino/swimlane/internal/kanban"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// testBoard is A:[1 2] B:[3] C:[]
func testBoard() (models.Board, []types.ColumnID) {
	b := models.NewBoard().With("A", "1", "2").With("B", "3").With("C")
	return b, b.Keys()
}

// ============================================================================
// Compute Tests
// ============================================================================

func TestCompute_Horizontal(t *testing.T) {
	board, order := testBoard()

	l := Compute(board, order, Params{Top: 1, Height: 10})

	require.Len(t, l.Columns, 3)
	// Column A needs 11 rows for two cards, which stretches every column
	assert.Equal(t, dnd.Rect{Left: 0, Top: 1, Width: 28, Height: 11}, l.Columns[0].Rect)
	assert.Equal(t, dnd.Rect{Left: 29, Top: 1, Width: 28, Height: 11}, l.Columns[1].Rect)
	assert.Equal(t, dnd.Rect{Left: 58, Top: 1, Width: 28, Height: 11}, l.Columns[2].Rect)

	require.Len(t, l.Columns[0].Cards, 2)
	assert.Equal(t, dnd.Rect{Left: 1, Top: 3, Width: 26, Height: 4}, l.Columns[0].Cards[0].Rect)
	assert.Equal(t, dnd.Rect{Left: 1, Top: 7, Width: 26, Height: 4}, l.Columns[0].Cards[1].Rect)
	assert.Equal(t, dnd.Rect{Left: 30, Top: 3, Width: 26, Height: 4}, l.Columns[1].Cards[0].Rect)
	assert.Empty(t, l.Columns[2].Cards)

	assert.Equal(t, dnd.Rect{Left: 87, Top: 1, Width: 28, Height: 3}, l.Placeholder)
	assert.Equal(t, dnd.Rect{Left: 87, Top: 5, Width: 28, Height: 3}, l.Trash)
}

func TestCompute_Vertical(t *testing.T) {
	board, order := testBoard()

	l := Compute(board, order, Params{Orientation: kanban.Vertical, Width: 100})

	require.Len(t, l.Columns, 3)
	assert.Equal(t, dnd.Rect{Left: 0, Top: 0, Width: 71, Height: 11}, l.Columns[0].Rect)
	assert.Equal(t, dnd.Rect{Left: 0, Top: 12, Width: 71, Height: 7}, l.Columns[1].Rect)
	assert.Equal(t, dnd.Rect{Left: 0, Top: 20, Width: 71, Height: 7}, l.Columns[2].Rect)
	assert.Equal(t, float64(72), l.Placeholder.Left)
	assert.Equal(t, float64(72), l.Trash.Left)
}

// TestCompute_Viewport lays out a window of the column order.
// Edge case: Index keeps the position in the full order.
func TestCompute_Viewport(t *testing.T) {
	board, order := testBoard()

	l := Compute(board, order, Params{Offset: 1, Visible: 1})

	require.Len(t, l.Columns, 1)
	assert.Equal(t, types.ColumnID("B"), l.Columns[0].ID)
	assert.Equal(t, 1, l.Columns[0].Index)
	assert.Equal(t, float64(0), l.Columns[0].Rect.Left)
}

// TestCompute_OffsetPastEnd shows no columns but keeps the drop zones.
// Edge case: an offset larger than the column count.
func TestCompute_OffsetPastEnd(t *testing.T) {
	board, order := testBoard()

	l := Compute(board, order, Params{Offset: 9})

	assert.Empty(t, l.Columns)
	assert.False(t, l.Trash.IsEmpty())
}

func TestCompute_EmptyColumnKeepsRoomForOneCard(t *testing.T) {
	board := models.NewBoard().With("A")

	l := Compute(board, board.Keys(), Params{Orientation: kanban.Vertical})

	assert.Equal(t, float64(HeaderHeight+CardHeight+1), l.Columns[0].Rect.Height)
}

// ============================================================================
// Query Tests
// ============================================================================

func TestLayout_Droppables(t *testing.T) {
	board, order := testBoard()
	l := Compute(board, order, Params{})

	droppables := l.Droppables()

	ids := make([]types.ID, len(droppables))
	for i, d := range droppables {
		ids[i] = d.ID
	}
	assert.Equal(t, []types.ID{"A", "1", "2", "B", "3", "C", types.PlaceholderID, types.TrashID}, ids)
}

func TestLayout_Hit(t *testing.T) {
	board, order := testBoard()
	l := Compute(board, order, Params{Top: 1, Height: 10})

	tests := []struct {
		name  string
		point dnd.Point
		want  Target
	}{
		{"card", dnd.Point{X: 5, Y: 4}, Target{ID: "1", Kind: KindCard}},
		{"second card", dnd.Point{X: 5, Y: 9}, Target{ID: "2", Kind: KindCard}},
		{"header", dnd.Point{X: 35, Y: 1}, Target{ID: "B", Kind: KindColumnHeader}},
		{"column body", dnd.Point{X: 35, Y: 10}, Target{ID: "B", Kind: KindColumn}},
		{"empty column", dnd.Point{X: 60, Y: 6}, Target{ID: "C", Kind: KindColumn}},
		{"placeholder", dnd.Point{X: 90, Y: 2}, Target{ID: types.PlaceholderID, Kind: KindPlaceholder}},
		{"trash", dnd.Point{X: 90, Y: 6}, Target{ID: types.TrashID, Kind: KindTrash}},
		{"nothing", dnd.Point{X: 200, Y: 0}, Target{Kind: KindNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Hit(tt.point); got != tt.want {
				t.Errorf("Hit(%v) = %+v, want %+v", tt.point, got, tt.want)
			}
		})
	}
}

func TestLayout_Rect(t *testing.T) {
	board, order := testBoard()
	l := Compute(board, order, Params{})

	rect, ok := l.Rect("3")
	require.True(t, ok)
	assert.Equal(t, float64(30), rect.Left)

	rect, ok = l.Rect(types.TrashID)
	require.True(t, ok)
	assert.Equal(t, l.Trash, rect)

	_, ok = l.Rect("missing")
	assert.False(t, ok)
}

func TestLayout_Bounds(t *testing.T) {
	board, order := testBoard()
	l := Compute(board, order, Params{Top: 1, Height: 10})

	assert.Equal(t, dnd.Rect{Left: 0, Top: 1, Width: 115, Height: 11}, l.Bounds())
}
