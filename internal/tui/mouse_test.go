package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/swimlane/internal/kanban"
	"github.com/thenoetrevino/swimlane/internal/testutil"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
	"github.com/thenoetrevino/swimlane/internal/types"
)

func click(m Model, x, y int) (Model, tea.Cmd) {
	return update(m, tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
}

func motion(m Model, x, y int) Model {
	m, _ = update(m, tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft})
	return m
}

func release(m Model, x, y int) (Model, tea.Cmd) {
	return update(m, tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft})
}

// ============================================================================
// Pointer drags
// ============================================================================

func TestMouseClick_SelectsCard(t *testing.T) {
	m, _ := setupTestModel(t)

	// Card 3 is drawn at (30, 3)
	m, _ = click(m, 35, 4)
	m, _ = release(m, 35, 4)

	id, ok := m.selectedCard()
	require.True(t, ok)
	assert.Equal(t, types.CardID("3"), id)
	assert.False(t, m.Drag.Active(), "a click without movement is not a drag")
	assert.Equal(t, kanban.PhaseIdle, m.Container().Phase())
}

// Edge case: movement below the activation distance keeps the press pending
func TestMouseDrag_BelowActivationDistance(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = click(m, 5, 4)
	m = motion(m, 8, 4)

	_, pending := m.Drag.Pending()
	assert.True(t, pending)
	assert.False(t, m.Drag.Active())
	assert.Equal(t, kanban.PhaseIdle, m.Container().Phase())
}

func TestMouseDrag_MoveCardToColumn(t *testing.T) {
	m, db := setupTestModel(t)

	m, _ = click(m, 5, 4)
	m = motion(m, 40, 4)

	require.True(t, m.Drag.Active())
	assert.Equal(t, state.SourcePointer, m.Drag.Source())
	assert.Equal(t, []types.CardID{"1", "3"}, boardOf(m).Cards("B"), "the card is previewed in B")

	m, cmd := release(m, 40, 4)
	m = drain(t, m, cmd)

	assert.False(t, m.Drag.Active())
	assert.Equal(t, []types.CardID{"2"}, boardOf(m).Cards("A"))
	assert.Equal(t, []types.CardID{"1", "3"}, boardOf(m).Cards("B"))
	assert.Equal(t, []types.CardID{"1", "3"}, testutil.LoadBoard(t, db).Cards("B"))
}

func TestMouseDrag_IntoEmptyColumn(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = click(m, 35, 4)
	m = motion(m, 70, 15)
	m, cmd := release(m, 70, 15)
	m = drain(t, m, cmd)

	assert.Empty(t, boardOf(m).Cards("B"))
	assert.Equal(t, []types.CardID{"3"}, boardOf(m).Cards("C"))
}

func TestMouseDrag_DropOnTrash(t *testing.T) {
	m, db := setupTestModel(t)

	m, _ = click(m, 35, 4)
	m = motion(m, 100, 6)
	assert.Equal(t, types.TrashID, m.Drag.Over())

	m, cmd := release(m, 100, 6)
	m = drain(t, m, cmd)

	assert.Empty(t, boardOf(m).Cards("B"))
	stored := testutil.LoadBoard(t, db)
	assert.Equal(t, 2, stored.CardCount())
}

func TestMouseDrag_DropOnPlaceholder(t *testing.T) {
	m, db := setupTestModel(t)

	m, _ = click(m, 35, 4)
	m = motion(m, 100, 2)
	assert.Equal(t, types.PlaceholderID, m.Drag.Over())

	m, cmd := release(m, 100, 2)
	m = drain(t, m, cmd)

	assert.Equal(t, []types.ColumnID{"A", "B", "C", "D"}, m.Container().Columns())
	assert.Equal(t, []types.CardID{"3"}, boardOf(m).Cards("D"))
	assert.Equal(t, []types.CardID{"3"}, testutil.LoadBoard(t, db).Cards("D"))
}

func TestMouseDrag_Column(t *testing.T) {
	m, _ := setupTestModel(t)

	// Row 2 is the title row of column A
	m, _ = click(m, 5, 2)
	assert.Equal(t, state.FocusColumnHeader, m.UIState.Focus())

	m = motion(m, 65, 2)
	require.True(t, m.Drag.Active())
	assert.Equal(t, kanban.PhaseDraggingColumn, m.Container().Phase())

	m, cmd := release(m, 65, 2)
	m = drain(t, m, cmd)

	assert.Equal(t, []types.ColumnID{"B", "C", "A"}, m.Container().Columns())
}

// Edge case: a right click during a drag cancels it
func TestMouseDrag_RightClickCancels(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = click(m, 5, 4)
	m = motion(m, 40, 4)
	require.True(t, m.Drag.Active())

	m, cmd := update(m, tea.MouseClickMsg{X: 40, Y: 4, Button: tea.MouseRight})
	m = drain(t, m, cmd)

	assert.False(t, m.Drag.Active())
	assert.Equal(t, []types.CardID{"1", "2"}, boardOf(m).Cards("A"))
	assert.Equal(t, []types.CardID{"3"}, boardOf(m).Cards("B"))
}

// Edge case: clicking the open button never arms a drag
func TestMouseClick_OpenButton(t *testing.T) {
	m, _ := setupTestModel(t)

	// Card 1 spans x 1..26; its button sits in the footer row at x 19..24
	m, _ = click(m, 20, 5)

	_, pending := m.Drag.Pending()
	assert.False(t, pending)
	assert.True(t, m.UIState.ShowDetails())
	assert.Equal(t, state.FocusOpenButton, m.UIState.Focus())
}

// Edge case: the mouse is ignored while a form is open
func TestMouse_IgnoredOutsideNormalMode(t *testing.T) {
	m, _ := setupTestModel(t)
	m.UIState.SetMode(state.HelpMode)

	m, _ = click(m, 35, 4)
	id, _ := m.selectedCard()
	assert.Equal(t, types.CardID("1"), id)
}
