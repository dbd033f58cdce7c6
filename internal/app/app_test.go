package app

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/database"
	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/kanban"
	"github.com/thenoetrevino/swimlane/internal/models"
	boardservice "github.com/thenoetrevino/swimlane/internal/services/board"
	"github.com/thenoetrevino/swimlane/internal/types"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath, models.DefaultColumns)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// seedCards stores cards 1 and 2 in A and 3 in B
func seedCards(t *testing.T, a *App) {
	t.Helper()
	ctx := context.Background()
	for _, c := range []struct {
		id     types.CardID
		column types.ColumnID
	}{{"1", "A"}, {"2", "A"}, {"3", "B"}} {
		_, err := a.BoardService.CreateCard(ctx, boardservice.CreateCardRequest{ID: c.id, ColumnID: c.column, Title: "card " + c.id.String()})
		require.NoError(t, err)
	}
}

func TestNew(t *testing.T) {
	db := setupTestDB(t)

	app := New(db)

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.BoardService == nil {
		t.Error("Expected BoardService to be initialized")
	}
	if app.Repo() == nil {
		t.Error("Expected Repo to be initialized")
	}
	if app.Events() == nil {
		t.Error("Expected a default event publisher")
	}
	if app.Config().Board.Orientation != "horizontal" {
		t.Errorf("Expected default config, got orientation %s", app.Config().Board.Orientation)
	}
	if err := app.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestNew_WithOptions(t *testing.T) {
	bus := events.NewBus()
	cfg := config.DefaultConfig()
	cfg.Board.Orientation = "vertical"

	app := New(setupTestDB(t), WithEventPublisher(bus), WithConfig(cfg))

	assert.Same(t, bus, app.Events())

	session, err := app.OpenSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, kanban.Vertical, session.Container().Orientation())
}

// ============================================================================
// Session Tests
// ============================================================================

func TestSession_DropAcrossColumnsPersists(t *testing.T) {
	ctx := context.Background()
	app := New(setupTestDB(t))
	seedCards(t, app)

	session, err := app.OpenSession(ctx)
	require.NoError(t, err)

	outcome, err := session.Drop(ctx, "1", "3")
	require.NoError(t, err)
	assert.Equal(t, kanban.OutcomeMoved, outcome)

	stored, err := app.Repo().LoadBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Board().String(), stored.String())
	assert.Equal(t, []types.CardID{"2"}, stored.Cards("A"))
	assert.Contains(t, stored.Cards("B"), types.CardID("1"))
}

func TestSession_DropOnTrash(t *testing.T) {
	ctx := context.Background()
	app := New(setupTestDB(t))
	seedCards(t, app)
	session, err := app.OpenSession(ctx)
	require.NoError(t, err)

	outcome, err := session.Drop(ctx, "2", types.TrashID)
	require.NoError(t, err)
	assert.Equal(t, kanban.OutcomeDeleted, outcome)

	_, err = app.BoardService.GetCard(ctx, "2")
	assert.True(t, errors.Is(err, boardservice.ErrCardNotFound))
}

func TestSession_DropOnPlaceholder(t *testing.T) {
	ctx := context.Background()
	app := New(setupTestDB(t))
	seedCards(t, app)
	session, err := app.OpenSession(ctx)
	require.NoError(t, err)

	outcome, err := session.Drop(ctx, "3", types.PlaceholderID)
	require.NoError(t, err)
	assert.Equal(t, kanban.OutcomeColumnCreated, outcome)

	stored, err := app.Repo().LoadBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.CardID{"3"}, stored.Cards("D"))
}

func TestSession_ColumnReorderPersists(t *testing.T) {
	ctx := context.Background()
	app := New(setupTestDB(t))
	session, err := app.OpenSession(ctx)
	require.NoError(t, err)

	outcome, err := session.Drop(ctx, "C", "A")
	require.NoError(t, err)
	assert.Equal(t, kanban.OutcomeColumnMoved, outcome)

	reopened, err := app.OpenSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.ColumnID{"C", "A", "B"}, reopened.Container().Columns())
}

// TestSession_UnchangedDropNotSaved covers a drop back onto the start.
// Edge case: nothing is committed so nothing is written.
func TestSession_UnchangedDropNotSaved(t *testing.T) {
	ctx := context.Background()
	app := New(setupTestDB(t))
	seedCards(t, app)
	session, err := app.OpenSession(ctx)
	require.NoError(t, err)

	outcome, err := session.Drop(ctx, "1", "1")
	require.NoError(t, err)
	assert.False(t, outcome.Committed())
}

func TestSession_UnknownIDs(t *testing.T) {
	ctx := context.Background()
	app := New(setupTestDB(t))
	session, err := app.OpenSession(ctx)
	require.NoError(t, err)

	_, err = session.Drop(ctx, "missing", "A")
	assert.True(t, errors.Is(err, ErrUnknownID))

	_, err = session.Drop(ctx, "A", "missing")
	assert.True(t, errors.Is(err, ErrUnknownID))
	assert.Equal(t, kanban.PhaseIdle, session.Container().Phase())
}

func TestSession_Columns(t *testing.T) {
	ctx := context.Background()
	app := New(setupTestDB(t))
	session, err := app.OpenSession(ctx)
	require.NoError(t, err)

	col, err := session.AddColumn(ctx, "", "Review")
	require.NoError(t, err)
	assert.Equal(t, types.ColumnID("D"), col.ID)
	assert.Equal(t, []types.ColumnID{"A", "B", "C", "D"}, session.Container().Columns())

	require.NoError(t, session.RemoveColumn(ctx, "D"))
	assert.Equal(t, []types.ColumnID{"A", "B", "C"}, session.Container().Columns())

	_, err = session.AddColumn(ctx, "A", "again")
	assert.True(t, errors.Is(err, boardservice.ErrColumnExists))
}
