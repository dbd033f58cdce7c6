package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/swimlane/internal/database"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// SetupTestDB creates an in-memory database with the full schema and the
// default columns A, B and C
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath, models.DefaultColumns)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestCard appends a card to a column and returns its ID
func CreateTestCard(t *testing.T, db *sql.DB, columnID types.ColumnID, id types.CardID, title string) types.CardID {
	t.Helper()
	card, err := database.NewRepository(db).CreateCard(context.Background(), columnID, models.Card{ID: id, Title: title})
	if err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
	return card.ID
}

// SeedBoard stores a small board: A:[1 2] B:[3] C:[]
func SeedBoard(t *testing.T, db *sql.DB) {
	t.Helper()
	CreateTestCard(t, db, "A", "1", "Write docs")
	CreateTestCard(t, db, "A", "2", "Fix login")
	CreateTestCard(t, db, "B", "3", "Ship release")
}

// LoadBoard reads the stored board back
func LoadBoard(t *testing.T, db *sql.DB) models.Board {
	t.Helper()
	board, err := database.NewRepository(db).LoadBoard(context.Background())
	if err != nil {
		t.Fatalf("Failed to load board: %v", err)
	}
	return board
}
