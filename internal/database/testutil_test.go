package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database seeded with the default columns
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath, models.DefaultColumns)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})
	return db
}

// createTestCard appends a card to column
func createTestCard(t *testing.T, repo *Repository, column types.ColumnID, id types.CardID, title string) *models.Card {
	t.Helper()
	card, err := repo.CreateCard(context.Background(), column, models.Card{ID: id, Title: title})
	if err != nil {
		t.Fatalf("Failed to create card %s: %v", id, err)
	}
	return card
}
