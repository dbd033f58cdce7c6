package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/swimlane/internal/models"
)

// runMigrations creates the database schema and seeds default columns if needed
func runMigrations(ctx context.Context, db *sql.DB, seed []models.Column) error {
	// Columns are keyed by their board id ("A", "B", ...)
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS columns (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY,
			column_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			position INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (column_id) REFERENCES columns(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create index for efficient queries
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_cards_column
		ON cards(column_id, position)
	`)
	if err != nil {
		return err
	}

	return seedDefaultColumns(ctx, db, seed)
}

// seedDefaultColumns inserts the given columns if the columns table is empty
func seedDefaultColumns(ctx context.Context, db *sql.DB, seed []models.Column) error {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM columns").Scan(&count)
	if err != nil {
		return err
	}

	// If columns exist, don't seed
	if count > 0 {
		return nil
	}

	for i, col := range seed {
		_, err := db.ExecContext(ctx,
			"INSERT INTO columns (id, name, position) VALUES (?, ?, ?)",
			col.ID.String(), col.Name, i,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
