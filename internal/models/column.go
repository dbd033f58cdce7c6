package models

import "github.com/thenoetrevino/swimlane/internal/types"

// Column holds display metadata for a board column (e.g. "Todo", "Done").
// Card order lives in Board; Position mirrors the column's index in the
// column order at the time it was stored.
type Column struct {
	ID       types.ColumnID // Unique identifier, also the Board key
	Name     string         // Display name of the column
	Position int            // Index in the column order
}

// DisplayName returns the column name, falling back to its id
func (c *Column) DisplayName() string {
	if c == nil {
		return ""
	}
	if c.Name == "" {
		return c.ID.String()
	}
	return c.Name
}
