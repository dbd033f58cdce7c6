package models

import "github.com/thenoetrevino/swimlane/internal/types"

// ============================================================================
// DEFAULT BOARD
// ============================================================================

// DefaultColumns are seeded into an empty board. Column ids are single
// letters so that generated ids ("D", "E", ...) continue the sequence.
var DefaultColumns = []Column{
	{ID: "A", Name: "Todo", Position: 0},
	{ID: "B", Name: "In Progress", Position: 1},
	{ID: "C", Name: "Done", Position: 2},
}

// ============================================================================
// LIMITS
// ============================================================================

// MaxTitleLength is the maximum length of a card title
const MaxTitleLength = 200

// MaxColumnNameLength is the maximum length of a column name
const MaxColumnNameLength = 50

// DefaultBoard returns an empty board holding DefaultColumns
func DefaultBoard() Board {
	b := NewBoard()
	for _, c := range DefaultColumns {
		b = b.With(c.ID)
	}
	return b
}

// ColumnIDs returns the ids of the given columns, in order
func ColumnIDs(columns []Column) []types.ColumnID {
	ids := make([]types.ColumnID, len(columns))
	for i, c := range columns {
		ids[i] = c.ID
	}
	return ids
}
