package models

import "github.com/thenoetrevino/swimlane/internal/types"

// Position locates a card: the column it is in and its index in that column.
// Index is -1 when the card could not be found.
type Position struct {
	ColumnID types.ColumnID `json:"columnId"`
	Index    int            `json:"index"`
}

// ColumnPosition locates a column inside the column order
type ColumnPosition struct {
	Index int `json:"index"`
}

// Target is the destination handed to move policies: only the column is known
// while a drag is still in flight.
type Target struct {
	ColumnID types.ColumnID `json:"columnId"`
}
