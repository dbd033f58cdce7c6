package models

import "errors"

// Board invariant errors, returned by Board.Validate
var (
	// ErrDuplicateCard indicates a card appears more than once on the board
	ErrDuplicateCard = errors.New("card appears in more than one place")

	// ErrIDConflict indicates a card id is also used as a column id
	ErrIDConflict = errors.New("id used by both a card and a column")

	// ErrReservedID indicates a sentinel drop target id was used as a column or card
	ErrReservedID = errors.New("id is reserved for a drop target")

	// ErrEmptyID indicates an empty column or card id
	ErrEmptyID = errors.New("id cannot be empty")
)
