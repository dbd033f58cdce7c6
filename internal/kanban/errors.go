package kanban

import "errors"

var (
	// ErrDuplicateColumn is returned when adding a column whose id is already on the board
	ErrDuplicateColumn = errors.New("column already exists")

	// ErrColumnNotFound is returned when removing a column that is not in the column order
	ErrColumnNotFound = errors.New("column not found")

	// ErrInvalidColumnID is returned when a column id is reserved or already used by a card
	ErrInvalidColumnID = errors.New("invalid column id")
)
