package app

import "errors"

var (
	// ErrUnknownID indicates a drag referenced an id that is not on the board
	ErrUnknownID = errors.New("id is not on the board")

	// ErrNotCommitted indicates a simulated drag ended without changing the board
	ErrNotCommitted = errors.New("drop did not change the board")
)
