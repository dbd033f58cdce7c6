package database

import "errors"

var (
	// ErrNotFound indicates the requested column or card does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidBoard indicates a board that breaks the one-column-per-card rule
	ErrInvalidBoard = errors.New("invalid board")
)
