package board

import "errors"

// Board-related errors
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrTitleTooLong    = errors.New("title cannot exceed 200 characters")
	ErrNameTooLong     = errors.New("name cannot exceed 50 characters")
	ErrInvalidColumnID = errors.New("invalid column ID")

	// Business logic errors
	ErrColumnNotFound = errors.New("column not found")
	ErrCardNotFound   = errors.New("card not found")
	ErrColumnExists   = errors.New("column already exists")
	ErrColumnNotEmpty = errors.New("cannot delete column with cards")
)
