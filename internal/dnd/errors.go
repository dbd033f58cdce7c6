package dnd

import "errors"

var (
	// ErrInvalidSelector is returned when a focusable selector cannot be parsed
	ErrInvalidSelector = errors.New("invalid selector")
)
