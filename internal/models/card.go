package models

import (
	"time"

	"github.com/thenoetrevino/swimlane/internal/types"
)

// Card holds the details of a single card on the board.
// Its place on the board (column and index) is owned by Board, not by Card.
type Card struct {
	ID          types.CardID
	Title       string
	Description string // Markdown
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayTitle returns the card title, falling back to its id
func (c *Card) DisplayTitle() string {
	if c == nil {
		return ""
	}
	if c.Title == "" {
		return c.ID.String()
	}
	return c.Title
}
