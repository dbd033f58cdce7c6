package models

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/thenoetrevino/swimlane/internal/types"
)

// Board maps each column to its ordered card sequence.
//
// Go maps have no order, so the board keeps its column insertion order next
// to the map; Keys is what the engine uses wherever "the keys of the board"
// matter (column order derivation, next column id generation).
//
// Board values are copy-on-write: every method that changes the board returns
// a new value and leaves the receiver untouched, so snapshots taken with Clone
// or by plain assignment are never disturbed by later mutations.
type Board struct {
	keys  []types.ColumnID
	cards map[types.ColumnID][]types.CardID
}

// ColumnCards is one column of a board in serialized form
type ColumnCards struct {
	Column types.ColumnID `json:"column" yaml:"column"`
	Cards  []types.CardID `json:"cards" yaml:"cards"`
}

// NewBoard creates an empty board
func NewBoard() Board {
	return Board{cards: make(map[types.ColumnID][]types.CardID)}
}

// BoardFromEntries builds a board from serialized columns, in order.
// A column listed twice keeps its first position and its last card list.
func BoardFromEntries(entries []ColumnCards) Board {
	b := NewBoard()
	for _, e := range entries {
		b = b.With(e.Column, e.Cards...)
	}
	return b
}

// With returns a copy of the board where column holds exactly the given cards.
// New columns are appended to the key order; existing ones keep their place.
func (b Board) With(column types.ColumnID, cards ...types.CardID) Board {
	next := b.Clone()
	if _, ok := next.cards[column]; !ok {
		next.keys = append(next.keys, column)
	}
	next.cards[column] = append(make([]types.CardID, 0, len(cards)), cards...)
	return next
}

// Without returns a copy of the board with column and its cards removed
func (b Board) Without(column types.ColumnID) Board {
	if !b.Has(column) {
		return b.Clone()
	}
	next := b.Clone()
	delete(next.cards, column)
	next.keys = slices.DeleteFunc(next.keys, func(k types.ColumnID) bool { return k == column })
	return next
}

// Has reports whether column is a key of the board
func (b Board) Has(column types.ColumnID) bool {
	_, ok := b.cards[column]
	return ok
}

// Keys returns the column ids in insertion order
func (b Board) Keys() []types.ColumnID {
	return slices.Clone(b.keys)
}

// Cards returns a copy of the card sequence for column, or nil if absent
func (b Board) Cards(column types.ColumnID) []types.CardID {
	cards, ok := b.cards[column]
	if !ok {
		return nil
	}
	return append(make([]types.CardID, 0, len(cards)), cards...)
}

// Len returns the number of columns
func (b Board) Len() int {
	return len(b.keys)
}

// CardCount returns the number of cards across all columns
func (b Board) CardCount() int {
	total := 0
	for _, cards := range b.cards {
		total += len(cards)
	}
	return total
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	next := Board{
		keys:  slices.Clone(b.keys),
		cards: make(map[types.ColumnID][]types.CardID, len(b.cards)),
	}
	for k, v := range b.cards {
		next.cards[k] = append(make([]types.CardID, 0, len(v)), v...)
	}
	return next
}

// Equal reports whether both boards have the same columns in the same order
// holding the same card sequences.
func (b Board) Equal(other Board) bool {
	if !slices.Equal(b.keys, other.keys) {
		return false
	}
	for _, k := range b.keys {
		if !slices.Equal(b.cards[k], other.cards[k]) {
			return false
		}
	}
	return true
}

// Entries returns the board in serialized form, in key order
func (b Board) Entries() []ColumnCards {
	entries := make([]ColumnCards, 0, len(b.keys))
	for _, k := range b.keys {
		entries = append(entries, ColumnCards{Column: k, Cards: b.Cards(k)})
	}
	return entries
}

// Validate checks the board invariant: every card appears in exactly one
// column's sequence, and no card shares an id with a column or a sentinel.
func (b Board) Validate() error {
	seen := make(map[types.CardID]types.ColumnID, b.CardCount())
	for _, column := range b.keys {
		if column.IsZero() {
			return ErrEmptyID
		}
		if column.IsSentinel() {
			return fmt.Errorf("%w: column %q", ErrReservedID, column)
		}
		for _, card := range b.cards[column] {
			if card.IsZero() {
				return ErrEmptyID
			}
			if card.IsSentinel() {
				return fmt.Errorf("%w: card %q", ErrReservedID, card)
			}
			if b.Has(card) {
				return fmt.Errorf("%w: card %q is also a column", ErrIDConflict, card)
			}
			if prev, dup := seen[card]; dup {
				return fmt.Errorf("%w: card %q in %q and %q", ErrDuplicateCard, card, prev, column)
			}
			seen[card] = column
		}
	}
	return nil
}

// String renders the board as {A:[1 2] B:[3]}
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range b.keys {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%s:%v", k, b.cards[k])
	}
	sb.WriteString("}")
	return sb.String()
}

// MarshalJSON encodes the board as an ordered list of columns
func (b Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Entries())
}

// UnmarshalJSON decodes an ordered list of columns
func (b *Board) UnmarshalJSON(data []byte) error {
	var entries []ColumnCards
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*b = BoardFromEntries(entries)
	return nil
}
