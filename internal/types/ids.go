package types

// ID is the identifier shared by everything that can be dragged or dropped on.
// Columns, cards and the sentinel drop targets live in one id space, which is
// what lets a single "over" id name either a column or a card.
type ID string

// ID type aliases provide semantic meaning at call sites without forcing
// conversions between columns and cards.

// ColumnID identifies a column on the board
type ColumnID = ID

// CardID identifies a card on the board
type CardID = ID

// Sentinel drop targets. They are never real columns.
const (
	// TrashID deletes the active card when it is dropped on
	TrashID ID = "void"

	// PlaceholderID creates a new column holding the active card when dropped on
	PlaceholderID ID = "placeholder"
)

// None is the empty id, used for "no active drag" and "no target"
const None ID = ""

// String returns the raw identifier
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id is empty
func (id ID) IsZero() bool {
	return id == None
}

// IsSentinel reports whether the id is one of the reserved drop targets
func (id ID) IsSentinel() bool {
	return id == TrashID || id == PlaceholderID
}

// IDsFromStrings converts raw strings into ids, preserving order
func IDsFromStrings(values ...string) []ID {
	ids := make([]ID, len(values))
	for i, v := range values {
		ids[i] = ID(v)
	}
	return ids
}
