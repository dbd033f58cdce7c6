package kanban

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// FindColumn returns id itself when it is a column, otherwise the column
// whose cards contain id.
func (c *Container) FindColumn(id types.ID) (types.ColumnID, bool) {
	return findColumn(c.items, id)
}

// GetIndex returns the index of id within its column, or -1
func (c *Container) GetIndex(id types.ID) int {
	return getIndex(c.items, id)
}

// Position returns the column and index of id
func (c *Container) Position(id types.ID) models.Position {
	column, _ := c.FindColumn(id)
	return models.Position{ColumnID: column, Index: c.GetIndex(id)}
}

// NextColumnID derives a column id from the last board key by advancing its
// first character by one ("A" gives "B"). Only single letter ids produce a
// meaningful sequence; AddColumn rejects results that collide.
func (c *Container) NextColumnID() types.ColumnID {
	return nextColumnID(c.items)
}

// AddColumn appends an empty column. An empty id generates one with
// NextColumnID. The created id is returned.
func (c *Container) AddColumn(id types.ColumnID) (types.ColumnID, error) {
	if id.IsZero() {
		id = c.NextColumnID()
	}
	if err := c.checkNewColumn(id); err != nil {
		return types.None, err
	}

	c.commit("add_column", func(u *update) {
		u.columns = append(u.columns, id)
		u.setItems(u.items.With(id))
	})
	c.logger.Debug("column added", "column", id)
	return id, nil
}

// RemoveColumn removes column from the column order. An empty column also
// leaves the board; cards still in the column are left on the board and
// must be migrated or deleted by the caller first.
func (c *Container) RemoveColumn(column types.ColumnID) error {
	if !slices.Contains(c.columns, column) {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}

	c.commit("remove_column", func(u *update) {
		u.columns = slices.DeleteFunc(u.columns, func(id types.ColumnID) bool { return id == column })
		if cards := u.items.Cards(column); cards != nil && len(cards) == 0 {
			u.setItems(u.items.Without(column))
		}
	})
	c.logger.Debug("column removed", "column", column)
	return nil
}

// checkNewColumn validates an id about to become a column
func (c *Container) checkNewColumn(id types.ColumnID) error {
	if id.IsZero() || id.IsSentinel() {
		return fmt.Errorf("%w: %q", ErrInvalidColumnID, id)
	}
	if c.items.Has(id) || slices.Contains(c.columns, id) {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, id)
	}
	if _, ok := c.FindColumn(id); ok {
		return fmt.Errorf("%w: %q is a card", ErrInvalidColumnID, id)
	}
	return nil
}

func findColumn(items models.Board, id types.ID) (types.ColumnID, bool) {
	if id.IsZero() {
		return types.None, false
	}
	if items.Has(id) {
		return id, true
	}
	for _, column := range items.Keys() {
		if slices.Contains(items.Cards(column), id) {
			return column, true
		}
	}
	return types.None, false
}

func getIndex(items models.Board, id types.ID) int {
	column, ok := findColumn(items, id)
	if !ok {
		return -1
	}
	return slices.Index(items.Cards(column), id)
}

func nextColumnID(items models.Board) types.ColumnID {
	keys := items.Keys()
	if len(keys) == 0 {
		return "A"
	}
	last := keys[len(keys)-1].String()
	r, _ := utf8.DecodeRuneInString(last)
	if r == utf8.RuneError {
		return "A"
	}
	return types.ColumnID(string(r + 1))
}
