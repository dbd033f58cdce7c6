package huhforms

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// ColumnIDValidator rejects ids that clash with a drop zone or an existing
// column. An empty id is accepted and means "pick the next one".
func ColumnIDValidator(exists func(types.ColumnID) bool) func(string) error {
	return func(raw string) error {
		id := types.ColumnID(strings.TrimSpace(raw))
		switch {
		case id.IsZero():
			return nil
		case id.IsSentinel():
			return fmt.Errorf("%q is reserved", id)
		case exists != nil && exists(id):
			return fmt.Errorf("column %q already exists", id)
		}
		return nil
	}
}

// ValidateColumnName rejects overlong names
func ValidateColumnName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) > models.MaxColumnNameLength {
		return errors.New("name is too long")
	}
	return nil
}

// CreateColumnForm creates a huh form for adding a column.
// suggested is shown as the placeholder id; no confirmation field is used,
// the form saves on completion.
func CreateColumnForm(
	id *string,
	name *string,
	suggested types.ColumnID,
	exists func(types.ColumnID) bool,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("id").
			Title("Column ID").
			Description("Leave empty to use "+suggested.String()).
			Placeholder(suggested.String()).
			Validate(ColumnIDValidator(exists)).
			Value(id),
		huh.NewInput().
			Key("name").
			Title("New Column Name").
			Placeholder("Enter column name...").
			CharLimit(models.MaxColumnNameLength).
			Validate(ValidateColumnName).
			Value(name),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}
