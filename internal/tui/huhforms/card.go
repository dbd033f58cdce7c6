package huhforms

import (
	"errors"
	"strings"
	"unicode/utf8"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/swimlane/internal/models"
)

// ValidateCardTitle rejects blank and overlong titles
func ValidateCardTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return errors.New("title is too long")
	}
	return nil
}

// CreateCardForm creates a huh form for adding a card to columnName.
// The form uses pointers to update values in place.
func CreateCardForm(
	columnName string,
	title *string,
	description *string,
	confirm *bool,
	descriptionLines int,
) *huh.Form {
	var fields []huh.Field

	fields = append(fields,
		huh.NewInput().
			Key("title").
			Title("New card in "+columnName).
			Placeholder("Enter card title...").
			CharLimit(models.MaxTitleLength).
			Validate(ValidateCardTitle).
			Value(title),
	)

	// Description text area field with dynamic height
	fields = append(fields,
		huh.NewText().
			Key("description").
			Title("Description").
			Description("Markdown").
			Placeholder("Enter card description...").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(description),
	)

	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title("Add this card?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
