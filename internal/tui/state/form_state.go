package state

import (
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/swimlane/internal/types"
)

// FormState manages the huh forms for new cards and columns, along with
// the values their fields write into.
type FormState struct {
	// Card form fields
	CardForm        *huh.Form
	CardColumn      types.ColumnID // Column the new card goes into
	CardTitle       string
	CardDescription string
	CardConfirm     bool

	// Column form fields
	ColumnForm *huh.Form
	ColumnID   string
	ColumnName string
}

// NewFormState creates an empty FormState
func NewFormState() *FormState {
	return &FormState{CardConfirm: true}
}

// ResetCardForm clears the card form and its values
func (s *FormState) ResetCardForm() {
	s.CardForm = nil
	s.CardColumn = types.None
	s.CardTitle = ""
	s.CardDescription = ""
	s.CardConfirm = true
}

// ResetColumnForm clears the column form and its values
func (s *FormState) ResetColumnForm() {
	s.ColumnForm = nil
	s.ColumnID = ""
	s.ColumnName = ""
}

// HasCardInput reports whether the card form holds anything worth saving
func (s *FormState) HasCardInput() bool {
	return strings.TrimSpace(s.CardTitle) != ""
}
