package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/swimlane/internal/tui/huhforms"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// openCardForm shows the new card form for the selected column
func (m Model) openCardForm() tea.Cmd {
	column, ok := m.selectedColumn()
	if !ok {
		m.notify(state.LevelError, "No column selected")
		return nil
	}

	f := m.Forms
	f.ResetCardForm()
	f.CardColumn = column
	f.CardForm = huhforms.CreateCardForm(
		m.column(column).DisplayName(),
		&f.CardTitle,
		&f.CardDescription,
		&f.CardConfirm,
		m.descriptionLines(),
	).WithTheme(huhforms.CreateTheme(m.app.Config().ColorScheme))

	m.UIState.SetMode(state.CardFormMode)
	return f.CardForm.Init()
}

// openColumnForm shows the new column form
func (m Model) openColumnForm() tea.Cmd {
	c := m.board.container
	exists := func(id types.ColumnID) bool {
		return c.Items().Has(id)
	}

	f := m.Forms
	f.ResetColumnForm()
	f.ColumnForm = huhforms.CreateColumnForm(&f.ColumnID, &f.ColumnName, c.NextColumnID(), exists).
		WithTheme(huhforms.CreateTheme(m.app.Config().ColorScheme))

	m.UIState.SetMode(state.ColumnFormMode)
	return f.ColumnForm.Init()
}

// descriptionLines sizes the description field to the terminal
func (m Model) descriptionLines() int {
	return min(max(m.UIState.Height()/4, 3), 10)
}

// formConfig holds configuration for generic form handling
type formConfig struct {
	form       *huh.Form
	setForm    func(*huh.Form)
	clearForm  func()
	onComplete func() tea.Cmd // Called when form completes successfully
}

// updateForm forwards a message to the open form, if any
func (m Model) updateForm(msg tea.Msg) tea.Cmd {
	f := m.Forms

	switch m.UIState.Mode() {
	case state.CardFormMode:
		return m.handleFormUpdate(msg, formConfig{
			form:      f.CardForm,
			setForm:   func(form *huh.Form) { f.CardForm = form },
			clearForm: f.ResetCardForm,
			onComplete: func() tea.Cmd {
				if !f.CardConfirm || !f.HasCardInput() {
					return nil
				}
				return m.createCardCmd(
					f.CardColumn,
					strings.TrimSpace(f.CardTitle),
					strings.TrimSpace(f.CardDescription),
				)
			},
		})

	case state.ColumnFormMode:
		return m.handleFormUpdate(msg, formConfig{
			form:      f.ColumnForm,
			setForm:   func(form *huh.Form) { f.ColumnForm = form },
			clearForm: f.ResetColumnForm,
			onComplete: func() tea.Cmd {
				id := types.ColumnID(strings.TrimSpace(f.ColumnID))
				if id.IsZero() {
					id = m.board.container.NextColumnID()
				}
				return m.createColumnCmd(id, strings.TrimSpace(f.ColumnName))
			},
		})
	}
	return nil
}

// handleFormUpdate processes form messages generically
func (m Model) handleFormUpdate(msg tea.Msg, cfg formConfig) tea.Cmd {
	if cfg.form == nil {
		m.UIState.SetMode(state.NormalMode)
		return nil
	}

	// esc closes the form without saving
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "esc" {
		cfg.clearForm()
		m.UIState.SetMode(state.NormalMode)
		return nil
	}

	// Forward to form
	model, cmd := cfg.form.Update(msg)
	form := model.(*huh.Form)
	cfg.setForm(form)

	switch form.State {
	case huh.StateCompleted:
		done := cfg.onComplete()
		cfg.clearForm()
		m.UIState.SetMode(state.NormalMode)
		return done
	case huh.StateAborted:
		cfg.clearForm()
		m.UIState.SetMode(state.NormalMode)
		return nil
	}
	return cmd
}
