package state

import "github.com/thenoetrevino/swimlane/internal/tui/layout"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode     Mode = iota // Board navigation and dragging
	CardFormMode               // Creating a card with huh
	ColumnFormMode             // Creating a column with huh
	HelpMode                   // Displaying the full help
)

// Focus is the part of the selected card that receives key presses
type Focus int

const (
	FocusCard         Focus = iota // The card body, which is the drag handle
	FocusOpenButton                // The card's nested "open" button
	FocusColumnHeader              // The column title, which drags the column
)

// ColumnStride is the horizontal space one column takes up, gap included
const ColumnStride = layout.ColumnWidth + layout.ColumnGap

// reservedWidth is kept free on the right for the trash and placeholder zones
const reservedWidth = ColumnStride

// UIState manages the user interface state.
// This includes navigation (column/card selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedCard is the index of the selected card within the selected column
	selectedCard int

	width  int
	height int

	mode  Mode
	focus Focus

	// showDetails toggles the card details pane
	showDetails bool

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:         NormalMode,
		viewportSize: 1, // Recalculated when width is set
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = max(0, index)
}

// SelectedCard returns the index of the currently selected card.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = max(0, index)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the rows left for the board once the header and
// status bar are drawn, never less than 8.
func (s *UIState) ContentHeight() int {
	const headerHeight = 1
	const statusBarHeight = 2 // status bar + help line
	return max(s.height-headerHeight-statusBarHeight, 8)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Focus returns the focused part of the selected card
func (s *UIState) Focus() Focus {
	return s.focus
}

// ToggleFocus cycles focus from the card body to its open button, then to
// the column header. Without a card only the header can be focused.
func (s *UIState) ToggleFocus(hasCard bool) {
	if !hasCard {
		s.focus = FocusColumnHeader
		return
	}
	switch s.focus {
	case FocusCard:
		s.focus = FocusOpenButton
	case FocusOpenButton:
		s.focus = FocusColumnHeader
	default:
		s.focus = FocusCard
	}
}

// SetFocus focuses a part of the selected card or column
func (s *UIState) SetFocus(focus Focus) {
	s.focus = focus
}

// ResetFocus puts focus back on the card body
func (s *UIState) ResetFocus() {
	s.focus = FocusCard
}

// ShowDetails reports whether the details pane is open
func (s *UIState) ShowDetails() bool {
	return s.showDetails
}

// ToggleDetails opens or closes the details pane
func (s *UIState) ToggleDetails() {
	s.showDetails = !s.showDetails
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = max(0, offset)
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize works out how many columns fit next to the drop
// zones, with a minimum of one.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}
	s.viewportSize = max(1, (s.width-reservedWidth)/ColumnStride)
}

// EnsureSelectionVisible adjusts the viewport so the selected column is on
// screen.
func (s *UIState) EnsureSelectionVisible(columnsLen int) {
	if columnsLen == 0 {
		s.viewportOffset = 0
		return
	}
	s.selectedColumn = min(s.selectedColumn, columnsLen-1)

	if s.selectedColumn < s.viewportOffset {
		s.viewportOffset = s.selectedColumn
	}
	if s.selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = s.selectedColumn - s.viewportSize + 1
	}
	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
}

// ClampCard keeps the card selection inside a column of cardCount cards
func (s *UIState) ClampCard(cardCount int) {
	if cardCount == 0 {
		s.selectedCard = 0
		return
	}
	s.selectedCard = min(s.selectedCard, cardCount-1)
}
