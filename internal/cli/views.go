package cli

import (
	"github.com/thenoetrevino/swimlane/internal/cli/styles"
	"github.com/thenoetrevino/swimlane/internal/models"
	boardservice "github.com/thenoetrevino/swimlane/internal/services/board"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// CardView is the JSON shape of a card
type CardView struct {
	ID          string `json:"id"`
	Column      string `json:"column,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// GetID returns the card id for quiet output
func (c CardView) GetID() string {
	return c.ID
}

// ColumnView is the JSON shape of a column
type ColumnView struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Cards []CardView `json:"cards"`
}

// GetID returns the column id for quiet output
func (c ColumnView) GetID() string {
	return c.ID
}

// BoardView is the JSON shape of the whole board
type BoardView struct {
	Columns []ColumnView `json:"columns"`
}

// NewCardView describes a card, falling back to its id when details are missing
func NewCardView(id types.CardID, column types.ColumnID, card *models.Card) CardView {
	view := CardView{ID: id.String(), Column: column.String(), Title: id.String()}
	if card != nil {
		view.Title = card.DisplayTitle()
		view.Description = card.Description
	}
	return view
}

// NewBoardView describes board in the given column order, using snapshot
// for names and titles
func NewBoardView(board models.Board, order []types.ColumnID, snapshot *boardservice.Snapshot) BoardView {
	view := BoardView{Columns: []ColumnView{}}
	for _, col := range order {
		if !board.Has(col) {
			continue
		}
		cv := ColumnView{ID: col.String(), Cards: []CardView{}}
		if details := snapshot.Column(col); details != nil {
			cv.Name = details.Name
		}
		for _, card := range board.Cards(col) {
			cv.Cards = append(cv.Cards, NewCardView(card, "", snapshot.Card(card)))
		}
		view.Columns = append(view.Columns, cv)
	}
	return view
}

// StyledColumns converts the view for styles.RenderBoard
func (b BoardView) StyledColumns() []styles.ColumnView {
	out := make([]styles.ColumnView, len(b.Columns))
	for i, col := range b.Columns {
		sv := styles.ColumnView{Column: &models.Column{ID: types.ColumnID(col.ID), Name: col.Name, Position: i}}
		for _, card := range col.Cards {
			sv.Cards = append(sv.Cards, &models.Card{ID: types.CardID(card.ID), Title: card.Title})
		}
		out[i] = sv
	}
	return out
}
