// Package layout measures the rendered board in terminal cells. Every
// column, card and drop zone gets the rectangle it is drawn at, which is
// what the drag engine hit-tests against.
package layout

import (
	"github.com/thenoetrevino/swimlane/internal/dnd"
	"github.com/thenoetrevino/swimlane/internal/kanban"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Board geometry in cells
const (
	ColumnWidth  = 28
	ColumnGap    = 1
	HeaderHeight = 2 // top border + column title
	CardHeight   = 4 // card border + two title lines
	ZoneHeight   = 3

	// Room for the header, one card and the bottom border
	minColumnHeight = HeaderHeight + CardHeight + 1
)

// Kind says what a point on the board landed on
type Kind int

const (
	KindNone Kind = iota
	KindCard
	KindColumnHeader
	KindColumn
	KindTrash
	KindPlaceholder
)

// Params positions the board on screen
type Params struct {
	Orientation kanban.Orientation
	Left, Top   int
	Width       int // used to widen stacked columns
	Height      int // used to lengthen side by side columns
	Offset      int // index of the first visible column
	Visible     int // number of visible columns, 0 for all
}

// Card is a measured card
type Card struct {
	ID   types.CardID
	Rect dnd.Rect
}

// Column is a measured column and its cards
type Column struct {
	ID    types.ColumnID
	Index int // position in the full column order
	Rect  dnd.Rect
	Cards []Card
}

// Header returns the rows holding the column title, which is the column's
// drag handle.
func (c Column) Header() dnd.Rect {
	return dnd.Rect{Left: c.Rect.Left, Top: c.Rect.Top, Width: c.Rect.Width, Height: HeaderHeight}
}

// Layout is the measured board
type Layout struct {
	Orientation kanban.Orientation
	Columns     []Column
	Placeholder dnd.Rect
	Trash       dnd.Rect
}

// Target is the result of hit testing a point
type Target struct {
	ID   types.ID
	Kind Kind
}

// Compute lays out the visible columns of board in order
func Compute(board models.Board, order []types.ColumnID, p Params) Layout {
	start := min(max(p.Offset, 0), len(order))
	end := len(order)
	if p.Visible > 0 {
		end = min(start+p.Visible, len(order))
	}
	visible := order[start:end]

	l := Layout{Orientation: p.Orientation, Columns: make([]Column, 0, len(visible))}
	if p.Orientation == kanban.Vertical {
		l.stack(board, visible, start, p)
	} else {
		l.sideBySide(board, visible, start, p)
	}
	return l
}

func (l *Layout) sideBySide(board models.Board, order []types.ColumnID, first int, p Params) {
	height := max(p.Height, minColumnHeight)
	for _, id := range order {
		height = max(height, columnHeight(len(board.Cards(id))))
	}

	x := p.Left
	for i, id := range order {
		rect := dnd.RectFromCells(x, p.Top, ColumnWidth, height)
		l.Columns = append(l.Columns, measureColumn(id, first+i, rect, board.Cards(id)))
		x += ColumnWidth + ColumnGap
	}

	l.Placeholder = dnd.RectFromCells(x, p.Top, ColumnWidth, ZoneHeight)
	l.Trash = dnd.RectFromCells(x, p.Top+ZoneHeight+1, ColumnWidth, ZoneHeight)
}

func (l *Layout) stack(board models.Board, order []types.ColumnID, first int, p Params) {
	width := max(p.Width-ColumnWidth-ColumnGap, ColumnWidth)

	y := p.Top
	for i, id := range order {
		cards := board.Cards(id)
		rect := dnd.RectFromCells(p.Left, y, width, columnHeight(len(cards)))
		l.Columns = append(l.Columns, measureColumn(id, first+i, rect, cards))
		y += int(rect.Height) + ColumnGap
	}

	x := p.Left + width + ColumnGap
	l.Placeholder = dnd.RectFromCells(x, p.Top, ColumnWidth, ZoneHeight)
	l.Trash = dnd.RectFromCells(x, p.Top+ZoneHeight+1, ColumnWidth, ZoneHeight)
}

// columnHeight fits n cards, keeping room for one when the column is empty
func columnHeight(n int) int {
	return HeaderHeight + max(n, 1)*CardHeight + 1
}

func measureColumn(id types.ColumnID, index int, rect dnd.Rect, cards []types.CardID) Column {
	col := Column{ID: id, Index: index, Rect: rect, Cards: make([]Card, len(cards))}
	left := int(rect.Left) + 1
	top := int(rect.Top) + HeaderHeight
	for i, card := range cards {
		col.Cards[i] = Card{
			ID:   card,
			Rect: dnd.RectFromCells(left, top+i*CardHeight, int(rect.Width)-2, CardHeight),
		}
	}
	return col
}

// Droppables lists every drop target: each column followed by its cards,
// then the placeholder and the trash.
func (l Layout) Droppables() []dnd.Droppable {
	droppables := make([]dnd.Droppable, 0, len(l.Columns)*4+2)
	for _, col := range l.Columns {
		droppables = append(droppables, dnd.Droppable{ID: col.ID, Rect: col.Rect})
		for _, card := range col.Cards {
			droppables = append(droppables, dnd.Droppable{ID: card.ID, Rect: card.Rect})
		}
	}
	return append(droppables,
		dnd.Droppable{ID: types.PlaceholderID, Rect: l.Placeholder},
		dnd.Droppable{ID: types.TrashID, Rect: l.Trash},
	)
}

// Column returns the measured column id
func (l Layout) Column(id types.ColumnID) (Column, bool) {
	for _, col := range l.Columns {
		if col.ID == id {
			return col, true
		}
	}
	return Column{}, false
}

// Rect returns the rectangle of a column, card or drop zone
func (l Layout) Rect(id types.ID) (dnd.Rect, bool) {
	switch id {
	case types.TrashID:
		return l.Trash, true
	case types.PlaceholderID:
		return l.Placeholder, true
	}
	for _, col := range l.Columns {
		if col.ID == id {
			return col.Rect, true
		}
		for _, card := range col.Cards {
			if card.ID == id {
				return card.Rect, true
			}
		}
	}
	return dnd.Rect{}, false
}

// Hit returns what is drawn at p. Cards sit on top of their column and the
// column header is reported separately from the column body.
func (l Layout) Hit(p dnd.Point) Target {
	if l.Trash.Contains(p) {
		return Target{ID: types.TrashID, Kind: KindTrash}
	}
	if l.Placeholder.Contains(p) {
		return Target{ID: types.PlaceholderID, Kind: KindPlaceholder}
	}
	for _, col := range l.Columns {
		if !col.Rect.Contains(p) {
			continue
		}
		for _, card := range col.Cards {
			if card.Rect.Contains(p) {
				return Target{ID: card.ID, Kind: KindCard}
			}
		}
		if col.Header().Contains(p) {
			return Target{ID: col.ID, Kind: KindColumnHeader}
		}
		return Target{ID: col.ID, Kind: KindColumn}
	}
	return Target{Kind: KindNone}
}

// Bounds returns the rectangle covering the whole board
func (l Layout) Bounds() dnd.Rect {
	rects := []dnd.Rect{l.Placeholder, l.Trash}
	for _, col := range l.Columns {
		rects = append(rects, col.Rect)
	}

	bounds := rects[0]
	for _, r := range rects[1:] {
		left := min(bounds.Left, r.Left)
		top := min(bounds.Top, r.Top)
		right := max(bounds.Right(), r.Right())
		bottom := max(bounds.Bottom(), r.Bottom())
		bounds = dnd.Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
	}
	return bounds
}
