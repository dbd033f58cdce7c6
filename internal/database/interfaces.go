// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// ColumnReader defines read operations for columns.
type ColumnReader interface {
	GetColumns(ctx context.Context) ([]*models.Column, error)
	GetColumnByID(ctx context.Context, id types.ColumnID) (*models.Column, error)
}

// ColumnWriter defines write operations for columns.
type ColumnWriter interface {
	CreateColumn(ctx context.Context, id types.ColumnID, name string) (*models.Column, error)
	UpdateColumnName(ctx context.Context, id types.ColumnID, name string) error
	DeleteColumn(ctx context.Context, id types.ColumnID) error
	ReorderColumns(ctx context.Context, ids []types.ColumnID) error
}

// CardReader defines read operations for card details.
type CardReader interface {
	GetCard(ctx context.Context, id types.CardID) (*models.Card, error)
	GetCards(ctx context.Context) (map[types.CardID]*models.Card, error)
}

// CardWriter defines write operations for card details.
type CardWriter interface {
	CreateCard(ctx context.Context, columnID types.ColumnID, card models.Card) (*models.Card, error)
	UpdateCard(ctx context.Context, id types.CardID, title, description string) error
	DeleteCard(ctx context.Context, id types.CardID) error
}

// BoardStore loads and saves card placement as a whole.
type BoardStore interface {
	LoadBoard(ctx context.Context) (models.Board, error)
	SaveBoard(ctx context.Context, board models.Board, order []types.ColumnID) error
}

// DataStore defines the unified interface for all data operations.
type DataStore interface {
	ColumnReader
	ColumnWriter
	CardReader
	CardWriter
	BoardStore
}

var _ DataStore = (*Repository)(nil)
