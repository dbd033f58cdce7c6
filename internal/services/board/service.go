// Package board persists the board and the details of its columns and cards.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/thenoetrevino/swimlane/internal/database"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Service defines all board-related business operations
type Service interface {
	// Read operations
	Load(ctx context.Context) (*Snapshot, error)
	GetCard(ctx context.Context, id types.CardID) (*models.Card, error)

	// Write operations
	SaveBoard(ctx context.Context, board models.Board, order []types.ColumnID) error
	CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error)
	UpdateCard(ctx context.Context, id types.CardID, title, description string) error
	CreateColumn(ctx context.Context, req CreateColumnRequest) (*models.Column, error)
	RenameColumn(ctx context.Context, id types.ColumnID, name string) error
	DeleteColumn(ctx context.Context, id types.ColumnID) error
	ReorderColumns(ctx context.Context, order []types.ColumnID) error
}

// CreateCardRequest encapsulates data for creating a card
type CreateCardRequest struct {
	ID          types.CardID // Optional: generated when empty
	ColumnID    types.ColumnID
	Title       string
	Description string
}

// CreateColumnRequest encapsulates data for creating a column
type CreateColumnRequest struct {
	ID   types.ColumnID
	Name string
}

// Snapshot is the stored board together with column and card details
type Snapshot struct {
	Board   models.Board
	Columns []*models.Column // in display order
	Cards   map[types.CardID]*models.Card
}

// Order returns the stored column display order
func (s *Snapshot) Order() []types.ColumnID {
	order := make([]types.ColumnID, len(s.Columns))
	for i, c := range s.Columns {
		order[i] = c.ID
	}
	return order
}

// Column returns the details of a column, or nil
func (s *Snapshot) Column(id types.ColumnID) *models.Column {
	for _, c := range s.Columns {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Card returns the details of a card, or nil
func (s *Snapshot) Card(id types.CardID) *models.Card {
	return s.Cards[id]
}

// service implements Service on top of the repository
type service struct {
	store  database.DataStore
	logger *slog.Logger
}

// NewService creates a new board service
func NewService(store database.DataStore) Service {
	return &service{
		store:  store,
		logger: slog.Default().With("component", "board-service"),
	}
}

// Load reads the whole board
func (s *service) Load(ctx context.Context) (*Snapshot, error) {
	board, err := s.store.LoadBoard(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading board: %w", err)
	}
	columns, err := s.store.GetColumns(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading columns: %w", err)
	}
	cards, err := s.store.GetCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading cards: %w", err)
	}
	return &Snapshot{Board: board, Columns: columns, Cards: cards}, nil
}

// GetCard retrieves a card's details
func (s *service) GetCard(ctx context.Context, id types.CardID) (*models.Card, error) {
	card, err := s.store.GetCard(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrCardNotFound)
	}
	return card, nil
}

// SaveBoard stores card placement and column order
func (s *service) SaveBoard(ctx context.Context, board models.Board, order []types.ColumnID) error {
	if err := s.store.SaveBoard(ctx, board, order); err != nil {
		return err
	}
	s.logger.Debug("board saved", "board", board.String(), "order", order)
	return nil
}

// CreateCard validates and appends a card to a column
func (s *service) CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return nil, ErrTitleTooLong
	}

	if _, err := s.store.GetColumnByID(ctx, req.ColumnID); err != nil {
		return nil, mapNotFound(err, ErrColumnNotFound)
	}

	id := req.ID
	if id.IsZero() {
		id = types.CardID(uuid.NewString())
	}

	card, err := s.store.CreateCard(ctx, req.ColumnID, models.Card{
		ID:          id,
		Title:       title,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("card created", "id", card.ID, "column", req.ColumnID)
	return card, nil
}

// UpdateCard changes a card's title and description
func (s *service) UpdateCard(ctx context.Context, id types.CardID, title, description string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return ErrTitleTooLong
	}
	return mapNotFound(s.store.UpdateCard(ctx, id, title, description), ErrCardNotFound)
}

// CreateColumn appends a column with the given id
func (s *service) CreateColumn(ctx context.Context, req CreateColumnRequest) (*models.Column, error) {
	if req.ID.IsZero() || req.ID.IsSentinel() {
		return nil, ErrInvalidColumnID
	}
	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) > models.MaxColumnNameLength {
		return nil, ErrNameTooLong
	}

	if _, err := s.store.GetColumnByID(ctx, req.ID); err == nil {
		return nil, ErrColumnExists
	} else if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	column, err := s.store.CreateColumn(ctx, req.ID, name)
	if err != nil {
		return nil, err
	}
	s.logger.Info("column created", "id", column.ID)
	return column, nil
}

// RenameColumn changes a column's display name
func (s *service) RenameColumn(ctx context.Context, id types.ColumnID, name string) error {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > models.MaxColumnNameLength {
		return ErrNameTooLong
	}
	return mapNotFound(s.store.UpdateColumnName(ctx, id, name), ErrColumnNotFound)
}

// DeleteColumn removes an empty column
func (s *service) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	board, err := s.store.LoadBoard(ctx)
	if err != nil {
		return err
	}
	if !board.Has(id) {
		return ErrColumnNotFound
	}
	if len(board.Cards(id)) > 0 {
		return ErrColumnNotEmpty
	}

	if err := s.store.DeleteColumn(ctx, id); err != nil {
		return mapNotFound(err, ErrColumnNotFound)
	}
	s.logger.Info("column deleted", "id", id)
	return nil
}

// ReorderColumns stores a new column display order
func (s *service) ReorderColumns(ctx context.Context, order []types.ColumnID) error {
	return s.store.ReorderColumns(ctx, order)
}

// mapNotFound swaps the repository's not found error for a service one
func mapNotFound(err, target error) error {
	if errors.Is(err, database.ErrNotFound) {
		return target
	}
	return err
}
