package database

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ColumnRepo
	*CardRepo
	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ColumnRepo: &ColumnRepo{db: db},
		CardRepo:   &CardRepo{db: db},
		db:         db,
	}
}

// Wrapper methods for ColumnRepo
func (r *Repository) CreateColumn(ctx context.Context, id types.ColumnID, name string) (*models.Column, error) {
	return r.ColumnRepo.Create(ctx, id, name)
}

func (r *Repository) GetColumns(ctx context.Context) ([]*models.Column, error) {
	return r.ColumnRepo.GetAll(ctx)
}

func (r *Repository) GetColumnByID(ctx context.Context, id types.ColumnID) (*models.Column, error) {
	return r.ColumnRepo.GetByID(ctx, id)
}

func (r *Repository) UpdateColumnName(ctx context.Context, id types.ColumnID, name string) error {
	return r.ColumnRepo.UpdateName(ctx, id, name)
}

func (r *Repository) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	return r.ColumnRepo.Delete(ctx, id)
}

func (r *Repository) ReorderColumns(ctx context.Context, ids []types.ColumnID) error {
	return r.ColumnRepo.Reorder(ctx, ids)
}

// Wrapper methods for CardRepo
func (r *Repository) CreateCard(ctx context.Context, columnID types.ColumnID, card models.Card) (*models.Card, error) {
	return r.CardRepo.Create(ctx, columnID, card)
}

func (r *Repository) GetCard(ctx context.Context, id types.CardID) (*models.Card, error) {
	return r.CardRepo.GetByID(ctx, id)
}

func (r *Repository) GetCards(ctx context.Context) (map[types.CardID]*models.Card, error) {
	return r.CardRepo.GetAll(ctx)
}

func (r *Repository) UpdateCard(ctx context.Context, id types.CardID, title, description string) error {
	return r.CardRepo.Update(ctx, id, title, description)
}

func (r *Repository) DeleteCard(ctx context.Context, id types.CardID) error {
	return r.CardRepo.Delete(ctx, id)
}

// LoadBoard rebuilds the board from the stored columns and card positions
func (r *Repository) LoadBoard(ctx context.Context) (models.Board, error) {
	columns, err := r.ColumnRepo.GetAll(ctx)
	if err != nil {
		return models.Board{}, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, column_id FROM cards ORDER BY column_id, position, created_at`)
	if err != nil {
		return models.Board{}, fmt.Errorf("querying card positions: %w", err)
	}
	defer rows.Close()

	byColumn := make(map[types.ColumnID][]types.CardID)
	for rows.Next() {
		var id, columnID string
		if err := rows.Scan(&id, &columnID); err != nil {
			return models.Board{}, fmt.Errorf("scanning card position: %w", err)
		}
		byColumn[types.ColumnID(columnID)] = append(byColumn[types.ColumnID(columnID)], types.CardID(id))
	}
	if err := rows.Err(); err != nil {
		return models.Board{}, fmt.Errorf("iterating card positions: %w", err)
	}

	board := models.NewBoard()
	for _, col := range columns {
		board = board.With(col.ID, byColumn[col.ID]...)
	}
	return board, nil
}

// SaveBoard makes the stored columns and card positions match board.
// Columns are positioned by order, then by board key order for any column
// order does not mention. Columns and cards missing from the board are
// deleted; cards new to the store are inserted titled by their id.
func (r *Repository) SaveBoard(ctx context.Context, board models.Board, order []types.ColumnID) error {
	if err := board.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}

	positions := columnPositions(board, order)

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		storedColumns, err := queryIDs(ctx, tx, `SELECT id FROM columns`)
		if err != nil {
			return err
		}
		storedCards, err := queryIDs(ctx, tx, `SELECT id FROM cards`)
		if err != nil {
			return err
		}

		for i, col := range positions {
			if _, ok := storedColumns[col]; ok {
				_, err = tx.ExecContext(ctx, `UPDATE columns SET position = ? WHERE id = ?`, i, col.String())
			} else {
				_, err = tx.ExecContext(ctx, `INSERT INTO columns (id, name, position) VALUES (?, '', ?)`, col.String(), i)
			}
			if err != nil {
				return fmt.Errorf("saving column %s: %w", col, err)
			}
		}

		onBoard := make(map[types.CardID]struct{})
		for _, col := range board.Keys() {
			for i, card := range board.Cards(col) {
				onBoard[card] = struct{}{}
				if _, ok := storedCards[card]; ok {
					_, err = tx.ExecContext(ctx,
						`UPDATE cards SET column_id = ?, position = ? WHERE id = ?`,
						col.String(), i, card.String())
				} else {
					_, err = tx.ExecContext(ctx,
						`INSERT INTO cards (id, column_id, title, position) VALUES (?, ?, ?, ?)`,
						card.String(), col.String(), card.String(), i)
				}
				if err != nil {
					return fmt.Errorf("saving card %s: %w", card, err)
				}
			}
		}

		for card := range storedCards {
			if _, ok := onBoard[card]; ok {
				continue
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, card.String()); err != nil {
				return fmt.Errorf("deleting card %s: %w", card, err)
			}
		}

		for col := range storedColumns {
			if board.Has(col) {
				continue
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM columns WHERE id = ?`, col.String()); err != nil {
				return fmt.Errorf("deleting column %s: %w", col, err)
			}
		}
		return nil
	})
}

// columnPositions lists the board's columns in display order
func columnPositions(board models.Board, order []types.ColumnID) []types.ColumnID {
	positions := make([]types.ColumnID, 0, board.Len())
	for _, col := range order {
		if board.Has(col) && !slices.Contains(positions, col) {
			positions = append(positions, col)
		}
	}
	for _, col := range board.Keys() {
		if !slices.Contains(positions, col) {
			positions = append(positions, col)
		}
	}
	return positions
}

func queryIDs(ctx context.Context, tx *sql.Tx, query string) (map[types.ID]struct{}, error) {
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[types.ID]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[types.ID(id)] = struct{}{}
	}
	return ids, rows.Err()
}
