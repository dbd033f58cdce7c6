package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// ColumnRepo handles all column-related database operations.
type ColumnRepo struct {
	db *sql.DB
}

// Create appends a column after the last stored column
func (r *ColumnRepo) Create(ctx context.Context, id types.ColumnID, name string) (*models.Column, error) {
	var position int
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) + 1 FROM columns`).Scan(&position); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO columns (id, name, position) VALUES (?, ?, ?)`,
			id.String(), name, position,
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("creating column %s: %w", id, err)
	}

	return &models.Column{ID: id, Name: name, Position: position}, nil
}

// GetAll retrieves all columns in position order
func (r *ColumnRepo) GetAll(ctx context.Context) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, position FROM columns ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	defer rows.Close()

	var columns []*models.Column
	for rows.Next() {
		col := &models.Column{}
		var id string
		if err := rows.Scan(&id, &col.Name, &col.Position); err != nil {
			return nil, fmt.Errorf("scanning column row: %w", err)
		}
		col.ID = types.ColumnID(id)
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column rows: %w", err)
	}

	return columns, nil
}

// GetByID retrieves a single column
func (r *ColumnRepo) GetByID(ctx context.Context, id types.ColumnID) (*models.Column, error) {
	col := &models.Column{ID: id}
	err := r.db.QueryRowContext(ctx,
		`SELECT name, position FROM columns WHERE id = ?`, id.String(),
	).Scan(&col.Name, &col.Position)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("column %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return col, nil
}

// UpdateName renames a column
func (r *ColumnRepo) UpdateName(ctx context.Context, id types.ColumnID, name string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE columns SET name = ? WHERE id = ?`, name, id.String())
	if err != nil {
		return err
	}
	return expectOneRow(result, "column", id)
}

// Delete removes a column and, through the foreign key, its cards
func (r *ColumnRepo) Delete(ctx context.Context, id types.ColumnID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM columns WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	return expectOneRow(result, "column", id)
}

// Reorder stores ids in the given order; unknown ids are ignored
func (r *ColumnRepo) Reorder(ctx context.Context, ids []types.ColumnID) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for i, id := range ids {
			if _, err := tx.ExecContext(ctx, `UPDATE columns SET position = ? WHERE id = ?`, i, id.String()); err != nil {
				return err
			}
		}
		return nil
	})
}

func expectOneRow(result sql.Result, kind string, id types.ID) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}
