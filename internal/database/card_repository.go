package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// CardRepo handles all card-related database operations.
type CardRepo struct {
	db *sql.DB
}

// Create appends a card to the end of a column
func (r *CardRepo) Create(ctx context.Context, columnID types.ColumnID, card models.Card) (*models.Card, error) {
	now := time.Now().UTC()
	if card.CreatedAt.IsZero() {
		card.CreatedAt = now
	}
	card.UpdatedAt = now

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var position int
		err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(position), -1) + 1 FROM cards WHERE column_id = ?`, columnID.String(),
		).Scan(&position)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO cards (id, column_id, title, description, position, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			card.ID.String(), columnID.String(), card.Title, card.Description, position, card.CreatedAt, card.UpdatedAt,
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("creating card %s: %w", card.ID, err)
	}

	return &card, nil
}

// GetByID retrieves a single card's details
func (r *CardRepo) GetByID(ctx context.Context, id types.CardID) (*models.Card, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, created_at, updated_at FROM cards WHERE id = ?`, id.String())
	card, err := scanCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("card %s: %w", id, ErrNotFound)
	}
	return card, err
}

// GetAll retrieves every card's details, keyed by id
func (r *CardRepo) GetAll(ctx context.Context) (map[types.CardID]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, created_at, updated_at FROM cards`)
	if err != nil {
		return nil, fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	cards := make(map[types.CardID]*models.Card)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning card row: %w", err)
		}
		cards[card.ID] = card
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating card rows: %w", err)
	}
	return cards, nil
}

// Update changes a card's title and description
func (r *CardRepo) Update(ctx context.Context, id types.CardID, title, description string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cards SET title = ?, description = ?, updated_at = ? WHERE id = ?`,
		title, description, time.Now().UTC(), id.String(),
	)
	if err != nil {
		return err
	}
	return expectOneRow(result, "card", id)
}

// Delete removes a card
func (r *CardRepo) Delete(ctx context.Context, id types.CardID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	return expectOneRow(result, "card", id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCard(s scanner) (*models.Card, error) {
	var (
		id          string
		description sql.NullString
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
	)
	card := &models.Card{}
	if err := s.Scan(&id, &card.Title, &description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	card.ID = types.CardID(id)
	card.Description = NullStringToString(description)
	card.CreatedAt = NullTimeToTime(createdAt)
	card.UpdatedAt = NullTimeToTime(updatedAt)
	return card, nil
}
