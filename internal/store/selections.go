package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/leighmacdonald/flyout/internal/menu"
)

var ErrQuery = errors.New("selection query error")

// Selection is one recorded menu selection.
type Selection struct {
	ID          int64
	MenuID      string
	OptionID    string
	OptionLabel string
	CreatedOn   time.Time
}

// Selections reads and writes the selection history.
type Selections struct {
	db *sql.DB
}

func NewSelections(db *sql.DB) *Selections {
	return &Selections{db: db}
}

// Record saves a selected option for the given menu.
func (s *Selections) Record(ctx context.Context, menuID string, option menu.Option) error {
	const query = `INSERT INTO selections (menu_id, option_id, option_label, created_on) VALUES (?, ?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, query, menuID, option.ID, option.Label, time.Now().Unix()); err != nil {
		return errors.Join(err, ErrQuery)
	}

	return nil
}

// Recent returns the most recent selections, newest first.
func (s *Selections) Recent(ctx context.Context, limit int) ([]Selection, error) {
	const query = `
		SELECT selection_id, menu_id, option_id, option_label, created_on
		FROM selections
		ORDER BY created_on DESC, selection_id DESC
		LIMIT ?`

	rows, errQuery := s.db.QueryContext(ctx, query, limit)
	if errQuery != nil {
		return nil, errors.Join(errQuery, ErrQuery)
	}
	defer rows.Close()

	var selections []Selection
	for rows.Next() {
		var (
			row       Selection
			createdOn int64
		)
		if err := rows.Scan(&row.ID, &row.MenuID, &row.OptionID, &row.OptionLabel, &createdOn); err != nil {
			return nil, errors.Join(err, ErrQuery)
		}
		row.CreatedOn = time.Unix(createdOn, 0)
		selections = append(selections, row)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Join(err, ErrQuery)
	}

	return selections, nil
}

// Prune drops everything but the newest keep rows.
func (s *Selections) Prune(ctx context.Context, keep int) error {
	const query = `
		DELETE FROM selections
		WHERE selection_id NOT IN (
			SELECT selection_id FROM selections
			ORDER BY created_on DESC, selection_id DESC
			LIMIT ?
		)`

	if _, err := s.db.ExecContext(ctx, query, keep); err != nil {
		return errors.Join(err, ErrQuery)
	}

	return nil
}
