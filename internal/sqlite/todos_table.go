// This file implements the data-access operations for the todos table.
// Callers are expected to do validation and existence checks; the methods
// here translate directly to single SQL statements.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/todolist/pkg/types"
)

// ListAll returns every todo ordered newest first. The id tiebreak keeps
// the order deterministic for rows created within the same second.
func (s *Store) ListAll(ctx context.Context) ([]types.Todo, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, text, completed, created_at, updated_at FROM todos ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	defer rows.Close()

	todos := []types.Todo{}
	for rows.Next() {
		var t types.Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning todo row: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todo rows: %w", err)
	}
	return todos, nil
}

// GetByID returns the todo with the given id.
// Returns types.ErrNotFound if no row exists.
func (s *Store) GetByID(ctx context.Context, id int64) (types.Todo, error) {
	var t types.Todo
	err := s.db.QueryRowContext(ctx,
		"SELECT id, text, completed, created_at, updated_at FROM todos WHERE id = ?", id,
	).Scan(&t.ID, &t.Text, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Todo{}, types.ErrNotFound
		}
		return types.Todo{}, fmt.Errorf("getting todo %d: %w", id, err)
	}
	return t, nil
}

// Insert creates a todo with completed=false and both timestamps set to
// the same instant. Returns the generated id.
func (s *Store) Insert(ctx context.Context, text string) (int64, error) {
	if text == "" {
		return 0, types.ErrEmptyText
	}

	now := time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO todos (text, completed, created_at, updated_at) VALUES (?, 0, ?, ?)",
		text, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting todo: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading generated id: %w", err)
	}
	return id, nil
}

// UpdatePartial updates only the fields supplied in the patch and always
// refreshes updated_at. Returns the number of affected rows; zero means the
// id matched nothing.
func (s *Store) UpdatePartial(ctx context.Context, id int64, patch types.UpdatePatch) (int64, error) {
	if patch.IsZero() {
		return 0, types.ErrEmptyPatch
	}

	sets := []string{}
	args := []any{}
	if patch.Text != nil {
		sets = append(sets, "text = ?")
		args = append(args, *patch.Text)
	}
	if patch.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *patch.Completed)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().Unix(), id)

	res, err := s.db.ExecContext(ctx,
		"UPDATE todos SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...,
	)
	if err != nil {
		return 0, fmt.Errorf("updating todo %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}
	return affected, nil
}

// DeleteByID removes the todo with the given id. Returns the number of
// affected rows; zero means the id matched nothing.
func (s *Store) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("deleting todo %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}
	return affected, nil
}
