// Unit tests for the todos table data-access operations.
package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/todolist/pkg/types"
)

// setupStore creates a Store backed by a fresh database file.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "todos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestInsert(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		check func(t *testing.T, s *Store)
	}{
		{
			name: "new todo defaults to not completed with equal timestamps",
			check: func(t *testing.T, s *Store) {
				id, err := s.Insert(ctx, "buy milk")
				require.NoError(t, err)

				got, err := s.GetByID(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, "buy milk", got.Text)
				assert.False(t, got.Completed)
				assert.Equal(t, got.CreatedAt, got.UpdatedAt)
				assert.Positive(t, got.CreatedAt)
			},
		},
		{
			name: "generated ids are unique and increasing",
			check: func(t *testing.T, s *Store) {
				first, err := s.Insert(ctx, "first")
				require.NoError(t, err)
				second, err := s.Insert(ctx, "second")
				require.NoError(t, err)
				assert.Greater(t, second, first)
			},
		},
		{
			name: "empty text is rejected at the store boundary",
			check: func(t *testing.T, s *Store) {
				_, err := s.Insert(ctx, "")
				assert.ErrorIs(t, err, types.ErrEmptyText)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, setupStore(t))
		})
	}
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	id, err := s.Insert(ctx, "find me")
	require.NoError(t, err)

	got, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "find me", got.Text)

	_, err = s.GetByID(ctx, id+100)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListAll(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	empty, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	var ids []int64
	for _, text := range []string{"oldest", "middle", "newest"} {
		id, err := s.Insert(ctx, text)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	todos, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 3)

	// Newest first; the id tiebreak keeps rows created within the same
	// second in insertion-reverse order.
	assert.Equal(t, ids[2], todos[0].ID)
	assert.Equal(t, ids[1], todos[1].ID)
	assert.Equal(t, ids[0], todos[2].ID)
}

func TestUpdatePartial(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		check func(t *testing.T, s *Store)
	}{
		{
			name: "text-only patch leaves completed untouched",
			check: func(t *testing.T, s *Store) {
				id, err := s.Insert(ctx, "original")
				require.NoError(t, err)

				affected, err := s.UpdatePartial(ctx, id, types.UpdatePatch{Text: strPtr("edited")})
				require.NoError(t, err)
				assert.EqualValues(t, 1, affected)

				got, err := s.GetByID(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, "edited", got.Text)
				assert.False(t, got.Completed)
			},
		},
		{
			name: "completed-only patch leaves text untouched",
			check: func(t *testing.T, s *Store) {
				id, err := s.Insert(ctx, "keep text")
				require.NoError(t, err)

				affected, err := s.UpdatePartial(ctx, id, types.UpdatePatch{Completed: boolPtr(true)})
				require.NoError(t, err)
				assert.EqualValues(t, 1, affected)

				got, err := s.GetByID(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, "keep text", got.Text)
				assert.True(t, got.Completed)
			},
		},
		{
			name: "update always refreshes updated_at",
			check: func(t *testing.T, s *Store) {
				id, err := s.Insert(ctx, "stamp me")
				require.NoError(t, err)
				before, err := s.GetByID(ctx, id)
				require.NoError(t, err)

				_, err = s.UpdatePartial(ctx, id, types.UpdatePatch{Completed: boolPtr(true)})
				require.NoError(t, err)

				after, err := s.GetByID(ctx, id)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, after.UpdatedAt, before.UpdatedAt)
				assert.Equal(t, before.CreatedAt, after.CreatedAt)
			},
		},
		{
			name: "unknown id affects zero rows",
			check: func(t *testing.T, s *Store) {
				affected, err := s.UpdatePartial(ctx, 999, types.UpdatePatch{Text: strPtr("x")})
				require.NoError(t, err)
				assert.Zero(t, affected)
			},
		},
		{
			name: "empty patch is rejected",
			check: func(t *testing.T, s *Store) {
				_, err := s.UpdatePartial(ctx, 1, types.UpdatePatch{})
				assert.ErrorIs(t, err, types.ErrEmptyPatch)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, setupStore(t))
		})
	}
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	id, err := s.Insert(ctx, "delete me")
	require.NoError(t, err)

	affected, err := s.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	_, err = s.GetByID(ctx, id)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Repeating the delete matches nothing.
	affected, err = s.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestToggleTwiceRoundTrips(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	id, err := s.Insert(ctx, "toggle me")
	require.NoError(t, err)

	for _, want := range []bool{true, false} {
		cur, err := s.GetByID(ctx, id)
		require.NoError(t, err)

		flipped := !cur.Completed
		_, err = s.UpdatePartial(ctx, id, types.UpdatePatch{Completed: &flipped})
		require.NoError(t, err)

		got, err := s.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got.Completed)
		assert.GreaterOrEqual(t, got.UpdatedAt, cur.UpdatedAt)
	}
}
