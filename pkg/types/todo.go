package types

import "errors"

// Todo represents a single task row as stored and as sent over the wire.
// CreatedAt and UpdatedAt are integer epoch seconds; the client-side store
// converts them to time.Time for presentation.
type Todo struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// UpdatePatch carries the fields of a partial update. A nil field means
// "not supplied"; supplied fields are written as-is and updated_at is
// refreshed regardless of whether any value actually changed.
type UpdatePatch struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// IsZero reports whether the patch supplies no fields at all.
func (p UpdatePatch) IsZero() bool {
	return p.Text == nil && p.Completed == nil
}

// Storage and entity operation errors.
var (
	ErrNotFound   = errors.New("todo not found")
	ErrInvalidID  = errors.New("invalid todo ID")
	ErrEmptyText  = errors.New("todo text must not be empty")
	ErrEmptyPatch = errors.New("update patch supplies no fields")
)
