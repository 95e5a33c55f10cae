// Package todostore keeps a client-side, in-memory mirror of the server's
// todo list. Mutations go through the API and the list is re-fetched to
// pick up server-assigned fields; toggle alone is optimistic, flipping the
// local flag immediately and reverting to a captured snapshot on failure.
package todostore

import (
	"context"
	"sync"
	"time"

	"github.com/mesh-intelligence/todolist/pkg/client"
	"github.com/mesh-intelligence/todolist/pkg/types"
)

// Todo is the presentation shape of a task: wire epoch seconds become
// time.Time values.
type Todo struct {
	ID        int64
	Text      string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromWire converts a wire-format todo to the presentation shape.
func fromWire(t types.Todo) Todo {
	return Todo{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: time.Unix(t.CreatedAt, 0),
		UpdatedAt: time.Unix(t.UpdatedAt, 0),
	}
}

// Store holds the reactive todo list state. Fetch errors and mutation
// errors are tracked separately so a failed background refresh is never
// confused with a failed user action.
type Store struct {
	client *client.Client

	mu          sync.Mutex
	todos       []Todo
	loading     bool
	fetchErr    error
	mutationErr error

	subMu  sync.Mutex
	nextID int
	subs   map[int]func()
}

// New creates a Store backed by the given API client. The list is empty
// until the first Refresh.
func New(c *client.Client) *Store {
	return &Store{client: c, subs: make(map[int]func())}
}

// Subscribe registers a callback invoked after every state change. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// notify invokes all subscribers. Called without the state lock held so
// subscribers may read the store.
func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Todos returns a copy of the current list.
func (s *Store) Todos() []Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// Loading reports whether a refresh is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// FetchErr returns the error from the most recent refresh, or nil.
func (s *Store) FetchErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchErr
}

// MutationErr returns the error from the most recent user action, or nil.
func (s *Store) MutationErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutationErr
}

// Refresh re-fetches the full list and replaces local state wholesale.
// Only fetchErr is touched; a failed refresh leaves the current list in
// place.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	s.notify()

	wire, err := s.client.List(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.fetchErr = err
	} else {
		s.fetchErr = nil
		todos := make([]Todo, len(wire))
		for i, t := range wire {
			todos[i] = fromWire(t)
		}
		s.todos = todos
	}
	s.mu.Unlock()
	s.notify()
	return err
}

// Add creates a todo and refreshes. Refreshing instead of splicing the
// response locally guarantees the list matches server ordering and fields
// at the cost of a round trip.
func (s *Store) Add(ctx context.Context, text string) error {
	return s.mutate(ctx, func() error {
		_, err := s.client.Create(ctx, text)
		return err
	})
}

// Update applies a partial update and refreshes.
func (s *Store) Update(ctx context.Context, id int64, patch types.UpdatePatch) error {
	return s.mutate(ctx, func() error {
		_, err := s.client.Update(ctx, id, patch)
		return err
	})
}

// Remove deletes a todo and refreshes.
func (s *Store) Remove(ctx context.Context, id int64) error {
	return s.mutate(ctx, func() error {
		return s.client.Delete(ctx, id)
	})
}

// mutate runs a non-optimistic user action: clear mutationErr, call the
// endpoint, and refresh on success. The awaited call completes before the
// refresh starts, so the refreshed list reflects the mutation.
func (s *Store) mutate(ctx context.Context, call func() error) error {
	s.setMutationErr(nil)

	if err := call(); err != nil {
		s.setMutationErr(err)
		return err
	}

	// A refresh failure here is a fetch problem, not a failed action; it
	// lands in fetchErr and the action still reports success.
	_ = s.Refresh(ctx)
	return nil
}

// Toggle optimistically flips the completed flag for id, then reconciles
// with the server. On endpoint failure the flag is restored to the exact
// value captured before the flip; re-negating the current value instead
// would double-flip if the list changed shape while the call was in
// flight.
func (s *Store) Toggle(ctx context.Context, id int64) error {
	s.setMutationErr(nil)

	s.mu.Lock()
	idx := s.indexOf(id)
	var prevCompleted bool
	if idx >= 0 {
		prevCompleted = s.todos[idx].Completed
		s.todos[idx].Completed = !prevCompleted
		s.todos[idx].UpdatedAt = time.Now()
	}
	s.mu.Unlock()
	if idx >= 0 {
		s.notify()
	}

	if _, err := s.client.Toggle(ctx, id); err != nil {
		s.mu.Lock()
		// The list may have been replaced since the optimistic write;
		// look the row up again and restore the snapshot if it is still
		// there. No snapshot was taken if the row was never observed.
		if cur := s.indexOf(id); cur >= 0 && idx >= 0 {
			s.todos[cur].Completed = prevCompleted
		}
		s.mutationErr = err
		s.mu.Unlock()
		s.notify()
		return err
	}

	_ = s.Refresh(ctx)
	return nil
}

// indexOf returns the position of id in the local list, or -1.
// Caller must hold s.mu.
func (s *Store) indexOf(id int64) int {
	for i, t := range s.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// setMutationErr records a mutation error and notifies subscribers.
func (s *Store) setMutationErr(err error) {
	s.mu.Lock()
	s.mutationErr = err
	s.mu.Unlock()
	s.notify()
}
