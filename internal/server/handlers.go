package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/mesh-intelligence/todolist/internal/sqlite"
	"github.com/mesh-intelligence/todolist/internal/validate"
	"github.com/mesh-intelligence/todolist/pkg/types"
)

// maxBodyBytes caps request bodies; todo payloads are tiny.
const maxBodyBytes = 1 << 20

// Handler handles HTTP requests for todos.
type Handler struct {
	store  *sqlite.Store
	logger *log.Logger
}

// NewHandler creates a Handler with its dependencies.
func NewHandler(store *sqlite.Store, logger *log.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// handleList processes GET /api/todos.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	todos, err := h.store.ListAll(r.Context())
	if err != nil {
		h.internalError(w, "listing todos", err)
		return
	}
	writeJSON(w, http.StatusOK, todos)
}

// handleCreate processes POST /api/todos. The created row is re-read by
// its generated id so the response carries server-assigned timestamps.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.readBody(w, r)
	if !ok {
		return
	}

	text, ferr := validate.Create(raw)
	if ferr != nil {
		writeFieldErrors(w, ferr)
		return
	}

	id, err := h.store.Insert(r.Context(), text)
	if err != nil {
		h.internalError(w, "creating todo", err)
		return
	}

	todo, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.internalError(w, "re-reading created todo", err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/todos/%d", id))
	writeJSON(w, http.StatusCreated, todo)
}

// handleUpdate processes PUT /api/todos/{id}. Zero affected rows after a
// successful existence check is a valid no-op: the current row is returned
// as if the write had changed it.
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	raw, ok := h.readBody(w, r)
	if !ok {
		return
	}

	patch, ferr := validate.Update(raw)
	if ferr != nil {
		writeFieldErrors(w, ferr)
		return
	}

	if !h.mustExist(w, r, id) {
		return
	}

	if _, err := h.store.UpdatePartial(r.Context(), id, patch); err != nil {
		h.internalError(w, "updating todo", err)
		return
	}

	todo, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			writeError(w, http.StatusNotFound, "todo not found")
			return
		}
		h.internalError(w, "re-reading updated todo", err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

// handleToggle processes POST /api/todos/{id}/toggle. The current value is
// read first and its negation written back; concurrent toggles on the same
// id resolve last-write-wins.
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	current, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			writeError(w, http.StatusNotFound, "todo not found")
			return
		}
		h.internalError(w, "reading todo for toggle", err)
		return
	}

	flipped := !current.Completed
	if _, err := h.store.UpdatePartial(r.Context(), id, types.UpdatePatch{Completed: &flipped}); err != nil {
		h.internalError(w, "toggling todo", err)
		return
	}

	todo, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			writeError(w, http.StatusNotFound, "todo not found")
			return
		}
		h.internalError(w, "re-reading toggled todo", err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

// handleDelete processes DELETE /api/todos/{id}. A row that vanishes
// between the existence check and the delete reports not-found, same as a
// row that never existed.
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if !h.mustExist(w, r, id) {
		return
	}

	affected, err := h.store.DeleteByID(r.Context(), id)
	if err != nil {
		h.internalError(w, "deleting todo", err)
		return
	}
	if affected == 0 {
		writeError(w, http.StatusNotFound, "todo not found or already deleted")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path variable. On failure it writes a 400 and
// returns ok=false.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid todo ID")
		return 0, false
	}
	return id, true
}

// readBody reads the request body with a size cap. On failure it writes a
// 400 and returns ok=false.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable request body")
		return nil, false
	}
	return raw, true
}

// mustExist verifies the row exists before a mutation so callers get an
// accurate 404 instead of an ambiguous zero-rows-affected outcome. On
// failure it writes the response and returns false.
func (h *Handler) mustExist(w http.ResponseWriter, r *http.Request, id int64) bool {
	if _, err := h.store.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			writeError(w, http.StatusNotFound, "todo not found")
			return false
		}
		h.internalError(w, "checking todo existence", err)
		return false
	}
	return true
}

// internalError logs the underlying failure and returns a generic 500; the
// detail never reaches the client.
func (h *Handler) internalError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, "err", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
