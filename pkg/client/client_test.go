// Unit tests for the typed API client against stub handlers.
package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/todolist/pkg/types"
)

func TestList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/todos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]types.Todo{
			{ID: 2, Text: "newer", CreatedAt: 20, UpdatedAt: 20},
			{ID: 1, Text: "older", CreatedAt: 10, UpdatedAt: 10},
		})
	}))
	defer srv.Close()

	todos, err := New(srv.URL).List(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.EqualValues(t, 2, todos[0].ID)
}

func TestCreateSendsText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "buy milk", body["text"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(types.Todo{ID: 1, Text: body["text"]})
	}))
	defer srv.Close()

	todo, err := New(srv.URL).Create(context.Background(), "buy milk")
	require.NoError(t, err)
	assert.EqualValues(t, 1, todo.ID)
}

func TestErrorEnvelopeDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"validation failed","fieldErrors":{"text":["minLength: length must be >= 1"]}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Create(context.Background(), "")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "validation failed", apiErr.Message)
	assert.Contains(t, apiErr.FieldErrors, "text")
}

func TestIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"todo not found"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).Delete(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	_, err = New(srv.URL).Toggle(context.Background(), 999)
	assert.True(t, IsNotFound(err))
}

func TestNonEnvelopeErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).List(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}
