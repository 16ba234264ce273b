package errors

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	err := New(http.StatusNotFound, "NOT_FOUND", "Resource not found")

	assert.Equal(t, "Resource not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "NOT_FOUND", err.ErrorCode)
}

func TestErrValidation(t *testing.T) {
	err := ErrValidation("files", "at least one file is required")

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	details, ok := err.Details.(ValidationError)
	require.True(t, ok)
	assert.Equal(t, "files", details.Field)
}

func TestFileRejected(t *testing.T) {
	err := FileRejected("notes.txt", errors.New("unsupported observation file type"))

	assert.Equal(t, ErrUnprocessableEntity.StatusCode, err.StatusCode)
	assert.Equal(t, "FILE_REJECTED", err.ErrorCode)
	assert.Contains(t, err.Message, "notes.txt")
	assert.Equal(t, "unsupported observation file type", err.Details)
}

func TestErrorHandler_HandleError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewErrorHandler(logger)

	t.Run("api error passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/analysis", nil)

		handler.HandleError(w, r, ErrValidation("files", "required"))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "VALIDATION_FAILED", resp.Error.ErrorCode)
	})

	t.Run("plain error becomes internal server error", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/health", nil)

		handler.HandleError(w, r, errors.New("disk exploded"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "disk exploded")
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/health", nil)

		handler.HandleError(w, r, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
