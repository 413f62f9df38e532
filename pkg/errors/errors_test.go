package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAppError_Classification(t *testing.T) {
	notFound := NewNotFoundError("movie")
	wrapped := fmt.Errorf("lookup: %w", notFound)

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.Equal(t, "movie not found", GetAppError(wrapped).Message)
	assert.Equal(t, http.StatusNotFound, notFound.HTTPStatus)

	assert.True(t, IsValidation(NewValidationError("bad id")))
	assert.Nil(t, GetAppError(stderrors.New("plain")))
}

func TestAppError_StackTrace(t *testing.T) {
	assert.Empty(t, NewNotFoundError("movie").StackTrace)
	assert.Empty(t, NewValidationError("bad id").StackTrace)

	err := NewDatabaseError("Query", stderrors.New("throttled"))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.Contains(t, err.StackTrace, "TestAppError_StackTrace")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseError("GetItem", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "DATABASE: database operation 'GetItem' failed (caused by: connection reset)", err.Error())
}

func TestErrorHandler_Handle(t *testing.T) {
	cause := stderrors.New("ResourceNotFoundException: table missing")

	t.Run("debug mode exposes the cause", func(t *testing.T) {
		h := NewErrorHandler(zap.NewNop(), true)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/movies/1", nil)

		h.Handle(w, r, NewDatabaseError("GetItem", cause).WithCode("ResourceNotFoundException"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var body map[string]map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "DATABASE", body["error"]["type"])
		assert.Equal(t, "ResourceNotFoundException", body["error"]["code"])
		details, ok := body["error"]["details"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, cause.Error(), details["cause"])
	})

	t.Run("plain errors become internal errors", func(t *testing.T) {
		h := NewErrorHandler(zap.NewNop(), false)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/movies/1", nil)

		h.Handle(w, r, cause)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":{"type":"INTERNAL","message":"An internal error occurred"}}`, w.Body.String())
	})

	t.Run("server errors log their origin", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		h := NewErrorHandler(zap.New(core), false)
		w := httptest.NewRecorder()

		h.Handle(w, httptest.NewRequest(http.MethodGet, "/movies/1", nil), NewDatabaseError("GetItem", cause))

		entries := logs.FilterMessage("database operation 'GetItem' failed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.Contains(t, entries[0].ContextMap()["stack"], "TestErrorHandler_Handle")
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		h := NewErrorHandler(zap.NewNop(), false)
		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodGet, "/", nil), nil)
		assert.Equal(t, 0, w.Body.Len())
	})
}
