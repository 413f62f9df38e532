package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/movies/5", nil))

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/movies/5", fields["path"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
}

func TestRequestDump(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	reached := false
	handler := RequestDump(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the dump is written before the handler runs
		assert.Equal(t, 1, logs.FilterMessage("[EVENT]").Len())
		reached = true
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/movies/5?cast=true", nil))

	assert.True(t, reached)
	entry := logs.FilterMessage("[EVENT]").All()[0]
	assert.Equal(t, "/movies/5?cast=true", entry.ContextMap()["url"])
}
