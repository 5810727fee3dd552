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

func loggedRequest(t *testing.T, handler http.HandlerFunc, target string) (*httptest.ResponseRecorder, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)
	wrapped := Logger(zap.New(core))(handler)

	recorder := httptest.NewRecorder()
	wrapped.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder, logs
}

func TestLoggerRecordsStatusAndSize(t *testing.T) {
	recorder, logs := loggedRequest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"movie 999 not found"}`))
	}, "/movies/999?page=2")

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "HTTP request", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/movies/999", fields["path"])
	assert.Equal(t, "page=2", fields["query"])
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
	assert.Equal(t, int64(len(`{"detail":"movie 999 not found"}`)), fields["bytes"])
}

func TestLoggerDefaultsToOK(t *testing.T) {
	// A handler that writes nothing still logs an implicit 200
	recorder, logs := loggedRequest(t, func(w http.ResponseWriter, r *http.Request) {}, "/health")

	assert.Equal(t, http.StatusOK, recorder.Code)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, int64(http.StatusOK), logs.All()[0].ContextMap()["status"])
}
