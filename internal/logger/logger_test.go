package logger

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

func TestNew(t *testing.T) {
	log, err := New("debug", "console")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = New("warn", "json")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	_, err = New("loud", "json")
	assert.Error(t, err)

	_, err = New("info", "xml")
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		requestID string
		level     zapcore.Level
		message   string
	}{
		{name: "Success", status: http.StatusOK, level: zapcore.InfoLevel, message: "Request completed"},
		{name: "ClientError", status: http.StatusNotFound, requestID: "req-1", level: zapcore.WarnLevel, message: "Client error"},
		{name: "ServerError", status: http.StatusInternalServerError, level: zapcore.ErrorLevel, message: "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			handler := Middleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			req := httptest.NewRequest(http.MethodGet, "/hotels", nil)
			if tt.requestID != "" {
				req.Header.Set(RequestIDHeader, tt.requestID)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.message, entry.Message)
			assert.Equal(t, int64(tt.status), entry.ContextMap()["status"])

			gotID := rr.Header().Get(RequestIDHeader)
			assert.NotEmpty(t, gotID)
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, gotID)
			}
		})
	}
}
