package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/trackascholar/internal/api/middleware"
	"github.com/phrazzld/trackascholar/internal/api/shared"
	"github.com/phrazzld/trackascholar/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestTraceMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var traceID string
	var ctxLogger *slog.Logger
	handler := middleware.NewTraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		ctxLogger = logger.FromContextOrDefault(r.Context(), nil)
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/applicants", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, traceID, shared.TraceIDLength)
	assert.NotNil(t, ctxLogger, "request context should carry a logger")
	assert.Contains(t, buf.String(), traceID, "request log should carry the trace id")
}
