package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	InitWithWriter("test-service", "debug", buf)

	router := gin.New()
	router.Use(GinLoggerMiddleware())
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/fail", func(c *gin.Context) { c.JSON(http.StatusInternalServerError, gin.H{"message": "boom"}) })
	return router
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestGinLoggerMiddleware_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	router := setupTestRouter(&buf)

	req, _ := http.NewRequest(http.MethodGet, "/ok?page=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, requestID)

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, requestID, entry["request_id"])
	assert.Equal(t, "/ok", entry["path"])
	assert.Equal(t, "page=1", entry["query"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, "HTTP request", entry["message"])
}

func TestGinLoggerMiddleware_KeepsIncomingRequestID(t *testing.T) {
	var buf bytes.Buffer
	router := setupTestRouter(&buf)

	req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-42", decodeLogLine(t, &buf)["request_id"])
}

func TestGinLoggerMiddleware_ServerErrorLoggedAsError(t *testing.T) {
	var buf bytes.Buffer
	router := setupTestRouter(&buf)

	req, _ := http.NewRequest(http.MethodGet, "/fail", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "error", decodeLogLine(t, &buf)["level"])
}

func TestParseLevel_FallsBackToInfo(t *testing.T) {
	assert.Equal(t, "info", parseLevel("not-a-level").String())
	assert.Equal(t, "info", parseLevel("").String())
	assert.Equal(t, "warn", parseLevel("warn").String())
}
