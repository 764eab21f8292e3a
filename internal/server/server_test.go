package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/gopoly"
	"github.com/njchilds90/gopoly/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter() *gin.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(config.Default().Server, logger)
}

func postTool(t *testing.T, r http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/tool", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleTool_Add(t *testing.T) {
	r := setupTestRouter()
	w := postTool(t, r, `{"tool":"add","params":{
		"a":{"type":"poly","terms":[{"coefficient":5,"exponent":11},{"coefficient":-17,"exponent":5}]},
		"b":{"type":"poly","terms":[{"coefficient":15,"exponent":11}]}}}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp gopoly.ToolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error)
	assert.Equal(t, "+ 20 x^11 - 17 x^5", resp.String)
}

func TestHandleTool_ToolError(t *testing.T) {
	r := setupTestRouter()
	w := postTool(t, r, `{"tool":"monomial_divide","params":{
		"a":{"coefficient":5,"exponent":11},
		"b":{"coefficient":0,"exponent":3}}}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp gopoly.ToolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "invalid monomial division")
}

func TestHandleTool_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"tool":`},
		{"unknown field", `{"tool":"add","extra":1}`},
		{"trailing data", `{"tool":"add"} {"tool":"add"}`},
	}
	r := setupTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postTool(t, r, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestHandleTool_BodyTooLarge(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Default().Server
	cfg.MaxBodyBytes = 16
	r := NewRouter(cfg, logger)

	w := postTool(t, r, `{"tool":"render","params":{"poly":{"type":"poly","terms":[]}}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleTool_MethodNotAllowed(t *testing.T) {
	r := setupTestRouter()
	req, _ := http.NewRequest(http.MethodGet, "/tool", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, http.StatusOK, w.Code)
}

func TestHandleSchema(t *testing.T) {
	r := setupTestRouter()
	req, _ := http.NewRequest(http.MethodGet, "/schema", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, gopoly.MCPToolSpec(), w.Body.String())
}

func TestHandleHealth_RequestID(t *testing.T) {
	r := setupTestRouter()

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	req, _ = http.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestMetrics_CountsToolCalls(t *testing.T) {
	r := setupTestRouter()
	postTool(t, r, `{"tool":"degree","params":{"poly":{"type":"monomial","coefficient":1,"exponent":3}}}`)

	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `gopoly_tool_calls_total{result="ok",tool="degree"}`))
}

func TestRecoverer(t *testing.T) {
	r := setupTestRouter()
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	req, _ := http.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}
