// Package server exposes the gopoly tool surface over HTTP.
//
//	POST /tool    execute a tool call
//	GET  /schema  tool schema for agent registration
//	GET  /health  liveness check
//	GET  /metrics prometheus metrics
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/njchilds90/gopoly"
	"github.com/njchilds90/gopoly/internal/config"
)

const requestIDHeader = "X-Request-ID"

var (
	toolCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gopoly_tool_calls_total",
		Help: "Tool calls by tool and result",
	}, []string{"tool", "result"})

	toolCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gopoly_tool_call_duration_seconds",
		Help:    "Tool call latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"tool"})
)

var knownTools = func() map[string]bool {
	out := map[string]bool{}
	for _, name := range gopoly.ToolNames() {
		out[name] = true
	}
	return out
}()

type Handlers struct {
	logger       *slog.Logger
	maxBodyBytes int64
}

func NewHandlers(cfg config.ServerConfig, logger *slog.Logger) *Handlers {
	return &Handlers{logger: logger, maxBodyBytes: cfg.MaxBodyBytes}
}

// NewRouter returns a gin engine with request IDs, panic recovery and all routes.
func NewRouter(cfg config.ServerConfig, logger *slog.Logger) *gin.Engine {
	h := NewHandlers(cfg, logger)
	r := gin.New()
	r.Use(requestID(), h.recoverer())
	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r gin.IRoutes, h *Handlers) {
	r.POST("/tool", h.HandleTool)
	r.GET("/schema", h.HandleSchema)
	r.GET("/health", h.HandleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (h *Handlers) HandleTool(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	defer c.Request.Body.Close()

	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	var req gopoly.ToolRequest
	if err := dec.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if dec.More() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: trailing data"})
		return
	}

	label := req.Tool
	if !knownTools[label] {
		label = "unknown"
	}
	start := time.Now()
	resp := gopoly.HandleToolCall(req)
	toolCallDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())

	result := "ok"
	if resp.Error != "" {
		result = "error"
		h.logger.Info("tool call failed",
			slog.String("tool", req.Tool),
			slog.String("request_id", c.GetString(requestIDHeader)),
			slog.String("error", resp.Error))
	}
	toolCallsTotal.WithLabelValues(label, result).Inc()
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) HandleSchema(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", []byte(gopoly.MCPToolSpec()))
}

func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// requestID propagates an incoming X-Request-ID or assigns a new UUID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (h *Handlers) recoverer() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				h.logger.Error("panic in handler",
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", c.GetString(requestIDHeader)),
					slog.String("panic", fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
