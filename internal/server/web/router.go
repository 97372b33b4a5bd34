// Package web exposes the agent HTTP surface: a single POST /api/agent
// endpoint with permissive CORS, as the browser client expects.
package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/lifeos/internal/logging"
	"github.com/dmitrijs2005/lifeos/internal/server/services"
)

// Processor handles one archive request end to end.
type Processor interface {
	Process(ctx context.Context, req services.AgentRequest) (string, error)
}

// corsMiddleware sets the permissive headers the browser client relies on.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Next()
	}
}

// NewRouter builds the gin engine with the agent endpoint mounted.
func NewRouter(processor Processor, logger logging.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), corsMiddleware())

	h := &handler{processor: processor, logger: logger}

	r.POST("/api/agent", h.agent)
	r.OPTIONS("/api/agent", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		r.Handle(method, "/api/agent", func(c *gin.Context) {
			c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		})
	}

	return r
}

type handler struct {
	processor Processor
	logger    logging.Logger
}

func (h *handler) agent(c *gin.Context) {
	requestID := uuid.NewString()
	logger := h.logger.With("request_id", requestID)
	ctx := c.Request.Context()

	// every failure, including an unreadable body, folds into the same
	// 500 {error} shape the browser client expects
	var req services.AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn(ctx, "malformed request body", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	url, err := h.processor.Process(ctx, req)
	if err != nil {
		logger.Error(ctx, "archive request failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info(ctx, "archive request served", "url", url)
	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
