// Package handler exposes the session broker over HTTP: one long-lived
// push stream per client (SSE or WebSocket) plus small JSON command
// endpoints keyed by client id.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"thecorner/backend/internal/broker"
	"thecorner/backend/internal/config"
	"thecorner/backend/internal/report"
)

type Handler struct {
	broker   *broker.Broker
	reports  *report.Service
	secret   []byte
	validate *validator.Validate
	log      *slog.Logger
}

func New(b *broker.Broker, reports *report.Service, jwtSecret string, log *slog.Logger) *Handler {
	return &Handler{
		broker:   b,
		reports:  reports,
		secret:   []byte(jwtSecret),
		validate: validator.New(),
		log:      log,
	}
}

// Register wires all routes onto the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/events", h.StreamEvents)
	r.GET("/ws", h.ServeWebSocket)
	r.GET("/anonid", h.GetAnonID)
	r.GET("/health", h.Health)
	r.POST("/start", h.Start)
	r.POST("/message", h.Message)
	r.POST("/next", h.Next)
	r.POST("/disconnect", h.Disconnect)
	r.POST("/typing", h.Typing)
	r.POST("/report", h.Report)
	r.POST("/reaction", h.Reaction)
}

// bind decodes and validates a command body. Validation failures answer
// with requiredMsg, matching the plain-text contract of the endpoints.
func (h *Handler) bind(c *gin.Context, req any, requiredMsg string) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxBodyBytes)
	if err := c.ShouldBindJSON(req); err != nil {
		c.String(http.StatusBadRequest, "Invalid JSON")
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		c.String(http.StatusBadRequest, requiredMsg)
		return false
	}
	return true
}
