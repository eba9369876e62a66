package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"thecorner/backend/internal/broker"
	"thecorner/backend/internal/models"
)

// Start puts the client in the waiting queue with its submitted profile.
// A client already chatting leaves its room first (requeueing the partner).
func (h *Handler) Start(c *gin.Context) {
	var req startRequest
	if !h.bind(c, &req, "clientId is required") {
		return
	}
	h.broker.Start(req.ClientID, models.Profile{
		Nickname:    req.Nickname,
		Interests:   req.Interests,
		Country:     req.Country,
		CountryCode: req.CountryCode,
		AvatarImage: req.AvatarImage,
	})
	c.JSON(http.StatusOK, gin.H{"status": "waiting"})
}

// Message relays one chat message to the current partner.
func (h *Handler) Message(c *gin.Context) {
	var req messageRequest
	if !h.bind(c, &req, "clientId is required") {
		return
	}
	if _, err := h.broker.SendMessage(req.ClientID, req.Message); err != nil {
		switch {
		case errors.Is(err, broker.ErrEmptyMessage):
			c.String(http.StatusBadRequest, "Message is empty")
		default:
			c.String(http.StatusBadRequest, "Not currently chatting")
		}
		return
	}
	c.String(http.StatusOK, "sent")
}

// Next skips to a new partner.
func (h *Handler) Next(c *gin.Context) {
	var req clientRequest
	if !h.bind(c, &req, "clientId is required") {
		return
	}
	if err := h.broker.Next(req.ClientID); err != nil {
		c.String(http.StatusNotFound, "Unknown client")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "waiting"})
}

// Disconnect ends the current chat and leaves the queue.
func (h *Handler) Disconnect(c *gin.Context) {
	var req clientRequest
	if !h.bind(c, &req, "clientId is required") {
		return
	}
	h.broker.Leave(req.ClientID)
	c.String(http.StatusOK, "disconnected")
}

// Typing forwards a typing flag to the partner, if any.
func (h *Handler) Typing(c *gin.Context) {
	var req typingRequest
	if !h.bind(c, &req, "clientId is required") {
		return
	}
	h.broker.Typing(req.ClientID, req.Typing)
	c.Status(http.StatusNoContent)
}

// Reaction forwards an emoji reaction to the partner.
func (h *Handler) Reaction(c *gin.Context) {
	var req reactionRequest
	if !h.bind(c, &req, "clientId, messageId, and emoji are required") {
		return
	}
	if err := h.broker.React(req.ClientID, req.MessageID, req.Emoji, req.Remove); err != nil {
		c.String(http.StatusBadRequest, "Not in a chat")
		return
	}
	c.String(http.StatusOK, "ok")
}

// Report files an abuse report. The record is composed synchronously from
// the reporter's session and handed to the audit sinks fire-and-forget;
// the response never depends on sink outcomes.
func (h *Handler) Report(c *gin.Context) {
	var req reportRequest
	if !h.bind(c, &req, "clientId is required") {
		return
	}
	rep := h.broker.ComposeReport(req.ClientID, req.Reason)
	go h.reports.Submit(context.Background(), rep)
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UnixMilli()})
}
