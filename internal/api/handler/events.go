package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thecorner/backend/internal/broker"
	"thecorner/backend/internal/config"
)

// StreamEvents opens the SSE push channel for a client. The stream stays
// up until the client goes away or the channel is superseded by a newer
// connection for the same id; either way teardown runs exactly once and
// only for the stream that still owns the session.
func (h *Handler) StreamEvents(c *gin.Context) {
	clientID := c.Query("clientId")
	if clientID == "" {
		c.String(http.StatusBadRequest, "clientId query parameter is required")
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	ch := broker.NewStreamChannel(config.SendBufferSize)
	h.broker.Connect(clientID, ch)
	defer h.broker.ConnectionClosed(clientID, ch)

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-ch.Done():
			return
		case ev := <-ch.Events():
			c.SSEvent(string(ev.Type), ev.Data)
			c.Writer.Flush()
		}
	}
}
