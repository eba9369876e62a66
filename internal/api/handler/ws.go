package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"thecorner/backend/internal/broker"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Anonymous chat, no cookies: any origin may open a stream.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the connection into a WebSocket push channel.
// The event envelope is identical to the SSE stream; commands still travel
// over the HTTP endpoints.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	clientID := c.Query("clientId")
	if clientID == "" {
		c.String(http.StatusBadRequest, "clientId query parameter is required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Debug("websocket upgrade failed", "client", clientID, "error", err)
		return
	}

	ch := broker.NewWSChannel(conn, h.log)
	ch.OnClose(func() { h.broker.ConnectionClosed(clientID, ch) })
	h.broker.Connect(clientID, ch)
	ch.Run()
}
