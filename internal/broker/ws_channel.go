package broker

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"thecorner/backend/internal/config"
	"thecorner/backend/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxInboundSize = 512
)

// WSChannel is the WebSocket push transport. Events are written as JSON
// envelope frames by a single write pump; the read pump only drains inbound
// frames to observe connection loss, since commands travel over HTTP.
type WSChannel struct {
	conn    *websocket.Conn
	send    chan models.Event
	done    chan struct{}
	once    sync.Once
	onClose func()
	log     *slog.Logger
}

func NewWSChannel(conn *websocket.Conn, log *slog.Logger) *WSChannel {
	return &WSChannel{
		conn: conn,
		send: make(chan models.Event, config.SendBufferSize),
		done: make(chan struct{}),
		log:  log,
	}
}

// OnClose registers the cleanup callback fired exactly once when the
// connection goes away. Must be set before Run.
func (c *WSChannel) OnClose(fn func()) { c.onClose = fn }

// Run starts the read and write pumps.
func (c *WSChannel) Run() {
	go c.writePump()
	go c.readPump()
}

func (c *WSChannel) Send(ev models.Event) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- ev:
		return true
	default:
		return false
	}
}

func (c *WSChannel) Close() {
	c.once.Do(func() { close(c.done) })
}

func (c *WSChannel) readPump() {
	defer func() {
		c.Close()
		c.conn.Close()
		if c.onClose != nil {
			c.onClose()
		}
	}()

	c.conn.SetReadLimit(maxInboundSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.log.Debug("websocket read ended", "error", err)
			}
			return
		}
	}
}

func (c *WSChannel) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case ev := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(ev); err != nil {
				return
			}
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
