package broker

import (
	"sync"

	"thecorner/backend/internal/models"
)

// PushChannel is the delivery side of one live client connection, whatever
// the transport (SSE stream, WebSocket). Events sent through one channel
// are delivered in Send order; there is no ordering across channels.
type PushChannel interface {
	// Send queues ev for delivery. It never blocks; it reports false when
	// the event was dropped because the channel is closed or its buffer is
	// full. Dropped events are never retried; clients resynchronize via
	// the status push on their next connect.
	Send(ev models.Event) bool
	// Close releases the channel. Idempotent; subsequent Sends report false.
	Close()
}

// StreamChannel adapts a long-lived response stream to PushChannel. The
// transport goroutine drains Events and writes frames until Done closes,
// which preserves per-client ordering with a single writer.
type StreamChannel struct {
	events chan models.Event
	done   chan struct{}
	once   sync.Once
}

func NewStreamChannel(buffer int) *StreamChannel {
	return &StreamChannel{
		events: make(chan models.Event, buffer),
		done:   make(chan struct{}),
	}
}

func (c *StreamChannel) Send(ev models.Event) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.events <- ev:
		return true
	default:
		return false
	}
}

func (c *StreamChannel) Close() {
	c.once.Do(func() { close(c.done) })
}

// Events is drained by the owning transport goroutine.
func (c *StreamChannel) Events() <-chan models.Event { return c.events }

// Done closes when the channel has been shut down server-side.
func (c *StreamChannel) Done() <-chan struct{} { return c.done }
