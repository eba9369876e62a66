package broker

import (
	"log/slog"

	"thecorner/backend/internal/models"
)

// Dispatcher delivers typed events to client push channels. It never
// initiates anything on its own and keeps no delivery state: a target
// without a live channel, or with a full buffer, silently loses the event.
// Callers hold the broker mutex for the duration of every call.
type Dispatcher struct {
	registry *Registry
	log      *slog.Logger
}

func NewDispatcher(registry *Registry, log *slog.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, log: log}
}

// Send pushes one event to id's channel, if any.
func (d *Dispatcher) Send(id string, typ models.EventType, data any) {
	sess, ok := d.registry.Get(id)
	if !ok || sess.channel == nil {
		return
	}
	if !sess.channel.Send(models.Event{Type: typ, Data: data}) {
		d.log.Debug("push event dropped", "client", id, "event", string(typ))
	}
}

// BroadcastOnline recomputes the connected-session count and pushes it to
// every session with a channel, including whichever connection triggered
// the recount.
func (d *Dispatcher) BroadcastOnline() {
	count := d.registry.ConnectedCount()
	d.registry.Each(func(sess *Session) {
		d.Send(sess.ID, models.EventOnline, models.OnlinePayload{Count: count})
	})
}
