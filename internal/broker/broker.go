// Package broker is the session broker: it pairs waiting clients into
// one-on-one rooms, tracks every session's lifecycle, and fans state and
// relay events out to the connected clients.
//
// All shared state (registry, waiting queue, rooms) is guarded by a single
// mutex; every operation reads and writes it inside one critical section,
// so a client can never be matched twice or occupy two rooms at once. Push
// delivery happens through per-client buffered channels drained by one
// writer goroutine each, which keeps per-client event order without holding
// the lock during network writes.
package broker

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"thecorner/backend/internal/config"
	"thecorner/backend/internal/models"
	"thecorner/backend/internal/moderation"
)

type Broker struct {
	mu       sync.Mutex
	registry *Registry
	queue    waitQueue
	rooms    map[string]*Room
	dispatch *Dispatcher
	censor   *moderation.Censor
	log      *slog.Logger
}

func New(censor *moderation.Censor, log *slog.Logger) *Broker {
	registry := NewRegistry()
	return &Broker{
		registry: registry,
		rooms:    make(map[string]*Room),
		dispatch: NewDispatcher(registry, log),
		censor:   censor,
		log:      log,
	}
}

// Connect attaches a freshly opened push channel to id's session, creating
// the session on first contact. The client immediately receives a connected
// ack and its authoritative status, and everyone receives the new online
// count. A previous channel for the same id is superseded and closed.
func (b *Broker) Connect(id string, ch PushChannel) {
	b.mu.Lock()
	sess := b.registry.GetOrCreate(id)
	old := sess.channel
	sess.channel = ch
	sess.Connected = true
	sess.ConnectedAt = time.Now()

	b.dispatch.Send(id, models.EventConnected, models.ConnectedPayload{ClientID: id})
	b.dispatch.Send(id, models.EventStatus, models.StatusPayload{
		State:   sess.Status.String(),
		Message: statusMessage(sess.Status),
	})
	b.dispatch.BroadcastOnline()
	b.mu.Unlock()

	if old != nil {
		old.Close()
	}
}

// ConnectionClosed runs teardown for a push channel that went away. It is
// the single cleanup path for connection loss: leave the room notifying the
// partner, drop out of the queue, forget the session, re-broadcast
// presence. Passing the channel makes the call idempotent: a stream that
// was superseded by a newer one for the same id cleans up nothing.
func (b *Broker) ConnectionClosed(id string, ch PushChannel) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sess, ok := b.registry.Get(id)
	if !ok || sess.channel != ch {
		return
	}
	sess.Connected = false
	sess.channel = nil

	if sess.RoomID != "" {
		b.leaveRoomLocked(sess, leaveOptions{
			notifyPartner:  true,
			partnerMessage: sess.Nickname + " disconnected.",
		})
	}
	b.queue.remove(id)
	b.registry.Remove(id)
	b.dispatch.BroadcastOnline()
}

// Start records the submitted profile (sanitized at this boundary) and
// puts the client in the waiting queue. A client that was chatting leaves
// its room first, donating the ex-partner back to the queue; the partner's
// re-match resolves before the caller's own enqueue.
func (b *Broker) Start(id string, profile models.Profile) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sess := b.registry.GetOrCreate(id)
	sess.Nickname = moderation.Nickname(profile.Nickname)
	sess.Interests = moderation.Interests(profile.Interests)
	sess.Country = moderation.CountryName(profile.Country)
	sess.CountryCode = moderation.CountryCode(profile.CountryCode)
	sess.AvatarImage = moderation.AvatarImage(profile.AvatarImage)
	sess.RequestedAt = time.Now()

	if sess.RoomID != "" {
		b.leaveRoomLocked(sess, leaveOptions{
			notifyPartner:  true,
			partnerMessage: sess.Nickname + " left the room.",
			requeuePartner: true,
		})
	}
	b.enqueueLocked(sess)
}

// Next skips to a new partner: leave the current room (the ex-partner is
// notified but not requeued), then rejoin the queue at the tail.
func (b *Broker) Next(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	sess, ok := b.registry.Get(id)
	if !ok {
		return ErrUnknownClient
	}
	if sess.RoomID != "" {
		b.leaveRoomLocked(sess, leaveOptions{
			notifyPartner:  true,
			partnerMessage: sess.Nickname + " skipped to the next chat.",
		})
	} else {
		b.queue.remove(id)
	}
	b.enqueueLocked(sess)
	return nil
}

// Leave is the explicit disconnect command: end the chat, drop out of the
// queue, go idle. The ex-partner is notified and left idle.
func (b *Broker) Leave(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sess, ok := b.registry.Get(id)
	if ok && sess.RoomID != "" {
		b.leaveRoomLocked(sess, leaveOptions{
			notifyPartner:  true,
			partnerMessage: sess.Nickname + " ended the chat.",
		})
	}
	b.queue.remove(id)
	if ok {
		b.setStatus(sess, StatusIdle)
		sess.PartnerID = ""
		sess.RoomID = ""
		b.dispatch.Send(id, models.EventStatus, models.StatusPayload{
			State:   StatusIdle.String(),
			Message: msgOffline,
		})
	}
}

// ComposeReport snapshots the reporter's session and its partner's into an
// abuse-report record. The record is always produced, even for unknown
// reporters; persistence is the caller's concern.
func (b *Broker) ComposeReport(id, reason string) *models.Report {
	b.mu.Lock()
	defer b.mu.Unlock()

	rep := &models.Report{
		ID:         uuid.New().String(),
		ReporterID: id,
		Reason:     truncateRunes(reason, config.MaxReasonLength),
		Timestamp:  time.Now().UTC(),
	}
	sess, ok := b.registry.Get(id)
	if !ok {
		return rep
	}
	rep.PartnerID = sess.PartnerID
	rep.RoomID = sess.RoomID
	rep.ReporterCountry = sess.Country
	rep.ReporterNickname = sess.Nickname
	rep.ReporterHasAvatar = sess.AvatarImage != ""
	rep.ReporterInterests = append([]string(nil), sess.Interests...)

	if sess.PartnerID != "" {
		if partner, ok := b.registry.Get(sess.PartnerID); ok {
			rep.PartnerCountry = partner.Country
			rep.PartnerNickname = partner.Nickname
			rep.PartnerHasAvatar = partner.AvatarImage != ""
			rep.PartnerInterests = append([]string(nil), partner.Interests...)
		}
	}
	return rep
}

// OnlineCount returns the number of sessions with an open push channel.
func (b *Broker) OnlineCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.registry.ConnectedCount()
}

// setStatus applies a lifecycle transition. Production paths only ever
// request legal ones; anything else is applied anyway but logged loudly so
// a regression cannot hide.
func (b *Broker) setStatus(sess *Session, to Status) {
	if !sess.Status.CanTransitionTo(to) {
		b.log.Warn("illegal status transition",
			"client", sess.ID, "from", sess.Status.String(), "to", to.String())
	}
	sess.Status = to
}

func truncateRunes(v string, n int) string {
	r := []rune(v)
	if len(r) <= n {
		return v
	}
	return string(r[:n])
}
