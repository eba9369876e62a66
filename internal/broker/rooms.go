package broker

import (
	"time"

	"github.com/google/uuid"

	"thecorner/backend/internal/models"
)

// Room is one active pairing. It references its members by id only; the
// registry stays the single source of session data. A room exists exactly
// as long as both members point at it and dies the instant either leaves.
type Room struct {
	ID        string
	Members   [2]string
	CreatedAt time.Time
}

// createRoomLocked forms a room between two sessions fresh out of the
// queue: both flip to chatting, partner/room links are set symmetrically,
// and each side receives a chatting status followed by the other's public
// profile.
func (b *Broker) createRoomLocked(idA, idB string) {
	a, okA := b.registry.Get(idA)
	p, okB := b.registry.Get(idB)
	if !okA || !okB {
		// Matcher invariants make this unreachable: queue entries are
		// registered sessions.
		b.log.Warn("room creation with unknown member", "a", idA, "b", idB)
		return
	}

	roomID := uuid.New().String()
	b.setStatus(a, StatusChatting)
	b.setStatus(p, StatusChatting)
	a.PartnerID = p.ID
	p.PartnerID = a.ID
	a.RoomID = roomID
	p.RoomID = roomID
	b.rooms[roomID] = &Room{
		ID:        roomID,
		Members:   [2]string{a.ID, p.ID},
		CreatedAt: time.Now(),
	}

	matched := models.StatusPayload{State: StatusChatting.String(), Message: msgMatched}
	b.dispatch.Send(a.ID, models.EventStatus, matched)
	b.dispatch.Send(p.ID, models.EventStatus, matched)
	b.dispatch.Send(a.ID, models.EventPartner, partnerPayload(p))
	b.dispatch.Send(p.ID, models.EventPartner, partnerPayload(a))

	b.log.Info("room created", "room", roomID, "a", a.ID, "b", p.ID)
}

func partnerPayload(sess *Session) models.PartnerPayload {
	country := sess.Country
	if country == "" {
		country = "Unknown"
	}
	return models.PartnerPayload{
		Nickname:    sess.Nickname,
		Country:     country,
		CountryCode: sess.CountryCode,
		AvatarImage: sess.AvatarImage,
		Interests:   sess.Interests,
	}
}

type leaveOptions struct {
	notifyPartner  bool
	partnerMessage string
	requeuePartner bool
}

// leaveRoomLocked is the single exit path for every way out of a room:
// explicit disconnect, skip, re-join while chatting, and connection loss;
// only the options differ. The room dies, the leaver goes idle, and the
// ex-partner is notified as "waiting" (when requeued) or "partner-left"
// (never plain idle). Requeueing the partner may re-match it with a queued
// third client inside this same call, before control returns to the
// leaver's own follow-up.
func (b *Broker) leaveRoomLocked(sess *Session, opts leaveOptions) {
	if sess.RoomID == "" {
		return
	}
	roomID := sess.RoomID
	partnerID := sess.PartnerID
	delete(b.rooms, roomID)

	sess.RoomID = ""
	sess.PartnerID = ""
	b.setStatus(sess, StatusIdle)
	b.dispatch.Send(sess.ID, models.EventStatus, models.StatusPayload{
		State:   StatusIdle.String(),
		Message: msgChatEnded,
	})

	if partnerID == "" {
		return
	}
	partner, ok := b.registry.Get(partnerID)
	if !ok {
		return
	}
	partner.RoomID = ""
	partner.PartnerID = ""
	if opts.requeuePartner {
		b.setStatus(partner, StatusWaiting)
	} else {
		b.setStatus(partner, StatusIdle)
	}
	if opts.notifyPartner {
		state := PartnerLeftState
		if opts.requeuePartner {
			state = StatusWaiting.String()
		}
		b.dispatch.Send(partnerID, models.EventStatus, models.StatusPayload{
			State:   state,
			Message: opts.partnerMessage,
		})
	}
	if opts.requeuePartner {
		b.enqueueLocked(partner)
	}

	b.log.Info("room closed", "room", roomID, "leaver", sess.ID, "requeued", opts.requeuePartner)
}
