package broker

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"thecorner/backend/internal/config"
	"thecorner/backend/internal/models"
)

// SendMessage relays one chat message. The sender must be chatting with a
// partner; the text is censored, then both ends receive a copy carrying the
// same message id: "you" for the sender's echo, the sender's nickname for
// the partner. The echo payload is returned for the HTTP response path.
func (b *Broker) SendMessage(id, text string) (models.MessagePayload, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sess, ok := b.registry.Get(id)
	if !ok || sess.Status != StatusChatting || sess.PartnerID == "" {
		return models.MessagePayload{}, ErrNotChatting
	}

	clean := b.censor.Apply(text)
	if strings.TrimSpace(clean) == "" {
		return models.MessagePayload{}, ErrEmptyMessage
	}

	now := time.Now().UnixMilli()
	messageID := newMessageID(now)

	echo := models.MessagePayload{
		Author:    "you",
		Text:      clean,
		Timestamp: now,
		MessageID: messageID,
	}
	b.dispatch.Send(id, models.EventMessage, echo)
	b.dispatch.Send(sess.PartnerID, models.EventMessage, models.MessagePayload{
		Author:    sess.Nickname,
		Text:      clean,
		Timestamp: now,
		MessageID: messageID,
	})
	return echo, nil
}

// Typing forwards a typing flag to the current partner. Fire-and-forget:
// no partner, no event, no error. Duplicate suppression is the client's
// job.
func (b *Broker) Typing(id string, typing bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sess, ok := b.registry.Get(id)
	if !ok || sess.PartnerID == "" {
		return
	}
	b.dispatch.Send(sess.PartnerID, models.EventTyping, models.TypingPayload{Typing: typing})
}

// React forwards a reaction to the current partner. The server keeps no
// reaction state; each client reconciles counts from the event stream.
func (b *Broker) React(id, messageID, emoji string, remove bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	sess, ok := b.registry.Get(id)
	if !ok || sess.PartnerID == "" {
		return ErrNoPartner
	}
	b.dispatch.Send(sess.PartnerID, models.EventReaction, models.ReactionPayload{
		MessageID: messageID,
		Emoji:     truncateRunes(emoji, config.MaxEmojiLength),
		Remove:    remove,
	})
	return nil
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// newMessageID produces an id unique enough to correlate reactions with:
// the millisecond timestamp plus nine random base36 characters.
func newMessageID(millis int64) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return fmt.Sprintf("msg-%d-%s", millis, suffix)
}
