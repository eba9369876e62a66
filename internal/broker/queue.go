package broker

import (
	"time"

	"github.com/samber/lo"

	"thecorner/backend/internal/models"
)

// waitQueue is the ordered holding area for sessions awaiting a pairing.
// A client id appears at most once; position resets to the tail on re-join.
// Guarded by the broker mutex like everything else.
type waitQueue struct {
	ids []string
}

func (q *waitQueue) push(id string) {
	q.ids = append(q.ids, id)
}

func (q *waitQueue) remove(id string) {
	for i, queued := range q.ids {
		if queued == id {
			q.ids = append(q.ids[:i], q.ids[i+1:]...)
			return
		}
	}
}

func (q *waitQueue) removeAt(i int) string {
	id := q.ids[i]
	q.ids = append(q.ids[:i], q.ids[i+1:]...)
	return id
}

func (q *waitQueue) contains(id string) bool {
	for _, queued := range q.ids {
		if queued == id {
			return true
		}
	}
	return false
}

func (q *waitQueue) len() int { return len(q.ids) }

// enqueueLocked moves sess to the queue tail (removing any earlier
// position first), pushes the waiting status, and immediately tries to
// match. Matching only ever runs here, there is no background retry, so a
// queued client waits until the next enqueue of someone.
func (b *Broker) enqueueLocked(sess *Session) {
	b.queue.remove(sess.ID)
	b.setStatus(sess, StatusWaiting)
	sess.QueueSince = time.Now()
	b.queue.push(sess.ID)
	b.dispatch.Send(sess.ID, models.EventStatus, models.StatusPayload{
		State:   StatusWaiting.String(),
		Message: msgWaiting,
	})
	b.attemptMatchLocked(sess.ID)
}

// attemptMatchLocked scans the queue head-to-tail for a partner for id.
// The first waiting candidate is remembered as the FIFO fallback; the scan
// keeps going for the first candidate sharing an interest tag, which wins
// over the fallback. An interest-overlap match beats an earlier-queued
// candidate with no overlap; among overlapping candidates the
// earliest-queued wins. O(n) per enqueue, which is fine because matching
// runs only on explicit join/skip actions.
func (b *Broker) attemptMatchLocked(id string) {
	sess, ok := b.registry.Get(id)
	if !ok || sess.Status != StatusWaiting {
		return
	}

	matchIndex := -1
	for i, candidateID := range b.queue.ids {
		if candidateID == id {
			continue
		}
		candidate, ok := b.registry.Get(candidateID)
		if !ok || candidate.Status != StatusWaiting {
			continue
		}
		if lo.Some(candidate.Interests, sess.Interests) {
			matchIndex = i
			break
		}
		if matchIndex == -1 {
			matchIndex = i
		}
	}
	if matchIndex == -1 {
		return
	}

	partnerID := b.queue.removeAt(matchIndex)
	b.queue.remove(id)
	b.createRoomLocked(id, partnerID)
}
