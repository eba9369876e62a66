package broker

import "thecorner/backend/internal/moderation"

// Registry is the single owner of all client sessions. It does no locking
// of its own: callers (the broker) serialize access behind one mutex, and
// no caller may hold a *Session across that mutex being released.
type Registry struct {
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for id, lazily creating an idle one on
// first contact. It never fails.
func (r *Registry) GetOrCreate(id string) *Session {
	if sess, ok := r.sessions[id]; ok {
		return sess
	}
	sess := &Session{
		ID:        id,
		Nickname:  moderation.DefaultNickname,
		Interests: []string{},
		Status:    StatusIdle,
	}
	r.sessions[id] = sess
	return sess
}

func (r *Registry) Get(id string) (*Session, bool) {
	sess, ok := r.sessions[id]
	return sess, ok
}

// Remove deletes the session; a no-op for unknown ids.
func (r *Registry) Remove(id string) {
	delete(r.sessions, id)
}

// Each visits every session. The visit order is unspecified.
func (r *Registry) Each(fn func(*Session)) {
	for _, sess := range r.sessions {
		fn(sess)
	}
}

// ConnectedCount returns the number of sessions with an open push channel.
func (r *Registry) ConnectedCount() int {
	n := 0
	for _, sess := range r.sessions {
		if sess.Connected {
			n++
		}
	}
	return n
}

func (r *Registry) Len() int {
	return len(r.sessions)
}
