package broker

import "time"

// Status is a session's place in the pairing lifecycle.
type Status uint8

const (
	StatusIdle Status = iota
	StatusWaiting
	StatusChatting
)

// PartnerLeftState is a wire-only status state: it is pushed to a client
// whose partner left without requeueing it, but no session ever holds it.
const PartnerLeftState = "partner-left"

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusChatting:
		return "chatting"
	default:
		return "idle"
	}
}

// CanTransitionTo reports whether the lifecycle permits moving from s to
// to. Chatting is only reachable from waiting; every state may fall back
// to idle.
func (s Status) CanTransitionTo(to Status) bool {
	switch s {
	case StatusIdle:
		return to == StatusIdle || to == StatusWaiting
	case StatusWaiting:
		return true
	case StatusChatting:
		return to == StatusIdle || to == StatusWaiting
	}
	return false
}

// Session is the server-side record for one client identifier. The registry
// owns all sessions; every field is guarded by the broker mutex. PartnerID
// and RoomID are set and cleared together: a session is chatting iff both
// are non-empty.
type Session struct {
	ID          string
	Nickname    string
	Interests   []string
	Country     string
	CountryCode string
	AvatarImage string

	Status    Status
	PartnerID string
	RoomID    string

	// channel is the live push handle, nil while no stream is open.
	channel   PushChannel
	Connected bool

	ConnectedAt time.Time
	QueueSince  time.Time
	RequestedAt time.Time
}
