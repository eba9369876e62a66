package models

// EventType names a push event delivered over a client's event stream.
type EventType string

const (
	EventConnected EventType = "connected"
	EventStatus    EventType = "status"
	EventMessage   EventType = "message"
	EventTyping    EventType = "typing"
	EventPartner   EventType = "partner"
	EventOnline    EventType = "online"
	EventReaction  EventType = "reaction"
)

// Event is the typed envelope pushed to a client. Over SSE the Type becomes
// the event name and Data the JSON body; over WebSocket the whole envelope is
// sent as one JSON frame.
type Event struct {
	Type EventType `json:"event"`
	Data any       `json:"data"`
}

// ConnectedPayload acknowledges a freshly opened push channel.
type ConnectedPayload struct {
	ClientID string `json:"clientId"`
}

// StatusPayload carries a session state change. State is one of "idle",
// "waiting", "chatting" or "partner-left"; the message is a human-readable
// line the client may display verbatim.
type StatusPayload struct {
	State   string `json:"state"`
	Message string `json:"message"`
}

// MessagePayload is a relayed chat message. The sender receives it with
// Author "you", the partner with the sender's nickname; both copies carry
// the same MessageID so later reactions correlate on either end.
type MessagePayload struct {
	Author    string `json:"author"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
	MessageID string `json:"messageId"`
}

type TypingPayload struct {
	Typing bool `json:"typing"`
}

// PartnerPayload is the public profile of the other room member, pushed to
// each side when a room forms.
type PartnerPayload struct {
	Nickname    string   `json:"nickname"`
	Country     string   `json:"country"`
	CountryCode string   `json:"countryCode,omitempty"`
	AvatarImage string   `json:"avatarImage,omitempty"`
	Interests   []string `json:"interests"`
}

type OnlinePayload struct {
	Count int `json:"count"`
}

// ReactionPayload is forwarded verbatim to the partner; the server keeps no
// reaction state.
type ReactionPayload struct {
	MessageID string `json:"messageId"`
	Emoji     string `json:"emoji"`
	Remove    bool   `json:"remove"`
}
