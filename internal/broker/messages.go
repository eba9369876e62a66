package broker

// Status lines pushed alongside state changes. The client renders these
// verbatim, so they are part of the wire contract.
const (
	msgWaiting   = "Finding someone to chat with..."
	msgMatched   = "You are now chatting with a stranger."
	msgChatting  = "You are now chatting."
	msgIdle      = "Ready when you are."
	msgChatEnded = "Chat ended."
	msgOffline   = "You are offline."
)

// statusMessage is the line used when re-pushing authoritative status on a
// fresh connection.
func statusMessage(s Status) string {
	switch s {
	case StatusWaiting:
		return msgWaiting
	case StatusChatting:
		return msgChatting
	default:
		return msgIdle
	}
}
