package broker

import "errors"

var (
	// ErrUnknownClient is returned for operations that require an existing
	// session, like skipping to the next chat.
	ErrUnknownClient = errors.New("unknown client")
	// ErrNotChatting rejects a message sent outside an active room.
	ErrNotChatting = errors.New("not currently chatting")
	// ErrEmptyMessage rejects a message with no visible text.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrNoPartner rejects a reaction sent without a current partner.
	ErrNoPartner = errors.New("not in a chat")
)
