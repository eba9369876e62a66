package config

// Protocol limits. These are part of the wire contract, not tunables.
const (
	// MaxMessageLength caps chat message text, in runes.
	MaxMessageLength = 500
	// MaxNicknameLength caps display nicknames, in runes.
	MaxNicknameLength = 20
	// MaxCountryLength caps country names, in runes.
	MaxCountryLength = 40
	// MaxInterests caps the interest-tag set per client.
	MaxInterests = 5
	// MaxEmojiLength caps a reaction emoji, in runes.
	MaxEmojiLength = 10
	// MaxReasonLength caps an abuse-report reason, in runes.
	MaxReasonLength = 200
	// MaxAvatarImageLength caps the embedded avatar data URI, in bytes.
	MaxAvatarImageLength = 8 * 1024 * 1024
	// MaxBodyBytes caps any command request body. It leaves headroom over
	// MaxAvatarImageLength so a maximal avatar still fits in a join request.
	MaxBodyBytes = 10 << 20

	// SendBufferSize is the per-client push buffer; a full buffer drops
	// the event rather than blocking a state mutation.
	SendBufferSize = 256
)

// DefaultDenylist is the built-in set of masked terms.
var DefaultDenylist = []string{"badword", "stupid", "idiot", "hate", "kill"}
