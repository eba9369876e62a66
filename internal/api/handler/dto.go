package handler

type startRequest struct {
	ClientID    string   `json:"clientId" validate:"required"`
	Nickname    string   `json:"nickname"`
	Interests   []string `json:"interests" validate:"max=50"`
	Country     string   `json:"country"`
	CountryCode string   `json:"countryCode"`
	AvatarImage string   `json:"avatarImage"`
}

type messageRequest struct {
	ClientID string `json:"clientId" validate:"required"`
	Message  string `json:"message"`
}

type clientRequest struct {
	ClientID string `json:"clientId" validate:"required"`
}

type typingRequest struct {
	ClientID string `json:"clientId" validate:"required"`
	Typing   bool   `json:"typing"`
}

type reactionRequest struct {
	ClientID  string `json:"clientId" validate:"required"`
	MessageID string `json:"messageId" validate:"required"`
	Emoji     string `json:"emoji" validate:"required"`
	Remove    bool   `json:"remove"`
}

type reportRequest struct {
	ClientID string `json:"clientId" validate:"required"`
	Reason   string `json:"reason"`
}
