package models

// Profile holds the presentation fields a client submits when joining the
// queue. All fields are sanitized at the boundary before the broker sees
// them; the avatar is an opaque embedded-image reference, never decoded
// server-side.
type Profile struct {
	Nickname    string   `json:"nickname"`
	Interests   []string `json:"interests"`
	Country     string   `json:"country"`
	CountryCode string   `json:"countryCode"`
	AvatarImage string   `json:"avatarImage"`
}
