// Package moderation provides the pure validation functions the broker
// calls at its boundary: profile-field sanitization and denylist masking
// of message text. It holds no state about sessions or rooms.
package moderation

import (
	"regexp"
	"strings"

	"github.com/samber/lo"

	"thecorner/backend/internal/config"
)

// DefaultNickname is used when a submitted nickname is empty or reduces to
// nothing after sanitization.
const DefaultNickname = "Stranger"

var (
	nicknameStrip  = regexp.MustCompile(`[^a-zA-Z0-9\s_-]`)
	countryStrip   = regexp.MustCompile(`[^a-zA-Z\s\-']`)
	countryCodeRe  = regexp.MustCompile(`^[A-Z]{2,3}$`)
	avatarDataRe   = regexp.MustCompile(`^data:image/[a-zA-Z0-9.+-]+;base64,[a-zA-Z0-9+/=]+$`)
	whitespaceRe   = regexp.MustCompile(`\s`)
)

// Nickname strips a display name to alphanumerics, spaces, hyphens and
// underscores, capped at the nickname limit. Empty results fall back to
// DefaultNickname.
func Nickname(v string) string {
	if v == "" {
		return DefaultNickname
	}
	v = truncateRunes(v, config.MaxNicknameLength)
	v = strings.TrimSpace(nicknameStrip.ReplaceAllString(v, ""))
	if v == "" {
		return DefaultNickname
	}
	return v
}

// CountryName strips a country name to letters, spaces, hyphens and
// apostrophes, capped at the country limit. Returns "" when nothing valid
// remains.
func CountryName(v string) string {
	if v == "" {
		return ""
	}
	v = truncateRunes(v, config.MaxCountryLength)
	return strings.TrimSpace(countryStrip.ReplaceAllString(v, ""))
}

// CountryCode normalizes a 2-3 letter country code to uppercase. Anything
// else yields "".
func CountryCode(v string) string {
	code := strings.ToUpper(truncateRunes(strings.TrimSpace(v), 3))
	if !countryCodeRe.MatchString(code) {
		return ""
	}
	return code
}

// AvatarImage accepts only an embedded base64 image data URI under the size
// ceiling; the payload is never decoded. Invalid input yields "".
func AvatarImage(v string) string {
	if !strings.HasPrefix(v, "data:image/") || !strings.Contains(v, "base64,") {
		return ""
	}
	if len(v) > config.MaxAvatarImageLength {
		return ""
	}
	v = whitespaceRe.ReplaceAllString(v, "")
	if !avatarDataRe.MatchString(v) {
		return ""
	}
	return v
}

// Interests de-duplicates the tag set preserving submission order and caps
// it at the interest limit.
func Interests(tags []string) []string {
	tags = lo.Uniq(tags)
	if len(tags) > config.MaxInterests {
		tags = tags[:config.MaxInterests]
	}
	return tags
}

func truncateRunes(v string, n int) string {
	r := []rune(v)
	if len(r) <= n {
		return v
	}
	return string(r[:n])
}
