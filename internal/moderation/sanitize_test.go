package moderation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNickname(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Alice", "Alice"},
		{"empty falls back", "", DefaultNickname},
		{"markup stripped", "<b>Bob</b>", "bBobb"},
		{"only junk falls back", "<<<>>>", DefaultNickname},
		{"keeps spaces hyphens underscores", "cool_kid-99 x", "cool_kid-99 x"},
		{"truncated to limit", strings.Repeat("a", 30), strings.Repeat("a", 20)},
		{"surrounding space trimmed", "  Dana  ", "Dana"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Nickname(tc.in))
		})
	}
}

func TestCountryName(t *testing.T) {
	assert.Equal(t, "Norway", CountryName("Norway"))
	assert.Equal(t, "Cote d'Ivoire", CountryName("Cote d'Ivoire"))
	assert.Equal(t, "", CountryName("12345"))
	assert.Equal(t, "", CountryName(""))
	long := strings.Repeat("a", 60)
	assert.Len(t, CountryName(long), 40)
}

func TestCountryCode(t *testing.T) {
	assert.Equal(t, "NO", CountryCode("no"))
	assert.Equal(t, "USA", CountryCode(" usa "))
	assert.Equal(t, "", CountryCode("x"))
	assert.Equal(t, "", CountryCode("1a"))
	assert.Equal(t, "TOO", CountryCode("toolong"), "overlong input is truncated before validation")
}

func TestAvatarImage(t *testing.T) {
	valid := "data:image/png;base64,iVBORw0KGgo="
	assert.Equal(t, valid, AvatarImage(valid))
	assert.Equal(t, "", AvatarImage("https://example.com/a.png"))
	assert.Equal(t, "", AvatarImage("data:text/html;base64,PGI+"))
	assert.Equal(t, "", AvatarImage(""))

	huge := "data:image/png;base64," + strings.Repeat("A", 9*1024*1024)
	assert.Equal(t, "", AvatarImage(huge))
}

func TestInterests(t *testing.T) {
	assert.Equal(t, []string{"go", "music"}, Interests([]string{"go", "music", "go"}))
	got := Interests([]string{"a", "b", "c", "d", "e", "f", "g"})
	assert.Len(t, got, 5)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)
}
