package moderation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thecorner/backend/internal/config"
)

func newCensor(t *testing.T, denylist ...string) *Censor {
	t.Helper()
	c, err := NewCensor(denylist)
	require.NoError(t, err)
	return c
}

func TestCensorMasksWholeWords(t *testing.T) {
	c := newCensor(t, "badword", "idiot")

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"exact", "badword", "***"},
		{"case insensitive", "BadWord here", "*** here"},
		{"mid sentence", "what an IDIOT, really", "what an ***, really"},
		{"substring untouched", "badwords are fine", "badwords are fine"},
		{"prefixed untouched", "xbadword", "xbadword"},
		{"underscore joins words", "bad_badword", "bad_badword"},
		{"punctuation is a boundary", "idiot!", "***!"},
		{"multiple hits", "idiot meets badword", "*** meets ***"},
		{"clean text untouched", "hello there", "hello there"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Apply(tc.in))
		})
	}
}

func TestCensorMaskHidesWordLength(t *testing.T) {
	c := newCensor(t, "kill", "unbelievablylongterm")
	assert.Equal(t, "***", c.Apply("kill"))
	assert.Equal(t, "***", c.Apply("unbelievablylongterm"))
}

func TestCensorCapsMessageLength(t *testing.T) {
	c := newCensor(t)
	long := strings.Repeat("x", config.MaxMessageLength+100)
	assert.Len(t, c.Apply(long), config.MaxMessageLength)
}

func TestCensorEmptyDenylist(t *testing.T) {
	c := newCensor(t)
	assert.Equal(t, "anything goes", c.Apply("anything goes"))

	c, err := NewCensor([]string{"  ", ""})
	require.NoError(t, err)
	assert.Equal(t, "still fine", c.Apply("still fine"))
}

func TestCensorDefaultDenylist(t *testing.T) {
	c := newCensor(t, config.DefaultDenylist...)
	assert.Equal(t, "you are ***", c.Apply("you are stupid"))
	assert.Equal(t, "skill issue", c.Apply("skill issue"), "embedded term is not a whole word")
}
