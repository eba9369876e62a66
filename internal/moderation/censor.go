package moderation

import (
	"sort"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"thecorner/backend/internal/config"
)

// mask replaces every matched term regardless of its length, so the
// original word length is never leaked.
const mask = "***"

// Censor masks denylisted terms in message text. Matching is
// case-insensitive and whole-word: a term surrounded by letters, digits or
// underscores is left alone. The automaton is built once and is safe for
// concurrent use.
type Censor struct {
	machine *goahocorasick.Machine
}

// NewCensor builds the Aho-Corasick automaton over the lowercased denylist.
// An empty denylist yields a censor that only applies the length cap.
func NewCensor(denylist []string) (*Censor, error) {
	patterns := make([][]rune, 0, len(denylist))
	for _, word := range denylist {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		patterns = append(patterns, []rune(word))
	}
	if len(patterns) == 0 {
		return &Censor{}, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Censor{machine: m}, nil
}

// Apply caps the text at the message limit, then replaces each
// whole-word denylist occurrence with the fixed mask.
func (c *Censor) Apply(text string) string {
	runes := []rune(text)
	if len(runes) > config.MaxMessageLength {
		runes = runes[:config.MaxMessageLength]
	}
	if c.machine == nil {
		return string(runes)
	}

	lowered := make([]rune, len(runes))
	for i, r := range runes {
		lowered[i] = unicode.ToLower(r)
	}

	terms := c.machine.MultiPatternSearch(lowered, false)
	if len(terms) == 0 {
		return string(runes)
	}

	type span struct{ start, end int }
	spans := make([]span, 0, len(terms))
	for _, t := range terms {
		start, end := t.Pos, t.Pos+len(t.Word)
		if start < 0 || end > len(lowered) {
			continue
		}
		if !isWordBoundary(lowered, start-1) || !isWordBoundary(lowered, end) {
			continue
		}
		spans = append(spans, span{start, end})
	}
	if len(spans) == 0 {
		return string(runes)
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	next := 0
	for _, s := range spans {
		if s.start < next {
			continue
		}
		b.WriteString(string(runes[next:s.start]))
		b.WriteString(mask)
		next = s.end
	}
	b.WriteString(string(runes[next:]))
	return b.String()
}

// isWordBoundary reports whether position i does not continue a word.
// Out-of-range positions count as boundaries.
func isWordBoundary(runes []rune, i int) bool {
	if i < 0 || i >= len(runes) {
		return true
	}
	r := runes[i]
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}
