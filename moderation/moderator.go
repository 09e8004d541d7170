// Package moderation masks disallowed terms in message text.
// Matching is case-insensitive on whole tokens; a banned term inside an
// unrelated word is left alone, and whitelisted tokens are never
// masked. The mask preserves the original token length.
package moderation

import (
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher   *goahocorasick.Machine
	whitelist map[string]struct{}
	maskChar  rune
}

// NewModerator builds the Aho-Corasick automaton over the lowercased
// word list. Empty entries are dropped; an empty effective list yields
// a pass-through moderator rather than an error, since an operator
// clearing the list is a normal reconfiguration.
func NewModerator(words, whitelist []string, maskChar rune) (*Moderator, error) {
	var patterns [][]rune
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		patterns = append(patterns, []rune(strings.ToLower(w)))
	}

	allowed := make(map[string]struct{}, len(whitelist))
	for _, w := range whitelist {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		allowed[strings.ToLower(w)] = struct{}{}
	}

	m := &Moderator{whitelist: allowed, maskChar: maskChar}
	if len(patterns) == 0 {
		return m, nil
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	m.matcher = machine
	return m, nil
}

// Mask replaces every whole-token occurrence of a banned word with the
// mask character repeated to the token's length. It returns the masked
// text and the distinct lowercased words that were hit.
func (m *Moderator) Mask(original string) (string, []string) {
	if m.matcher == nil || original == "" {
		return original, nil
	}

	origRunes := []rune(original)
	lowered := make([]rune, len(origRunes))
	for i, r := range origRunes {
		lowered[i] = unicode.ToLower(r)
	}

	spans := m.matcher.MultiPatternSearch(lowered, false)
	if len(spans) == 0 {
		return original, nil
	}

	masked := false
	seen := make(map[string]struct{})
	var hits []string
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origRunes) {
			continue
		}
		if !wholeToken(lowered, start, end) {
			continue
		}
		word := string(lowered[start:end])
		if _, ok := m.whitelist[word]; ok {
			continue
		}
		for i := start; i < end; i++ {
			origRunes[i] = m.maskChar
		}
		masked = true
		if _, ok := seen[word]; !ok {
			seen[word] = struct{}{}
			hits = append(hits, word)
		}
	}

	if !masked {
		return original, nil
	}
	return string(origRunes), hits
}

// wholeToken reports whether the span is not embedded in a larger word.
func wholeToken(runes []rune, start, end int) bool {
	if start > 0 && isWordRune(runes[start-1]) {
		return false
	}
	if end < len(runes) && isWordRune(runes[end]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
