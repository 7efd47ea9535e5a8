// Package hyphen provides hyphenators for line breaking.
//
// Patterns wraps Liang's pattern algorithm and is the hyphenator to use
// when a pattern file for the text's language is at hand. Simple is a
// zero-config fallback: it finds vowel/consonant boundaries, which is good
// enough for emergency hyphenation of overlong words and for tests, and an
// exception dictionary covers words the heuristic gets wrong.
package hyphen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Simple hyphenates at vowel-consonant-vowel boundaries, keeping a minimum
// number of characters on both sides of each break.
type Simple struct {
	MinPrefix  int // runes required before a break
	MinSuffix  int // runes required after a break
	exceptions map[string][]int
}

// New creates a heuristic hyphenator with common margins.
func New() *Simple {
	return &Simple{MinPrefix: 2, MinSuffix: 3, exceptions: make(map[string][]int)}
}

// AddException registers a pre-hyphenated word, e.g. "ta-ble". Exceptions
// take precedence over the heuristic and are matched case-insensitively.
func (h *Simple) AddException(hyphenated string) {
	parts := strings.Split(hyphenated, "-")
	word := strings.Join(parts, "")
	var breaks []int
	pos := 0
	for _, part := range parts[:len(parts)-1] {
		pos += len(part)
		breaks = append(breaks, pos)
	}
	h.exceptions[strings.ToLower(word)] = breaks
}

// CanBreakAfter reports whether word may be hyphenated after byte position
// pos. The language tag is accepted for interface compatibility; the
// heuristic itself is language-blind.
func (h *Simple) CanBreakAfter(word string, pos int, lang language.Tag) bool {
	if pos <= 0 || pos >= len(word) {
		return false
	}
	if breaks, ok := h.exceptions[strings.ToLower(word)]; ok {
		for _, b := range breaks {
			if b == pos {
				return true
			}
		}
		return false
	}
	prefix := word[:pos]
	suffix := word[pos:]
	if utf8.RuneCountInString(prefix) < h.MinPrefix || utf8.RuneCountInString(suffix) < h.MinSuffix {
		return false
	}
	before, _ := utf8.DecodeLastRuneInString(prefix)
	first, w := utf8.DecodeRuneInString(suffix)
	second, _ := utf8.DecodeRuneInString(suffix[w:])
	// break pattern is vowel | consonant vowel
	return isVowel(before) && isConsonant(first) && isVowel(second)
}

// Hyphenate splits a word into its hyphenatable fragments. A word without
// break opportunities comes back as a single fragment.
func (h *Simple) Hyphenate(word string, lang language.Tag) []string {
	var parts []string
	last := 0
	for pos := range word {
		if h.CanBreakAfter(word, pos, lang) {
			parts = append(parts, word[last:pos])
			last = pos
		}
	}
	return append(parts, word[last:])
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'ä', 'ö', 'ü', 'é', 'è', 'á', 'à', 'ó', 'í', 'ú':
		return true
	}
	return false
}

func isConsonant(r rune) bool {
	return unicode.IsLetter(r) && !isVowel(r)
}
