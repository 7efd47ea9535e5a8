package hyphen

import (
	"io"
	"unicode/utf8"

	"github.com/speedata/hyphenation"
	"golang.org/x/text/language"
)

// Patterns hyphenates with Liang's pattern algorithm. Pattern files come
// from the caller, e.g. the hyph-utf8 collection on CTAN; this package
// does not embed dictionary data. A pattern file is language-specific, so
// the language tag on the interface methods is ignored here.
type Patterns struct {
	MinPrefix int // runes required before a break
	MinSuffix int // runes required after a break
	lang      *hyphenation.Lang
}

// FromPatterns loads a pattern file and returns a hyphenator with the same
// margins as the heuristic one.
func FromPatterns(r io.Reader) (*Patterns, error) {
	l, err := hyphenation.New(r)
	if err != nil {
		return nil, err
	}
	return &Patterns{MinPrefix: 2, MinSuffix: 3, lang: l}, nil
}

// CanBreakAfter reports whether the patterns allow a break after byte
// position pos of word.
func (h *Patterns) CanBreakAfter(word string, pos int, lang language.Tag) bool {
	if pos <= 0 || pos >= len(word) || !utf8.RuneStart(word[pos]) {
		return false
	}
	at := utf8.RuneCountInString(word[:pos])
	if at < h.MinPrefix || utf8.RuneCountInString(word[pos:]) < h.MinSuffix {
		return false
	}
	for _, b := range h.lang.Hyphenate(word) {
		if b == at {
			return true
		}
	}
	return false
}

// Hyphenate splits a word into its hyphenatable fragments. A word the
// patterns cannot split comes back as a single fragment.
func (h *Patterns) Hyphenate(word string, lang language.Tag) []string {
	runes := []rune(word)
	var parts []string
	last := 0
	for _, b := range h.lang.Hyphenate(word) {
		if b <= last || b < h.MinPrefix || len(runes)-b < h.MinSuffix {
			continue
		}
		parts = append(parts, string(runes[last:b]))
		last = b
	}
	return append(parts, string(runes[last:]))
}
