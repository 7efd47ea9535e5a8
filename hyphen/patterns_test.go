package hyphen

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

// a1b allows a break between every 'a' and the following 'b'
const toyPatterns = "a1b\n"

func TestPatternsBreaks(t *testing.T) {
	h, err := FromPatterns(strings.NewReader(toyPatterns))
	if err != nil {
		t.Fatal(err.Error())
	}
	if !h.CanBreakAfter("abababab", 3, language.English) {
		t.Error("pattern a1b must allow a break after 'aba'")
	}
	if h.CanBreakAfter("abababab", 2, language.English) {
		t.Error("no pattern matches after 'ab'")
	}
	if h.CanBreakAfter("abababab", 1, language.English) {
		t.Error("break after 1 rune violates the prefix margin")
	}
	if h.CanBreakAfter("abababab", 7, language.English) {
		t.Error("break before the final rune violates the suffix margin")
	}
}

func TestPatternsHyphenate(t *testing.T) {
	h, err := FromPatterns(strings.NewReader(toyPatterns))
	if err != nil {
		t.Fatal(err.Error())
	}
	parts := h.Hyphenate("abababab", language.English)
	if strings.Join(parts, "-") != "aba-ba-bab" {
		t.Errorf("expected aba-ba-bab, have %s", strings.Join(parts, "-"))
	}
	parts = h.Hyphenate("xyz", language.English)
	if len(parts) != 1 || parts[0] != "xyz" {
		t.Errorf("unsplittable word must come back whole, have %v", parts)
	}
}
