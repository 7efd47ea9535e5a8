package lineflow

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// charMetrics measures every code-point with a fixed width, which makes the
// expected line widths in tests easy to compute by hand.
type charMetrics struct {
	w float64
}

func (cm charMetrics) Measure(text string, font *Font) (Size, error) {
	n := utf8.RuneCountInString(text)
	return Size{
		Width:      cm.w * float64(n),
		Ascent:     8,
		Descent:    2,
		LineHeight: 12,
	}, nil
}

// failMetrics always errors, for exercising the degraded path.
type failMetrics struct{}

func (failMetrics) Measure(text string, font *Font) (Size, error) {
	return Size{}, errors.New("font data unavailable")
}

// breakEverywhere allows hyphenation after every byte position.
type breakEverywhere struct{}

func (breakEverywhere) CanBreakAfter(word string, pos int, lang language.Tag) bool {
	return pos > 0 && pos < len(word)
}

func (breakEverywhere) Hyphenate(word string, lang language.Tag) []string {
	parts := make([]string, 0, len(word))
	for _, r := range word {
		parts = append(parts, string(r))
	}
	return parts
}
