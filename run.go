package lineflow

import (
	"golang.org/x/text/language"
)

// Font is an opaque handle for the font-metrics collaborator, together with
// the size it is used at. lineflow never interprets the handle beyond
// identity; loading and caching of font data is the collaborator's concern.
type Font struct {
	Name string
	Size float64
}

// Size is the measurement of a text span in a font.
type Size struct {
	Width      float64
	Ascent     float64
	Descent    float64
	LineHeight float64
}

// Metrics is the font-metrics/shaping collaborator. Measure must be cheap
// and repeatable: the optimizing breaker calls it once per (active node,
// break candidate) pair.
//
// A Measure error does not abort layout; the caller substitutes a
// conservative font-size-derived estimate and flags the result as degraded.
type Metrics interface {
	Measure(text string, font *Font) (Size, error)
}

// Hyphenator is the hyphenation collaborator. Dictionary data and pattern
// formats are outside of lineflow's scope.
type Hyphenator interface {
	// CanBreakAfter reports whether word may be hyphenated after the
	// first pos bytes.
	CanBreakAfter(word string, pos int, lang language.Tag) bool
	// Hyphenate returns the syllables of word, or a one-element slice if
	// the word cannot be split.
	Hyphenate(word string, lang language.Tag) []string
}

// StyleSpan attributes a half-open byte range [From,To) of a paragraph's
// text with a font.
type StyleSpan struct {
	From, To uint64
	Font     *Font
}

// Paragraph is the unit of layout: a run of text plus optional style spans.
// Unstyled ranges use DefaultFont.
type Paragraph struct {
	Text  string
	Spans []StyleSpan
}

// DefaultFont is used for text not covered by any style span.
var DefaultFont = &Font{Name: "default", Size: 10}

// fontAt returns the font in effect at byte position pos.
func (para *Paragraph) fontAt(pos uint64) *Font {
	for i := range para.Spans {
		if pos >= para.Spans[i].From && pos < para.Spans[i].To {
			if para.Spans[i].Font != nil {
				return para.Spans[i].Font
			}
			break
		}
	}
	return DefaultFont
}

// fontSegments cuts [from,to) into maximal sub-spans sharing one font, in
// logical order.
func (para *Paragraph) fontSegments(from, to uint64) []StyleSpan {
	if from >= to {
		return nil
	}
	var segs []StyleSpan
	pos := from
	for pos < to {
		font := para.fontAt(pos)
		end := to
		for i := range para.Spans {
			s := para.Spans[i]
			// the nearest span edge after pos bounds the current segment
			if s.From > pos && s.From < end {
				end = s.From
			}
			if s.To > pos && s.To < end {
				end = s.To
			}
		}
		segs = append(segs, StyleSpan{From: pos, To: end, Font: font})
		pos = end
	}
	return segs
}

// Run is a contiguous span of text sharing one font and one bidi direction,
// measured and positioned within a line. Runs are stored in visual order.
type Run struct {
	From, To uint64 // byte offsets into the paragraph text
	Font     *Font
	Level    int // resolved bidi embedding level

	Width   float64
	Ascent  float64
	Descent float64

	X       float64 // visual x-offset within the line
	YOffset float64 // baseline correction: line.Ascent − run.Ascent

	// break-ability at the run's two ends
	BreakableLeft  bool
	BreakableRight bool
}
