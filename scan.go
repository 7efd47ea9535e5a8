package lineflow

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// ScanBreaks scans a paragraph and produces the catalog of break
// opportunities, ordered by position and free of duplicates.
//
// Scanning is best-effort: malformed byte sequences are treated as opaque
// single code-points of the alphabetic class and never fail the scan.
// Hyphenation opportunities are collected from the hyphenation collaborator
// when cfg.Hyphenate is set and hyph is non-nil.
func ScanBreaks(para *Paragraph, cfg BreakConfig, hyph Hyphenator) (*Catalog, error) {
	if para == nil {
		return nil, ErrIllegalArguments
	}
	if len(para.Text) == 0 {
		return nil, ErrEmptyText
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	text := para.Text
	var points []BreakPoint
	add := func(pos int, t BreakType, q Quality, insert string, before rune) {
		if pos <= 0 || pos > len(text) {
			return
		}
		after, _ := utf8.DecodeRuneInString(text[pos:])
		if pos < len(text) && classForRune(after) == classCombining {
			return // never separate a combining mark from its base
		}
		if pos == len(text) {
			after = 0
		}
		points = append(points, BreakPoint{
			Pos:     uint64(pos),
			Type:    t,
			Quality: q,
			Insert:  insert,
			Before:  before,
			After:   after,
			Font:    para.fontAt(uint64(pos - 1)),
		})
	}

	prevClass := breakClass(-1)
	var prevRune rune
	for pos := 0; pos < len(text); {
		r, w := utf8.DecodeRuneInString(text[pos:])
		cls := classForRune(r)
		if r == utf8.RuneError && w == 1 {
			cls = classAlphabetic // opaque unit, keep scanning
		}
		next := pos + w
		var nextRune rune
		nextClass := breakClass(-1)
		if next < len(text) {
			nextRune, _ = utf8.DecodeRuneInString(text[next:])
			nextClass = classForRune(nextRune)
		}

		switch cls {
		case classMandatory:
			// treat CR+LF as a single break after the LF
			if !(r == '\r' && nextRune == '\n') {
				add(next, BreakMandatory, QualityPerfect, "", r)
			}
		case classWhitespace:
			// one candidate per whitespace run, after its last character
			if nextClass != classWhitespace {
				add(next, BreakSpace, QualityPerfect, "", r)
			}
		case classHyphen:
			if nextClass != classWhitespace && nextClass != classMandatory {
				add(next, BreakHyphen, QualityExcellent, "", r)
			}
		case classSoftHyphen:
			add(next, BreakSoftHyphen, QualityExcellent, "-", r)
		default:
			// word boundaries: transitions between alphanumeric classes and
			// between alphanumerics and punctuation
			if prevClass.isAlphanumeric() && cls.isAlphanumeric() && prevClass != cls {
				add(pos, BreakWordBound, QualityGood, "", prevRune)
			} else if prevClass.isAlphanumeric() && (cls == classOpenPunct || cls == classClosePunct) {
				add(pos, BreakWordBound, QualityFair, "", prevRune)
			} else if (prevClass == classClosePunct || prevClass == classOpenPunct) && cls.isAlphanumeric() {
				add(pos, BreakWordBound, QualityFair, "", prevRune)
			}
		}
		prevClass = cls
		prevRune = r
		pos = next
	}

	if cfg.Hyphenate && hyph != nil {
		points = append(points, hyphenationBreaks(para, cfg, hyph)...)
	}
	if cfg.EmergencyBreaks {
		for pos := 0; pos < len(text); {
			r, w := utf8.DecodeRuneInString(text[pos:])
			add(pos+w, BreakEmergency, QualityPoor, "", r)
			pos += w
		}
	}
	// end of text is always a forced break
	last, _ := utf8.DecodeLastRuneInString(text)
	add(len(text), BreakMandatory, QualityPerfect, "", last)

	cat := &Catalog{text: text, points: dedupe(points)}
	for i := range cat.points {
		cat.points[i].Penalty = penaltyFor(cat.points[i].Type, cat.points[i].Quality, cfg.Weights)
	}
	fillCharPositions(text, cat.points)
	cat.recount()
	tracer().Debugf("break scan: %d candidates (%d mandatory, %d good, %d poor)",
		cat.Len(), cat.Mandatory, cat.Good, cat.Poor)
	return cat, nil
}

// hyphenationBreaks asks the hyphenation collaborator for in-word break
// opportunities. Words are extracted with a UAX#29 word segmenter.
func hyphenationBreaks(para *Paragraph, cfg BreakConfig, hyph Hyphenator) []BreakPoint {
	wordbreaker := uax29.NewWordBreaker(1)
	words := segment.NewSegmenter(wordbreaker)
	words.Init(strings.NewReader(para.Text))
	var points []BreakPoint
	wpos := 0
	for words.Next() {
		word := words.Text()
		if utf8.RuneCountInString(word) >= 4 && isWordLike(word) {
			for k := range word {
				if k == 0 {
					continue
				}
				if !hyph.CanBreakAfter(word, k, cfg.Language) {
					continue
				}
				pos := wpos + k
				before, _ := utf8.DecodeLastRuneInString(word[:k])
				after, _ := utf8.DecodeRuneInString(word[k:])
				points = append(points, BreakPoint{
					Pos:     uint64(pos),
					Type:    BreakSoftHyphen,
					Quality: QualityExcellent,
					Insert:  "-",
					Before:  before,
					After:   after,
					Font:    para.fontAt(uint64(pos - 1)),
				})
			}
		}
		wpos += len(words.Bytes())
	}
	return points
}

func isWordLike(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return classForRune(r) == classAlphabetic
}

// typeRank orders break types for duplicate resolution; lower wins.
func typeRank(t BreakType) int {
	switch t {
	case BreakMandatory:
		return 0
	case BreakSpace:
		return 1
	case BreakHyphen:
		return 2
	case BreakSoftHyphen:
		return 3
	case BreakWordBound:
		return 4
	}
	return 5
}

// dedupe sorts candidates by position and keeps the strongest candidate per
// position, so that catalog positions are strictly increasing.
func dedupe(points []BreakPoint) []BreakPoint {
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Pos != points[j].Pos {
			return points[i].Pos < points[j].Pos
		}
		return typeRank(points[i].Type) < typeRank(points[j].Type)
	})
	out := points[:0]
	var lastPos uint64
	for _, bp := range points {
		if len(out) > 0 && bp.Pos == lastPos {
			continue
		}
		out = append(out, bp)
		lastPos = bp.Pos
	}
	return out
}

// fillCharPositions derives rune positions from byte positions in a single
// pass over the text.
func fillCharPositions(text string, points []BreakPoint) {
	chars, i := uint64(0), 0
	for pos := range text {
		for i < len(points) && points[i].Pos <= uint64(pos) {
			points[i].CharPos = chars
			i++
		}
		chars++
	}
	for i < len(points) {
		points[i].CharPos = chars
		i++
	}
}
