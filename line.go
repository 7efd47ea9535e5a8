package lineflow

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/uax/bidi"
)

// Line is one finished line of a flowed paragraph. From and To tile the
// paragraph text, i.e. line N+1 starts where line N ends, trailing
// whitespace included. Width, Ascent and Descent reflect the measured
// content with trailing whitespace stripped.
type Line struct {
	From, To   uint64
	Runs       []Run
	Width      float64
	Ascent     float64
	Descent    float64
	Height     float64
	Offset     float64 // horizontal shift from alignment
	Justify    *Justification
	Ratio      float64 // measured width over target width
	Badness    float64
	Insert     string    // text to render after the line, usually a hyphen
	BreakType  BreakType // type of the break ending this line
	Hyphenated bool
	Overflow   bool
	Last       bool
}

// Text returns the line's slice of the paragraph text, trailing whitespace
// stripped, with the break insert appended.
func (l *Line) Text(para *Paragraph) string {
	to := trimEnd(para.Text, l.From, l.To)
	return para.Text[l.From:to] + l.Insert
}

// trimEnd strips trailing whitespace, mandatory break characters and soft
// hyphens from a text span. A soft hyphen at the break position is replaced
// by the break's insert text, so it never contributes to the measure.
func trimEnd(text string, from, to uint64) uint64 {
	for to > from {
		r, w := utf8.DecodeLastRuneInString(text[from:to])
		cls := classForRune(r)
		if cls != classWhitespace && cls != classMandatory && cls != classSoftHyphen {
			break
		}
		to -= uint64(w)
	}
	return to
}

// measureSpan measures a span of paragraph text, split at font boundaries.
// With trim set, trailing whitespace is excluded from the measure.
func measureSpan(para *Paragraph, m Metrics, from, to uint64, trim bool) (Size, error) {
	var total Size
	if trim {
		to = trimEnd(para.Text, from, to)
	}
	if from >= to {
		return total, nil
	}
	for _, sp := range para.fontSegments(from, to) {
		size, err := m.Measure(para.Text[sp.From:sp.To], sp.Font)
		if err != nil {
			return Size{}, err
		}
		total.Width += size.Width
		if size.Ascent > total.Ascent {
			total.Ascent = size.Ascent
		}
		if size.Descent > total.Descent {
			total.Descent = size.Descent
		}
		if size.LineHeight > total.LineHeight {
			total.LineHeight = size.LineHeight
		}
	}
	return total, nil
}

// buildLines turns a break sequence into positioned lines. Each line gets
// its visual runs from the Unicode bidi algorithm, split further at font
// boundaries, with x positions accumulated in visual order.
func buildLines(para *Paragraph, seq []chosenBreak, cfg BreakConfig, m Metrics) ([]Line, error) {
	lines := make([]Line, 0, len(seq))
	from := uint64(0)
	for i, cb := range seq {
		to := cb.bp.Pos
		trimmed := trimEnd(para.Text, from, to)
		size, err := measureSpan(para, m, from, trimmed, false)
		if err != nil {
			return nil, err
		}
		iw, err := insertWidth(cb.bp, m)
		if err != nil {
			return nil, err
		}
		line := Line{
			From: from, To: to,
			Width:      size.Width + iw,
			Ascent:     size.Ascent,
			Descent:    size.Descent,
			Height:     size.LineHeight,
			Ratio:      cb.ratio,
			Badness:    cb.badness,
			Insert:     cb.bp.Insert,
			BreakType:  cb.bp.Type,
			Hyphenated: cb.bp.Insert != "",
			Overflow:   cb.overfull,
			Last:       i == len(seq)-1,
		}
		if line.Height == 0 {
			line.Height = line.Ascent + line.Descent
		}
		if line.Height == 0 {
			// blank line, as between consecutive hard breaks: take a
			// strut from the font so vertical flow does not collapse
			strut, err := m.Measure(" ", para.fontAt(from))
			if err != nil {
				return nil, err
			}
			line.Ascent, line.Descent = strut.Ascent, strut.Descent
			line.Height = strut.LineHeight
			if line.Height == 0 {
				line.Height = strut.Ascent + strut.Descent
			}
		}
		if line.Runs, err = lineRuns(para, from, trimmed, cfg, m, line.Ascent); err != nil {
			return nil, err
		}
		lines = append(lines, line)
		from = to
	}
	return lines, nil
}

// lineRuns resolves the bidi levels of a single line and intersects the
// resulting visual segments with the paragraph's font segments.
func lineRuns(para *Paragraph, from, to uint64, cfg BreakConfig, m Metrics, lineAscent float64) ([]Run, error) {
	if from >= to {
		return nil, nil
	}
	linetext := para.Text[from:to]
	levels := bidi.ResolveParagraph(strings.NewReader(linetext), nil,
		bidi.DefaultDirection(cfg.Direction), bidi.IgnoreParagraphSeparators(true))
	ordering := levels.Reorder()
	var runs []Run
	x := 0.0
	for _, brun := range ordering.Runs {
		level := 0
		if brun.Dir == bidi.RightToLeft {
			level = 1
		}
		segit := brun.SegmentIterator(false)
		for segit.Next() {
			_, segFrom, segTo := segit.Segment()
			for _, sp := range para.fontSegments(from+segFrom, from+segTo) {
				size, err := m.Measure(para.Text[sp.From:sp.To], sp.Font)
				if err != nil {
					return nil, err
				}
				runs = append(runs, Run{
					From: sp.From, To: sp.To,
					Font:    sp.Font,
					Level:   level,
					Width:   size.Width,
					Ascent:  size.Ascent,
					Descent: size.Descent,
					X:       x,
					YOffset: lineAscent - size.Ascent,
				})
				x += size.Width
			}
		}
	}
	if len(runs) > 0 {
		runs[0].BreakableLeft = true
		runs[len(runs)-1].BreakableRight = true
	}
	return runs, nil
}
