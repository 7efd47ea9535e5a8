package lineflow

import "unicode/utf8"

// Justification describes how a line's glue stretches or shrinks to fill
// the line width. SpaceAdjust is added to every inter-word space,
// LetterAdjust to every gap between adjacent letters.
type Justification struct {
	SpaceAdjust  float64
	LetterAdjust float64
	SpaceCount   int
	LetterCount  int
	Quality      Quality
}

// justifyLine distributes the difference between a line's measured width
// and the target width over its spaces, and optionally its letter gaps.
// The line itself is not modified; the caller attaches the result.
func justifyLine(line *Line, para *Paragraph, cfg BreakConfig, m Metrics) (*Justification, error) {
	extra := cfg.LineWidth - line.Width
	spaces, letterGaps := countGlue(para.Text[line.From:trimEnd(para.Text, line.From, line.To)])

	j := &Justification{SpaceCount: spaces, LetterCount: letterGaps}
	eps := cfg.JustifyThreshold * cfg.LineWidth
	if extra > -eps && extra < eps {
		j.Quality = QualityPerfect
		return j, nil
	}
	if spaces == 0 {
		// nothing to stretch, leave the line as it is
		j.Quality = 0
		return j, nil
	}

	switch cfg.JustifyMethod {
	case JustifySpaceAndLetter:
		j.SpaceAdjust = extra * 0.7 / float64(spaces)
		if letterGaps > 0 {
			j.LetterAdjust = extra * 0.3 / float64(letterGaps)
		} else {
			j.SpaceAdjust = extra / float64(spaces)
		}
		j.Quality = QualityExcellent - 5
	default: // space only
		j.SpaceAdjust = extra / float64(spaces)
		if extra > 0 {
			j.Quality = 80
		} else {
			j.Quality = 60
		}
	}

	if extra < 0 {
		if err := clampShrink(line, para, cfg, m, j); err != nil {
			return nil, err
		}
	}
	return j, nil
}

// clampShrink keeps compressed spaces above MinWordSpace and compressed
// letter gaps above MinLetterSpace. Shrink lost to one clamp is moved onto
// the other channel as far as its floor allows, so a clamped line still
// gets as close to the line width as the floors permit.
func clampShrink(line *Line, para *Paragraph, cfg BreakConfig, m Metrics, j *Justification) error {
	font := para.fontAt(line.From)
	space, err := m.Measure(" ", font)
	if err != nil {
		return err
	}
	spaceFloor := cfg.MinWordSpace - space.Width
	letterFloor := cfg.MinLetterSpace
	var lost float64
	if j.SpaceAdjust < spaceFloor {
		lost += (spaceFloor - j.SpaceAdjust) * float64(j.SpaceCount)
		j.SpaceAdjust = spaceFloor
	}
	if cfg.JustifyMethod == JustifySpaceAndLetter && j.LetterAdjust < letterFloor {
		lost += (letterFloor - j.LetterAdjust) * float64(j.LetterCount)
		j.LetterAdjust = letterFloor
	}
	if lost <= 0 {
		return nil
	}
	if cfg.JustifyMethod == JustifySpaceAndLetter && j.LetterCount > 0 {
		d := lost / float64(j.LetterCount)
		if j.LetterAdjust-d < letterFloor {
			d = j.LetterAdjust - letterFloor
		}
		if d > 0 {
			j.LetterAdjust -= d
			lost -= d * float64(j.LetterCount)
		}
	}
	if lost > 0 && j.SpaceCount > 0 && j.SpaceAdjust > spaceFloor {
		d := lost / float64(j.SpaceCount)
		if j.SpaceAdjust-d < spaceFloor {
			d = j.SpaceAdjust - spaceFloor
		}
		if d > 0 {
			j.SpaceAdjust -= d
		}
	}
	return nil
}

// countGlue counts inter-word spaces and inter-letter gaps in a line's text.
// A whitespace run counts as a single space; letter gaps are the gaps
// between adjacent non-space code-points.
func countGlue(text string) (spaces, letterGaps int) {
	inSpace, segLen := false, 0
	for pos := 0; pos < len(text); {
		r, w := utf8.DecodeRuneInString(text[pos:])
		if classForRune(r) == classWhitespace {
			if !inSpace {
				spaces++
				if segLen > 1 {
					letterGaps += segLen - 1
				}
				segLen = 0
			}
			inSpace = true
		} else {
			inSpace = false
			segLen++
		}
		pos += w
	}
	if segLen > 1 {
		letterGaps += segLen - 1
	}
	return spaces, letterGaps
}
