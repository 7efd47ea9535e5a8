package lineflow

import (
	"github.com/npillmayer/uax/bidi"
	"golang.org/x/text/language"
)

// Alignment selects the horizontal positioning of finished lines within
// their container.
type Alignment int8

// Alignment modes. Start and End resolve to Left and Right for
// left-to-right base direction, and vice versa for right-to-left.
const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	AlignJustify
	AlignStart
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignJustify:
		return "justify"
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	}
	return "left"
}

// JustifyMethod selects how a justified line distributes its slack.
type JustifyMethod int8

const (
	// JustifySpaceOnly distributes slack over interior space characters.
	JustifySpaceOnly JustifyMethod = iota
	// JustifySpaceAndLetter splits slack 70/30 between word spacing and
	// letter spacing.
	JustifySpaceAndLetter
)

// PenaltyWeights holds per-break-type base weights for penalty scoring.
// A weight of 0 makes breaks of that type free; larger weights make the
// breakers avoid them. Mandatory breaks always have penalty 0, independent
// of any weight.
type PenaltyWeights struct {
	Space      float64
	Hyphen     float64
	SoftHyphen float64
	WordBound  float64
	Emergency  float64
}

// BreakConfig is the per-paragraph parameter set for break scanning, line
// breaking and line flow. It is a pure value: every operation receives a
// copy and no part of the pipeline ever mutates it.
type BreakConfig struct {
	// LineWidth is the target line width, in the unit system of the
	// Metrics collaborator.
	LineWidth float64
	// Tolerance spans the feasible width window
	// [LineWidth×(1−Tolerance), LineWidth×(1+Tolerance)].
	Tolerance float64

	// Optimize enables the Knuth–Plass breaker. When false, the first-fit
	// breaker is used directly.
	Optimize bool

	// Hyphenate enables hyphenation-collaborator calls during break
	// scanning. Language selects the hyphenation patterns.
	Hyphenate bool
	Language  language.Tag

	// EmergencyBreaks permits breaking at any rune boundary when no
	// regular break opportunity fits.
	EmergencyBreaks bool

	// Weights tunes the per-break-type penalty contributions.
	Weights PenaltyWeights
	// LinePenalty is added for every line on a path, discouraging overly
	// many short lines.
	LinePenalty float64
	// FitnessWeight scales the badness contribution of a line relative to
	// the break-point penalties.
	FitnessWeight float64

	// WidowPenalty is added when the final line of a paragraph is shorter
	// than MinLastLine×LineWidth.
	WidowPenalty float64
	MinLastLine  float64

	// Alignment and justification.
	Alignment        Alignment
	JustifyMethod    JustifyMethod
	JustifyLastLine  bool
	JustifyThreshold float64 // slack below this threshold counts as “fits exactly”
	MinWordSpace     float64 // floor for compressed inter-word space
	MinLetterSpace   float64 // floor for compressed inter-letter space

	// Direction is the base direction for bidi resolution.
	Direction bidi.Direction
}

// DefaultConfig returns a configuration for a given target line width with
// conservative defaults: optimizing breaker, 10% tolerance, left alignment,
// no hyphenation, emergency breaks enabled.
func DefaultConfig(width float64) BreakConfig {
	return BreakConfig{
		LineWidth: width,
		Tolerance: 0.1,
		Optimize:  true,
		Language:  language.English,
		Weights: PenaltyWeights{
			Space:      0,
			Hyphen:     30,
			SoftHyphen: 40,
			WordBound:  60,
			Emergency:  200,
		},
		LinePenalty:      10,
		FitnessWeight:    1,
		EmergencyBreaks:  true,
		MinLastLine:      0,
		WidowPenalty:     0,
		Alignment:        AlignLeft,
		JustifyMethod:    JustifySpaceOnly,
		JustifyLastLine:  false,
		JustifyThreshold: 0.001,
		MinWordSpace:     1,
		MinLetterSpace:   0,
		Direction:        bidi.LeftToRight,
	}
}

// check validates the configuration parts that would be programmer errors.
func (cfg BreakConfig) check() error {
	if cfg.LineWidth <= 0 {
		return ErrInvalidWidth
	}
	if cfg.Tolerance < 0 || cfg.FitnessWeight < 0 {
		return ErrInvalidConfig
	}
	return nil
}

// minLineWidth is the lower bound of the feasible width window.
func (cfg BreakConfig) minLineWidth() float64 {
	return cfg.LineWidth * (1 - cfg.Tolerance)
}

// maxLineWidth is the upper bound of the feasible width window.
func (cfg BreakConfig) maxLineWidth() float64 {
	return cfg.LineWidth * (1 + cfg.Tolerance)
}

// resolveAlignment maps start/end onto left/right for the base direction.
func (cfg BreakConfig) resolveAlignment() Alignment {
	rtl := cfg.Direction == bidi.RightToLeft
	switch cfg.Alignment {
	case AlignStart:
		if rtl {
			return AlignRight
		}
		return AlignLeft
	case AlignEnd:
		if rtl {
			return AlignLeft
		}
		return AlignRight
	}
	return cfg.Alignment
}
