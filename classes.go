package lineflow

import (
	"sync"
	"unicode"
)

// breakClass is a simplified line-breaking class, a coarse condensation of
// the UAX#14 class set. Text scanning assigns one class per code-point and
// derives break opportunities from class pairs.
type breakClass int8

const (
	classAlphabetic breakClass = iota
	classNumeric
	classWhitespace
	classMandatory
	classHyphen
	classSoftHyphen
	classOpenPunct
	classClosePunct
	classCombining
)

func (c breakClass) String() string {
	switch c {
	case classAlphabetic:
		return "AL"
	case classNumeric:
		return "NU"
	case classWhitespace:
		return "SP"
	case classMandatory:
		return "BK"
	case classHyphen:
		return "HY"
	case classSoftHyphen:
		return "SHY"
	case classOpenPunct:
		return "OP"
	case classClosePunct:
		return "CL"
	case classCombining:
		return "CM"
	}
	return "??"
}

// isAlphanumeric reports whether the class takes part in word-boundary
// detection.
func (c breakClass) isAlphanumeric() bool {
	return c == classAlphabetic || c == classNumeric
}

const softHyphen = '­'

// Mandatory line separators, following the usual set of hard break
// characters (NEL, LS and PS included).
var mandatoryBreaks = []rune{'\n', '\v', '\f', '\r', '', ' ', ' '}

// Breakable dashes. U+2011 (non-breaking hyphen) is deliberately absent.
var hyphens = []rune{'-', '‐', '‒', '–', '—'}

// classTables groups the Unicode range tables consulted during scanning.
// Initialization is lazy and happens exactly once; afterwards the tables
// are immutable and safe for concurrent readers. This follows the setup
// pattern of uax14.SetupClasses.
var classTables struct {
	once  sync.Once
	open  []*unicode.RangeTable
	close []*unicode.RangeTable
	marks []*unicode.RangeTable
}

func setupClassTables() {
	classTables.once.Do(func() {
		classTables.open = []*unicode.RangeTable{unicode.Ps, unicode.Pi}
		classTables.close = []*unicode.RangeTable{unicode.Pe, unicode.Pf, unicode.Po}
		classTables.marks = []*unicode.RangeTable{unicode.Mn, unicode.Mc, unicode.Me}
	})
}

// classForRune returns the simplified line-breaking class for a code-point.
// Unknown code-points fall back to the alphabetic class, mirroring the
// UAX#14 rule LB1 fallback (AI, SG, XX → AL).
func classForRune(r rune) breakClass {
	setupClassTables()
	for _, b := range mandatoryBreaks {
		if r == b {
			return classMandatory
		}
	}
	if r == softHyphen {
		return classSoftHyphen
	}
	for _, h := range hyphens {
		if r == h {
			return classHyphen
		}
	}
	if unicode.IsSpace(r) {
		return classWhitespace
	}
	if unicode.IsDigit(r) {
		return classNumeric
	}
	switch {
	case unicode.In(r, classTables.marks...):
		return classCombining
	case unicode.In(r, classTables.open...):
		return classOpenPunct
	case unicode.In(r, classTables.close...):
		return classClosePunct
	}
	return classAlphabetic
}
