package lineflow

import "fmt"

// BreakType classifies a break opportunity.
type BreakType int8

const (
	// BreakSpace breaks after a whitespace character.
	BreakSpace BreakType = iota
	// BreakHyphen breaks after an explicit hyphen or dash.
	BreakHyphen
	// BreakSoftHyphen breaks at a soft hyphen or a hyphenation-collaborator
	// opportunity; taking it inserts hyphen text.
	BreakSoftHyphen
	// BreakWordBound breaks at an alphanumeric-class transition.
	BreakWordBound
	// BreakMandatory is a forced break (hard line separator or end of text).
	BreakMandatory
	// BreakEmergency breaks at an arbitrary rune boundary.
	BreakEmergency
)

func (t BreakType) String() string {
	switch t {
	case BreakSpace:
		return "space"
	case BreakHyphen:
		return "hyphen"
	case BreakSoftHyphen:
		return "soft-hyphen"
	case BreakWordBound:
		return "word-boundary"
	case BreakMandatory:
		return "mandatory"
	case BreakEmergency:
		return "emergency"
	}
	return fmt.Sprintf("BreakType(%d)", int(t))
}

// Quality rates a break opportunity on a 0–100 scale; higher is better.
type Quality uint8

// Quality grades per break kind.
const (
	QualityPerfect   Quality = 100 // space or mandatory break
	QualityExcellent Quality = 90  // hyphen
	QualityGood      Quality = 75  // word boundary
	QualityFair      Quality = 50  // punctuation transition
	QualityPoor      Quality = 10  // emergency break
)

// BreakPoint is a position where a line may legally end. Break points are
// created once during scanning and immutable afterwards.
type BreakPoint struct {
	Pos     uint64 // byte position; a line ending here spans [start, Pos)
	CharPos uint64 // character (rune) position
	Type    BreakType
	Quality Quality
	Penalty float64 // 0 = free; mandatory breaks are always 0
	Insert  string  // text to insert when breaking here (hyphen)
	Before  rune    // code-point preceding the break
	After   rune    // code-point following the break (0 at end of text)
	Font    *Font   // font in effect at the break position
}

// penaltyFor computes the penalty of a break opportunity from its type's
// base weight and its quality. Mandatory breaks are free regardless of the
// weight table.
func penaltyFor(t BreakType, q Quality, w PenaltyWeights) float64 {
	if t == BreakMandatory {
		return 0
	}
	var base float64
	switch t {
	case BreakSpace:
		base = w.Space
	case BreakHyphen:
		base = w.Hyphen
	case BreakSoftHyphen:
		base = w.SoftHyphen
	case BreakWordBound:
		base = w.WordBound
	case BreakEmergency:
		base = w.Emergency
	}
	return base * (1 + float64(100-q)/100)
}

// Catalog is the ordered sequence of break opportunities of one paragraph.
// It holds a view on the caller's text but owns no text itself.
type Catalog struct {
	text   string
	points []BreakPoint

	// summary counts
	Mandatory int // number of forced breaks (including end of text)
	Good      int // breaks with quality ≥ QualityGood
	Poor      int // breaks with quality ≤ QualityPoor
}

// Len returns the number of break opportunities.
func (cat *Catalog) Len() int {
	if cat == nil {
		return 0
	}
	return len(cat.points)
}

// At returns break opportunity number i.
func (cat *Catalog) At(i int) BreakPoint {
	return cat.points[i]
}

// Points returns all break opportunities in position order.
func (cat *Catalog) Points() []BreakPoint {
	if cat == nil {
		return nil
	}
	return cat.points
}

// Text returns the scanned text (a view on the caller's buffer).
func (cat *Catalog) Text() string {
	if cat == nil {
		return ""
	}
	return cat.text
}

func (cat *Catalog) recount() {
	cat.Mandatory, cat.Good, cat.Poor = 0, 0, 0
	for _, bp := range cat.points {
		switch {
		case bp.Type == BreakMandatory:
			cat.Mandatory++
		case bp.Quality >= QualityGood:
			cat.Good++
		case bp.Quality <= QualityPoor:
			cat.Poor++
		}
	}
}
