// Package fixedfont provides text metrics for fixed-width rendering
// targets, terminals in particular. Widths are derived from UAX#11
// East Asian Width classes, counted per grapheme cluster, so that emoji and
// wide CJK characters occupy two cells.
package fixedfont

import (
	"sync"

	"github.com/npillmayer/lineflow"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupOnce sync.Once

// Metrics measures text in fixed-width cells, scaled by the font size.
// A cell is half the font size wide, matching the usual aspect ratio of
// terminal fonts. The zero value uses the Latin UAX#11 context.
type Metrics struct {
	Context *uax11.Context
}

// New creates fixed-width metrics for the given East Asian Width context.
// A nil context selects uax11.LatinContext.
func New(context *uax11.Context) *Metrics {
	if context == nil {
		context = uax11.LatinContext
	}
	setupOnce.Do(grapheme.SetupGraphemeClasses)
	return &Metrics{Context: context}
}

// FromEnvironment creates fixed-width metrics with the UAX#11 context
// derived from the user's locale environment.
func FromEnvironment() *Metrics {
	return New(uax11.ContextFromEnvironment())
}

// Measure implements lineflow.Metrics.
func (fm *Metrics) Measure(text string, font *lineflow.Font) (lineflow.Size, error) {
	size := 10.0
	if font != nil && font.Size > 0 {
		size = font.Size
	}
	context := fm.Context
	if context == nil {
		context = uax11.LatinContext
	}
	setupOnce.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(text)
	cells := uax11.StringWidth(gstr, context)
	en := 0.5 * size // one cell is an en wide
	return lineflow.Size{
		Width:      float64(cells) * en,
		Ascent:     0.8 * size,
		Descent:    0.2 * size,
		LineHeight: 1.2 * size,
	}, nil
}

// CellWidth returns the number of fixed-width cells the text occupies,
// independent of font size.
func (fm *Metrics) CellWidth(text string) int {
	context := fm.Context
	if context == nil {
		context = uax11.LatinContext
	}
	setupOnce.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(text), context)
}
