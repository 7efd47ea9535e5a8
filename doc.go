/*
Package lineflow breaks paragraphs of styled text into lines.

# Line breaking

Given a paragraph of text, a font-metrics provider and a target line width,
lineflow finds line break positions and constructs positioned, optionally
justified lines. Two breaking strategies are provided:

  - an optimal breaker in the spirit of Knuth & Plass, “Breaking Paragraphs
    into Lines”, 1981, which minimizes an accumulated badness score over the
    whole paragraph, and
  - a first-fit breaker, which is cheap and predictable and serves as the
    fallback whenever the optimizer cannot find a feasible break sequence.

Clients construct a Layouter with a Metrics collaborator and call Flow:

	layouter := lineflow.NewLayouter(myMetrics)
	result, err := layouter.FlowString("The quick brown fox…", cfg)

The resulting FlowResult holds the finished lines, each with its visual
runs (ordered for display after bidi resolution), alignment offset and
justification data, plus paragraph-level quality and overflow summaries.

Line breaking interacts with the handling of runs of bidirectional text,
which in a sense restricts it to paragraphs (see UAX#9). lineflow therefore
operates on one paragraph at a time; independent paragraphs may be laid out
concurrently (see AsyncLayouter).

Font metrics and hyphenation are collaborator interfaces. lineflow never
touches font files or hyphenation dictionaries itself.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package lineflow

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lineflow'
func tracer() tracing.Trace {
	return tracing.Select("lineflow")
}
