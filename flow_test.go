package lineflow

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFlowTiling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lineflow")
	defer teardown()
	//
	text := "the quick brown fox jumps over the lazy dog\nand none shall pass"
	layouter := NewLayouter(charMetrics{w: 10})
	res, err := layouter.FlowString(text, DefaultConfig(150))
	if err != nil {
		t.Fatal(err.Error())
	}
	if res.LineCount == 0 {
		t.Fatal("flow must produce lines for non-empty text")
	}
	pos := uint64(0)
	for i, line := range res.Lines {
		t.Logf("[%2d] %d…%d w=%.0f", i, line.From, line.To, line.Width)
		if line.From != pos {
			t.Fatalf("line %d starts at %d, previous ended at %d", i, line.From, pos)
		}
		if line.To <= line.From {
			t.Fatalf("line %d is empty or reversed", i)
		}
		pos = line.To
	}
	if pos != uint64(len(text)) {
		t.Errorf("lines end at %d, text has %d bytes", pos, len(text))
	}
	if !res.Lines[res.LineCount-1].Last {
		t.Error("final line must be flagged Last")
	}
}

func TestFlowWidthBound(t *testing.T) {
	text := "one two three four five six seven eight nine ten eleven twelve"
	cfg := DefaultConfig(120)
	layouter := NewLayouter(charMetrics{w: 10})
	res, err := layouter.FlowString(text, cfg)
	if err != nil {
		t.Fatal(err.Error())
	}
	for i, line := range res.Lines {
		if !line.Overflow && line.Width > cfg.maxLineWidth() {
			t.Errorf("line %d is %.0f wide, exceeding the tolerance window", i, line.Width)
		}
	}
}

func TestFlowErrors(t *testing.T) {
	layouter := NewLayouter(charMetrics{w: 10})
	if _, err := layouter.Flow(nil, DefaultConfig(100)); err != ErrIllegalArguments {
		t.Errorf("expected ErrIllegalArguments, have %v", err)
	}
	if _, err := layouter.FlowString("", DefaultConfig(100)); err != ErrEmptyText {
		t.Errorf("expected ErrEmptyText, have %v", err)
	}
	if _, err := layouter.FlowString("x", DefaultConfig(-5)); err != ErrInvalidWidth {
		t.Errorf("expected ErrInvalidWidth, have %v", err)
	}
	cfg := DefaultConfig(100)
	cfg.Tolerance = -1
	if _, err := layouter.FlowString("x", cfg); err != ErrInvalidConfig {
		t.Errorf("expected ErrInvalidConfig, have %v", err)
	}
}

func TestFlowDegraded(t *testing.T) {
	layouter := NewLayouter(failMetrics{})
	res, err := layouter.FlowString("some text to lay out", DefaultConfig(60))
	if err != nil {
		t.Fatal(err.Error())
	}
	if !res.Degraded {
		t.Error("failing metrics must flag the result as degraded")
	}
	if res.LineCount == 0 {
		t.Error("degraded flow must still produce lines")
	}
}

func TestFlowNilMetrics(t *testing.T) {
	layouter := NewLayouter(nil)
	res, err := layouter.FlowString("fallback metrics", DefaultConfig(60))
	if err != nil {
		t.Fatal(err.Error())
	}
	if !res.Degraded {
		t.Error("nil metrics must flag the result as degraded")
	}
}

func TestFlowCache(t *testing.T) {
	layouter := NewLayouter(charMetrics{w: 10}, WithCache(64))
	cfg := DefaultConfig(90)
	first, err := layouter.FlowString("aaaa bbbb cccc", cfg)
	if err != nil {
		t.Fatal(err.Error())
	}
	second, err := layouter.FlowString("aaaa bbbb cccc", cfg)
	if err != nil {
		t.Fatal(err.Error())
	}
	if first != second {
		t.Error("identical input must be served from the cache")
	}
	cfg.LineWidth = 120
	third, err := layouter.FlowString("aaaa bbbb cccc", cfg)
	if err != nil {
		t.Fatal(err.Error())
	}
	if third == first {
		t.Error("a different line width must not hit the same cache entry")
	}
}

func TestFlowStyledRuns(t *testing.T) {
	bold := &Font{Name: "bold", Size: 10}
	para := &Paragraph{
		Text:  "plain bold plain",
		Spans: []StyleSpan{{From: 6, To: 10, Font: bold}},
	}
	layouter := NewLayouter(charMetrics{w: 10})
	cfg := DefaultConfig(200)
	res, err := layouter.Flow(para, cfg)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(res.Lines) != 1 {
		t.Fatalf("expected a single line, have %d", len(res.Lines))
	}
	runs := res.Lines[0].Runs
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs (font changes), have %d", len(runs))
	}
	if runs[1].Font != bold {
		t.Errorf("middle run must carry the bold font, has %v", runs[1].Font)
	}
	if runs[0].X != 0 || runs[1].X != 60 || runs[2].X != 100 {
		t.Errorf("runs must be positioned left to right, have x = %.0f/%.0f/%.0f",
			runs[0].X, runs[1].X, runs[2].X)
	}
}

func TestFlowHyphenated(t *testing.T) {
	cfg := DefaultConfig(60)
	cfg.Hyphenate = true
	cfg.EmergencyBreaks = false
	layouter := NewLayouter(charMetrics{w: 10}, WithHyphenator(breakEverywhere{}))
	res, err := layouter.FlowString("abcdefgh", cfg)
	if err != nil {
		t.Fatal(err.Error())
	}
	if res.HyphenatedLines == 0 {
		t.Error("expected at least one hyphenated line")
	}
	for _, line := range res.Lines {
		if line.Hyphenated && line.Insert != "-" {
			t.Errorf("hyphenated line must insert a hyphen, inserts %q", line.Insert)
		}
	}
}

func TestFlowBlankLineHeight(t *testing.T) {
	layouter := NewLayouter(charMetrics{w: 10})
	res, err := layouter.FlowString("one\n\ntwo", DefaultConfig(100))
	if err != nil {
		t.Fatal(err.Error())
	}
	if res.LineCount != 3 {
		t.Fatalf("expected 3 lines including the blank one, have %d", res.LineCount)
	}
	for i, line := range res.Lines {
		if line.Height <= 0 {
			t.Errorf("line %d must keep a positive height, has %.1f", i, line.Height)
		}
	}
	if res.Lines[1].Height != res.Lines[0].Height {
		t.Errorf("blank line should take a full strut of %.1f, has %.1f",
			res.Lines[0].Height, res.Lines[1].Height)
	}
}

func TestFlowQualitySummary(t *testing.T) {
	layouter := NewLayouter(charMetrics{w: 10})
	res, err := layouter.FlowString("aaaa bbbb cccc", DefaultConfig(90))
	if err != nil {
		t.Fatal(err.Error())
	}
	if res.Quality <= 0 || res.Quality > 100 {
		t.Errorf("quality must be in (0,100], is %.1f", res.Quality)
	}
	if res.Overflow {
		t.Error("no line should overflow here")
	}
}
