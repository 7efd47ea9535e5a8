package lineflow

import (
	"testing"
)

func TestTrimEnd(t *testing.T) {
	for _, tc := range []struct {
		text string
		want uint64
	}{
		{"hello   ", 5},
		{"hello\n", 5},
		{"hello \r\n", 5},
		{"hello", 5},
		{"hello­", 5},
		{"   ", 0},
	} {
		if got := trimEnd(tc.text, 0, uint64(len(tc.text))); got != tc.want {
			t.Errorf("trimEnd(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestMeasureSpanFonts(t *testing.T) {
	big := &Font{Name: "big", Size: 20}
	para := &Paragraph{
		Text:  "abcdef",
		Spans: []StyleSpan{{From: 2, To: 4, Font: big}},
	}
	size, err := measureSpan(para, charMetrics{w: 10}, 0, 6, false)
	if err != nil {
		t.Fatal(err.Error())
	}
	if size.Width != 60 {
		t.Errorf("expected width 60, have %.0f", size.Width)
	}
	if size.Ascent != 8 || size.Descent != 2 {
		t.Errorf("expected ascent/descent 8/2, have %.0f/%.0f", size.Ascent, size.Descent)
	}
}

func TestLineText(t *testing.T) {
	para := &Paragraph{Text: "aaaa bbbb"}
	line := Line{From: 0, To: 5}
	if got := line.Text(para); got != "aaaa" {
		t.Errorf("expected line text 'aaaa', have %q", got)
	}
	hyphenated := Line{From: 5, To: 9, Insert: "-"}
	if got := hyphenated.Text(para); got != "bbbb-" {
		t.Errorf("expected 'bbbb-', have %q", got)
	}
}

func TestLineRunsBidi(t *testing.T) {
	// Hebrew embedded in Latin text forms three visual runs
	text := "abc אבג def"
	layouter := NewLayouter(charMetrics{w: 10})
	cfg := DefaultConfig(300)
	res, err := layouter.FlowString(text, cfg)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(res.Lines) != 1 {
		t.Fatalf("expected a single line, have %d", len(res.Lines))
	}
	runs := res.Lines[0].Runs
	if len(runs) < 3 {
		t.Fatalf("expected at least 3 visual runs, have %d", len(runs))
	}
	rtl := 0
	for _, run := range runs {
		t.Logf("run %d…%d level=%d x=%.0f", run.From, run.To, run.Level, run.X)
		if run.Level%2 == 1 {
			rtl++
		}
	}
	if rtl == 0 {
		t.Error("expected a right-to-left run for the Hebrew text")
	}
}

func TestFontSegments(t *testing.T) {
	bold := &Font{Name: "bold", Size: 10}
	para := &Paragraph{
		Text:  "0123456789",
		Spans: []StyleSpan{{From: 3, To: 7, Font: bold}},
	}
	segs := para.fontSegments(0, 10)
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, have %d", len(segs))
	}
	if segs[0].To != 3 || segs[1].To != 7 || segs[2].To != 10 {
		t.Errorf("segment edges wrong: %+v", segs)
	}
	if segs[1].Font != bold || segs[0].Font != DefaultFont {
		t.Error("segment fonts wrong")
	}
	// a range inside one span stays a single segment
	segs = para.fontSegments(4, 6)
	if len(segs) != 1 || segs[0].Font != bold {
		t.Errorf("expected one bold segment, have %+v", segs)
	}
}
