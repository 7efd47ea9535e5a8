package lineflow

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func scanFor(t *testing.T, text string, cfg BreakConfig) (*Paragraph, *Catalog) {
	t.Helper()
	para := &Paragraph{Text: text}
	cat, err := ScanBreaks(para, cfg, nil)
	if err != nil {
		t.Fatal(err.Error())
	}
	return para, cat
}

func TestKnuthSingleLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lineflow")
	defer teardown()
	//
	cfg := DefaultConfig(1000)
	para, cat := scanFor(t, "hello world", cfg)
	seq, err := knuthPlass(para, cat, cfg, charMetrics{w: 10})
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(seq) != 1 {
		t.Fatalf("short text in a wide line must give a single line, gives %d", len(seq))
	}
	if seq[0].bp.Pos != 11 || seq[0].badness != 0 {
		t.Errorf("expected free break at end of text, have @%d b=%.1f", seq[0].bp.Pos, seq[0].badness)
	}
}

func TestKnuthTwoLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lineflow")
	defer teardown()
	//
	cfg := DefaultConfig(90)
	cfg.Tolerance = 0.2
	para, cat := scanFor(t, "aaaa bbbb cccc", cfg)
	seq, err := knuthPlass(para, cat, cfg, charMetrics{w: 10})
	if err != nil {
		t.Fatal(err.Error())
	}
	for _, cb := range seq {
		t.Logf("break @%d (%s) r=%.2f b=%.2f", cb.bp.Pos, cb.bp.Type, cb.ratio, cb.badness)
	}
	if len(seq) != 2 {
		t.Fatalf("expected 2 lines, have %d", len(seq))
	}
	// "aaaa bbbb" measures exactly 90 after trimming the trailing space
	if seq[0].bp.Pos != 10 || seq[0].bp.Type != BreakSpace {
		t.Errorf("expected first break at the space at 10, have %s@%d", seq[0].bp.Type, seq[0].bp.Pos)
	}
	if seq[0].ratio != 1 {
		t.Errorf("first line should fit exactly, ratio = %.3f", seq[0].ratio)
	}
	if seq[1].bp.Pos != 14 {
		t.Errorf("expected final break at end of text, have @%d", seq[1].bp.Pos)
	}
}

func TestKnuthMandatoryBreaks(t *testing.T) {
	cfg := DefaultConfig(1000)
	para, cat := scanFor(t, "first\nsecond\nthird", cfg)
	seq, err := knuthPlass(para, cat, cfg, charMetrics{w: 10})
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(seq) != 3 {
		t.Fatalf("expected one line per hard break, have %d", len(seq))
	}
	for i, cb := range seq {
		if cb.bp.Type != BreakMandatory {
			t.Errorf("line %d must end at a mandatory break, ends at %s", i, cb.bp.Type)
		}
		if cb.badness != 0 {
			t.Errorf("underfull mandatory line %d must be free, badness = %.1f", i, cb.badness)
		}
	}
}

func TestKnuthOverfullForced(t *testing.T) {
	cfg := DefaultConfig(50)
	cfg.EmergencyBreaks = false
	para, cat := scanFor(t, "aaaaaaaaaaaaaaaaaaaa", cfg)
	seq, err := knuthPlass(para, cat, cfg, charMetrics{w: 10})
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(seq) != 1 {
		t.Fatalf("unbreakable word must flow into a single line, has %d", len(seq))
	}
	if !seq[0].overfull {
		t.Error("the forced line must be flagged overfull")
	}
}

func TestKnuthEmergencyRescue(t *testing.T) {
	cfg := DefaultConfig(50)
	para, cat := scanFor(t, "aaaaaaaaaaaaaaaaaaaa", cfg)
	seq, err := knuthPlass(para, cat, cfg, charMetrics{w: 10})
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(seq) != 4 {
		t.Fatalf("expected 4 emergency lines of 5 characters, have %d", len(seq))
	}
	for i, cb := range seq {
		if cb.overfull {
			t.Errorf("line %d must not be overfull when emergency breaks are on", i)
		}
		if i < len(seq)-1 && cb.bp.Type != BreakEmergency {
			t.Errorf("line %d should end at an emergency break, have %v", i, cb.bp.Type)
		}
	}
}

func TestKnuthDeterministic(t *testing.T) {
	cfg := DefaultConfig(120)
	cfg.Hyphenate = false
	text := "the quick brown fox jumps over the lazy dog and keeps on running"
	para, cat := scanFor(t, text, cfg)
	first, err := knuthPlass(para, cat, cfg, charMetrics{w: 10})
	if err != nil {
		t.Fatal(err.Error())
	}
	for i := 0; i < 5; i++ {
		again, err := knuthPlass(para, cat, cfg, charMetrics{w: 10})
		if err != nil {
			t.Fatal(err.Error())
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d produced a different break sequence", i)
		}
	}
}

func TestKnuthWidowPenalty(t *testing.T) {
	cfg := DefaultConfig(90)
	cfg.Tolerance = 0.2
	cfg.EmergencyBreaks = false
	text := "aaaa bbbb cc"
	para, cat := scanFor(t, text, cfg)
	// without widow avoidance the optimum ends with a lone "cc"
	plain, err := knuthPlass(para, cat, cfg, charMetrics{w: 10})
	if err != nil {
		t.Fatal(err.Error())
	}
	cfg.WidowPenalty = 10000
	cfg.MinLastLine = 0.5
	avoiding, err := knuthPlass(para, cat, cfg, charMetrics{w: 10})
	if err != nil {
		t.Fatal(err.Error())
	}
	t.Logf("plain: %d lines, widow-avoiding: %d lines", len(plain), len(avoiding))
	last := avoiding[len(avoiding)-1]
	var prevPos uint64
	if len(avoiding) > 1 {
		prevPos = avoiding[len(avoiding)-2].bp.Pos
	}
	lastLen := last.bp.Pos - prevPos
	if len(avoiding) >= len(plain) && lastLen <= 3 {
		t.Errorf("widow penalty had no effect, last line still spans %d bytes", lastLen)
	}
}
