package lineflow

import (
	"math"
	"testing"
)

func TestFitnessPerfect(t *testing.T) {
	fit := evaluate(100, 100, 0.1)
	if !fit.feasible || fit.badness != 0 || fit.ratio != 1 {
		t.Errorf("exact fit must be feasible with badness 0, have %+v", fit)
	}
}

func TestFitnessWindow(t *testing.T) {
	if fit := evaluate(90, 100, 0.1); !fit.feasible {
		t.Errorf("ratio 0.9 is on the window edge, must be feasible: %+v", fit)
	}
	if fit := evaluate(111, 100, 0.1); fit.feasible || !math.IsInf(fit.badness, 1) {
		t.Errorf("ratio 1.11 must be infeasible with infinite badness: %+v", fit)
	}
	if fit := evaluate(80, 100, 0.1); fit.feasible {
		t.Errorf("ratio 0.8 must be infeasible: %+v", fit)
	}
}

func TestFitnessQuadratic(t *testing.T) {
	fit := evaluate(105, 100, 0.1)
	want := 0.05 * 0.05 * 100
	if math.Abs(fit.badness-want) > 1e-9 {
		t.Errorf("badness for ratio 1.05 = %.6f, want %.6f", fit.badness, want)
	}
	tighter := evaluate(102, 100, 0.1)
	if tighter.badness >= fit.badness {
		t.Error("smaller deviation must score lower badness")
	}
}

func TestOverfullBadness(t *testing.T) {
	b := overfullBadness(150, 100)
	if math.IsInf(b, 1) || b <= 0 {
		t.Errorf("overfull badness must be finite and positive, is %f", b)
	}
	if overfullBadness(200, 100) <= b {
		t.Error("more overfull must score worse")
	}
	if overfullBadness(1e9, 100) > maxBadness {
		t.Error("overfull badness must be clamped")
	}
}
