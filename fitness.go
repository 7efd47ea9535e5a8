package lineflow

import "math"

// fitness grades a candidate line of measured width against the target width.
// The returned badness is 0 for a perfect fit and grows quadratically with
// the deviation; lines outside the tolerance corridor are infeasible and get
// infinite badness.
type fitness struct {
	ratio    float64 // measured width over target width
	badness  float64
	feasible bool
}

func evaluate(measured, target, tolerance float64) fitness {
	if target <= 0 {
		return fitness{ratio: math.Inf(1), badness: math.Inf(1)}
	}
	ratio := measured / target
	if ratio < 1-tolerance || ratio > 1+tolerance {
		return fitness{ratio: ratio, badness: math.Inf(1)}
	}
	d := ratio - 1
	return fitness{ratio: ratio, badness: d * d * 100, feasible: true}
}

// overfullBadness grades a forced overfull line. It stays finite so that a
// forced break is always representable, but dominates every feasible line.
func overfullBadness(measured, target float64) float64 {
	if target <= 0 {
		return maxBadness
	}
	d := measured/target - 1
	b := d * d * 10000
	if b > maxBadness {
		return maxBadness
	}
	return b + 1000
}

const maxBadness = 1e7
