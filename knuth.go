package lineflow

import "errors"

// The optimal breaker follows the Knuth/Plass scheme: it keeps a set of
// active nodes, one per still-promising line start, and relaxes them against
// every break candidate in catalog order. Each node records the cheapest way
// to reach its break position; the chosen break sequence falls out of a
// back-pointer walk from the final node.

type kpNode struct {
	brk      int // catalog index, -1 for the paragraph start
	pos      uint64
	line     int
	cost     float64
	ratio    float64
	badness  float64
	overfull bool
	prev     int // arena index of the predecessor node
}

// chosenBreak is one entry of a finished break sequence.
type chosenBreak struct {
	bp       BreakPoint
	ratio    float64
	badness  float64
	overfull bool
}

var errNoBreaks = errors.New("lineflow: no feasible break sequence")

func knuthPlass(para *Paragraph, cat *Catalog, cfg BreakConfig, m Metrics) ([]chosenBreak, error) {
	target := cfg.LineWidth
	maxW := cfg.maxLineWidth()
	nodes := []kpNode{{brk: -1, prev: -1}}
	active := []int{0}

	for i := 0; i < cat.Len(); i++ {
		bp := cat.At(i)
		insert, err := insertWidth(bp, m)
		if err != nil {
			return nil, err
		}
		mandatory := bp.Type == BreakMandatory
		final := i == cat.Len()-1

		bestPrev, bestCost := -1, 0.0
		var bestRatio, bestBadness float64
		bestOverfull := false
		worstPrev, worstBadness, worstRatio := -1, 0.0, 0.0 // cheapest overfull predecessor

		var survivors []int
		for _, ai := range active {
			a := nodes[ai]
			size, err := measureSpan(para, m, a.pos, bp.Pos, true)
			if err != nil {
				return nil, err
			}
			w := size.Width + insert
			fit := evaluate(w, target, cfg.Tolerance)

			var badness float64
			feasible := false
			overfull := false
			switch {
			case fit.feasible:
				badness, feasible = fit.badness, true
			case mandatory && w <= maxW:
				// a mandatory break accepts an underfull line as is
				badness, feasible = 0, true
			default:
				badness = overfullBadness(w, target)
				overfull = true
			}

			if feasible || (mandatory && overfull) {
				cost := a.cost + bp.Penalty + cfg.LinePenalty + badness*cfg.FitnessWeight
				if final && w < cfg.MinLastLine*target {
					cost += cfg.WidowPenalty
				}
				if bestPrev < 0 || cost < bestCost {
					bestPrev, bestCost = ai, cost
					bestRatio, bestBadness, bestOverfull = fit.ratio, badness, overfull
				}
			}
			if overfull && (worstPrev < 0 || badness < worstBadness) {
				worstPrev, worstBadness, worstRatio = ai, badness, fit.ratio
			}
			if !mandatory && w <= maxW {
				survivors = append(survivors, ai)
			}
		}

		if mandatory {
			if bestPrev < 0 {
				return nil, errNoBreaks
			}
			nodes = append(nodes, kpNode{
				brk: i, pos: bp.Pos, line: nodes[bestPrev].line + 1,
				cost: bestCost, ratio: bestRatio, badness: bestBadness,
				overfull: bestOverfull, prev: bestPrev,
			})
			active = []int{len(nodes) - 1}
			continue
		}

		if bestPrev >= 0 {
			nodes = append(nodes, kpNode{
				brk: i, pos: bp.Pos, line: nodes[bestPrev].line + 1,
				cost: bestCost, ratio: bestRatio, badness: bestBadness, prev: bestPrev,
			})
			survivors = append(survivors, len(nodes)-1)
		} else if len(survivors) == 0 && worstPrev >= 0 {
			// every line start has overflowed; force an overfull line here
			// so that the walk can continue
			a := nodes[worstPrev]
			nodes = append(nodes, kpNode{
				brk: i, pos: bp.Pos, line: a.line + 1,
				cost:    a.cost + bp.Penalty + cfg.LinePenalty + worstBadness*cfg.FitnessWeight,
				ratio:   worstRatio, badness: worstBadness, overfull: true, prev: worstPrev,
			})
			survivors = []int{len(nodes) - 1}
		}
		active = survivors
		if len(active) == 0 {
			return nil, errNoBreaks
		}
	}

	// the catalog ends with a mandatory break, so exactly one node survives
	end := active[0]
	count := nodes[end].line
	seq := make([]chosenBreak, count)
	for n := end; nodes[n].prev >= 0; n = nodes[n].prev {
		count--
		seq[count] = chosenBreak{
			bp:       cat.At(nodes[n].brk),
			ratio:    nodes[n].ratio,
			badness:  nodes[n].badness,
			overfull: nodes[n].overfull,
		}
	}
	tracer().Debugf("optimal break: %d lines, total demerits %.2f", len(seq), nodes[end].cost)
	return seq, nil
}

// insertWidth measures the text a break point would insert at the line end,
// usually a hyphen.
func insertWidth(bp BreakPoint, m Metrics) (float64, error) {
	if bp.Insert == "" {
		return 0, nil
	}
	font := bp.Font
	if font == nil {
		font = DefaultFont
	}
	size, err := m.Measure(bp.Insert, font)
	if err != nil {
		return 0, err
	}
	return size.Width, nil
}
