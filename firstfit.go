package lineflow

// firstFit is the greedy breaker: it walks the catalog left to right and
// closes a line at the furthest candidate that still fits the line width.
// It is linear, predictable and the fallback whenever optimal breaking is
// switched off or fails.
func firstFit(para *Paragraph, cat *Catalog, cfg BreakConfig, m Metrics) ([]chosenBreak, error) {
	maxW := cfg.maxLineWidth()
	var seq []chosenBreak
	start := uint64(0)
	lastFit, lastFitWidth := -1, 0.0

	closeAt := func(i int, w float64) {
		bp := cat.At(i)
		fit := evaluate(w, cfg.LineWidth, cfg.Tolerance)
		cb := chosenBreak{bp: bp, ratio: fit.ratio, badness: fit.badness}
		switch {
		case fit.feasible:
		case w <= maxW:
			cb.badness = 0
		default:
			cb.badness = overfullBadness(w, cfg.LineWidth)
			cb.overfull = true
		}
		seq = append(seq, cb)
		start = bp.Pos
		lastFit = -1
	}

	for i := 0; i < cat.Len(); {
		bp := cat.At(i)
		insert, err := insertWidth(bp, m)
		if err != nil {
			return nil, err
		}
		size, err := measureSpan(para, m, start, bp.Pos, true)
		if err != nil {
			return nil, err
		}
		w := size.Width + insert

		if bp.Type == BreakMandatory {
			if w > maxW && lastFit >= 0 {
				// close at the last fitting candidate before forcing
				// an overfull line at the mandatory break
				j := lastFit
				closeAt(j, lastFitWidth)
				i = j + 1
				continue
			}
			closeAt(i, w)
			i++
			continue
		}
		if w <= maxW {
			lastFit, lastFitWidth = i, w
			i++
			continue
		}
		// candidate i overflows the line
		if lastFit >= 0 {
			j := lastFit
			closeAt(j, lastFitWidth)
			i = j + 1
			continue
		}
		// nothing fits, force an overfull line to guarantee progress
		closeAt(i, w)
		i++
	}
	tracer().Debugf("first fit: %d lines", len(seq))
	return seq, nil
}
