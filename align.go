package lineflow

// alignLines assigns each line its horizontal offset according to the
// resolved alignment. Start and end alignment have already been mapped to
// left or right, depending on the paragraph direction. Justified paragraphs
// get per-line glue adjustments instead of an offset; their last line stays
// flush unless configured otherwise.
func alignLines(lines []Line, para *Paragraph, cfg BreakConfig, m Metrics) error {
	align := cfg.resolveAlignment()
	for i := range lines {
		line := &lines[i]
		slack := cfg.LineWidth - line.Width
		if slack < 0 {
			slack = 0 // overfull lines stay flush left
		}
		switch align {
		case AlignRight:
			line.Offset = slack
		case AlignCenter:
			line.Offset = slack / 2
		case AlignJustify:
			if line.Last && !cfg.JustifyLastLine {
				break
			}
			j, err := justifyLine(line, para, cfg, m)
			if err != nil {
				return err
			}
			line.Justify = j
		}
	}
	return nil
}
