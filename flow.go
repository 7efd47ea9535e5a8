package lineflow

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"unicode/utf8"

	"github.com/npillmayer/lineflow/cache"
)

// Layouter flows paragraphs of styled text into lines. It is safe for
// concurrent use as long as its metrics and hyphenation collaborators are.
type Layouter struct {
	metrics Metrics
	hyph    Hyphenator
	cache   *cache.Cache[*FlowResult]
}

// Option configures a Layouter.
type Option func(*Layouter)

// WithHyphenator sets the hyphenation collaborator consulted for in-word
// break opportunities.
func WithHyphenator(h Hyphenator) Option {
	return func(l *Layouter) { l.hyph = h }
}

// WithCache enables a result cache holding up to capacity flow results.
func WithCache(capacity int) Option {
	return func(l *Layouter) { l.cache = cache.New[*FlowResult](capacity, 0) }
}

// NewLayouter creates a layouter using the given metrics collaborator.
// A nil metrics argument selects a crude built-in fallback and marks every
// result as degraded.
func NewLayouter(m Metrics, opts ...Option) *Layouter {
	l := &Layouter{metrics: m}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FlowResult is the outcome of flowing one paragraph.
type FlowResult struct {
	Lines           []Line
	LineCount       int
	Quality         float64 // 0 to 100, aggregated over all lines
	PoorLines       int
	HyphenatedLines int
	Overflow        bool // at least one line exceeds the line width
	Degraded        bool // fallback metrics were used
}

// Flow breaks a paragraph into lines according to cfg. It never returns an
// empty line set for non-empty text: when optimal breaking finds no feasible
// sequence the greedy breaker takes over, and when the metrics collaborator
// fails the flow is retried with built-in fallback metrics and the result is
// marked degraded.
func (l *Layouter) Flow(para *Paragraph, cfg BreakConfig) (*FlowResult, error) {
	if para == nil {
		return nil, ErrIllegalArguments
	}
	if len(para.Text) == 0 {
		return nil, ErrEmptyText
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	key := flowKey(para, cfg)
	if l.cache != nil {
		if res, ok := l.cache.Get(key); ok {
			return res, nil
		}
	}
	m, degraded := l.metrics, false
	if m == nil {
		m, degraded = fallbackMetrics{}, true
	}
	res, err := l.flow(para, cfg, m)
	if err != nil && !degraded {
		tracer().Errorf("metrics failed, degrading: %v", err)
		res, err = l.flow(para, cfg, fallbackMetrics{})
		degraded = true
	}
	if err != nil {
		return nil, err
	}
	res.Degraded = degraded
	if l.cache != nil {
		res = l.cache.PutIfAbsent(key, res)
	}
	return res, nil
}

// FlowString is a convenience wrapper flowing unstyled text.
func (l *Layouter) FlowString(text string, cfg BreakConfig) (*FlowResult, error) {
	return l.Flow(&Paragraph{Text: text}, cfg)
}

func (l *Layouter) flow(para *Paragraph, cfg BreakConfig, m Metrics) (*FlowResult, error) {
	var hyph Hyphenator
	if cfg.Hyphenate {
		hyph = l.hyph
	}
	cat, err := ScanBreaks(para, cfg, hyph)
	if err != nil {
		return nil, err
	}
	var seq []chosenBreak
	if cfg.Optimize {
		seq, err = knuthPlass(para, cat, cfg, m)
		if err == errNoBreaks {
			tracer().Infof("optimal breaking infeasible, falling back to first fit")
			seq, err = firstFit(para, cat, cfg, m)
		}
	} else {
		seq, err = firstFit(para, cat, cfg, m)
	}
	if err != nil {
		return nil, err
	}
	lines, err := buildLines(para, seq, cfg, m)
	if err != nil {
		return nil, err
	}
	if err := alignLines(lines, para, cfg, m); err != nil {
		return nil, err
	}
	return summarize(lines), nil
}

// summarize aggregates per-line measures into the paragraph-level result.
func summarize(lines []Line) *FlowResult {
	res := &FlowResult{Lines: lines, LineCount: len(lines)}
	if len(lines) == 0 {
		return res
	}
	total := 0.0
	for i := range lines {
		q := 100 - lines[i].Badness
		if lines[i].Overflow {
			q = 0
			res.Overflow = true
		}
		if q < 0 {
			q = 0
		}
		if q < 50 {
			res.PoorLines++
		}
		if lines[i].Hyphenated {
			res.HyphenatedLines++
		}
		total += q
	}
	res.Quality = total / float64(len(lines))
	return res
}

// flowKey hashes everything that determines a flow result: the text, the
// style spans and the breaking configuration.
func flowKey(para *Paragraph, cfg BreakConfig) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	w64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	wf := func(v float64) { w64(math.Float64bits(v)) }
	wb := func(v bool) {
		if v {
			w64(1)
		} else {
			w64(0)
		}
	}
	h.Write([]byte(para.Text))
	for _, sp := range para.Spans {
		w64(sp.From)
		w64(sp.To)
		if sp.Font != nil {
			h.Write([]byte(sp.Font.Name))
			wf(sp.Font.Size)
		}
	}
	wf(cfg.LineWidth)
	wf(cfg.Tolerance)
	wb(cfg.Optimize)
	wb(cfg.Hyphenate)
	wb(cfg.EmergencyBreaks)
	wf(cfg.Weights.Space)
	wf(cfg.Weights.Hyphen)
	wf(cfg.Weights.SoftHyphen)
	wf(cfg.Weights.WordBound)
	wf(cfg.Weights.Emergency)
	wf(cfg.LinePenalty)
	wf(cfg.FitnessWeight)
	wf(cfg.WidowPenalty)
	wf(cfg.MinLastLine)
	w64(uint64(cfg.Alignment))
	w64(uint64(cfg.JustifyMethod))
	wb(cfg.JustifyLastLine)
	wf(cfg.JustifyThreshold)
	wf(cfg.MinWordSpace)
	wf(cfg.MinLetterSpace)
	w64(uint64(cfg.Direction))
	h.Write([]byte(cfg.Language.String()))
	return h.Sum64()
}

// fallbackMetrics estimates text dimensions from the font size alone. It is
// used when no metrics collaborator is available or the configured one
// fails.
type fallbackMetrics struct{}

func (fallbackMetrics) Measure(text string, font *Font) (Size, error) {
	size := 10.0
	if font != nil && font.Size > 0 {
		size = font.Size
	}
	n := utf8.RuneCountInString(text)
	return Size{
		Width:      0.5 * size * float64(n),
		Ascent:     0.8 * size,
		Descent:    0.2 * size,
		LineHeight: 1.2 * size,
	}, nil
}
