package lineflow

import (
	"sync"

	"github.com/guiguan/caster"
)

// FlowEvent is broadcast whenever a background flow finishes. Index is the
// caller-provided paragraph index, so subscribers can reassemble results in
// document order.
type FlowEvent struct {
	Index  int
	Result *FlowResult
	Err    error
}

// AsyncLayouter flows paragraphs in background workers and broadcasts every
// finished result to all subscribers. Typesetting a long document this way
// lets a renderer start drawing early lines while later paragraphs are still
// being broken.
type AsyncLayouter struct {
	layouter *Layouter
	cast     *caster.Caster // broadcaster for finished flow results
	jobs     chan flowJob
	wg       sync.WaitGroup
	closed   sync.Once
}

type flowJob struct {
	index int
	para  *Paragraph
	cfg   BreakConfig
}

// NewAsyncLayouter starts an asynchronous layouter with the given number of
// worker goroutines. A non-positive count selects a small default.
func NewAsyncLayouter(l *Layouter, workers int) *AsyncLayouter {
	if workers <= 0 {
		workers = 4
	}
	a := &AsyncLayouter{
		layouter: l,
		cast:     caster.New(nil), // we will broadcast a message per flowed paragraph
		jobs:     make(chan flowJob, workers*2),
	}
	for i := 0; i < workers; i++ {
		a.wg.Add(1)
		go a.worker()
	}
	return a
}

func (a *AsyncLayouter) worker() {
	defer a.wg.Done()
	for job := range a.jobs {
		res, err := a.layouter.Flow(job.para, job.cfg)
		a.cast.Pub(FlowEvent{Index: job.index, Result: res, Err: err})
	}
}

// Subscribe registers a listener for flow events. The returned channel
// receives FlowEvent values until Unsubscribe or Close is called.
func (a *AsyncLayouter) Subscribe() chan interface{} {
	ch, _ := a.cast.Sub(nil, 16)
	return ch
}

// Unsubscribe removes a listener registered with Subscribe.
func (a *AsyncLayouter) Unsubscribe(ch chan interface{}) {
	a.cast.Unsub(ch)
}

// Flow enqueues a paragraph for background flowing. It blocks when all
// workers are busy and the job queue is full.
func (a *AsyncLayouter) Flow(index int, para *Paragraph, cfg BreakConfig) {
	a.jobs <- flowJob{index: index, para: para, cfg: cfg}
}

// FlowAll enqueues a sequence of paragraphs, indexed by slice position.
func (a *AsyncLayouter) FlowAll(paras []*Paragraph, cfg BreakConfig) {
	for i, para := range paras {
		a.Flow(i, para, cfg)
	}
}

// Close drains the job queue, waits for the workers to finish and closes
// the broadcaster. Subscribers' channels are closed as well.
func (a *AsyncLayouter) Close() {
	a.closed.Do(func() {
		close(a.jobs)
		a.wg.Wait()
		a.cast.Close()
	})
}
