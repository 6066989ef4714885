// Package report accumulates probe results in a bounded buffer and renders
// them for an operator.
package report

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dkravtsov/authwatch/internal/healthwatch/probe"
)

// DefaultCapacity bounds the result buffer when no explicit capacity is
// configured. Older results are overwritten once the buffer is full, so
// memory stays flat over arbitrarily long runs.
const DefaultCapacity = 256

// Reporter is an append-only sink for probe results backed by a ring
// buffer of the last N entries. Record and the read paths are safe to use
// concurrently.
type Reporter struct {
	mu      sync.Mutex
	results []probe.Result
	next    int
	total   int

	live io.Writer
	tty  bool
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithLiveOutput makes every recorded result render immediately to w.
// When tty is true the output is a single status line rewritten in place;
// otherwise each result is appended as its own line. The writer is only a
// sink; alternative outputs plug in without touching the prober.
func WithLiveOutput(w io.Writer, tty bool) Option {
	return func(r *Reporter) {
		r.live = w
		r.tty = tty
	}
}

func NewReporter(capacity int, opts ...Option) *Reporter {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	r := &Reporter{results: make([]probe.Result, 0, capacity)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record appends a result, evicting the oldest entry when the buffer is
// full, and renders it to the live output when one is configured.
func (r *Reporter) Record(result probe.Result) {

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.results) < cap(r.results) {
		r.results = append(r.results, result)
	} else {
		r.results[r.next] = result
	}
	r.next = (r.next + 1) % cap(r.results)
	r.total++

	if r.live != nil {
		r.renderLive(result)
	}
}

// Snapshot returns a copy of the buffered results in chronological order.
func (r *Reporter) Snapshot() []probe.Result {

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]probe.Result, 0, len(r.results))
	if len(r.results) < cap(r.results) {
		out = append(out, r.results...)
		return out
	}
	out = append(out, r.results[r.next:]...)
	out = append(out, r.results[:r.next]...)
	return out
}

// Total returns the number of results recorded over the process lifetime,
// including entries already evicted from the buffer.
func (r *Reporter) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}

// Summary is a statistics snapshot over buffered results.
type Summary struct {
	Count       int
	Successes   int
	SuccessRate float64
	AvgLatency  time.Duration
	MaxLatency  time.Duration
}

// Summarize computes summary statistics for buffered results with a
// timestamp at or after since. A zero since covers the whole buffer.
func (r *Reporter) Summarize(since time.Time) Summary {

	var s Summary
	var totalLatency time.Duration

	for _, result := range r.Snapshot() {
		if result.Timestamp.Before(since) {
			continue
		}
		s.Count++
		totalLatency += result.Latency
		if result.Latency > s.MaxLatency {
			s.MaxLatency = result.Latency
		}
		if result.Outcome == probe.OutcomeSuccess {
			s.Successes++
		}
	}

	if s.Count > 0 {
		s.SuccessRate = float64(s.Successes) / float64(s.Count)
		s.AvgLatency = totalLatency / time.Duration(s.Count)
	}

	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d probes, %.1f%% ok, avg %s, max %s",
		s.Count, s.SuccessRate*100, s.AvgLatency.Round(time.Microsecond), s.MaxLatency.Round(time.Microsecond))
}
